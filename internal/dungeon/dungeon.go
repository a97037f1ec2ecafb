// Package dungeon describes dungeons and the floor an object is generated on.
package dungeon

import "relicforge/internal/object"

// MaxDepth is one past the deepest generation level.
const MaxDepth = 128

// Def is a static dungeon definition. ObjGood and ObjGreat cap the
// percentage chances of good and great items.
type Def struct {
	ID       int
	Name     string
	MinDepth int
	MaxDepth int
	ObjGood  int
	ObjGreat int
}

// Floor is the level an object is being generated for.
type Floor struct {
	Dungeon     *Def
	DunLevel    int
	ObjectLevel int
	FloorID     int
	// InProgress is false while the character is still being created.
	InProgress bool
	// ThemeHook restricts base-kind selection to a themed subset.
	ThemeHook func(*object.Kind) bool
}

// NewFloor returns an in-progress floor of def at depth, clamped to the
// dungeon's range.
func NewFloor(def *Def, depth, floorID int) *Floor {
	if depth < 0 {
		depth = 0
	}
	if def.MaxDepth > 0 && depth > def.MaxDepth {
		depth = def.MaxDepth
	}
	return &Floor{
		Dungeon:     def,
		DunLevel:    depth,
		ObjectLevel: depth,
		FloorID:     floorID,
		InProgress:  true,
	}
}

// InTown reports whether the floor is the surface.
func (f *Floor) InTown() bool { return f.DunLevel == 0 }

// ClampLevel saturates level into [0, MaxDepth-1].
func ClampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > MaxDepth-1 {
		return MaxDepth - 1
	}
	return level
}
