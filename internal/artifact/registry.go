// Package artifact generates fixed artifacts: it decides whether an item
// becomes one, stamps the artifact's template onto it and tracks which
// artifacts already exist in a game.
package artifact

import (
	"errors"
	"fmt"
	"sort"

	"relicforge/internal/object"
)

// ID identifies a fixed artifact. Zero means none.
type ID = object.ArtifactID

// Def is a static fixed-artifact definition.
type Def struct {
	ID         ID
	Name       string
	TVal       object.TVal
	SVal       int
	PVal       int
	AC         int
	DD, DS     int
	ToH        int
	ToD        int
	ToA        int
	Weight     int
	Cost       int
	Level      int
	Rarity     int
	Flags      object.TrFlags
	Gen        object.GenFlags
	Activation int
}

// State is the runtime part of an artifact that is saved with a game.
type State struct {
	ID        ID
	Generated bool
	FloorID   int
}

var (
	ErrUnknownArtifact = errors.New("unknown artifact")
	ErrDuplicateID     = errors.New("duplicate artifact id")
)

// Registry owns one game's artifact table. Definitions are read-only; the
// generated flag and floor ID change as artifacts are created. A Registry
// belongs to a single game and is not safe for concurrent use.
type Registry struct {
	defs  map[ID]*Def
	state map[ID]*State
	order []ID
}

// NewRegistry builds a registry over defs, all initially ungenerated.
func NewRegistry(defs []Def) (*Registry, error) {
	r := &Registry{
		defs:  make(map[ID]*Def, len(defs)),
		state: make(map[ID]*State, len(defs)),
	}
	for i := range defs {
		d := defs[i]
		if d.ID == 0 {
			return nil, fmt.Errorf("artifact %q: id 0 is reserved", d.Name)
		}
		if _, ok := r.defs[d.ID]; ok {
			return nil, fmt.Errorf("artifact %d: %w", d.ID, ErrDuplicateID)
		}
		r.defs[d.ID] = &d
		r.state[d.ID] = &State{ID: d.ID}
		r.order = append(r.order, d.ID)
	}
	sort.Slice(r.order, func(i, j int) bool { return r.order[i] < r.order[j] })
	return r, nil
}

// IDs returns every artifact ID in ascending order.
func (r *Registry) IDs() []ID { return r.order }

// Def returns the definition for id, or nil.
func (r *Registry) Def(id ID) *Def { return r.defs[id] }

// IsGenerated reports whether id exists in the current game.
func (r *Registry) IsGenerated(id ID) bool {
	s := r.state[id]
	return s != nil && s.Generated
}

// FloorID returns the floor an artifact was generated on, 0 if unknown.
func (r *Registry) FloorID(id ID) int {
	if s := r.state[id]; s != nil {
		return s.FloorID
	}
	return 0
}

// MarkGenerated moves id to the generated state. A floorID of 0 leaves the
// recorded floor unchanged. Marking an already generated artifact is a
// programming error and panics.
func (r *Registry) MarkGenerated(id ID, floorID int) {
	s := r.state[id]
	if s == nil {
		panic(fmt.Sprintf("artifact: mark unknown artifact %d", id))
	}
	if s.Generated {
		panic(fmt.Sprintf("artifact: %d (%s) generated twice", id, r.defs[id].Name))
	}
	s.Generated = true
	if floorID != 0 {
		s.FloorID = floorID
	}
}

// Release returns id to the ungenerated state after its item failed to
// reach the world.
func (r *Registry) Release(id ID) {
	if s := r.state[id]; s != nil {
		s.Generated = false
		s.FloorID = 0
	}
}

// Reset clears every artifact's runtime state for a new game.
func (r *Registry) Reset() {
	for _, s := range r.state {
		s.Generated = false
		s.FloorID = 0
	}
}

// Generated returns the IDs of every generated artifact in ascending order.
func (r *Registry) Generated() []ID {
	var out []ID
	for _, id := range r.order {
		if r.state[id].Generated {
			out = append(out, id)
		}
	}
	return out
}

// Snapshot returns the runtime state of every artifact in ID order.
func (r *Registry) Snapshot() []State {
	out := make([]State, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.state[id])
	}
	return out
}

// Restore replaces the runtime state with states. Artifacts not mentioned
// become ungenerated.
func (r *Registry) Restore(states []State) error {
	for _, s := range states {
		if _, ok := r.state[s.ID]; !ok {
			return fmt.Errorf("restore artifact %d: %w", s.ID, ErrUnknownArtifact)
		}
	}
	r.Reset()
	for _, s := range states {
		*r.state[s.ID] = s
	}
	return nil
}
