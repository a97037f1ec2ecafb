package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileStairsUp
	TileStairsDown
)

// Tile is one map grid: its kind plus what the viewer has seen of it.
type Tile struct {
	Kind        TileKind
	Walkable    bool
	Transparent bool
	Explored    bool
	Visible     bool
}

// HoldsObjects reports whether objects may be dropped on the tile. Stairs
// stay clear so a pile never hides the way down.
func (t Tile) HoldsObjects() bool { return t.Kind == TileFloor }

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall}
}

// MakeFloor returns an open floor grid.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Walkable: true, Transparent: true}
}

// MakeStairsDown returns a staircase to the next depth.
func MakeStairsDown() Tile {
	return Tile{Kind: TileStairsDown, Walkable: true, Transparent: true}
}

// MakeStairsUp returns a staircase back to the previous depth.
func MakeStairsUp() Tile {
	return Tile{Kind: TileStairsUp, Walkable: true, Transparent: true}
}
