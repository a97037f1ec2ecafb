package render

// FloorTiles holds the emoji glyphs used to draw one dungeon's terrain.
// Emoji are rendered by the terminal with their own colors, so we use
// distinct glyphs for visible vs explored-but-dark states instead of
// trying to tint them with terminal FG color.
type FloorTiles struct {
	Wall     string // fully-visible wall tile
	Floor    string // fully-visible floor tile
	DimWall  string // explored but not currently visible wall
	DimFloor string // explored but not currently visible floor
}

const (
	glyphStairsDown = "🔽"
	glyphStairsUp   = "🔼"
)

// defaultTheme is used for dungeons without their own tile set.
var defaultTheme = FloorTiles{
	Wall:     "🪨",
	Floor:    "🟫",
	DimWall:  "🌑",
	DimFloor: "🔲",
}

// TileThemes maps a dungeon name to its tile set.
var TileThemes = map[string]FloorTiles{
	// Angband: bare rock and packed earth
	"angband": defaultTheme,
	// Yeek cave: damp mud
	"yeek-cave": {
		Wall:     "🟤",
		Floor:    "🟫",
		DimWall:  "🌑",
		DimFloor: "🔲",
	},
	// Orc cave: scorched warrens
	"orc-cave": {
		Wall:     "🧱",
		Floor:    "🔥",
		DimWall:  "🌑",
		DimFloor: "🔲",
	},
	// Dragon's lair: volcanic rock over a carpet of coins
	"dragons-lair": {
		Wall:     "🌋",
		Floor:    "🪙",
		DimWall:  "🌑",
		DimFloor: "🔲",
	},
	// Mirkwood: trees and leaf litter
	"mirkwood": {
		Wall:     "🌲",
		Floor:    "🍂",
		DimWall:  "🌑",
		DimFloor: "🔲",
	},
}

// ThemeFor returns the tile set for the named dungeon.
func ThemeFor(dungeon string) FloorTiles {
	if t, ok := TileThemes[dungeon]; ok {
		return t
	}
	return defaultTheme
}
