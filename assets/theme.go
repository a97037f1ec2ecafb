package assets

import (
	"relicforge/internal/object"
	"relicforge/internal/player"
)

// Emoji constants used as entity glyphs.
const (
	GlyphPlayer     = "🧙"
	GlyphStairsDown = "🔽"
	GlyphStairsUp   = "🔼"
	GlyphArtifact   = "🌟"
	GlyphUnknown    = "❓"
)

var tvalGlyphs = map[object.TVal]string{
	object.TValShot:       "🪨",
	object.TValArrow:      "🎯",
	object.TValBolt:       "🎯",
	object.TValBow:        "🏹",
	object.TValDigging:    "🪓",
	object.TValHafted:     "🔨",
	object.TValPolearm:    "🔱",
	object.TValSword:      "🗡️",
	object.TValBoots:      "👢",
	object.TValGloves:     "🧤",
	object.TValHelm:       "🪖",
	object.TValCrown:      "👑",
	object.TValShield:     "🛡️",
	object.TValCloak:      "🧥",
	object.TValSoftArmor:  "👕",
	object.TValHardArmor:  "🦺",
	object.TValDragArmor:  "🐲",
	object.TValLight:      "🔦",
	object.TValAmulet:     "📿",
	object.TValRing:       "💍",
	object.TValInstrument: "🎻",
	object.TValStaff:      "🦯",
	object.TValWand:       "🪄",
	object.TValRod:        "🥢",
	object.TValScroll:     "📜",
	object.TValPotion:     "🧪",
	object.TValFood:       "🍖",
	object.TValGold:       "💰",
}

// GlyphFor returns the map glyph for an item category.
func GlyphFor(tv object.TVal) string {
	if g, ok := tvalGlyphs[tv]; ok {
		return g
	}
	return GlyphUnknown
}

// ClassDef is a selectable character preset.
type ClassDef struct {
	ID          string
	Name        string
	Emoji       string
	Lore        string // one-liner shown on the class selection screen
	Class       player.Class
	Sex         player.Sex
	Personality player.Personality
	Level       int
}

// Classes is the ordered list of selectable presets. Several exist to show
// off artifacts that react to their wielder.
var Classes = []ClassDef{
	{
		ID:          "warrior",
		Name:        "Stalwart Warrior",
		Emoji:       "⚔️",
		Lore:        "Wears the Mask of Terror the way it was meant to be worn",
		Class:       player.Warrior,
		Sex:         player.Male,
		Personality: player.Ordinary,
		Level:       30,
	},
	{
		ID:          "mage",
		Name:        "Curious Mage",
		Emoji:       "🧙",
		Lore:        "Picks up every mask. Regrets some of them",
		Class:       player.Mage,
		Sex:         player.Female,
		Personality: player.Shrewd,
		Level:       30,
	},
	{
		ID:          "samurai",
		Name:        "Wandering Samurai",
		Emoji:       "🗡️",
		Lore:        "The only hand Muramasa will not bite",
		Class:       player.Samurai,
		Sex:         player.Male,
		Personality: player.Fearless,
		Level:       30,
	},
	{
		ID:          "bard",
		Name:        "Travelling Bard",
		Emoji:       "🎻",
		Lore:        "Plays Robinton's harp beautifully and pays for it in mana",
		Class:       player.Bard,
		Sex:         player.Female,
		Personality: player.Sexy,
		Level:       25,
	},
	{
		ID:          "monk",
		Name:        "Temple Monk",
		Emoji:       "🥋",
		Lore:        "Xiaolong's nunchaku move faster in trained hands",
		Class:       player.Monk,
		Sex:         player.Male,
		Personality: player.Patient,
		Level:       25,
	},
	{
		ID:          "munchkin",
		Name:        "Lucky Munchkin",
		Emoji:       "🍀",
		Lore:        "Finds things deeper than it has any right to",
		Class:       player.Tourist,
		Sex:         player.Female,
		Personality: player.Munchkin,
		Level:       10,
	},
}

// ClassByID returns the preset with the given ID.
func ClassByID(id string) (ClassDef, bool) {
	for _, c := range Classes {
		if c.ID == id {
			return c, true
		}
	}
	return ClassDef{}, false
}

// Player builds a fresh player from the preset.
func (c ClassDef) Player(name string) *player.Player {
	return &player.Player{
		Name:        name,
		Class:       c.Class,
		Sex:         c.Sex,
		Personality: c.Personality,
		Level:       c.Level,
	}
}
