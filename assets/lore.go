package assets

// DungeonLore holds atmospheric snippets per dungeon name. One is picked at
// random when a floor is entered.
var DungeonLore = map[string][]string{
	"angband": {
		"The iron gates of Angband stand open. Nobody who went in has mentioned why.",
		"Scratched into the wall: 'ringil was here'. It was not, and never is, when you look.",
		"Something down here collects swords. It has a very good collection.",
	},
	"yeek-cave": {
		"The yeeks have hoarded every shiny thing they found. Most of it is copper.",
		"A pile of rusty daggers, lovingly polished. The yeeks clearly tried.",
		"It smells of wet fur and disappointment.",
	},
	"orc-cave": {
		"Crude banners mark the warrens. The orcs have been looting the surface again.",
		"An orc captain's footlocker, pried open. Whatever was inside is yours now, or was.",
		"The walls are sooty from cookfires. Some of the bones are not animal bones.",
	},
	"dragons-lair": {
		"Gold coins crunch underfoot. The dragon is not going to be happy about this.",
		"Scales the size of shields litter the floor. So do the shields.",
		"A hoard this old has swallowed heroes and their heirlooms alike.",
	},
	"mirkwood": {
		"The trees lean close overhead. Something moves in the webs above.",
		"An elven waystone, moss-covered. The runes still glow faintly.",
		"Spider silk wraps a cloak that someone clearly wanted to keep.",
	},
}

// LoreOpening is shown when the viewer starts.
const LoreOpening = `Deep beneath the mountains lie the relics of older ages:
blades that remember their bearers, crowns that should
never have been forged. Every level you descend, the
forge rolls again. Some things it makes only once.
Press any key to begin...`
