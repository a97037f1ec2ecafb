package assets

import "relicforge/internal/dungeon"

// Dungeons lists the selectable dungeons. The first entry is the default.
var Dungeons = []dungeon.Def{
	{ID: 1, Name: "angband", MinDepth: 1, MaxDepth: 127, ObjGood: 75, ObjGreat: 20},
	{ID: 2, Name: "yeek-cave", MinDepth: 1, MaxDepth: 10, ObjGood: 30, ObjGreat: 5},
	{ID: 3, Name: "orc-cave", MinDepth: 10, MaxDepth: 23, ObjGood: 50, ObjGreat: 10},
	{ID: 4, Name: "dragons-lair", MinDepth: 60, MaxDepth: 72, ObjGood: 90, ObjGreat: 40},
	{ID: 5, Name: "mirkwood", MinDepth: 15, MaxDepth: 34, ObjGood: 60, ObjGreat: 15},
}

// DungeonByName returns the dungeon with the given name.
func DungeonByName(name string) (*dungeon.Def, bool) {
	for i := range Dungeons {
		if Dungeons[i].Name == name {
			return &Dungeons[i], true
		}
	}
	return nil, false
}
