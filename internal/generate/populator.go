package generate

import (
	"relicforge/internal/gamemap"
)

// SpawnPoint holds a world coordinate where an entity should appear.
type SpawnPoint struct {
	X, Y int
}

// PopulateResult lists the grids an object or gold pile should be placed on.
type PopulateResult struct {
	Objects []SpawnPoint
	Gold    []SpawnPoint
}

// Populate picks distinct floor grids for cfg.ObjectCount objects and
// cfg.GoldCount gold piles. The first room is the start room and gets
// nothing; with a single room everything goes into it.
func Populate(gmap *gamemap.GameMap, cfg *Config) PopulateResult {
	var result PopulateResult

	rooms := gmap.Rooms
	if len(rooms) == 0 {
		return result
	}
	placeable := rooms
	if len(rooms) > 1 {
		placeable = rooms[1:]
	}

	// occupied tracks every position already claimed this pass so that no two
	// spawns share a tile.
	type pt = [2]int
	occupied := make(map[pt]bool)
	pick := func() SpawnPoint {
		room := placeable[cfg.Rand.Intn(len(placeable))]
		x, y := pickFreeInRoom(room, cfg, occupied)
		occupied[pt{x, y}] = true
		return SpawnPoint{X: x, Y: y}
	}

	for range cfg.ObjectCount {
		result.Objects = append(result.Objects, pick())
	}
	for range cfg.GoldCount {
		result.Gold = append(result.Gold, pick())
	}
	return result
}

// pickFreeInRoom tries up to 20 times to find an unoccupied position inside
// room. If all attempts hit an occupied tile it falls back to any position
// (avoids an infinite loop in very crowded rooms).
func pickFreeInRoom(room gamemap.Rect, cfg *Config, occupied map[[2]int]bool) (int, int) {
	const maxAttempts = 20
	for range maxAttempts {
		x, y := randomInRoom(room, cfg)
		if !occupied[[2]int{x, y}] {
			return x, y
		}
	}
	return randomInRoom(room, cfg)
}

func randomInRoom(room gamemap.Rect, cfg *Config) (int, int) {
	// Shrink by 1 from each edge so nothing lands in a doorway.
	x1, y1 := room.X1+1, room.Y1+1
	x2, y2 := room.X2-1, room.Y2-1
	// Fall back to full room bounds for very small rooms.
	if x1 > x2 || y1 > y2 {
		x1, y1 = room.X1, room.Y1
		x2, y2 = room.X2, room.Y2
	}
	w := x2 - x1 + 1
	h := y2 - y1 + 1
	x := x1 + cfg.Rand.Intn(max(1, w))
	y := y1 + cfg.Rand.Intn(max(1, h))
	return x, y
}
