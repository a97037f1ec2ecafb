package game

import (
	"math"
	"math/rand"

	"relicforge/internal/dungeon"
	"relicforge/internal/generate"
)

// floorCapacity is the most objects a floor can hold.
const floorCapacity = 64

// levelConfig builds a generate.Config for the given depth. Deeper floors
// are larger and carry more loot.
func levelConfig(depth int, rng *rand.Rand) *generate.Config {
	t := float64(dungeon.ClampLevel(depth)) / float64(dungeon.MaxDepth-1)

	cfg := generate.DefaultConfig(rng)
	cfg.MapWidth = lerpi(48, 80, t)
	cfg.MapHeight = lerpi(20, 30, t)
	cfg.MaxLeafSize = lerpi(20, 12, t)
	cfg.ObjectCount = lerpi(6, 14, t)
	cfg.GoldCount = lerpi(2, 5, t)
	return cfg
}

func lerpi(a, b int, t float64) int {
	return int(math.Round(float64(a) + t*float64(b-a)))
}
