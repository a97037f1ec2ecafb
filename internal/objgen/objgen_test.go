package objgen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relicforge/assets"
	"relicforge/internal/artifact"
	"relicforge/internal/component"
	"relicforge/internal/dungeon"
	"relicforge/internal/ecs"
	"relicforge/internal/factory"
	"relicforge/internal/gamemap"
	"relicforge/internal/generate"
	"relicforge/internal/magic"
	"relicforge/internal/object"
	"relicforge/internal/rng"
)

// openMap is a floor-filled map with a wall border.
func openMap(w, h int) *gamemap.GameMap {
	gm := gamemap.New(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gm.Set(x, y, gamemap.MakeFloor())
		}
	}
	return gm
}

func newMaker(t *testing.T, depth int, seed int64, capacity int) (*Maker, *artifact.Registry) {
	t.Helper()
	reg := assets.NewArtifactRegistry()
	d := rng.NewSeeded(seed)
	class, ok := assets.ClassByID("warrior")
	require.True(t, ok)
	p := class.Player("tester")
	applier := magic.New(assets.Kinds(), assets.Egos(), reg, p, d)
	m := NewMaker(assets.Kinds(), reg, applier, p, d)
	def, ok := assets.DungeonByName("angband")
	require.True(t, ok)
	m.Enter(Level{
		Floor: dungeon.NewFloor(def, depth, 7),
		Map:   openMap(20, 20),
		World: ecs.NewBoundedWorld(capacity),
	})
	return m, reg
}

func TestPickKindAtTownLevelIsNative(t *testing.T) {
	m, _ := newMaker(t, 1, 3, 0)
	for range 500 {
		k := m.pickKind(0, nil)
		require.NotNil(t, k)
		native := false
		for _, a := range k.Alloc {
			if a.Level == 0 {
				native = true
			}
		}
		assert.True(t, native, "kind %s is not allocated at level 0", k.Name)
	}
}

func TestPickKindHonoursHook(t *testing.T) {
	m, _ := newMaker(t, 30, 5, 0)
	onlyRings := func(k *object.Kind) bool { return k.TVal == object.TValRing }
	for range 200 {
		k := m.pickKind(30, onlyRings)
		require.NotNil(t, k)
		assert.Equal(t, object.TValRing, k.TVal)
	}
	assert.Nil(t, m.pickKind(30, func(*object.Kind) bool { return false }))
}

func TestPickKindNeverReturnsGold(t *testing.T) {
	m, _ := newMaker(t, 40, 9, 0)
	for range 500 {
		assert.NotEqual(t, object.TValGold, m.pickKind(40, nil).TVal)
	}
}

func TestMakeObjectGoodUsesGoodKinds(t *testing.T) {
	m, _ := newMaker(t, 10, 11, 0)
	for range 300 {
		var it object.Item
		require.True(t, m.MakeObject(&it, magic.Good))
		if it.IsFixedArtifact() {
			continue
		}
		k := assets.Kinds().Get(it.KindID)
		require.NotNil(t, k)
		assert.True(t, KindIsGood(k), "good request produced %s", k.Name)
	}
}

func TestMakeObjectAmmoComesInStacks(t *testing.T) {
	m, _ := newMaker(t, 10, 13, 0)
	m.Level().Floor.ThemeHook = func(k *object.Kind) bool {
		return k.TVal == object.TValArrow || k.TVal == object.TValBolt || k.TVal == object.TValShot
	}
	for range 100 {
		var it object.Item
		require.True(t, m.MakeObject(&it, 0))
		require.True(t, it.IsAmmo())
		assert.GreaterOrEqual(t, it.Number, 6)
		assert.LessOrEqual(t, it.Number, 42)
	}
}

func TestMakeObjectFailsWithEmptyTheme(t *testing.T) {
	m, _ := newMaker(t, 10, 1, 0)
	m.Level().Floor.ThemeHook = func(*object.Kind) bool { return false }
	var it object.Item
	assert.False(t, m.MakeObject(&it, 0))
	assert.True(t, it.IsEmpty())
}

func TestMakeObjectKeepsArtifactsUnique(t *testing.T) {
	m, reg := newMaker(t, 100, 17, 0)
	seen := make(map[artifact.ID]int)
	for range 3000 {
		var it object.Item
		require.True(t, m.MakeObject(&it, magic.Great))
		require.NoError(t, it.Validate())
		if it.IsFixedArtifact() {
			seen[it.ArtifactID]++
		}
	}
	require.NotEmpty(t, seen, "expected some fixed artifacts at depth 100 with great rolls")
	for id, n := range seen {
		assert.Equal(t, 1, n, "artifact %d generated %d times", id, n)
		assert.True(t, reg.IsGenerated(id))
		assert.Equal(t, 7, reg.FloorID(id))
	}
}

func TestMakeGold(t *testing.T) {
	m, _ := newMaker(t, 5, 19, 0)

	var it object.Item
	require.True(t, m.MakeGold(&it, 3))
	k := assets.Kinds().Get(it.KindID)
	require.NotNil(t, k)
	assert.Equal(t, object.TValGold, it.TVal)
	assert.Equal(t, 3, it.SVal)
	assert.GreaterOrEqual(t, it.PVal, k.Cost+8+1)
	assert.LessOrEqual(t, it.PVal, k.Cost+8*k.Cost+8)

	require.True(t, m.MakeGold(&it, 99))
	assert.Equal(t, 11, it.SVal, "coin type past the table clamps to the richest treasure")

	for range 200 {
		require.True(t, m.MakeGold(&it, 0))
		assert.Equal(t, object.TValGold, it.TVal)
		assert.Positive(t, it.PVal)
	}
}

func TestPlaceObjectRejectsWallsAndPiles(t *testing.T) {
	m, _ := newMaker(t, 5, 23, 0)
	assert.Equal(t, ecs.NilEntity, m.PlaceObject(0, 0, 0), "border wall")
	assert.Equal(t, ecs.NilEntity, m.PlaceObject(-3, 4, 0), "out of bounds")

	id := m.PlaceObject(5, 5, 0)
	require.NotEqual(t, ecs.NilEntity, id)
	assert.Equal(t, ecs.NilEntity, m.PlaceObject(5, 5, 0), "occupied grid")
	assert.Equal(t, ecs.NilEntity, m.PlaceGold(5, 5), "occupied grid")
	assert.NotEqual(t, ecs.NilEntity, m.PlaceGold(6, 5))
}

func TestPlaceObjectKeepsStairsClear(t *testing.T) {
	m, _ := newMaker(t, 5, 31, 0)
	gm := m.Level().Map
	gm.Set(4, 4, gamemap.MakeStairsDown())
	gm.Set(6, 6, gamemap.MakeStairsUp())

	assert.False(t, m.Droppable(4, 4))
	assert.Equal(t, ecs.NilEntity, m.PlaceObject(4, 4, 0), "stairs down")
	assert.Equal(t, ecs.NilEntity, m.PlaceGold(6, 6), "stairs up")
	assert.True(t, m.Droppable(5, 5))
}

func TestPlaceObjectFullFloor(t *testing.T) {
	m, _ := newMaker(t, 5, 29, 1)
	require.NotEqual(t, ecs.NilEntity, m.PlaceGold(3, 3))
	assert.Equal(t, ecs.NilEntity, m.PlaceObject(8, 8, 0))
	assert.Equal(t, 1, m.Level().World.Count())
}

func TestDropNearPrefersDropPoint(t *testing.T) {
	m, _ := newMaker(t, 5, 31, 0)
	sword := object.Item{KindID: 3, TVal: object.TValSword, Number: 1}
	helm := object.Item{KindID: 20, TVal: object.TValHelm, Number: 1}

	first := m.DropNear(&sword, 0, 10, 10)
	require.NotEqual(t, ecs.NilEntity, first)
	pos := m.Level().World.Get(first, component.CPosition).(component.Position)
	assert.Equal(t, component.Position{X: 10, Y: 10}, pos)

	second := m.DropNear(&helm, 0, 10, 10)
	require.NotEqual(t, ecs.NilEntity, second)
	pos = m.Level().World.Get(second, component.CPosition).(component.Position)
	assert.NotEqual(t, component.Position{X: 10, Y: 10}, pos, "an empty neighbour beats a pile")
	assert.Equal(t, 1, gamemap.Distance(10, 10, pos.X, pos.Y))
}

func TestDropNearStaysInSight(t *testing.T) {
	m, _ := newMaker(t, 5, 37, 0)
	gm := m.Level().Map
	// A wall line at x=11 hides the east side of the drop point.
	for y := 1; y < gm.Height-1; y++ {
		gm.Set(11, y, gamemap.MakeWall())
	}
	for i := range 30 {
		it := object.Item{KindID: object.KindID(100 + i), TVal: object.TValFood, Number: 1}
		id := m.DropNear(&it, 0, 10, 10)
		require.NotEqual(t, ecs.NilEntity, id)
		pos := m.Level().World.Get(id, component.CPosition).(component.Position)
		assert.Less(t, pos.X, 11, "object landed behind the wall at %v", pos)
	}
}

func TestDropNearBreakage(t *testing.T) {
	m, _ := newMaker(t, 5, 41, 0)
	plain := object.Item{KindID: 3, TVal: object.TValSword, Number: 1}
	assert.Equal(t, ecs.NilEntity, m.DropNear(&plain, 100, 5, 5))
	assert.Zero(t, m.Level().World.Count())

	relic := object.Item{KindID: 3, TVal: object.TValSword, Number: 1, ArtifactID: artifact.Ringil}
	assert.NotEqual(t, ecs.NilEntity, m.DropNear(&relic, 100, 5, 5), "artifacts never break")
}

func TestDropNearMergesStacks(t *testing.T) {
	m, _ := newMaker(t, 5, 43, 0)
	potion := object.Item{KindID: 55, TVal: object.TValPotion, Number: 2}
	a := m.DropNear(&potion, 0, 4, 4)
	b := m.DropNear(&potion, 0, 4, 4)
	require.NotEqual(t, ecs.NilEntity, a)
	assert.Equal(t, a, b)
	obj := m.Level().World.Get(a, component.CObject).(component.Object)
	assert.Equal(t, 4, obj.Number)
	assert.Equal(t, 1, m.Level().World.Count())
}

func TestDropNearArtifactFallsBackToAnyFloor(t *testing.T) {
	m, _ := newMaker(t, 5, 47, 0)
	gm := gamemap.New(20, 20)
	gm.Set(15, 15, gamemap.MakeFloor())
	m.Enter(Level{Floor: m.Level().Floor, Map: gm, World: ecs.NewWorld()})

	plain := object.Item{KindID: 3, TVal: object.TValSword, Number: 1}
	assert.Equal(t, ecs.NilEntity, m.DropNear(&plain, 0, 2, 2), "plain items vanish with nowhere near to land")

	relic := object.Item{KindID: 3, TVal: object.TValSword, Number: 1, RandomArtifact: true}
	id := m.DropNear(&relic, 0, 2, 2)
	require.NotEqual(t, ecs.NilEntity, id)
	pos := m.Level().World.Get(id, component.CPosition).(component.Position)
	assert.Equal(t, component.Position{X: 15, Y: 15}, pos)
}

func TestCreateNamedArt(t *testing.T) {
	m, reg := newMaker(t, 20, 53, 0)
	require.True(t, m.CreateNamedArt(artifact.Ringil, 6, 6))
	assert.True(t, reg.IsGenerated(artifact.Ringil))
	assert.Equal(t, 7, reg.FloorID(artifact.Ringil))

	_, it := factory.ItemAt(m.Level().World, 6, 6)
	require.NotNil(t, it)
	assert.Equal(t, artifact.Ringil, it.ArtifactID)
	assert.Equal(t, reg.Def(artifact.Ringil).PVal, it.PVal)

	assert.False(t, m.CreateNamedArt(artifact.Ringil, 6, 6), "artifacts are unique")
	assert.False(t, m.CreateNamedArt(artifact.ID(999), 6, 6), "unknown artifact")
}

func TestCreateNamedArtRollsBackOnFullFloor(t *testing.T) {
	m, reg := newMaker(t, 20, 59, 1)
	require.NotEqual(t, ecs.NilEntity, m.PlaceGold(2, 2))

	assert.False(t, m.CreateNamedArt(artifact.Ringil, 10, 10))
	assert.False(t, reg.IsGenerated(artifact.Ringil), "a failed drop must release the artifact")
	assert.Zero(t, reg.FloorID(artifact.Ringil))

	// Once there is room the artifact can still be made.
	m.Enter(Level{Floor: m.Level().Floor, Map: m.Level().Map, World: ecs.NewWorld()})
	assert.True(t, m.CreateNamedArt(artifact.Ringil, 10, 10))
	assert.True(t, reg.IsGenerated(artifact.Ringil))
}

func TestCreateNamedArtRollsBackWithoutFloor(t *testing.T) {
	m, reg := newMaker(t, 20, 61, 0)
	m.Enter(Level{Floor: m.Level().Floor, Map: gamemap.New(10, 10), World: ecs.NewWorld()})

	assert.False(t, m.CreateNamedArt(artifact.Anduril, 5, 5))
	assert.False(t, reg.IsGenerated(artifact.Anduril))
}

func TestSimilar(t *testing.T) {
	arrows := object.Item{KindID: 8, TVal: object.TValArrow, Number: 20}
	potion := object.Item{KindID: 55, TVal: object.TValPotion, Number: 1}
	sword := object.Item{KindID: 3, TVal: object.TValSword, Number: 1}
	gold := object.Item{KindID: 64, TVal: object.TValGold, Number: 1}

	enchanted := arrows
	enchanted.ToH = 3
	full := potion
	full.Number = 99
	ego := arrows
	ego.EgoID = 4

	cases := []struct {
		name string
		a, b object.Item
		want bool
	}{
		{"same ammo", arrows, arrows, true},
		{"same potion", potion, potion, true},
		{"different bonus", arrows, enchanted, false},
		{"different kind", arrows, potion, false},
		{"weapons never stack", sword, sword, false},
		{"gold never stacks", gold, gold, false},
		{"stack limit", full, potion, false},
		{"ego mismatch", arrows, ego, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Similar(&tc.a, &tc.b))
		})
	}
}

func TestStockGeneratedFloor(t *testing.T) {
	m, _ := newMaker(t, 15, 67, 0)
	cfg := generate.DefaultConfig(rand.New(rand.NewSource(67)))
	gm, _, _ := generate.Generate(cfg)
	m.Enter(Level{Floor: m.Level().Floor, Map: gm, World: ecs.NewWorld()})

	spawns := generate.Populate(gm, cfg)
	objects, gold := m.Stock(spawns)
	total := len(spawns.Objects) + len(spawns.Gold)

	assert.Equal(t, objects+gold, m.Level().World.Count())
	assert.GreaterOrEqual(t, objects+gold, total-1, "only a stair grid may reject a spawn")
	assert.Len(t, m.Level().World.Query(component.CTagGold), gold)
}
