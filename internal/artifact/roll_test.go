package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relicforge/internal/object"
	"relicforge/internal/player"
	"relicforge/internal/rng"
)

func TestOutOfDepthOddsMonotone(t *testing.T) {
	t.Parallel()

	for _, factor := range []int{artifactDepthFactor, kindDepthFactor} {
		prev := OutOfDepthOdds(60, 0, factor)
		for level := 1; level <= 80; level++ {
			d := OutOfDepthOdds(60, level, factor)
			assert.LessOrEqual(t, d, prev, "level %d factor %d", level, factor)
			assert.GreaterOrEqual(t, d, 1)
			prev = d
		}
		assert.Equal(t, 1, OutOfDepthOdds(60, 60, factor))
	}
	assert.Equal(t, 40, OutOfDepthOdds(40, 20, 2))
	assert.Equal(t, 1, OutOfDepthOdds(5, 0, 0), "non-positive penalty clamps to 1")
}

func TestRollPicksLowestEligibleID(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	r := NewRoller(reg, testKinds(t), rng.Always(0))
	it := prepped(t, object.TValSword, 3)

	require.True(t, r.Roll(it, testFloor(10)))
	assert.Equal(t, Ringil, it.ArtifactID)

	reg.MarkGenerated(Ringil, 0)
	it = prepped(t, object.TValSword, 3)
	require.True(t, r.Roll(it, testFloor(10)))
	assert.Equal(t, Anduril, it.ArtifactID)

	reg.MarkGenerated(Anduril, 0)
	it = prepped(t, object.TValSword, 3)
	assert.False(t, r.Roll(it, testFloor(10)), "Grond is a quest item and must be skipped")
	assert.Zero(t, it.ArtifactID)
}

func TestRollRejections(t *testing.T) {
	t.Parallel()

	r := NewRoller(testRegistry(t), testKinds(t), rng.Always(0))

	it := prepped(t, object.TValSword, 3)
	assert.False(t, r.Roll(it, testFloor(0)), "no artifacts in town")

	it.Number = 2
	assert.False(t, r.Roll(it, testFloor(10)), "no artifact stacks")

	light := prepped(t, object.TValLight, 4)
	assert.False(t, r.Roll(light, testFloor(10)), "instant artifacts use the special roll")
}

func TestRollSkipsUnresolvableKind(t *testing.T) {
	t.Parallel()

	kinds, err := object.NewKindTable([]object.Kind{
		{ID: 9, Name: "Helm", TVal: object.TValHelm, SVal: 1},
	})
	require.NoError(t, err)
	r := NewRoller(testRegistry(t), kinds, rng.Always(0))

	it := &object.Item{KindID: 1, TVal: object.TValSword, SVal: 3, Number: 1}
	assert.False(t, r.Roll(it, testFloor(30)))
}

func TestRollUniqueness(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	d := rng.NewSeeded(99)
	roller := NewRoller(reg, testKinds(t), d)
	resolver := NewResolver(reg, d)
	seen := map[ID]int{}

	for i := range 5000 {
		it := prepped(t, object.TValSword, 3)
		f := testFloor(1 + i%100)
		if roller.Roll(it, f) || roller.RollSpecial(it, f) {
			seen[it.ArtifactID]++
			resolver.Generate(it, it.ArtifactID, &player.Player{}, f)
		}
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "artifact %d generated %d times", id, n)
	}
	assert.NotEmpty(t, seen)
}

func TestRollSpecialThemeHookShortCircuits(t *testing.T) {
	t.Parallel()

	src := rng.NewScripted(0)
	r := NewRoller(testRegistry(t), testKinds(t), rng.New(src))
	f := testFloor(50)
	f.ThemeHook = func(*object.Kind) bool { return true }

	it := prepped(t, object.TValSword, 3)
	assert.False(t, r.RollSpecial(it, f))
	assert.Zero(t, src.Draws(), "the table must not be scanned")
	assert.Zero(t, it.ArtifactID)
}

func TestRollSpecialReprepsItem(t *testing.T) {
	t.Parallel()

	r := NewRoller(testRegistry(t), testKinds(t), rng.Always(0))
	it := prepped(t, object.TValSword, 3)

	require.True(t, r.RollSpecial(it, testFloor(50)))
	assert.Equal(t, Galadriel, it.ArtifactID)
	assert.Equal(t, object.TValLight, it.TVal)
	assert.Equal(t, 4, it.SVal)
	assert.Equal(t, object.KindID(3), it.KindID)
}

func TestRollSpecialKindPenalty(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	reg.MarkGenerated(Galadriel, 0)
	// Elendil passes its own depth and rarity rolls (0, 0) and then fails the
	// base kind roll (1 of 1-in-200).
	r := NewRoller(reg, testKinds(t), rng.New(rng.NewScripted(0, 0, 1)))
	it := prepped(t, object.TValSword, 3)

	assert.False(t, r.RollSpecial(it, testFloor(20)))
	assert.Zero(t, it.ArtifactID)
}
