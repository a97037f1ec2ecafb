// Package magic decides the power tier of a freshly prepped item and drives
// the rest of its enchantment: fixed-artifact rolls, the category
// enchanter, ego application and base-kind curses.
package magic

import (
	"fmt"

	"relicforge/internal/artifact"
	"relicforge/internal/curse"
	"relicforge/internal/dungeon"
	"relicforge/internal/enchant"
	"relicforge/internal/object"
	"relicforge/internal/player"
	"relicforge/internal/rng"
)

// Mode biases or forces the outcome of Apply.
type Mode uint8

const (
	// Good forces at least tier 1.
	Good Mode = 1 << iota
	// Great forces at least tier 2 and four artifact rolls.
	Great
	// Special forces tier 3.
	Special
	// Cursed flips the tier negative.
	Cursed
	// NoFixedArt disables fixed-artifact rolls.
	NoFixedArt
)

func (m Mode) Has(f Mode) bool { return m&f != 0 }

// Tier bounds.
const (
	MinTier = -2
	MaxTier = 3
)

const (
	luckGood  = 5
	luckGreat = 2
	// luckyRetry is the 1-in-n extra artifact roll granted by good luck.
	luckyRetry = 77
)

// Result reports what Apply decided.
type Result struct {
	Tier     int
	Rolls    int
	Artifact artifact.ID
}

// Applier enchants items for one game.
type Applier struct {
	dice      *rng.Dice
	kinds     *object.KindTable
	player    *player.Player
	roller    *artifact.Roller
	resolver  *artifact.Resolver
	enchanter *enchant.Enchanter
}

// New returns an Applier for the player p. All randomness is drawn from d.
func New(kinds *object.KindTable, egos *object.EgoTable, reg *artifact.Registry, p *player.Player, d *rng.Dice) *Applier {
	return &Applier{
		dice:      d,
		kinds:     kinds,
		player:    p,
		roller:    artifact.NewRoller(reg, kinds, d),
		resolver:  artifact.NewResolver(reg, d),
		enchanter: enchant.New(egos, d),
	}
}

// Roller exposes the artifact roll engine for callers that try instant
// artifacts before picking a kind.
func (a *Applier) Roller() *artifact.Roller { return a.roller }

// Chances returns the percentage chances of a good and a great item at
// level in dungeon def for p.
func Chances(def *dungeon.Def, p *player.Player, level int) (good, great int) {
	good = level + 10
	if good > def.ObjGood {
		good = def.ObjGood
	}
	great = good * 2 / 3
	if !p.IsMunchkin() && great > def.ObjGreat {
		great = def.ObjGreat
	}
	switch {
	case p.HasGoodLuck():
		good += luckGood
		great += luckGreat
	case p.HasBadLuck():
		good -= luckGood
		great -= luckGreat
	}
	return good, great
}

// RollTier draws a power tier. All four chance rolls are drawn whatever the
// mode, so for a given stream a stronger mode never yields a lower tier.
func (a *Applier) RollTier(good, great int, mode Mode) int {
	goodRoll := a.dice.Magik(good)
	greatRoll := a.dice.Magik(great)
	badRoll := a.dice.Magik(good)
	awfulRoll := a.dice.Magik(great)

	if mode.Has(Special) {
		mode |= Great
	}
	if mode.Has(Great) {
		mode |= Good
	}

	tier := 0
	switch {
	case mode.Has(Good) || goodRoll:
		tier = 1
		if mode.Has(Great) || greatRoll {
			tier = 2
			if mode.Has(Special) {
				tier = 3
			}
		}
	case badRoll:
		tier = -1
		if awfulRoll {
			tier = -2
		}
	}

	if mode.Has(Cursed) {
		if tier > 0 {
			tier = -tier
		} else {
			tier--
		}
	}
	return max(tier, MinTier)
}

// ArtifactRolls returns how many standard artifact rolls an item of tier
// gets.
func ArtifactRolls(it *object.Item, tier int, mode Mode) int {
	if mode.Has(NoFixedArt) || it.IsFixedArtifact() {
		return 0
	}
	if mode.Has(Great) || mode.Has(Special) {
		return 4
	}
	if tier >= 2 {
		return 1
	}
	return 0
}

// Apply enchants it, generated at level on floor f. An item that already
// carries a fixed artifact ID is finalized as that artifact.
func (a *Applier) Apply(it *object.Item, f *dungeon.Floor, level int, mode Mode) Result {
	level = dungeon.ClampLevel(level)
	if a.player.IsMunchkin() {
		level = dungeon.ClampLevel(level + a.dice.RandInt0(a.player.Level/2+10))
	}
	it.Level = level

	good, great := Chances(f.Dungeon, a.player, level)
	res := Result{Tier: a.RollTier(good, great, mode)}
	res.Rolls = ArtifactRolls(it, res.Tier, mode)

	for range res.Rolls {
		if a.roller.Roll(it, f) {
			break
		}
		if a.player.Mutations.Has(player.GoodLuck) && a.dice.OneIn(luckyRetry) {
			if a.roller.Roll(it, f) {
				break
			}
		}
	}

	if it.IsFixedArtifact() {
		a.resolver.Generate(it, it.ArtifactID, a.player, f)
		res.Artifact = it.ArtifactID
		return res
	}

	a.enchanter.Apply(it, level, res.Tier)

	k := a.kinds.Get(it.KindID)
	switch {
	case it.RandomArtifact:
	case it.IsEgo():
		a.enchanter.ApplyEgo(it)
	case k != nil:
		if k.Cost == 0 {
			it.Ident.Set(object.IdentBroken)
		}
		curse.Apply(it, k.Gen, a.dice)
	}

	if err := it.Validate(); err != nil {
		panic(fmt.Sprintf("magic: %v", err))
	}
	return res
}
