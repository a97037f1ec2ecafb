package artifact

import (
	"relicforge/internal/dungeon"
	"relicforge/internal/object"
	"relicforge/internal/rng"
)

// Depth penalty factors for artifacts found above their native level.
const (
	artifactDepthFactor = 2
	kindDepthFactor     = 5
)

// KindLookup resolves the base kind an artifact is built on.
type KindLookup interface {
	Lookup(tv object.TVal, sv int) (*object.Kind, bool)
}

// Roller decides whether an item turns into a fixed artifact. A successful
// roll only assigns the artifact ID; the caller finalizes it through
// Resolver.Generate before the item is used.
type Roller struct {
	reg   *Registry
	kinds KindLookup
	dice  *rng.Dice
}

// NewRoller returns a Roller over the artifacts in reg.
func NewRoller(reg *Registry, kinds KindLookup, d *rng.Dice) *Roller {
	return &Roller{reg: reg, kinds: kinds, dice: d}
}

// OutOfDepthOdds returns d for the 1-in-d roll an artifact or kind of
// native level must pass at level. It is 1 once level reaches native.
func OutOfDepthOdds(native, level, factor int) int {
	if native <= level {
		return 1
	}
	d := (native - level) * factor
	if d < 1 {
		return 1
	}
	return d
}

// Roll tries to turn it into a standard fixed artifact of the same base kind.
// Candidates are tried in ascending ID order and the first to pass both its
// depth and rarity rolls wins.
func (r *Roller) Roll(it *object.Item, f *dungeon.Floor) bool {
	if f.InTown() || it.Number != 1 {
		return false
	}
	for _, id := range r.reg.IDs() {
		def := r.reg.Def(id)
		if r.reg.IsGenerated(id) || def.Gen.HasAny(object.GenQuestItem, object.GenInstaArt) {
			continue
		}
		if def.TVal != it.TVal || def.SVal != it.SVal {
			continue
		}
		if _, ok := r.kinds.Lookup(def.TVal, def.SVal); !ok {
			continue
		}
		if !r.dice.OneIn(OutOfDepthOdds(def.Level, f.DunLevel, artifactDepthFactor)) {
			continue
		}
		if !r.dice.OneIn(def.Rarity) {
			continue
		}
		it.ArtifactID = id
		return true
	}
	return false
}

// RollSpecial tries to replace it with an instant artifact. It never scans
// while a themed-object restriction is active. On success the item is
// re-prepped from the artifact's base kind.
func (r *Roller) RollSpecial(it *object.Item, f *dungeon.Floor) bool {
	if f.InTown() || f.ThemeHook != nil {
		return false
	}
	for _, id := range r.reg.IDs() {
		def := r.reg.Def(id)
		if !def.Gen.Has(object.GenInstaArt) || def.Gen.Has(object.GenQuestItem) || r.reg.IsGenerated(id) {
			continue
		}
		if !r.dice.OneIn(OutOfDepthOdds(def.Level, f.ObjectLevel, artifactDepthFactor)) {
			continue
		}
		if !r.dice.OneIn(def.Rarity) {
			continue
		}
		k, ok := r.kinds.Lookup(def.TVal, def.SVal)
		if !ok {
			continue
		}
		if !r.dice.OneIn(OutOfDepthOdds(k.Level, f.ObjectLevel, kindDepthFactor)) {
			continue
		}
		it.Prep(k)
		it.ArtifactID = id
		return true
	}
	return false
}
