// Package power grants single random abilities and resistances to items.
// Each call adds exactly one flag drawn from a themed pool.
package power

import (
	"relicforge/internal/object"
	"relicforge/internal/rng"
)

var (
	elePool = []object.TrFlag{
		object.TrResAcid, object.TrResElec, object.TrResFire, object.TrResCold,
	}
	highPool = []object.TrFlag{
		object.TrResPois, object.TrResLite, object.TrResDark, object.TrResShards,
		object.TrResBlind, object.TrResConf, object.TrResSound, object.TrResNether,
		object.TrResNexus, object.TrResChaos, object.TrResDisen, object.TrResFear,
	}
	lordlyPool = []object.TrFlag{
		object.TrResPois, object.TrResLite, object.TrResDark, object.TrResShards,
		object.TrResBlind, object.TrResConf, object.TrResSound, object.TrResNether,
		object.TrResNexus, object.TrResChaos,
	}
	abilityPool = []object.TrFlag{
		object.TrLevitation, object.TrLite1, object.TrSeeInvis, object.TrWarning,
		object.TrSlowDigest, object.TrRegen, object.TrFreeAct, object.TrHoldExp,
		object.TrTelepathy, object.TrTelepathy,
	}
	// bloodSlays is indexed by a 26-sided roll; the repeated entries weight
	// the draw the way the blood-moon table does.
	bloodSlays = []object.TrFlag{
		object.TrSlayAnimal, object.TrSlayEvil, object.TrSlayUndead, object.TrSlayDemon,
		object.TrSlayOrc, object.TrSlayTroll, object.TrSlayGiant, object.TrSlayDragon,
		object.TrKillHuman, object.TrKillDragon, object.TrVorpal, object.TrImpact,
		object.TrBrandPois, object.TrBrandAcid, object.TrBrandElec, object.TrBrandFire,
		object.TrBrandCold, object.TrSlayHuman, object.TrChaotic, object.TrVampiric,
		object.TrKillUndead, object.TrKillDemon, object.TrKillOrc, object.TrKillTroll,
		object.TrKillGiant, object.TrKillAnimal,
	}
)

// Injector draws random powers from a game's dice.
type Injector struct {
	dice *rng.Dice
}

// New returns an Injector rolling with d.
func New(d *rng.Dice) *Injector {
	return &Injector{dice: d}
}

func (in *Injector) pick(it *object.Item, pool []object.TrFlag) {
	it.Flags.Set(pool[in.dice.RandInt0(len(pool))])
}

// OneSustain adds one stat sustain.
func (in *Injector) OneSustain(it *object.Item) {
	in.pick(it, object.SustainFlags[:])
}

// OneEleResistance adds one base elemental resistance.
func (in *Injector) OneEleResistance(it *object.Item) {
	in.pick(it, elePool)
}

// OneDragonEleResistance adds poison resistance one time in seven, otherwise
// a base elemental resistance.
func (in *Injector) OneDragonEleResistance(it *object.Item) {
	if in.dice.OneIn(7) {
		it.Flags.Set(object.TrResPois)
		return
	}
	in.OneEleResistance(it)
}

// OneHighResistance adds one high resistance.
func (in *Injector) OneHighResistance(it *object.Item) {
	in.pick(it, highPool)
}

// OneLordlyHighResistance adds one high resistance from the lordly pool.
func (in *Injector) OneLordlyHighResistance(it *object.Item) {
	in.pick(it, lordlyPool)
}

// OneResistance adds a base resistance one time in three, otherwise a high one.
func (in *Injector) OneResistance(it *object.Item) {
	if in.dice.OneIn(3) {
		in.OneEleResistance(it)
		return
	}
	in.OneHighResistance(it)
}

// OneAbility adds one utility ability.
func (in *Injector) OneAbility(it *object.Item) {
	in.pick(it, abilityPool)
}

// BloodMoon replaces the item's flags with base and then adds two to four
// random slays, one or two resistances and two sustain-or-resistance rolls.
func (in *Injector) BloodMoon(it *object.Item, base object.TrFlags) {
	it.Flags = base
	n := in.dice.RandInt1(2) + in.dice.RandInt1(2)
	for range n {
		it.Flags.Set(bloodSlays[in.dice.RandInt0(len(bloodSlays))])
	}
	for range in.dice.RandInt1(2) {
		in.OneResistance(it)
	}
	for range 2 {
		if tmp := in.dice.RandInt0(11); tmp < len(object.SustainFlags) {
			it.Flags.Set(object.SustainFlags[tmp])
		} else {
			in.OneResistance(it)
		}
	}
}
