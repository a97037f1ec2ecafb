package enchant

import (
	"fmt"

	"relicforge/internal/curse"
	"relicforge/internal/object"
)

const maxEgoDice = 9

// PickEgo chooses an ego for slot at level, weighted by 255/rarity. good
// selects from the useful egos, otherwise from the worthless ones. It
// returns 0 when nothing fits.
func (e *Enchanter) PickEgo(slot object.Slot, level int, good bool) object.EgoID {
	type candidate struct {
		id     object.EgoID
		weight int
	}
	var (
		pool  []candidate
		total int
	)
	for _, eg := range e.egos.All() {
		if eg.Slot != slot || eg.Rarity <= 0 || eg.Level > level {
			continue
		}
		if good == eg.Worthless() {
			continue
		}
		w := 255 / eg.Rarity
		pool = append(pool, candidate{eg.ID, w})
		total += w
	}
	if total == 0 {
		return 0
	}
	v := e.dice.RandInt0(total)
	for _, c := range pool {
		v -= c.weight
		if v < 0 {
			return c.id
		}
	}
	return pool[len(pool)-1].id
}

// ApplyEgo applies the ego named by it.EgoID: flags, curses, extra powers,
// bonus ranges and activation. Cursed or broken items take the ranges as
// penalties.
func (e *Enchanter) ApplyEgo(it *object.Item) {
	eg := e.egos.Get(it.EgoID)
	if eg == nil {
		panic(fmt.Sprintf("enchant: apply unknown ego %d", it.EgoID))
	}
	it.Flags.Union(eg.Flags)
	if eg.Cost == 0 {
		it.Ident.Set(object.IdentBroken)
	}
	curse.Apply(it, eg.Gen, e.dice)
	e.egoHints(it, eg.Gen)

	if it.IsCursed() || it.IsBroken() {
		it.ToH -= e.penalty(eg.MaxToH)
		it.ToD -= e.penalty(eg.MaxToD)
		it.ToA -= e.penalty(eg.MaxToA)
		it.PVal -= e.penalty(eg.MaxPVal)
	} else {
		it.ToH += e.dice.RandRange(eg.MinToH, eg.MaxToH)
		it.ToD += e.dice.RandRange(eg.MinToD, eg.MaxToD)
		it.ToA += e.dice.RandRange(eg.MinToA, eg.MaxToA)
		if eg.MaxPVal > 0 {
			it.PVal += e.dice.RandRange(max(eg.MinPVal, 1), eg.MaxPVal)
		}
	}
	if eg.Activation != 0 {
		it.ActivationID = eg.Activation
		it.Flags.Set(object.TrActivate)
	}
}

func (e *Enchanter) penalty(magnitude int) int {
	if magnitude <= 0 {
		return 0
	}
	return e.dice.RandInt1(magnitude)
}

func (e *Enchanter) egoHints(it *object.Item, gen object.GenFlags) {
	if gen.Has(object.GenOneSustain) {
		e.powers.OneSustain(it)
	}
	if gen.Has(object.GenXtraPower) {
		e.powers.OneAbility(it)
	}
	if gen.Has(object.GenXtraHRes) {
		e.powers.OneHighResistance(it)
	}
	if gen.Has(object.GenXtraERes) {
		e.powers.OneEleResistance(it)
	}
	if gen.Has(object.GenXtraDRes) {
		e.powers.OneDragonEleResistance(it)
	}
	if gen.Has(object.GenXtraLRes) {
		e.powers.OneLordlyHighResistance(it)
	}
	if gen.Has(object.GenXtraRes) {
		e.powers.OneResistance(it)
	}
	if gen.Has(object.GenXtraDice) {
		for it.DD < maxEgoDice && e.dice.OneIn(it.DD) {
			it.DD++
		}
	}
}
