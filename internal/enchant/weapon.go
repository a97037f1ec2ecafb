package enchant

import "relicforge/internal/object"

func (e *Enchanter) weapon(it *object.Item, level, tier int) {
	toh1 := e.dice.RandInt1(5) + e.mBonus(5, level)
	tod1 := e.dice.RandInt1(5) + e.mBonus(5, level)
	toh2 := e.mBonus(10, level)
	tod2 := e.mBonus(10, level)
	if it.IsAmmo() {
		toh2 = (toh2 + 1) / 2
		tod2 = (tod2 + 1) / 2
	}

	switch {
	case tier > 0:
		it.ToH += toh1
		it.ToD += tod1
		if tier > 1 {
			it.ToH += toh2
			it.ToD += tod2
		}
	case tier < 0:
		it.ToH -= toh1
		it.ToD -= tod1
		if tier < -1 {
			it.ToH -= toh2
			it.ToD -= tod2
		}
		if it.ToH+it.ToD < 0 {
			it.Curses.Set(object.CurseCursed)
		}
	}

	if tier > 2 {
		e.RandomArtifact(it, level)
		return
	}
	e.pickEgo(it, level, tier)
}

func (e *Enchanter) armor(it *object.Item, level, tier int) {
	toa1 := e.dice.RandInt1(5) + e.mBonus(5, level)
	toa2 := e.mBonus(10, level)

	switch {
	case tier > 0:
		it.ToA += toa1
		if tier > 1 {
			it.ToA += toa2
		}
	case tier < 0:
		it.ToA -= toa1
		if tier < -1 {
			it.ToA -= toa2
		}
		if it.ToA < 0 {
			it.Curses.Set(object.CurseCursed)
		}
	}

	if tier > 2 {
		e.RandomArtifact(it, level)
		return
	}
	e.pickEgo(it, level, tier)
}
