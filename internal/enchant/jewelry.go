package enchant

import "relicforge/internal/object"

func (e *Enchanter) ring(it *object.Item, level, tier int) {
	switch it.SVal {
	case object.SValRingStrength:
		it.PVal = 1 + e.mBonus(5, level)
		if tier < 0 {
			spoil(it)
			it.PVal = -it.PVal
		}
	case object.SValRingSpeed:
		it.PVal = e.dice.RandInt1(5) + e.mBonus(5, level)
		for e.dice.RandInt0(100) < 50 {
			it.PVal++
		}
		if tier < 0 {
			spoil(it)
			it.PVal = -it.PVal
		}
	case object.SValRingProtection:
		it.ToA = 5 + e.dice.RandInt1(8) + e.mBonus(10, level)
		if tier < 0 {
			spoil(it)
			it.ToA = -it.ToA
		}
	case object.SValRingDamage:
		it.ToD = 1 + e.dice.RandInt1(5) + e.mBonus(16, level)
		if tier < 0 {
			spoil(it)
			it.ToD = -it.ToD
		}
	case object.SValRingAccuracy:
		it.ToH = 1 + e.dice.RandInt1(5) + e.mBonus(16, level)
		if tier < 0 {
			spoil(it)
			it.ToH = -it.ToH
		}
	case object.SValRingTeleport:
		it.Curses.Set(object.CurseTeleport)
	}

	if tier > 2 && !it.IsCursed() {
		e.RandomArtifact(it, level)
	}
}

func (e *Enchanter) amulet(it *object.Item, level, tier int) {
	switch it.SVal {
	case object.SValAmuletWisdom:
		it.PVal = 1 + e.mBonus(5, level)
		if tier < 0 {
			spoil(it)
			it.PVal = -it.PVal
		}
	case object.SValAmuletDoom:
		spoil(it)
		it.PVal = -(e.dice.RandInt1(5) + e.mBonus(5, level))
		it.ToA = -(e.dice.RandInt1(5) + e.mBonus(5, level))
	}

	if tier > 2 && !it.IsCursed() {
		e.RandomArtifact(it, level)
	}
}
