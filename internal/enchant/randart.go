package enchant

import (
	"strings"

	"relicforge/internal/object"
)

var nameSyllables = []string{
	"ang", "bar", "cal", "dor", "eth", "fin", "gal", "hel", "ith", "kal",
	"lor", "mor", "nar", "oth", "ril", "sul", "tha", "ur", "val", "wen",
}

// RandomArtifact turns it into a random artifact with two to four extra
// powers and a generated name.
func (e *Enchanter) RandomArtifact(it *object.Item, level int) {
	it.RandomArtifact = true
	it.EgoID = 0

	powers := 2 + e.dice.RandInt0(3)
	for range powers {
		switch e.dice.RandInt0(5) {
		case 0:
			e.powers.OneAbility(it)
		case 1:
			e.powers.OneHighResistance(it)
		case 2:
			e.powers.OneEleResistance(it)
		case 3:
			e.powers.OneSustain(it)
		default:
			it.Flags.Set(object.StatFlags[e.dice.RandInt0(len(object.StatFlags))])
		}
	}
	if it.PVal <= 0 && it.Flags.HasAny(object.StatFlags[:]...) {
		it.PVal = e.dice.RandInt1(4)
	}

	switch {
	case it.IsWeapon() || it.IsAmmo():
		it.ToH += e.mBonus(10, level)
		it.ToD += e.mBonus(10, level)
	case it.IsArmor():
		it.ToA += e.mBonus(15, level)
	}
	it.RandomName = e.randomName()
}

func (e *Enchanter) randomName() string {
	var b strings.Builder
	n := 2 + e.dice.RandInt0(2)
	for i := range n {
		s := nameSyllables[e.dice.RandInt0(len(nameSyllables))]
		if i == 0 {
			s = strings.ToUpper(s[:1]) + s[1:]
		}
		b.WriteString(s)
	}
	return "'" + b.String() + "'"
}
