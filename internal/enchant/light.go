package enchant

import "relicforge/internal/object"

// Fuel a fresh light source starts with.
const (
	torchFuel   = 2500
	lanternFuel = 7500
)

func (e *Enchanter) light(it *object.Item, level, tier int) {
	switch it.SVal {
	case object.SValLightTorch:
		it.PVal = e.dice.RandInt1(torchFuel)
	case object.SValLightLantern:
		it.PVal = e.dice.RandInt1(lanternFuel)
	}
	e.pickEgo(it, level, tier)
}

// other charges wands and staves; everything else is left as prepped.
func (e *Enchanter) other(it *object.Item) {
	switch it.TVal {
	case object.TValWand, object.TValStaff:
		if it.PVal > 0 {
			it.PVal += e.dice.RandInt1(it.PVal)
		}
	}
}
