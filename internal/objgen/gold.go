package objgen

import "relicforge/internal/object"

// MakeGold fills it with a gold pile for the current floor. coinType picks a
// specific treasure by its sval; zero rolls one from the object level.
// It reports false when no treasure kinds are loaded.
func (m *Maker) MakeGold(it *object.Item, coinType int) bool {
	if len(m.gold) == 0 {
		return false
	}
	level := m.lv.Floor.ObjectLevel
	i := (m.dice.RandInt1(level+2)+2)/2 - 1
	if m.dice.OneIn(greatObj) {
		i += m.dice.RandInt1(level + 1)
	}
	if coinType > 0 {
		i = coinType - 1
	}
	i = min(max(i, 0), len(m.gold)-1)

	k := m.gold[i]
	it.Prep(k)
	base := k.Cost
	it.PVal = base + 8*m.dice.RandInt1(base) + m.dice.RandInt1(8)
	return true
}
