// Package enchant assigns the tier-scaled bonuses of non-artifact items:
// category enchanters, ego selection and application, and random artifacts.
package enchant

import (
	"relicforge/internal/dungeon"
	"relicforge/internal/object"
	"relicforge/internal/power"
	"relicforge/internal/rng"
)

// Enchanter enchants items with one game's dice.
type Enchanter struct {
	dice   *rng.Dice
	powers *power.Injector
	egos   *object.EgoTable
}

// New returns an Enchanter choosing egos from egos.
func New(egos *object.EgoTable, d *rng.Dice) *Enchanter {
	return &Enchanter{dice: d, powers: power.New(d), egos: egos}
}

// Apply runs the enchanter for the item's category at level and power tier.
// It may pick an ego (setting EgoID) or turn the item into a random
// artifact; ego stats are applied separately by ApplyEgo.
func (e *Enchanter) Apply(it *object.Item, level, tier int) {
	switch {
	case it.IsWeapon() || it.IsAmmo():
		if tier != 0 {
			e.weapon(it, level, tier)
		}
	case it.IsArmor():
		if tier != 0 {
			e.armor(it, level, tier)
		}
	case it.TVal == object.TValRing:
		e.ring(it, level, tier)
	case it.TVal == object.TValAmulet:
		e.amulet(it, level, tier)
	case it.TVal == object.TValLight:
		e.light(it, level, tier)
	default:
		e.other(it)
	}
}

func (e *Enchanter) mBonus(max, level int) int {
	return e.dice.MBonus(max, level, dungeon.MaxDepth)
}

// spoil marks an item as broken and cursed.
func spoil(it *object.Item) {
	it.Ident.Set(object.IdentBroken)
	it.Curses.Set(object.CurseCursed)
}

// pickEgo sets an ego for great (tier 2) or awful (tier -2) items.
func (e *Enchanter) pickEgo(it *object.Item, level, tier int) {
	if tier > 1 || tier < -1 {
		it.EgoID = e.PickEgo(object.SlotFor(it.TVal), level, tier > 0)
	}
}
