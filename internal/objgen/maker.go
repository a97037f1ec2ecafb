// Package objgen creates objects and gold for a floor and puts them on it.
//
// A Maker belongs to one game. It picks a base kind from the allocation
// table, runs the item through the magic applier and drops the result near a
// grid, rolling back fixed artifacts whose drop fails.
package objgen

import (
	"sort"

	"relicforge/internal/artifact"
	"relicforge/internal/dungeon"
	"relicforge/internal/ecs"
	"relicforge/internal/gamemap"
	"relicforge/internal/magic"
	"relicforge/internal/object"
	"relicforge/internal/player"
	"relicforge/internal/rng"
)

const (
	// greatObj is the 1-in-n chance of an out-of-depth kind pick.
	greatObj = 20
	// specialGood and specialNormal are the 1-in-n chances of trying an
	// instant artifact before picking a kind.
	specialGood   = 10
	specialNormal = 1000
	// goodLevelBoost raises the kind level of Good requests.
	goodLevelBoost = 10
)

// Level is the floor a Maker currently stocks.
type Level struct {
	Floor *dungeon.Floor
	Map   *gamemap.GameMap
	World *ecs.World
}

type allocEntry struct {
	level  int
	weight int
	kind   *object.Kind
}

// Maker creates and places objects for one game.
type Maker struct {
	dice     *rng.Dice
	kinds    *object.KindTable
	reg      *artifact.Registry
	player   *player.Player
	applier  *magic.Applier
	resolver *artifact.Resolver
	table    []allocEntry
	gold     []*object.Kind
	lv       Level
}

// NewMaker returns a Maker drawing kinds from kinds and finishing items
// through applier. reg must be the registry applier was built with.
func NewMaker(kinds *object.KindTable, reg *artifact.Registry, applier *magic.Applier, p *player.Player, d *rng.Dice) *Maker {
	m := &Maker{
		dice:     d,
		kinds:    kinds,
		reg:      reg,
		player:   p,
		applier:  applier,
		resolver: artifact.NewResolver(reg, d),
	}
	all := kinds.All()
	for i := range all {
		k := kinds.Get(all[i].ID)
		if k.TVal == object.TValGold {
			m.gold = append(m.gold, k)
			continue
		}
		for _, a := range k.Alloc {
			if a.Chance <= 0 {
				continue
			}
			m.table = append(m.table, allocEntry{level: a.Level, weight: max(100/a.Chance, 1), kind: k})
		}
	}
	sort.SliceStable(m.table, func(i, j int) bool { return m.table[i].level < m.table[j].level })
	sort.SliceStable(m.gold, func(i, j int) bool { return m.gold[i].SVal < m.gold[j].SVal })
	return m
}

// Enter points the maker at a new floor.
func (m *Maker) Enter(lv Level) { m.lv = lv }

// Level returns the floor the maker currently stocks.
func (m *Maker) Level() Level { return m.lv }

// MakeObject fills it with a new object for the current floor. It first
// tries an instant artifact, then picks a base kind and enchants it. It
// reports false when no kind could be picked.
func (m *Maker) MakeObject(it *object.Item, mode magic.Mode) bool {
	f := m.lv.Floor
	prob, base := specialNormal, f.ObjectLevel
	if mode.Has(magic.Good) {
		prob, base = specialGood, f.ObjectLevel+goodLevelBoost
	}

	if !m.dice.OneIn(prob) || !m.applier.Roller().RollSpecial(it, f) {
		hook := f.ThemeHook
		if mode.Has(magic.Good) && hook == nil {
			hook = KindIsGood
		}
		k := m.pickKind(base, hook)
		if k == nil {
			return false
		}
		it.Prep(k)
	}

	m.applier.Apply(it, f, f.ObjectLevel, mode)

	if it.IsAmmo() && !it.IsFixedArtifact() {
		it.Number = m.dice.Roll(6, 7)
	}
	return true
}

// pickKind draws a base kind native to level or shallower, weighted by
// allocation. One pick in greatObj is boosted out of depth, and two extra
// draws may replace the pick with a deeper kind.
func (m *Maker) pickKind(level int, hook func(*object.Kind) bool) *object.Kind {
	level = dungeon.ClampLevel(level)
	if level > 0 && m.dice.OneIn(greatObj) {
		level = dungeon.ClampLevel(1 + level*dungeon.MaxDepth/m.dice.RandInt1(dungeon.MaxDepth))
	}

	total := 0
	var eligible []allocEntry
	for _, e := range m.table {
		if e.level > level {
			break
		}
		if hook != nil && !hook(e.kind) {
			continue
		}
		eligible = append(eligible, e)
		total += e.weight
	}
	if total <= 0 {
		return nil
	}

	i := pick(eligible, m.dice.RandInt0(total))
	for _, p := range [...]int{60, 10} {
		if m.dice.RandInt0(100) < p {
			j := pick(eligible, m.dice.RandInt0(total))
			if eligible[j].level > eligible[i].level {
				i = j
			}
		}
	}
	return eligible[i].kind
}

func pick(entries []allocEntry, value int) int {
	for i, e := range entries {
		if value < e.weight {
			return i
		}
		value -= e.weight
	}
	return len(entries) - 1
}

// KindIsGood is the theme used for Good requests: weapons and armour with
// no built-in penalty, and all ammunition.
func KindIsGood(k *object.Kind) bool {
	switch k.TVal {
	case object.TValBoots, object.TValGloves, object.TValHelm, object.TValCrown,
		object.TValShield, object.TValCloak, object.TValSoftArmor,
		object.TValHardArmor, object.TValDragArmor:
		return k.ToA >= 0
	case object.TValBow, object.TValDigging, object.TValHafted,
		object.TValPolearm, object.TValSword:
		return k.ToH >= 0 && k.ToD >= 0
	case object.TValShot, object.TValArrow, object.TValBolt:
		return true
	}
	return false
}
