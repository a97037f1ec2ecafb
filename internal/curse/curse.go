// Package curse turns generation flags into concrete curses on an item.
package curse

import (
	"relicforge/internal/flagset"
	"relicforge/internal/object"
	"relicforge/internal/rng"
)

// Severity of a random curse pick.
const (
	Light  = 0
	Medium = 1
	Heavy  = 2
)

var (
	heavyMask   = flagset.Of(object.CurseTy, object.CurseAggravate, object.CurseDrainExp, object.CurseAddHeavy, object.CurseCallDemon, object.CurseCallDragon, object.CurseCallUndead, object.CurseTeleport)
	specialMask = flagset.Of(object.CurseTy, object.CurseAggravate)
)

// Apply ORs the curses named by gen into it. The fixed curse bits are
// idempotent: applying the same gen twice sets nothing new. Each random
// curse tier draws a fresh curse from d, so a second call only repeats the
// first when d replays the same values.
func Apply(it *object.Item, gen object.GenFlags, d *rng.Dice) {
	if gen.Has(object.GenCursed) {
		it.Curses.Set(object.CurseCursed)
	}
	if gen.Has(object.GenHeavyCurse) {
		it.Curses.Set(object.CurseHeavy)
	}
	if gen.Has(object.GenPermaCurse) {
		it.Curses.Set(object.CursePerma)
	}
	if gen.Has(object.GenRandomCurse0) {
		it.Curses.Set(Random(Light, it, d))
	}
	if gen.Has(object.GenRandomCurse1) {
		it.Curses.Set(Random(Medium, it, d))
	}
	if gen.Has(object.GenRandomCurse2) {
		it.Curses.Set(Random(Heavy, it, d))
	}
}

// Random picks one curse of the given severity suitable for it.
// Heavy returns only heavy curses, Medium anything but the special curses,
// Light anything but the heavy curses.
func Random(severity int, it *object.Item, d *rng.Dice) object.CurseFlag {
	pool := candidates(severity, it)
	return pool[d.RandInt0(len(pool))]
}

func candidates(severity int, it *object.Item) []object.CurseFlag {
	var pool []object.CurseFlag
	for c := object.FirstRandomCurse; int(c) < object.CurseFlagCount; c++ {
		switch severity {
		case Heavy:
			if !heavyMask.Has(c) {
				continue
			}
		case Medium:
			if specialMask.Has(c) {
				continue
			}
		default:
			if heavyMask.Has(c) {
				continue
			}
		}
		if c == object.CurseLowMelee && !it.IsWeapon() {
			continue
		}
		if c == object.CurseLowAC && !it.IsArmor() {
			continue
		}
		pool = append(pool, c)
	}
	return pool
}
