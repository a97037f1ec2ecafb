package artifact

import (
	"relicforge/internal/curse"
	"relicforge/internal/object"
	"relicforge/internal/player"
)

// boost collects the extra rolls an artifact earns while it is stamped.
type boost struct {
	power      bool
	resistance bool
}

// special is the per-artifact exception run after the template is copied.
type special func(r *Resolver, it *object.Item, def *Def, p *player.Player) boost

var specials = map[ID]special{
	Terror:         terrorMask,
	Muramasa:       muramasa,
	Robinton:       robinton,
	Xiaolong:       xiaolong,
	BloodyMoon:     bloodyMoon,
	HeavenlyMaiden: heavenlyMaiden,
	Milim:          milim,
}

// terrorMask rewards the four fighting classes and curses everyone else.
func terrorMask(r *Resolver, it *object.Item, _ *Def, p *player.Player) boost {
	switch p.Class {
	case player.Warrior, player.Archer, player.Cavalry, player.Berserker:
		return boost{power: true, resistance: true}
	}
	it.Flags.Set(object.TrAggravate)
	it.Flags.Set(object.TrTyCurse)
	it.Curses.Set(object.CurseCursed)
	it.Curses.Set(object.CurseHeavy)
	it.Curses.Set(curse.Random(curse.Heavy, it, r.dice))
	return boost{}
}

func muramasa(_ *Resolver, it *object.Item, _ *Def, p *player.Player) boost {
	if p.Class != player.Samurai {
		it.Flags.Set(object.TrNoMagic)
		it.Curses.Set(object.CurseHeavy)
	}
	return boost{}
}

func robinton(_ *Resolver, it *object.Item, _ *Def, p *player.Player) boost {
	if p.Class == player.Bard {
		it.Flags.Set(object.TrDecMana)
	}
	return boost{}
}

func xiaolong(_ *Resolver, it *object.Item, _ *Def, p *player.Player) boost {
	if p.Class == player.Monk {
		it.Flags.Set(object.TrBlows)
	}
	return boost{}
}

func bloodyMoon(r *Resolver, it *object.Item, def *Def, _ *player.Player) boost {
	r.powers.BloodMoon(it, def.Flags)
	return boost{}
}

func heavenlyMaiden(_ *Resolver, it *object.Item, _ *Def, p *player.Player) boost {
	if p.Sex != player.Female {
		it.Flags.Set(object.TrAggravate)
	}
	return boost{}
}

func milim(_ *Resolver, it *object.Item, _ *Def, p *player.Player) boost {
	if p.Personality == player.Sexy {
		it.PVal = 3
		for _, f := range object.StatFlags {
			it.Flags.Set(f)
		}
	}
	return boost{}
}
