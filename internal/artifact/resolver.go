package artifact

import (
	"fmt"
	"log/slog"

	"relicforge/internal/curse"
	"relicforge/internal/dungeon"
	"relicforge/internal/object"
	"relicforge/internal/player"
	"relicforge/internal/power"
	"relicforge/internal/rng"
)

// maxDiceCount caps the XTRA_DICE growth of an artifact's damage dice.
const maxDiceCount = 9

// Resolver stamps fixed artifacts onto items.
type Resolver struct {
	reg    *Registry
	dice   *rng.Dice
	powers *power.Injector
}

// NewResolver returns a Resolver for the artifacts in reg.
func NewResolver(reg *Registry, d *rng.Dice) *Resolver {
	return &Resolver{reg: reg, dice: d, powers: power.New(d)}
}

// Registry returns the registry the resolver stamps from.
func (r *Resolver) Registry() *Registry { return r.reg }

// Generate finalizes a rolled or named artifact: it marks id generated,
// remembering the floor when the world is in progress, and stamps the
// template onto it.
func (r *Resolver) Generate(it *object.Item, id ID, p *player.Player, f *dungeon.Floor) {
	floorID := 0
	if f != nil && f.InProgress {
		floorID = f.FloorID
	}
	r.reg.MarkGenerated(id, floorID)
	r.Apply(it, id, p)
	slog.Debug("fixed artifact generated",
		"artifact", r.reg.Def(id).Name,
		"id", id,
		"floor", floorID,
	)
}

// Apply copies the definition of id onto it, adds the artifact's curses and
// runs its special case and generation hints. It does not touch the
// registry.
func (r *Resolver) Apply(it *object.Item, id ID, p *player.Player) {
	def := r.reg.Def(id)
	if def == nil {
		panic(fmt.Sprintf("artifact: apply unknown artifact %d", id))
	}
	it.ArtifactID = id
	it.PVal = def.PVal
	it.AC = def.AC
	it.DD = def.DD
	it.DS = def.DS
	it.ToH = def.ToH
	it.ToD = def.ToD
	it.ToA = def.ToA
	it.Weight = def.Weight
	it.ActivationID = def.Activation
	it.Flags.Union(def.Flags)
	if def.Cost == 0 {
		it.Ident.Set(object.IdentBroken)
	}

	curse.Apply(it, def.Gen, r.dice)

	var b boost
	if fn, ok := specials[id]; ok {
		b = fn(r, it, def, p)
	}
	r.applyHints(it, def, b)
}

func (r *Resolver) applyHints(it *object.Item, def *Def, b boost) {
	if def.Gen.Has(object.GenXtraPower) {
		b.power = true
	}
	if def.Gen.Has(object.GenXtraHRes) {
		b.resistance = true
	}
	if def.Gen.Has(object.GenXtraResOrPower) {
		if r.dice.OneIn(2) {
			b.resistance = true
		} else {
			b.power = true
		}
	}
	if b.power {
		r.powers.OneAbility(it)
	}
	if b.resistance {
		r.powers.OneHighResistance(it)
	}
	if def.Gen.Has(object.GenXtraDice) {
		for it.DD < maxDiceCount && r.dice.OneIn(2) {
			it.DD++
		}
	}
}
