package objgen

import (
	"log/slog"

	"relicforge/internal/artifact"
	"relicforge/internal/component"
	"relicforge/internal/ecs"
	"relicforge/internal/factory"
	"relicforge/internal/generate"
	"relicforge/internal/magic"
	"relicforge/internal/object"
)

const (
	// dropRadius bounds the scatter search around the drop point.
	dropRadius = 3
	// dropDistance is the largest squared distance the scatter accepts.
	dropDistance = 10
	// maxPile is the most objects one grid holds.
	maxPile = 99
	// maxStack is the largest count a merged stack may reach.
	maxStack = 99
	// spreadTries bounds the random walk an artifact takes when nothing
	// near the drop point is free.
	spreadTries = 1000
)

// Droppable reports whether objects may rest on (x, y).
func (m *Maker) Droppable(x, y int) bool {
	gm := m.lv.Map
	return gm.InBounds(x, y) && gm.At(x, y).HoldsObjects()
}

func (m *Maker) occupied(x, y int) bool {
	return factory.CountAt(m.lv.World, x, y) > 0
}

// PlaceObject makes an object and puts it on the empty floor grid (x, y).
// It returns ecs.NilEntity when the grid is unusable, no object could be
// made or the floor is full.
func (m *Maker) PlaceObject(x, y int, mode magic.Mode) ecs.EntityID {
	if !m.Droppable(x, y) || m.occupied(x, y) {
		return ecs.NilEntity
	}
	var it object.Item
	if !m.MakeObject(&it, mode) {
		return ecs.NilEntity
	}
	id := factory.NewObject(m.lv.World, it, x, y)
	if id == ecs.NilEntity {
		m.lost(&it, "floor is full")
	}
	return id
}

// PlaceGold makes a gold pile and puts it on the empty floor grid (x, y).
func (m *Maker) PlaceGold(x, y int) ecs.EntityID {
	if !m.Droppable(x, y) || m.occupied(x, y) {
		return ecs.NilEntity
	}
	var it object.Item
	if !m.MakeGold(&it, 0) {
		return ecs.NilEntity
	}
	return factory.NewObject(m.lv.World, it, x, y)
}

// CreateNamedArt generates the fixed artifact id and drops it near (x, y).
// It reports false when the artifact is unknown, already exists, has no
// base kind or could not be placed; a failed placement leaves the artifact
// ungenerated.
func (m *Maker) CreateNamedArt(id artifact.ID, x, y int) bool {
	def := m.reg.Def(id)
	if def == nil || m.reg.IsGenerated(id) {
		return false
	}
	k, ok := m.kinds.Lookup(def.TVal, def.SVal)
	if !ok {
		return false
	}
	var it object.Item
	it.Prep(k)
	it.Level = def.Level
	m.resolver.Generate(&it, id, m.player, m.lv.Floor)
	return m.DropNear(&it, -1, x, y) != ecs.NilEntity
}

// DropNear puts it on the floor as close to (x, y) as it can, merging with
// a similar stack when one is in reach. Non-artifacts break with
// breakChance percent. Grids within a short radius that are in line of
// sight compete on distance and pile size; artifacts that find none wander
// further and finally land on any free floor grid. A fixed artifact that
// cannot be placed is released so it can be generated again.
func (m *Maker) DropNear(it *object.Item, breakChance, x, y int) ecs.EntityID {
	if !it.IsArtifact() && m.dice.RandInt0(100) < breakChance {
		slog.Debug("object broke", "kind", it.KindID)
		return ecs.NilEntity
	}

	gm := m.lv.Map
	bestScore, ties := -1, 0
	bx, by, found := x, y, false
	for dy := -dropRadius; dy <= dropRadius; dy++ {
		for dx := -dropRadius; dx <= dropRadius; dx++ {
			d := dy*dy + dx*dx
			if d > dropDistance {
				continue
			}
			tx, ty := x+dx, y+dy
			if !gm.InBounds(tx, ty) || !gm.LOS(x, y, tx, ty) || !m.Droppable(tx, ty) {
				continue
			}
			k := m.pileAfterDrop(it, tx, ty)
			if k > maxPile {
				continue
			}
			score := 1000 - (d + k*5)
			if score < bestScore {
				continue
			}
			if score > bestScore {
				ties = 0
			}
			ties++
			if ties >= 2 && !m.dice.OneIn(ties) {
				continue
			}
			bestScore, bx, by, found = score, tx, ty, true
		}
	}

	if !found && !it.IsArtifact() {
		return ecs.NilEntity
	}

	for i := 0; !found && i < spreadTries; i++ {
		tx, ty := m.spread(bx, 1), m.spread(by, 1)
		if !gm.InBounds(tx, ty) {
			continue
		}
		bx, by = tx, ty
		found = m.Droppable(bx, by)
	}

	if !found {
		var free [][2]int
		for ty := 1; ty < gm.Height-1; ty++ {
			for tx := 1; tx < gm.Width-1; tx++ {
				if m.Droppable(tx, ty) {
					free = append(free, [2]int{tx, ty})
				}
			}
		}
		if len(free) == 0 {
			m.lost(it, "no floor to land on")
			return ecs.NilEntity
		}
		p := free[m.dice.RandInt0(len(free))]
		bx, by = p[0], p[1]
	}

	if id := m.absorb(it, bx, by); id != ecs.NilEntity {
		return id
	}
	id := factory.NewObject(m.lv.World, *it, bx, by)
	if id == ecs.NilEntity {
		m.lost(it, "floor is full")
	}
	return id
}

// spread returns a value within d of a.
func (m *Maker) spread(a, d int) int {
	return a + m.dice.RandInt0(1+d+d) - d
}

// pileAfterDrop counts the objects (x, y) would hold if it landed there.
func (m *Maker) pileAfterDrop(it *object.Item, x, y int) int {
	w := m.lv.World
	k, merged := 0, false
	for _, id := range w.Query(component.CPosition, component.CObject) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if pos.X != x || pos.Y != y {
			continue
		}
		obj := w.Get(id, component.CObject).(component.Object)
		if Similar(&obj.Item, it) {
			merged = true
		}
		k++
	}
	if !merged {
		k++
	}
	return k
}

// absorb merges it into a similar stack on (x, y) and returns that stack.
func (m *Maker) absorb(it *object.Item, x, y int) ecs.EntityID {
	w := m.lv.World
	for _, id := range w.Query(component.CPosition, component.CObject) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if pos.X != x || pos.Y != y {
			continue
		}
		obj := w.Get(id, component.CObject).(component.Object)
		if !Similar(&obj.Item, it) {
			continue
		}
		obj.Number += it.Number
		w.Add(id, obj)
		return id
	}
	return ecs.NilEntity
}

// lost logs a finished item that never reached the floor and releases it if
// it is a fixed artifact.
func (m *Maker) lost(it *object.Item, reason string) {
	if !it.IsFixedArtifact() {
		slog.Debug("object lost", "kind", it.KindID, "reason", reason)
		return
	}
	m.reg.Release(it.ArtifactID)
	slog.Warn("fixed artifact released after failed drop",
		"artifact", m.reg.Def(it.ArtifactID).Name, "reason", reason)
}

// Similar reports whether b can merge into the stack a.
func Similar(a, b *object.Item) bool {
	if a.KindID != b.KindID || a.TVal == object.TValGold {
		return false
	}
	if a.IsArtifact() || b.IsArtifact() || a.EgoID != b.EgoID {
		return false
	}
	if a.IsWearable() && !a.IsAmmo() {
		return false
	}
	if a.ToH != b.ToH || a.ToD != b.ToD || a.ToA != b.ToA || a.PVal != b.PVal {
		return false
	}
	if a.Flags != b.Flags || a.Curses != b.Curses || a.Ident != b.Ident {
		return false
	}
	return a.Number+b.Number <= maxStack
}

// Stock places an object or gold pile on every spawn point and returns how
// many of each landed.
func (m *Maker) Stock(spawns generate.PopulateResult) (objects, gold int) {
	for _, p := range spawns.Objects {
		if m.PlaceObject(p.X, p.Y, 0) != ecs.NilEntity {
			objects++
		}
	}
	for _, p := range spawns.Gold {
		if m.PlaceGold(p.X, p.Y) != ecs.NilEntity {
			gold++
		}
	}
	return objects, gold
}
