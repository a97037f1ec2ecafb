// Package factory builds floor entities from generated items.
package factory

import (
	"relicforge/assets"
	"relicforge/internal/component"
	"relicforge/internal/ecs"
	"relicforge/internal/object"

	"github.com/gdamore/tcell/v2"
)

// Render orders, lowest drawn first.
const (
	orderGold   = 1
	orderObject = 2
	orderRelic  = 3
)

// NewObject creates a floor entity holding it at (x, y). It returns
// ecs.NilEntity when the world has no room left.
func NewObject(w *ecs.World, it object.Item, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	if id == ecs.NilEntity {
		return ecs.NilEntity
	}
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, Renderable(&it))
	w.Add(id, component.Object{Item: it})
	w.Add(id, component.TagItem{})
	if it.TVal == object.TValGold {
		w.Add(id, component.TagGold{})
	}
	return id
}

// Renderable picks the glyph and colour an item is drawn with: artifacts
// stand out, egos are tinted and cursed items are red.
func Renderable(it *object.Item) component.Renderable {
	r := component.Renderable{
		Glyph:       assets.GlyphFor(it.TVal),
		FGColor:     tcell.ColorWhite,
		BGColor:     tcell.ColorDefault,
		RenderOrder: orderObject,
	}
	switch {
	case it.TVal == object.TValGold:
		r.FGColor = tcell.ColorGold
		r.RenderOrder = orderGold
	case it.IsArtifact():
		r.Glyph = assets.GlyphArtifact
		r.FGColor = tcell.ColorYellow
		r.RenderOrder = orderRelic
	case it.IsCursed():
		r.FGColor = tcell.ColorRed
	case it.IsEgo():
		r.FGColor = tcell.ColorLightSkyBlue
	}
	return r
}

// ItemAt returns the first floor object at (x, y) in creation order, with a
// copy of its item.
func ItemAt(w *ecs.World, x, y int) (ecs.EntityID, *object.Item) {
	for _, id := range w.Query(component.CPosition, component.CObject) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if pos.X != x || pos.Y != y {
			continue
		}
		obj := w.Get(id, component.CObject).(component.Object)
		return id, &obj.Item
	}
	return ecs.NilEntity, nil
}

// CountAt returns how many floor objects share (x, y).
func CountAt(w *ecs.World, x, y int) int {
	n := 0
	for _, id := range w.Query(component.CPosition, component.CObject) {
		if pos := w.Get(id, component.CPosition).(component.Position); pos.X == x && pos.Y == y {
			n++
		}
	}
	return n
}
