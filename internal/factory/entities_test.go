package factory

import (
	"testing"

	"relicforge/assets"
	"relicforge/internal/component"
	"relicforge/internal/ecs"
	"relicforge/internal/object"

	"github.com/gdamore/tcell/v2"
)

func TestNewObjectComponents(t *testing.T) {
	w := ecs.NewWorld()
	it := object.Item{KindID: 3, TVal: object.TValSword, Number: 1}
	id := NewObject(w, it, 5, 3)

	if !w.Alive(id) {
		t.Fatal("object entity must be alive")
	}
	pos := w.Get(id, component.CPosition)
	if pos == nil {
		t.Fatal("object must have CPosition")
	}
	if p := pos.(component.Position); p.X != 5 || p.Y != 3 {
		t.Errorf("position = (%d,%d); want (5,3)", p.X, p.Y)
	}
	obj := w.Get(id, component.CObject)
	if obj == nil {
		t.Fatal("object must have CObject")
	}
	if o := obj.(component.Object); o.KindID != 3 {
		t.Errorf("kind = %d; want 3", o.KindID)
	}
	if !w.Has(id, component.CTagItem) {
		t.Error("object must have CTagItem")
	}
	if w.Has(id, component.CTagGold) {
		t.Error("a sword must not be tagged as gold")
	}
	if w.Get(id, component.CRenderable) == nil {
		t.Error("object must have CRenderable")
	}
}

func TestNewObjectGoldTagged(t *testing.T) {
	w := ecs.NewWorld()
	id := NewObject(w, object.Item{KindID: 64, TVal: object.TValGold, Number: 1, PVal: 30}, 1, 1)
	if !w.Has(id, component.CTagGold) {
		t.Fatal("gold pile must have CTagGold")
	}
}

func TestNewObjectFullWorld(t *testing.T) {
	w := ecs.NewBoundedWorld(1)
	if NewObject(w, object.Item{KindID: 1}, 0, 0) == ecs.NilEntity {
		t.Fatal("first object should fit")
	}
	if id := NewObject(w, object.Item{KindID: 1}, 0, 0); id != ecs.NilEntity {
		t.Fatalf("expected NilEntity from a full world, got %v", id)
	}
	if w.Count() != 1 {
		t.Fatalf("expected one live entity, got %d", w.Count())
	}
}

func TestRenderableByQuality(t *testing.T) {
	cursed := object.Item{TVal: object.TValRing}
	cursed.Curses.Set(object.CurseCursed)

	cases := []struct {
		name  string
		item  object.Item
		glyph string
		fg    tcell.Color
	}{
		{"plain", object.Item{TVal: object.TValSword}, assets.GlyphFor(object.TValSword), tcell.ColorWhite},
		{"fixed artifact", object.Item{TVal: object.TValLight, ArtifactID: 1}, assets.GlyphArtifact, tcell.ColorYellow},
		{"random artifact", object.Item{TVal: object.TValSword, RandomArtifact: true}, assets.GlyphArtifact, tcell.ColorYellow},
		{"ego", object.Item{TVal: object.TValHelm, EgoID: 2}, assets.GlyphFor(object.TValHelm), tcell.ColorLightSkyBlue},
		{"cursed", cursed, assets.GlyphFor(object.TValRing), tcell.ColorRed},
		{"gold", object.Item{TVal: object.TValGold}, assets.GlyphFor(object.TValGold), tcell.ColorGold},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Renderable(&tc.item)
			if r.Glyph != tc.glyph {
				t.Errorf("glyph = %q; want %q", r.Glyph, tc.glyph)
			}
			if r.FGColor != tc.fg {
				t.Errorf("fg = %v; want %v", r.FGColor, tc.fg)
			}
		})
	}
}

func TestArtifactsDrawnAboveOthers(t *testing.T) {
	relic := Renderable(&object.Item{TVal: object.TValSword, ArtifactID: 6})
	plain := Renderable(&object.Item{TVal: object.TValSword})
	gold := Renderable(&object.Item{TVal: object.TValGold})
	if relic.RenderOrder <= plain.RenderOrder || plain.RenderOrder <= gold.RenderOrder {
		t.Fatalf("render orders gold=%d plain=%d relic=%d not ascending",
			gold.RenderOrder, plain.RenderOrder, relic.RenderOrder)
	}
}

func TestItemAtAndCountAt(t *testing.T) {
	w := ecs.NewWorld()
	first := NewObject(w, object.Item{KindID: 1}, 4, 4)
	NewObject(w, object.Item{KindID: 2}, 4, 4)
	NewObject(w, object.Item{KindID: 3}, 6, 4)

	id, it := ItemAt(w, 4, 4)
	if id != first || it == nil || it.KindID != 1 {
		t.Fatalf("ItemAt(4,4) = %v %+v; want first object", id, it)
	}
	if n := CountAt(w, 4, 4); n != 2 {
		t.Errorf("CountAt(4,4) = %d; want 2", n)
	}
	if id, it := ItemAt(w, 0, 0); id != ecs.NilEntity || it != nil {
		t.Errorf("ItemAt on an empty grid = %v %+v; want nothing", id, it)
	}
}
