// Package render draws a floor, the objects lying on it and a status panel
// onto a tcell screen.
package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"relicforge/assets"
	"relicforge/internal/component"
	"relicforge/internal/ecs"
	"relicforge/internal/gamemap"
)

// HUDHeight is the number of rows reserved under the map.
const HUDHeight = 8

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  FloorTiles
}

// NewRenderer creates a Renderer for the given screen using the tile set of
// the named dungeon.
func NewRenderer(screen tcell.Screen, dungeon string) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(h-HUDHeight, 1)),
		theme:  ThemeFor(dungeon),
	}
}

// SetDungeon switches to the tile set of the named dungeon.
func (r *Renderer) SetDungeon(dungeon string) { r.theme = ThemeFor(dungeon) }

// Resize refits the viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth, r.camera.ViewHeight = w, max(h-HUDHeight, 1)
}

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// WorldToScreen converts world coordinates to screen coordinates.
// visible is false when the position falls outside the viewport.
func (r *Renderer) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(wx, wy)
}

// DrawFrame renders tiles, the objects in view and the explorer at (px, py).
func (r *Renderer) DrawFrame(w *ecs.World, gmap *gamemap.GameMap, px, py int) {
	r.screen.Clear()
	r.drawMap(gmap)
	r.drawEntities(w, gmap)
	if sx, sy, ok := r.camera.WorldToScreen(px, py); ok {
		r.putGlyph(sx, sy, assets.GlyphPlayer, tcell.StyleDefault.Background(tcell.ColorBlack))
	}
}

// drawMap renders all visible/explored tiles.
func (r *Renderer) drawMap(gmap *gamemap.GameMap) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			tile := gmap.At(x, y)
			if !tile.Visible && !tile.Explored {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			r.putGlyph(sx, sy, r.tileGlyph(tile), style)
		}
	}
}

func (r *Renderer) tileGlyph(tile *gamemap.Tile) string {
	switch tile.Kind {
	case gamemap.TileStairsDown:
		return glyphStairsDown
	case gamemap.TileStairsUp:
		return glyphStairsUp
	case gamemap.TileWall:
		if tile.Visible {
			return r.theme.Wall
		}
		return r.theme.DimWall
	}
	if tile.Visible {
		return r.theme.Floor
	}
	return r.theme.DimFloor
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	order int
	pos   component.Position
	rend  component.Renderable
}

// drawEntities renders all entities with Renderable + Position, ordered by RenderOrder.
func (r *Renderer) drawEntities(w *ecs.World, gmap *gamemap.GameMap) {
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))

	for _, id := range ids {
		pos := w.Get(id, component.CPosition).(component.Position)
		rend := w.Get(id, component.CRenderable).(component.Renderable)
		// Only draw entities on visible tiles.
		if gmap.InBounds(pos.X, pos.Y) && !gmap.At(pos.X, pos.Y).Visible {
			continue
		}
		entities = append(entities, renderableEntity{order: rend.RenderOrder, pos: pos, rend: rend})
	}

	// Sort ascending by render order (lower = drawn first / behind).
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].order < entities[j].order
	})

	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos.X, e.pos.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(e.rend.FGColor).Background(tcell.ColorBlack)
		r.putGlyph(sx, sy, e.rend.Glyph, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
