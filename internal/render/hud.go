package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"relicforge/internal/describe"
)

// HUD is what the status panel shows.
type HUD struct {
	Class     string
	Dungeon   string
	Depth     int
	Objects   int    // objects left on the floor
	Artifacts int    // fixed artifacts generated this game
	Underfoot string // name of the item under the explorer
	Details   []string
	Messages  []string
}

// DrawHUD renders the status bar, the item underfoot and the message log at
// the bottom of the screen.
func (r *Renderer) DrawHUD(h HUD) {
	screenW, screenH := r.screen.Size()
	hudY := screenH - HUDHeight

	// Separator line.
	r.drawHLine(hudY, tcell.ColorGray)

	status := fmt.Sprintf("[%s]  %s  Depth %d (%d ft)  Objects: %d  Artifacts found: %d",
		h.Class, h.Dungeon, h.Depth, h.Depth*50, h.Objects, h.Artifacts)
	r.drawText(0, hudY+1, describe.Fit(status, screenW), tcell.StyleDefault.Foreground(tcell.ColorWhite))

	y := hudY + 2
	if h.Underfoot != "" {
		r.drawText(0, y, describe.Fit("Here: "+h.Underfoot, screenW), tcell.StyleDefault.Foreground(tcell.ColorGold))
		y++
		for i, line := range h.Details {
			if i == 2 {
				break
			}
			r.drawText(2, y, describe.Fit(line, screenW-2), tcell.StyleDefault.Foreground(tcell.ColorLightSkyBlue))
			y++
		}
	}

	// Message log fills the remaining rows.
	rows := screenH - y
	start := max(len(h.Messages)-rows, 0)
	for i, msg := range h.Messages[start:] {
		r.drawText(0, y+i, describe.Fit(msg, screenW), tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from (x, y), giving wide runes two cells.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
