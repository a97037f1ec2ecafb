package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"relicforge/assets"
)

// runClassSelect shows the class selection screen and blocks until the player
// picks a class. Returns false if the player quits without selecting.
func (g *Game) runClassSelect() bool {
	selected := 0
	for i, c := range assets.Classes {
		if c.ID == g.cfg.Player.Class {
			selected = i
		}
	}
	for {
		g.drawClassSelect(selected)
		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return false
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyUp:
				selected = (selected - 1 + len(assets.Classes)) % len(assets.Classes)
			case tcell.KeyDown:
				selected = (selected + 1) % len(assets.Classes)
			case tcell.KeyEnter:
				g.class = assets.Classes[selected]
				return true
			case tcell.KeyEscape:
				if g.confirmQuit(func() { g.drawClassSelect(selected) }) {
					return false
				}
			}
			switch ev.Rune() {
			case 'k', 'K':
				selected = (selected - 1 + len(assets.Classes)) % len(assets.Classes)
			case 'j', 'J':
				selected = (selected + 1) % len(assets.Classes)
			case 'q', 'Q':
				if g.confirmQuit(func() { g.drawClassSelect(selected) }) {
					return false
				}
			case '1', '2', '3', '4', '5', '6', '7', '8', '9':
				idx := int(ev.Rune() - '1')
				if idx < len(assets.Classes) {
					g.class = assets.Classes[idx]
					return true
				}
			}
		}
	}
}

// drawClassSelect renders the full class selection UI to the screen.
func (g *Game) drawClassSelect(selected int) {
	g.screen.Clear()

	titleStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 170, 60)).Bold(true)
	normalStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	highlightStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(255, 170, 60))
	statStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 220, 255))

	g.centerText(1, "⚒️ RELICFORGE ⚒️", titleStyle)
	g.centerText(2, fmt.Sprintf("Choose who the forge works for in %s", g.cfg.Dungeon), dimStyle)

	// Each class occupies 3 lines + 1 blank = 4 rows. Start at row 4.
	startY := 4
	for i, class := range assets.Classes {
		y := startY + i*4
		prefix := "  "
		lineStyle := normalStyle
		if i == selected {
			prefix = "► "
			lineStyle = highlightStyle
		}

		// Line 1: number + emoji + name
		nameLine := fmt.Sprintf("%s[%d] %s %s", prefix, i+1, class.Emoji, class.Name)
		drawScreenText(g.screen, 2, y, nameLine, lineStyle)

		// Line 2: lore (indented, dimmed)
		loreLine := fmt.Sprintf("      \"%s\"", class.Lore)
		drawScreenText(g.screen, 2, y+1, loreLine, dimStyle)

		// Line 3: what generation sees
		statsLine := fmt.Sprintf("      %s, %s, level %d", class.Class, class.Personality, class.Level)
		drawScreenText(g.screen, 2, y+2, statsLine, statStyle)
	}

	hintsY := startY + len(assets.Classes)*4 + 1
	g.centerText(hintsY, "[j/k or ↑/↓] Navigate   [1-9] Quick-select   [Enter] Confirm   [q] Quit", dimStyle)

	g.screen.Show()
}

// drawScreenText writes a string to the screen at (x, y) with the given style.
func drawScreenText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
