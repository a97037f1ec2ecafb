// Package game is the interactive loot viewer: pick a class, walk freshly
// generated floors and inspect what the forge left lying around.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"relicforge/assets"
	"relicforge/internal/config"
	"relicforge/internal/describe"
	"relicforge/internal/render"
	"relicforge/internal/store"
)

// Game is the top-level orchestrator for one terminal.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	cfg      config.Config
	store    store.Store
	session  *Session
	class    assets.ClassDef
	seed     int64
	saveID   string
}

// New creates a Game on the process terminal. st may be nil to skip
// saving artifact state.
func New(cfg config.Config, st store.Store) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, cfg, st), nil
}

// NewWithScreen creates a Game on an already initialised screen.
func NewWithScreen(screen tcell.Screen, cfg config.Config, st store.Store) *Game {
	if st == nil {
		st = store.Discard{}
	}
	return &Game{screen: screen, cfg: cfg, store: st}
}

// startSession begins a fresh game with the selected class.
func (g *Game) startSession() error {
	def, ok := assets.DungeonByName(g.cfg.Dungeon)
	if !ok {
		return fmt.Errorf("dungeon %q: %w", g.cfg.Dungeon, config.ErrUnknownDungeon)
	}
	pc := g.cfg
	pc.Player.Class = g.class.ID
	p, err := pc.NewPlayer()
	if err != nil {
		return err
	}
	g.seed = g.cfg.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.saveID = ""
	g.session = NewSession(Options{
		Dungeon: def,
		Depth:   g.cfg.Depth,
		Seed:    g.seed,
		Player:  p,
		Class:   g.class.Name,
	})
	g.renderer = render.NewRenderer(g.screen, def.Name)
	g.session.addMessage("Use hjklyubn or arrow keys to move. > descends, r rerolls the floor, q quits.")
	return nil
}

// Run is the main loop. Supports multiple consecutive runs via Try Again.
func (g *Game) Run() {
	defer g.screen.Fini()

	if !g.showOpening() {
		return
	}
	for {
		if !g.runClassSelect() {
			return
		}
		if err := g.startSession(); err != nil {
			slog.Error("start session", "err", err)
			return
		}

		g.play()
		g.finish()

		if !g.showEndScreen() {
			return
		}
	}
}

// play handles input until the player quits.
func (g *Game) play() {
	for {
		g.draw()
		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			action := keyToAction(ev)
			if action == ActionQuit {
				if g.confirmQuit(g.draw) {
					return
				}
				continue
			}
			g.processAction(action)
		}
	}
}

func (g *Game) draw() {
	s := g.session
	x, y := s.Position()
	g.renderer.CenterOn(x, y)
	g.renderer.DrawFrame(s.World(), s.Map(), x, y)

	hud := render.HUD{
		Class:     g.class.Name,
		Dungeon:   g.cfg.Dungeon,
		Depth:     s.Depth(),
		Objects:   s.World().Count(),
		Artifacts: len(s.Registry().Generated()),
		Messages:  s.Messages(),
	}
	if it := s.Underfoot(); it != nil {
		hud.Underfoot = describe.Name(it)
		hud.Details = describe.Details(it)
	}
	g.renderer.DrawHUD(hud)
}

// processAction applies one viewer command to the session.
func (g *Game) processAction(action Action) {
	s := g.session
	switch action {
	case ActionDescend:
		s.Descend()
	case ActionAscend:
		s.Ascend()
	case ActionRegenerate:
		s.Regenerate()
	case ActionPickup:
		s.Pickup()
	case ActionConjure:
		s.ConjureArtifact()
	default:
		if dx, dy := actionToDelta(action); dx != 0 || dy != 0 {
			s.Move(dx, dy)
		}
	}
}

// finish records the run and saves the artifact registry.
func (g *Game) finish() {
	s := g.session
	saveRunLog(s.RunLog())

	sv := store.NewSave(s.Registry(), g.cfg.Dungeon, g.seed, s.Depth())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := g.store.SaveArtifacts(ctx, sv); err != nil {
		slog.Warn("saving artifacts failed", "err", err)
		return
	}
	g.saveID = sv.ID.String()
	slog.Info("run saved", "save", g.saveID, "artifacts", len(sv.Artifacts))
}

// showOpening shows the lore screen and waits for a key. It returns false
// if the screen closes first.
func (g *Game) showOpening() bool {
	for {
		g.screen.Clear()
		_, h := g.screen.Size()
		lines := strings.Split(assets.LoreOpening, "\n")
		top := max((h-len(lines))/2, 0)
		style := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
		for i, line := range lines {
			g.centerText(top+i, line, style)
		}
		g.screen.Show()

		switch g.screen.PollEvent().(type) {
		case nil:
			return false
		case *tcell.EventKey:
			return true
		case *tcell.EventResize:
			g.screen.Sync()
		}
	}
}

// confirmQuit asks for confirmation over the current screen, redrawn by
// redraw. It returns true if the player confirms.
func (g *Game) confirmQuit(redraw func()) bool {
	redraw()
	w, h := g.screen.Size()
	prompt := " Really quit? [y/n] "
	g.putText(max((w-len(prompt))/2, 0), h/2, prompt,
		tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow))
	g.screen.Show()
	for {
		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return true
		case *tcell.EventKey:
			switch ev.Rune() {
			case 'y', 'Y', 'q', 'Q':
				return true
			}
			return false
		}
	}
}

func (g *Game) centerText(y int, text string, style tcell.Style) {
	w, _ := g.screen.Size()
	g.putText(max((w-len([]rune(text)))/2, 0), y, text, style)
}

// putText writes a string to the screen at (x, y), one column per rune.
func (g *Game) putText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// showEndScreen renders the run summary and returns true if the player
// wants to try again, false to quit.
func (g *Game) showEndScreen() bool {
	log := g.session.RunLog()

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	dim := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for {
		g.screen.Clear()
		sw, sh := g.screen.Size()

		sep := func(y int) {
			for x := 0; x < sw; x++ {
				g.screen.SetContent(x, y, '─', nil, gray)
			}
		}
		// label prints a left-aligned key at column 2 and value at column 22.
		label := func(y int, l, v string) {
			g.putText(2, y, l, dim)
			g.putText(22, y, v, white)
		}

		y := 1
		sep(y)
		y += 2

		g.putText(2, y, "THE FORGE COOLS", gold)
		y += 2

		label(y, "Class:", log.Class)
		y++
		label(y, "Dungeon:", log.Dungeon)
		y++
		label(y, "Floors Visited:", fmt.Sprintf("%d", log.FloorsVisited))
		y++
		label(y, "Deepest:", fmt.Sprintf("%d (%d ft)", log.DeepestDepth, log.DeepestDepth*50))
		y += 2

		label(y, "Objects Seen:", fmt.Sprintf("%d", log.ObjectsSeen))
		y++
		label(y, "Egos Seen:", fmt.Sprintf("%d", log.EgosSeen))
		y++
		label(y, "Gold Piles:", fmt.Sprintf("%d", log.GoldSeen))
		y++
		label(y, "Picked Up:", fmt.Sprintf("%d", len(log.PickedUp)))
		y += 2

		label(y, "Artifacts:", fmt.Sprintf("%d", len(log.Artifacts)))
		y++
		for _, name := range log.Artifacts {
			if y >= sh-6 {
				g.putText(4, y, "…", dim)
				y++
				break
			}
			g.putText(4, y, describe.Fit(name, sw-6), dim)
			y++
		}
		y++

		if g.saveID != "" {
			label(y, "Saved As:", g.saveID)
			y += 2
		}

		sep(y)
		y += 2

		g.putText(2, y, "[R] Try Again", green)
		g.putText(18, y, "[Q] Quit", red)

		g.screen.Show()

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return false
		case *tcell.EventResize:
			g.screen.Sync()
			continue // redraw on resize
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'r', 'R':
					return true
				case 'q', 'Q':
					return false
				}
			case tcell.KeyEscape:
				return false
			}
		}
	}
}
