package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"relicforge/assets"
	"relicforge/internal/ecs"
	"relicforge/internal/factory"
	"relicforge/internal/gamemap"
	"relicforge/internal/object"
)

func newTestScreen(t *testing.T) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	t.Cleanup(ss.Fini)
	return ss
}

func row(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(10, 10, 40, 20)
	sx, sy, ok := c.WorldToScreen(10, 10)
	if !ok {
		t.Fatal("center should be on screen")
	}
	if sx != 20 || sy != 10 {
		t.Errorf("center maps to (%d,%d); want (20,10)", sx, sy)
	}
	wx, wy := c.ScreenToWorld(sx, sy)
	if wx != 10 || wy != 10 {
		t.Errorf("ScreenToWorld = (%d,%d); want (10,10)", wx, wy)
	}
	if _, _, ok := c.WorldToScreen(40, 10); ok {
		t.Error("far tile should be off screen")
	}
}

func TestThemeForUnknownDungeon(t *testing.T) {
	if got := ThemeFor("nowhere"); got != defaultTheme {
		t.Errorf("ThemeFor(nowhere) = %+v; want default", got)
	}
	for _, d := range assets.Dungeons {
		if ThemeFor(d.Name).Wall == "" {
			t.Errorf("dungeon %s has no wall glyph", d.Name)
		}
	}
}

func TestDrawFrameShowsExplorerAndVisibleObjects(t *testing.T) {
	s := newTestScreen(t)
	gm := gamemap.New(20, 10)
	for y := 1; y < 9; y++ {
		for x := 1; x < 19; x++ {
			gm.Set(x, y, gamemap.MakeFloor())
		}
	}
	gm.UpdateFOV(5, 5, 8)

	w := ecs.NewWorld()
	k := assets.Kinds().Get(3)
	var it object.Item
	it.Prep(k)
	factory.NewObject(w, it, 6, 5)

	r := NewRenderer(s, "angband")
	r.CenterOn(5, 5)
	r.DrawFrame(w, gm, 5, 5)

	px, py, _ := r.WorldToScreen(5, 5)
	if got, _, _, _ := s.GetContent(px, py); string(got) != assets.GlyphPlayer {
		t.Errorf("explorer cell = %q; want %q", got, assets.GlyphPlayer)
	}
	ox, oy, _ := r.WorldToScreen(6, 5)
	want := []rune(assets.GlyphFor(k.TVal))[0]
	if got, _, _, _ := s.GetContent(ox, oy); got != want {
		t.Errorf("object cell = %q; want %q", got, want)
	}
}

func TestDrawHUDShowsUnderfoot(t *testing.T) {
	s := newTestScreen(t)
	r := NewRenderer(s, "mirkwood")
	r.DrawHUD(HUD{
		Class:     "Stalwart Warrior",
		Dungeon:   "mirkwood",
		Depth:     20,
		Underfoot: "a Long Sword (2d5) (+3,+4)",
		Details:   []string{"Generated at level 20"},
		Messages:  []string{"You enter mirkwood."},
	})
	_, h := s.Size()
	top := h - HUDHeight
	if !strings.Contains(row(s, top+1), "Depth 20 (1000 ft)") {
		t.Errorf("status row = %q", row(s, top+1))
	}
	if !strings.Contains(row(s, top+2), "Here: a Long Sword") {
		t.Errorf("underfoot row = %q", row(s, top+2))
	}
	if !strings.Contains(row(s, top+3), "Generated at level 20") {
		t.Errorf("details row = %q", row(s, top+3))
	}
	if !strings.Contains(row(s, top+4), "You enter mirkwood.") {
		t.Errorf("message row = %q", row(s, top+4))
	}
}
