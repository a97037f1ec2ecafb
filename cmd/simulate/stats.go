package main

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"
	"sync"

	"relicforge/assets"
	"relicforge/internal/component"
	"relicforge/internal/describe"
	"relicforge/internal/ecs"
	"relicforge/internal/object"
)

// Classes of generated objects, best first.
const (
	classFixedArtifact  = "fixed artifact"
	classRandomArtifact = "random artifact"
	classEgo            = "ego"
	classMagical        = "magical"
	classPlain          = "plain"
	classCursed         = "cursed"
	classBroken         = "broken"
)

var classOrder = []string{
	classFixedArtifact, classRandomArtifact, classEgo, classMagical,
	classPlain, classCursed, classBroken,
}

// classify buckets a generated object by how good it turned out.
func classify(it *object.Item) string {
	switch {
	case it.IsFixedArtifact():
		return classFixedArtifact
	case it.RandomArtifact:
		return classRandomArtifact
	case it.IsBroken():
		return classBroken
	case it.IsCursed():
		return classCursed
	case it.IsEgo():
		return classEgo
	case it.ToH > 0 || it.ToD > 0 || it.ToA > 0:
		return classMagical
	}
	return classPlain
}

// Stats accumulates what a batch of games generated. It is safe for
// concurrent use.
type Stats struct {
	mu        sync.Mutex
	Games     int
	Floors    int
	Objects   int
	Gold      int
	GoldValue int
	Classes   map[string]int
	Egos      map[string]int
	Artifacts map[string]int
}

func newStats() *Stats {
	return &Stats{
		Classes:   make(map[string]int),
		Egos:      make(map[string]int),
		Artifacts: make(map[string]int),
	}
}

// gameStats is one game's tally, merged into Stats when the game ends.
type gameStats struct {
	floors    int
	objects   int
	gold      int
	goldValue int
	classes   map[string]int
	egos      map[string]int
	artifacts map[string]int
}

func newGameStats() *gameStats {
	return &gameStats{
		classes:   make(map[string]int),
		egos:      make(map[string]int),
		artifacts: make(map[string]int),
	}
}

// survey tallies every object lying on a floor.
func (g *gameStats) survey(w *ecs.World) {
	g.floors++
	for _, id := range w.Query(component.CObject) {
		it := w.Get(id, component.CObject).(component.Object).Item
		if it.TVal == object.TValGold {
			g.gold++
			g.goldValue += it.PVal
			continue
		}
		g.objects++
		g.classes[classify(&it)]++
		if e := assets.Egos().Get(it.EgoID); e != nil {
			g.egos[e.Name]++
		}
		if it.IsFixedArtifact() {
			g.artifacts[describe.Name(&it)]++
		}
	}
}

func (s *Stats) merge(g *gameStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Games++
	s.Floors += g.floors
	s.Objects += g.objects
	s.Gold += g.gold
	s.GoldValue += g.goldValue
	for k, v := range g.classes {
		s.Classes[k] += v
	}
	for k, v := range g.egos {
		s.Egos[k] += v
	}
	for k, v := range g.artifacts {
		s.Artifacts[k] += v
	}
}

// Print writes a plain-text report to w, listing at most top egos.
func (s *Stats) Print(w io.Writer, top int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(w, "%d games, %d floors, %d objects, %d gold piles worth %d\n\n",
		s.Games, s.Floors, s.Objects, s.Gold, s.GoldValue)

	fmt.Fprintln(w, "Quality")
	for _, c := range classOrder {
		fmt.Fprintf(w, "  %s %6d  %5.1f%%\n", describe.Fit(c, 18), s.Classes[c], percent(s.Classes[c], s.Objects))
	}

	fmt.Fprintln(w, "\nMost common egos")
	for _, e := range ranked(s.Egos, top) {
		fmt.Fprintf(w, "  %s %6d\n", describe.Fit(e.name, 30), e.count)
	}

	fmt.Fprintf(w, "\nFixed artifacts (%d distinct)\n", len(s.Artifacts))
	for _, e := range ranked(s.Artifacts, 0) {
		fmt.Fprintf(w, "  %s %6d\n", describe.Fit(e.name, 60), e.count)
	}
}

type entry struct {
	name  string
	count int
}

// ranked orders m by descending count, then name, keeping at most n
// entries when n is positive.
func ranked(m map[string]int, n int) []entry {
	out := make([]entry, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		out = append(out, entry{k, m[k]})
	}
	slices.SortStableFunc(out, func(a, b entry) int { return cmp.Compare(b.count, a.count) })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
