// Package describe turns generated items into display names and detail
// lines for the viewer, the simulator and logs.
package describe

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"relicforge/assets"
	"relicforge/internal/artifact"
	"relicforge/internal/object"
)

var artifactNames = func() map[artifact.ID]string {
	m := make(map[artifact.ID]string)
	for _, def := range assets.Artifacts() {
		m[def.ID] = def.Name
	}
	return m
}()

// Name returns the full display name of it, e.g.
// "a Long Sword 'Ringil' (4d5) (+22,+25) <+10>".
func Name(it *object.Item) string {
	k := assets.Kinds().Get(it.KindID)
	if k == nil {
		return "something strange"
	}
	if it.TVal == object.TValGold {
		return fmt.Sprintf("%d gold pieces worth of %s", it.PVal, k.Name)
	}

	var b strings.Builder
	b.WriteString(count(it, k.Name))
	b.WriteString(k.Name)
	if it.Number > 1 {
		b.WriteString("s")
	}

	switch {
	case it.IsFixedArtifact():
		b.WriteString(" " + artifactNames[it.ArtifactID])
	case it.RandomArtifact:
		b.WriteString(" " + it.RandomName)
	case it.IsEgo():
		if e := assets.Egos().Get(it.EgoID); e != nil {
			b.WriteString(" " + e.Name)
		}
	}

	if it.IsWeapon() || it.IsAmmo() {
		if it.DD > 0 {
			fmt.Fprintf(&b, " (%dd%d)", it.DD, it.DS)
		}
		fmt.Fprintf(&b, " (%+d,%+d)", it.ToH, it.ToD)
	}
	if it.IsArmor() {
		fmt.Fprintf(&b, " [%d,%+d]", it.AC, it.ToA)
	} else if it.ToA != 0 {
		fmt.Fprintf(&b, " [%+d]", it.ToA)
	}
	if it.PVal != 0 && hasPValFlag(it) {
		fmt.Fprintf(&b, " <%+d>", it.PVal)
	}
	if it.TVal == object.TValWand || it.TVal == object.TValStaff {
		fmt.Fprintf(&b, " (%d charges)", it.PVal)
	}

	switch {
	case it.IsBroken():
		b.WriteString(" {broken}")
	case it.IsCursed():
		b.WriteString(" {cursed}")
	}
	return b.String()
}

func count(it *object.Item, name string) string {
	switch {
	case it.IsFixedArtifact() || it.RandomArtifact:
		return "the "
	case it.Number > 1:
		return fmt.Sprintf("%d ", it.Number)
	case it.Number <= 0:
		return "no more "
	case name != "" && strings.ContainsRune("AEIOUaeiou", rune(name[0])):
		return "an "
	}
	return "a "
}

func hasPValFlag(it *object.Item) bool {
	for _, f := range object.StatFlags {
		if it.Flags.Has(f) {
			return true
		}
	}
	for _, f := range [...]object.TrFlag{
		object.TrStealth, object.TrSearch, object.TrInfra, object.TrTunnel,
		object.TrSpeed, object.TrBlows, object.TrMagicMastery,
	} {
		if it.Flags.Has(f) {
			return true
		}
	}
	return false
}

// Details lists the abilities, curses and activation of it, one per line.
func Details(it *object.Item) []string {
	var lines []string
	if flags := flagNames(it.Flags.Elements()); flags != "" {
		lines = append(lines, "Grants: "+flags)
	}
	if curses := flagNames(it.Curses.Elements()); curses != "" {
		lines = append(lines, "Curses: "+curses)
	}
	if act := assets.ActivationName(it.ActivationID); act != "" {
		lines = append(lines, "Activates for "+act)
	}
	lines = append(lines, fmt.Sprintf("Generated at level %d", it.Level))
	return lines
}

func flagNames[T fmt.Stringer](flags []T) string {
	names := make([]string, 0, len(flags))
	for _, f := range flags {
		names = append(names, strings.ToLower(f.String()))
	}
	return strings.Join(names, ", ")
}

// Fit pads or truncates s to exactly width terminal cells.
func Fit(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}
