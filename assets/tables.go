// Package assets holds the static game data: base kinds, egos, fixed
// artifacts, dungeons and the viewer's presets and glyphs.
package assets

import (
	"fmt"

	"relicforge/internal/artifact"
	"relicforge/internal/object"
)

var (
	kindTable = mustKinds()
	egoTable  = mustEgos()
)

func mustKinds() *object.KindTable {
	t, err := object.NewKindTable(kindDefs)
	if err != nil {
		panic(fmt.Sprintf("assets: %v", err))
	}
	return t
}

func mustEgos() *object.EgoTable {
	t, err := object.NewEgoTable(egoDefs)
	if err != nil {
		panic(fmt.Sprintf("assets: %v", err))
	}
	return t
}

// Kinds returns the shared, read-only base kind table.
func Kinds() *object.KindTable { return kindTable }

// Egos returns the shared, read-only ego table.
func Egos() *object.EgoTable { return egoTable }

// Artifacts returns a copy of the fixed-artifact definitions.
func Artifacts() []artifact.Def {
	out := make([]artifact.Def, len(artifactDefs))
	copy(out, artifactDefs)
	return out
}

// NewArtifactRegistry returns a fresh registry for one game.
func NewArtifactRegistry() *artifact.Registry {
	reg, err := artifact.NewRegistry(artifactDefs)
	if err != nil {
		panic(fmt.Sprintf("assets: %v", err))
	}
	return reg
}
