// Package store persists a game's artifact registry state so a run can be
// resumed or inspected later.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"relicforge/internal/artifact"
)

// ErrNotFound is returned when no save has the requested ID.
var ErrNotFound = errors.New("save not found")

// Save is one game's artifact state with enough context to replay it.
type Save struct {
	ID        uuid.UUID
	Dungeon   string
	Seed      int64
	Depth     int
	CreatedAt time.Time
	// Artifacts holds only generated artifacts.
	Artifacts []artifact.State
}

// Store saves and loads artifact state.
type Store interface {
	// SaveArtifacts writes s, replacing any save with the same ID.
	SaveArtifacts(ctx context.Context, s Save) error
	// LoadArtifacts returns the save with the given ID or ErrNotFound.
	LoadArtifacts(ctx context.Context, id uuid.UUID) (Save, error)
	Close() error
}

// NewSave captures the generated artifacts of reg under a fresh ID.
func NewSave(reg *artifact.Registry, dungeon string, seed int64, depth int) Save {
	s := Save{
		ID:        uuid.New(),
		Dungeon:   dungeon,
		Seed:      seed,
		Depth:     depth,
		CreatedAt: time.Now().UTC(),
	}
	for _, st := range reg.Snapshot() {
		if st.Generated {
			s.Artifacts = append(s.Artifacts, st)
		}
	}
	return s
}

// Apply restores the save's artifact state into reg.
func (s Save) Apply(reg *artifact.Registry) error {
	return reg.Restore(s.Artifacts)
}

// Discard is a Store that keeps nothing.
type Discard struct{}

func (Discard) SaveArtifacts(context.Context, Save) error { return nil }

func (Discard) LoadArtifacts(context.Context, uuid.UUID) (Save, error) {
	return Save{}, ErrNotFound
}

func (Discard) Close() error { return nil }
