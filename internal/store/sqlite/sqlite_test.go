package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relicforge/assets"
	"relicforge/internal/artifact"
	"relicforge/internal/store"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	st, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func newRegistry(t *testing.T) *artifact.Registry {
	t.Helper()
	reg, err := artifact.NewRegistry(assets.Artifacts())
	require.NoError(t, err)
	return reg
}

func TestRoundTripRestoresRegistry(t *testing.T) {
	ctx := context.Background()
	st := openMemory(t)

	reg := newRegistry(t)
	ids := reg.IDs()
	reg.MarkGenerated(ids[1], 4)
	reg.MarkGenerated(ids[len(ids)-1], 27)
	sv := store.NewSave(reg, "angband", 99, 30)
	require.NoError(t, st.SaveArtifacts(ctx, sv))

	got, err := st.LoadArtifacts(ctx, sv.ID)
	require.NoError(t, err)
	assert.Equal(t, sv.Dungeon, got.Dungeon)
	assert.Equal(t, sv.Seed, got.Seed)
	assert.Equal(t, sv.Depth, got.Depth)
	assert.WithinDuration(t, sv.CreatedAt, got.CreatedAt, time.Millisecond)

	fresh := newRegistry(t)
	require.NoError(t, got.Apply(fresh))
	assert.Equal(t, reg.Snapshot(), fresh.Snapshot())
}

func TestSaveReplacesEarlierSave(t *testing.T) {
	ctx := context.Background()
	st := openMemory(t)
	reg := newRegistry(t)
	ids := reg.IDs()

	reg.MarkGenerated(ids[0], 1)
	sv := store.NewSave(reg, "angband", 1, 1)
	require.NoError(t, st.SaveArtifacts(ctx, sv))

	reg.Release(ids[0])
	reg.MarkGenerated(ids[3], 8)
	next := store.NewSave(reg, "mirkwood", 1, 20)
	next.ID = sv.ID
	require.NoError(t, st.SaveArtifacts(ctx, next))

	got, err := st.LoadArtifacts(ctx, sv.ID)
	require.NoError(t, err)
	assert.Equal(t, "mirkwood", got.Dungeon)
	assert.Equal(t, []artifact.State{{ID: ids[3], Generated: true, FloorID: 8}}, got.Artifacts)
}

func TestLoadUnknownSave(t *testing.T) {
	st := openMemory(t)
	_, err := st.LoadArtifacts(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestFileDatabaseSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "relicforge.db")

	st, err := Open(ctx, path)
	require.NoError(t, err)
	reg := newRegistry(t)
	reg.MarkGenerated(reg.IDs()[2], 5)
	sv := store.NewSave(reg, "orc-cave", 3, 12)
	require.NoError(t, st.SaveArtifacts(ctx, sv))
	require.NoError(t, st.Close())

	st, err = Open(ctx, path)
	require.NoError(t, err)
	defer st.Close()
	got, err := st.LoadArtifacts(ctx, sv.ID)
	require.NoError(t, err)
	assert.Len(t, got.Artifacts, 1)
}

func TestOpenRequiresDSN(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	assert.Error(t, err)
}
