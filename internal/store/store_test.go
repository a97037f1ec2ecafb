package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relicforge/assets"
	"relicforge/internal/artifact"
)

func TestNewSaveKeepsOnlyGenerated(t *testing.T) {
	reg, err := artifact.NewRegistry(assets.Artifacts())
	require.NoError(t, err)
	ids := reg.IDs()
	reg.MarkGenerated(ids[0], 3)
	reg.MarkGenerated(ids[2], 9)

	s := NewSave(reg, "angband", 7, 12)
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, []artifact.State{
		{ID: ids[0], Generated: true, FloorID: 3},
		{ID: ids[2], Generated: true, FloorID: 9},
	}, s.Artifacts)

	fresh, err := artifact.NewRegistry(assets.Artifacts())
	require.NoError(t, err)
	require.NoError(t, s.Apply(fresh))
	assert.Equal(t, reg.Snapshot(), fresh.Snapshot())
}

func TestDiscard(t *testing.T) {
	var st Store = Discard{}
	require.NoError(t, st.SaveArtifacts(context.Background(), Save{ID: uuid.New()}))
	_, err := st.LoadArtifacts(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, st.Close())
}
