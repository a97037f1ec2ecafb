package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistryRejectsBadIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		defs []Def
	}{
		{name: "zero id", defs: []Def{{ID: 0, Name: "nothing"}}},
		{name: "duplicate id", defs: []Def{{ID: 3, Name: "a"}, {ID: 3, Name: "b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewRegistry(tt.defs)
			assert.Error(t, err)
		})
	}
}

func TestRegistryIDsAscending(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry([]Def{{ID: 9, Name: "c"}, {ID: 2, Name: "a"}, {ID: 5, Name: "b"}})
	require.NoError(t, err)
	assert.Equal(t, []ID{2, 5, 9}, reg.IDs())
}

func TestMarkGeneratedTwicePanics(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	reg.MarkGenerated(Ringil, 7)
	assert.True(t, reg.IsGenerated(Ringil))
	assert.Equal(t, 7, reg.FloorID(Ringil))
	assert.Panics(t, func() { reg.MarkGenerated(Ringil, 8) })
	assert.Panics(t, func() { reg.MarkGenerated(999, 0) })
}

func TestReleaseMakesArtifactEligibleAgain(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	reg.MarkGenerated(Anduril, 3)
	reg.Release(Anduril)
	assert.False(t, reg.IsGenerated(Anduril))
	assert.Zero(t, reg.FloorID(Anduril))
	assert.NotPanics(t, func() { reg.MarkGenerated(Anduril, 4) })
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	reg.MarkGenerated(Ringil, 11)
	reg.MarkGenerated(Terror, 0)
	snap := reg.Snapshot()

	other := testRegistry(t)
	other.MarkGenerated(Anduril, 5)
	require.NoError(t, other.Restore(snap))

	assert.Equal(t, []ID{Ringil, Terror}, other.Generated())
	assert.Equal(t, 11, other.FloorID(Ringil))
	assert.False(t, other.IsGenerated(Anduril))
	assert.Equal(t, snap, other.Snapshot())
}

func TestRestoreUnknownArtifact(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	reg.MarkGenerated(Ringil, 1)
	err := reg.Restore([]State{{ID: 999, Generated: true}})
	require.ErrorIs(t, err, ErrUnknownArtifact)
	assert.True(t, reg.IsGenerated(Ringil), "failed restore must leave state alone")
}

func TestReset(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	reg.MarkGenerated(Ringil, 1)
	reg.MarkGenerated(Elendil, 2)
	reg.Reset()
	assert.Empty(t, reg.Generated())
}
