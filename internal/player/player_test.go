package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	for c := Warrior; c < classCount; c++ {
		got, err := ParseClass(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	for p := Ordinary; p < personalityCount; p++ {
		got, err := ParsePersonality(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	for _, s := range []Sex{Female, Male} {
		got, err := ParseSex(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	t.Parallel()

	_, err := ParseClass("necromancer")
	assert.Error(t, err)
	_, err = ParsePersonality("grumpy")
	assert.Error(t, err)
	_, err = ParseSex("x")
	assert.Error(t, err)
}

func TestLuck(t *testing.T) {
	t.Parallel()

	p := Player{Personality: Lucky}
	assert.True(t, p.HasGoodLuck())
	assert.False(t, p.HasBadLuck())

	q := Player{}
	q.Mutations.Set(BadLuck)
	assert.False(t, q.HasGoodLuck())
	assert.True(t, q.HasBadLuck())

	m := Player{Personality: Munchkin}
	assert.True(t, m.IsMunchkin())
}
