package effect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackpowder-sim/blackpowder/internal/game/effect"
)

func TestApplyUnknownKind(t *testing.T) {
	s := effect.NewSet()
	assert.Error(t, s.Apply(effect.Kind("plague")))
}

func TestTickDamageAndExpiry(t *testing.T) {
	s := effect.NewSet()
	require.NoError(t, s.Apply(effect.Fire))

	// Fire burns for 3 rounds at 3 damage.
	for round := 1; round <= 3; round++ {
		dmg, expired := s.Tick()
		assert.InDelta(t, 3.0, dmg, 1e-9, "round %d", round)
		if round < 3 {
			assert.Empty(t, expired)
			assert.True(t, s.Has(effect.Fire))
		} else {
			assert.Equal(t, []effect.Kind{effect.Fire}, expired)
			assert.False(t, s.Has(effect.Fire))
		}
	}

	dmg, expired := s.Tick()
	assert.Zero(t, dmg)
	assert.Empty(t, expired)
}

func TestReapplyRefreshesDuration(t *testing.T) {
	s := effect.NewSet()
	require.NoError(t, s.Apply(effect.Flooding))
	s.Tick()
	s.Tick()
	require.NoError(t, s.Apply(effect.Flooding)) // refresh back to 4 rounds

	survived := 0
	for s.Has(effect.Flooding) {
		s.Tick()
		survived++
	}
	assert.Equal(t, 4, survived)
}

func TestTickOrderIsStable(t *testing.T) {
	s := effect.NewSet()
	require.NoError(t, s.Apply(effect.Flooding))
	require.NoError(t, s.Apply(effect.Fire))

	assert.Equal(t, []effect.Kind{effect.Fire, effect.Flooding}, s.Kinds())
	dmg, _ := s.Tick()
	assert.InDelta(t, 5.0, dmg, 1e-9)
	assert.Equal(t, 2, s.Len())
}
