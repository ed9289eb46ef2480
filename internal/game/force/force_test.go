package force_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/blackpowder-sim/blackpowder/internal/game/catalog"
	"github.com/blackpowder-sim/blackpowder/internal/game/force"
)

func TestApplyCasualtiesFloorsAndDestroys(t *testing.T) {
	b := force.NewBrigade(catalog.BrigadeHeavy, "")
	b.ApplyCasualties(40)
	assert.InDelta(t, 60.0, b.Strength, 1e-9)
	assert.Equal(t, force.BrigadeActive, b.Status)

	b.ApplyCasualties(75)
	assert.Equal(t, 0.0, b.Strength)
	assert.Equal(t, force.BrigadeDestroyed, b.Status)
	assert.False(t, b.Active())
}

func TestApplyCasualtiesRejectsNegative(t *testing.T) {
	b := force.NewBrigade(catalog.BrigadeLight, "")
	assert.Panics(t, func() { b.ApplyCasualties(-1) })
}

func TestApplyHullDamageStatuses(t *testing.T) {
	s := force.NewShip(catalog.DoctrineGunnery, "")
	s.ApplyHullDamage(30)
	assert.Equal(t, force.ShipActive, s.Status)

	s.ApplyHullDamage(30)
	assert.Equal(t, force.ShipDamaged, s.Status)
	assert.True(t, s.Afloat())

	s.ApplyHullDamage(100)
	assert.Equal(t, 0.0, s.Hull)
	assert.Equal(t, force.ShipSunk, s.Status)
	assert.False(t, s.Afloat())
}

func TestCloneIsDeep(t *testing.T) {
	a := force.NewUniformArmy("red", "Test", 3, "", 4, catalog.BrigadeHeavy)
	clone := a.Clone()
	require.Len(t, clone.Brigades, 4)

	clone.Brigades[0].ApplyCasualties(50)
	clone.General.Level = 5

	assert.InDelta(t, 100.0, a.Brigades[0].Strength, 1e-9, "clone mutation leaked into original")
	assert.Equal(t, 3, a.General.Level)
}

func TestArmadaCloneIsDeep(t *testing.T) {
	f := force.NewUniformArmada("red-fleet", "Test", 2, "", 3, catalog.DoctrineBoarding)
	clone := f.Clone()
	clone.Ships[1].ApplyHullDamage(100)
	assert.InDelta(t, 100.0, f.Ships[1].Hull, 1e-9)
}

func TestAggregateStrengthSkipsInactive(t *testing.T) {
	a := force.NewUniformArmy("red", "Test", 1, "", 3, catalog.BrigadeLight)
	a.Brigades[1].Status = force.BrigadeRouted
	assert.InDelta(t, 200.0, a.AggregateStrength(), 1e-9)
	assert.Len(t, a.ActiveBrigades(), 2)
}

func TestSampleFactoriesIndependent(t *testing.T) {
	r1, _ := force.SampleArmies()
	r2, _ := force.SampleArmies()
	r1.Brigades[0].ApplyCasualties(100)
	assert.InDelta(t, 100.0, r2.Brigades[0].Strength, 1e-9, "sample factories must not share state")
	assert.NotEqual(t, r1.Brigades[0].ID, r2.Brigades[0].ID)
}

// Property: strength is monotonically non-increasing under any casualty
// sequence and never leaves [0,100].
func TestPropertyStrengthMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := force.NewBrigade(catalog.BrigadeCavalry, "")
		prev := b.Strength
		n := rapid.IntRange(1, 20).Draw(t, "hits")
		for i := 0; i < n; i++ {
			pct := rapid.Float64Range(0, 40).Draw(t, "pct")
			b.ApplyCasualties(pct)
			if b.Strength > prev {
				t.Fatalf("strength increased: %f -> %f", prev, b.Strength)
			}
			if b.Strength < 0 || b.Strength > 100 {
				t.Fatalf("strength out of range: %f", b.Strength)
			}
			prev = b.Strength
		}
	})
}
