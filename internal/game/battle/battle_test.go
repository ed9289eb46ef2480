package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/blackpowder-sim/blackpowder/internal/game/catalog"
	"github.com/blackpowder-sim/blackpowder/internal/game/force"
)

func TestResolveLandBattleReproducible(t *testing.T) {
	red, blue := force.SampleArmies()

	first, err := ResolveLandBattle(red, blue, "forest", 7)
	require.NoError(t, err)
	second, err := ResolveLandBattle(red, blue, "forest", 7)
	require.NoError(t, err)

	first.Elapsed, second.Elapsed = 0, 0
	assert.Equal(t, first, second, "same inputs and seed replay bit for bit")

	third, err := ResolveLandBattle(red, blue, "forest", 8)
	require.NoError(t, err)
	third.Elapsed = 0
	assert.NotEqual(t, first.Log, third.Log, "a different seed draws a different stream")
}

func TestResolveLandBattleLeavesInputsUntouched(t *testing.T) {
	red, blue := force.SampleArmies()

	_, err := ResolveLandBattle(red, blue, "plains", 3)
	require.NoError(t, err)

	for _, brig := range append(red.Brigades, blue.Brigades...) {
		assert.InDelta(t, 100, brig.Strength, 0.001)
		assert.Equal(t, force.BrigadeActive, brig.Status)
		assert.False(t, brig.Promoted)
	}
	assert.Equal(t, 3, red.General.Level)
	assert.False(t, red.General.Captured)
	assert.False(t, blue.General.Captured)
}

func TestResolveNavalBattleReproducible(t *testing.T) {
	red, blue := force.SampleArmadas()

	first, err := ResolveNavalBattle(red, blue, "coastal_waters", 11)
	require.NoError(t, err)
	second, err := ResolveNavalBattle(red, blue, "coastal_waters", 11)
	require.NoError(t, err)

	first.Elapsed, second.Elapsed = 0, 0
	assert.Equal(t, first, second)
}

func TestResolveLandBattleValidation(t *testing.T) {
	good := func() *force.Army {
		return force.NewUniformArmy("red", "Verding", 2, "bold", 2, catalog.BrigadeHeavy)
	}
	enemy := func() *force.Army {
		return force.NewUniformArmy("blue", "Osterhagen", 2, "", 2, catalog.BrigadeLight)
	}

	tests := []struct {
		name    string
		mutate  func(a, b *force.Army) (*force.Army, *force.Army)
		terrain string
	}{
		{name: "nil army", terrain: "plains",
			mutate: func(a, b *force.Army) (*force.Army, *force.Army) { return nil, b }},
		{name: "duplicate IDs", terrain: "plains",
			mutate: func(a, b *force.Army) (*force.Army, *force.Army) { b.ID = a.ID; return a, b }},
		{name: "unknown terrain", terrain: "volcano",
			mutate: func(a, b *force.Army) (*force.Army, *force.Army) { return a, b }},
		{name: "no active brigades", terrain: "plains",
			mutate: func(a, b *force.Army) (*force.Army, *force.Army) {
				for _, brig := range a.Brigades {
					brig.Status = force.BrigadeRouted
				}
				return a, b
			}},
		{name: "general level too low", terrain: "plains",
			mutate: func(a, b *force.Army) (*force.Army, *force.Army) { a.General.Level = 0; return a, b }},
		{name: "general level too high", terrain: "plains",
			mutate: func(a, b *force.Army) (*force.Army, *force.Army) { a.General.Level = 6; return a, b }},
		{name: "unknown general trait", terrain: "plains",
			mutate: func(a, b *force.Army) (*force.Army, *force.Army) { a.General.TraitID = "invincible"; return a, b }},
		{name: "invalid brigade type", terrain: "plains",
			mutate: func(a, b *force.Army) (*force.Army, *force.Army) { a.Brigades[0].Type = "siege"; return a, b }},
		{name: "strength out of range", terrain: "plains",
			mutate: func(a, b *force.Army) (*force.Army, *force.Army) { a.Brigades[0].Strength = 150; return a, b }},
		{name: "unknown enhancement", terrain: "plains",
			mutate: func(a, b *force.Army) (*force.Army, *force.Army) { a.Brigades[0].EnhancementID = "railguns"; return a, b }},
		{name: "naval enhancement on brigade", terrain: "plains",
			mutate: func(a, b *force.Army) (*force.Army, *force.Army) {
				a.Brigades[0].EnhancementID = "marine_detachment"
				return a, b
			}},
		{name: "enhancement type mismatch", terrain: "plains",
			mutate: func(a, b *force.Army) (*force.Army, *force.Army) {
				a.Brigades[0].EnhancementID = "lancers" // cavalry kit on a heavy brigade
				return a, b
			}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := tc.mutate(good(), enemy())
			result, err := ResolveLandBattle(a, b, tc.terrain, 1)
			require.Error(t, err)
			assert.True(t, IsConfigError(err))
			assert.Nil(t, result)
		})
	}
}

func TestResolveNavalBattleValidation(t *testing.T) {
	good := func() *force.Armada {
		return force.NewUniformArmada("red-fleet", "Calloway", 2, "accurate", 2, catalog.DoctrineGunnery)
	}
	enemy := func() *force.Armada {
		return force.NewUniformArmada("blue-fleet", "Reyes", 2, "", 2, catalog.DoctrineBoarding)
	}

	tests := []struct {
		name    string
		mutate  func(a, b *force.Armada) (*force.Armada, *force.Armada)
		terrain string
	}{
		{name: "nil armada", terrain: "open_seas",
			mutate: func(a, b *force.Armada) (*force.Armada, *force.Armada) { return a, nil }},
		{name: "duplicate IDs", terrain: "open_seas",
			mutate: func(a, b *force.Armada) (*force.Armada, *force.Armada) { b.ID = a.ID; return a, b }},
		{name: "unknown sea terrain", terrain: "maelstrom",
			mutate: func(a, b *force.Armada) (*force.Armada, *force.Armada) { return a, b }},
		{name: "no ships afloat", terrain: "open_seas",
			mutate: func(a, b *force.Armada) (*force.Armada, *force.Armada) {
				for _, ship := range a.Ships {
					ship.Status = force.ShipSunk
				}
				return a, b
			}},
		{name: "admiral level out of range", terrain: "open_seas",
			mutate: func(a, b *force.Armada) (*force.Armada, *force.Armada) { a.Admiral.Level = 9; return a, b }},
		{name: "unknown admiral trait", terrain: "open_seas",
			mutate: func(a, b *force.Armada) (*force.Armada, *force.Armada) { a.Admiral.TraitID = "kraken"; return a, b }},
		{name: "invalid doctrine", terrain: "open_seas",
			mutate: func(a, b *force.Armada) (*force.Armada, *force.Armada) { a.Ships[0].Doctrine = "ramming"; return a, b }},
		{name: "hull out of range", terrain: "open_seas",
			mutate: func(a, b *force.Armada) (*force.Armada, *force.Armada) { a.Ships[0].Hull = 0; return a, b }},
		{name: "land enhancement on ship", terrain: "open_seas",
			mutate: func(a, b *force.Armada) (*force.Armada, *force.Armada) {
				a.Ships[0].EnhancementID = "grenadiers"
				return a, b
			}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := tc.mutate(good(), enemy())
			result, err := ResolveNavalBattle(a, b, tc.terrain, 1)
			require.Error(t, err)
			assert.True(t, IsConfigError(err))
			assert.Nil(t, result)
		})
	}
}

func TestMirrorMatchIsNeverDecisive(t *testing.T) {
	// a single pass between identical heavy lines cannot open a 40% margin
	for seed := int64(0); seed < 50; seed++ {
		red := force.NewUniformArmy("red", "Verding", 1, "", 6, catalog.BrigadeHeavy)
		blue := force.NewUniformArmy("blue", "Osterhagen", 1, "", 6, catalog.BrigadeHeavy)
		result, err := ResolveLandBattle(red, blue, "plains", seed)
		require.NoError(t, err)
		assert.NotEqual(t, Decisive, result.Outcome, "seed %d", seed)
	}
}

func TestHeavyMirrorOnPlainsIsMostlyClose(t *testing.T) {
	// identical 8-heavy lines under level-3 generals: the dice alone decide,
	// so most battles end Close with a thin Stalemate tail and none Decisive
	outcomes := map[OutcomeClass]int{}
	for seed := int64(0); seed < 1000; seed++ {
		red := force.NewUniformArmy("red", "Verding", 3, "", 8, catalog.BrigadeHeavy)
		blue := force.NewUniformArmy("blue", "Osterhagen", 3, "", 8, catalog.BrigadeHeavy)
		result, err := ResolveLandBattle(red, blue, "plains", seed)
		require.NoError(t, err)
		outcomes[result.Outcome]++
	}
	assert.Zero(t, outcomes[Decisive], "outcomes=%v", outcomes)
	assert.Greater(t, outcomes[Close], 3*outcomes[Stalemate], "outcomes=%v", outcomes)
	assert.Greater(t, outcomes[Close], 700, "outcomes=%v", outcomes)
	assert.Greater(t, outcomes[Stalemate], 50, "outcomes=%v", outcomes)
}

func TestMountainFavorsHeavyOverCavalry(t *testing.T) {
	heavyWins, cavWins := 0, 0
	for seed := int64(0); seed < 300; seed++ {
		heavy := force.NewUniformArmy("heavy-army", "Verding", 1, "", 4, catalog.BrigadeHeavy)
		cavalry := force.NewUniformArmy("cavalry-army", "Osterhagen", 1, "", 4, catalog.BrigadeCavalry)
		result, err := ResolveLandBattle(heavy, cavalry, "mountain", seed)
		require.NoError(t, err)
		switch result.Victor {
		case "heavy-army":
			heavyWins++
		case "cavalry-army":
			cavWins++
		}
	}
	assert.Greater(t, heavyWins, 3*cavWins, "heavy=%d cavalry=%d", heavyWins, cavWins)
	assert.Greater(t, heavyWins, 150, "heavy should take a clear majority of 300 battles")
}

func TestResolveLandBattleInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		terrainID := rapid.SampledFrom(catalog.LandTerrainIDs()).Draw(t, "terrain")
		sizeA := rapid.IntRange(1, 8).Draw(t, "sizeA")
		sizeB := rapid.IntRange(1, 8).Draw(t, "sizeB")
		types := []catalog.BrigadeType{catalog.BrigadeHeavy, catalog.BrigadeLight, catalog.BrigadeCavalry}
		typeA := rapid.SampledFrom(types).Draw(t, "typeA")
		typeB := rapid.SampledFrom(types).Draw(t, "typeB")

		red := force.NewUniformArmy("red", "Verding", 1, "", sizeA, typeA)
		blue := force.NewUniformArmy("blue", "Osterhagen", 1, "", sizeB, typeB)

		result, err := ResolveLandBattle(red, blue, terrainID, seed)
		require.NoError(t, err)

		assert.Equal(t, KindLand, result.Kind)
		assert.Equal(t, 1, result.Rounds)
		assert.GreaterOrEqual(t, result.CasualtiesA, 0.0)
		assert.LessOrEqual(t, result.CasualtiesA, 100.0)
		assert.GreaterOrEqual(t, result.CasualtiesB, 0.0)
		assert.LessOrEqual(t, result.CasualtiesB, 100.0)
		if result.Outcome == Stalemate {
			assert.Empty(t, result.Victor)
		} else {
			assert.Contains(t, []string{"red", "blue"}, result.Victor)
		}
		assert.NotEmpty(t, result.Log)
	})
}

func TestResolveNavalBattleInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		terrainID := rapid.SampledFrom(catalog.SeaTerrainIDs()).Draw(t, "terrain")
		sizeA := rapid.IntRange(1, 6).Draw(t, "sizeA")
		sizeB := rapid.IntRange(1, 6).Draw(t, "sizeB")
		doctrines := []catalog.Doctrine{catalog.DoctrineGunnery, catalog.DoctrineBoarding}
		docA := rapid.SampledFrom(doctrines).Draw(t, "docA")
		docB := rapid.SampledFrom(doctrines).Draw(t, "docB")

		red := force.NewUniformArmada("red-fleet", "Calloway", 1, "", sizeA, docA)
		blue := force.NewUniformArmada("blue-fleet", "Reyes", 1, "", sizeB, docB)

		result, err := ResolveNavalBattle(red, blue, terrainID, seed)
		require.NoError(t, err)

		assert.Equal(t, KindNaval, result.Kind)
		assert.NotEmpty(t, result.PairOutcomes)
		for _, pair := range result.PairOutcomes {
			if pair.Terminal != PairStalemate && pair.Winner != "" {
				assert.Contains(t, []string{"red-fleet", "blue-fleet"}, pair.Winner)
			}
		}
		assert.GreaterOrEqual(t, result.CasualtiesA, 0.0)
		assert.LessOrEqual(t, result.CasualtiesA, 100.0)
		if result.Outcome == Stalemate {
			assert.Empty(t, result.Victor)
		}
		assert.NotEmpty(t, result.Log)
	})
}

func TestNewEnginePanicsOnInvalidTuning(t *testing.T) {
	assert.Panics(t, func() { NewEngine(WithTuning(Tuning{})) })
}
