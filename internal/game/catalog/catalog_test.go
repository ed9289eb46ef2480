package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackpowder-sim/blackpowder/internal/game/catalog"
)

func TestLandTerrainCatalogComplete(t *testing.T) {
	ids := catalog.LandTerrainIDs()
	require.Len(t, ids, 8)
	for _, id := range ids {
		terr, ok := catalog.LandTerrain(id)
		require.True(t, ok, "terrain %q missing", id)
		assert.Equal(t, id, terr.ID)
		assert.Greater(t, terr.CombatWidth, 0)
	}
	_, ok := catalog.LandTerrain("swamp")
	assert.False(t, ok)
}

func TestSeaTerrainCatalogComplete(t *testing.T) {
	ids := catalog.SeaTerrainIDs()
	require.Len(t, ids, 4)
	for _, id := range ids {
		terr, ok := catalog.SeaTerrainByID(id)
		require.True(t, ok, "sea terrain %q missing", id)
		assert.Equal(t, id, terr.ID)
		assert.GreaterOrEqual(t, terr.StartBand, 0)
		assert.LessOrEqual(t, terr.StartBand, 4)
	}
}

func TestCombatWidthNarrowsWithTerrain(t *testing.T) {
	plains, _ := catalog.LandTerrain("plains")
	mountain, _ := catalog.LandTerrain("mountain")
	assert.Equal(t, 8, plains.CombatWidth)
	assert.Equal(t, 4, mountain.CombatWidth)
}

func TestTraitCatalogs(t *testing.T) {
	require.GreaterOrEqual(t, len(catalog.GeneralTraitIDs()), 10)
	require.GreaterOrEqual(t, len(catalog.AdmiralTraitIDs()), 10)

	for _, id := range catalog.GeneralTraitIDs() {
		tr, ok := catalog.GeneralTrait(id)
		require.True(t, ok, "general trait %q missing", id)
		assert.Equal(t, id, tr.ID)
	}
	for _, id := range catalog.AdmiralTraitIDs() {
		tr, ok := catalog.AdmiralTrait(id)
		require.True(t, ok, "admiral trait %q missing", id)
		assert.Equal(t, id, tr.ID)
	}

	_, ok := catalog.GeneralTrait("heroic")
	assert.False(t, ok)
}

func TestBrilliantScalesWithLevel(t *testing.T) {
	tr, ok := catalog.GeneralTrait("brilliant")
	require.True(t, ok)
	require.Len(t, tr.Rules, 1)
	assert.Equal(t, catalog.ScorePitch, tr.Rules[0].Score)
	assert.Equal(t, 1, tr.Rules[0].PerLevel)
	assert.Equal(t, 0, tr.Rules[0].Flat)
}

func TestEnhancementCatalog(t *testing.T) {
	ids := catalog.EnhancementIDs()
	require.GreaterOrEqual(t, len(ids), 8)
	for _, id := range ids {
		e, ok := catalog.EnhancementByID(id)
		require.True(t, ok, "enhancement %q missing", id)
		assert.Equal(t, id, e.ID)
		if e.Naval {
			assert.Empty(t, string(e.UnitType))
		} else {
			assert.True(t, e.UnitType.Valid(), "land enhancement %q must name a brigade type", id)
		}
	}
	pikes, _ := catalog.EnhancementByID("pikes")
	assert.Equal(t, 4, pikes.Bonus(catalog.ScoreDefense))
	assert.Equal(t, 0, pikes.Bonus(catalog.ScoreSkirmish))
}

func TestGunneryFalloffFavorsDoctrine(t *testing.T) {
	// Close range favors boarders, long range favors gunners.
	assert.Greater(t, catalog.GunneryFalloff(catalog.DoctrineBoarding, 0), catalog.GunneryFalloff(catalog.DoctrineGunnery, 0))
	assert.Greater(t, catalog.GunneryFalloff(catalog.DoctrineGunnery, 4), catalog.GunneryFalloff(catalog.DoctrineBoarding, 4))
	// Neutral at the middle band.
	assert.Equal(t, 0, catalog.GunneryFalloff(catalog.DoctrineGunnery, 2))
	assert.Equal(t, 0, catalog.GunneryFalloff(catalog.DoctrineBoarding, 2))
}

func TestTypeBonuses(t *testing.T) {
	assert.Equal(t, 2, catalog.TypeBonus(catalog.BrigadeHeavy, catalog.ScoreDefense))
	assert.Equal(t, 2, catalog.TypeBonus(catalog.BrigadeLight, catalog.ScoreSkirmish))
	assert.Equal(t, 1, catalog.TypeBonus(catalog.BrigadeCavalry, catalog.ScorePitch))
	assert.Equal(t, 0, catalog.TypeBonus(catalog.BrigadeCavalry, catalog.ScoreDefense))
	assert.Equal(t, 5, catalog.Movement(catalog.BrigadeCavalry))
}
