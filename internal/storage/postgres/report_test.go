package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackpowder-sim/blackpowder/internal/game/battle"
	"github.com/blackpowder-sim/blackpowder/internal/game/force"
	"github.com/blackpowder-sim/blackpowder/internal/sim"
	pgstore "github.com/blackpowder-sim/blackpowder/internal/storage/postgres"
	"github.com/blackpowder-sim/blackpowder/internal/testutil"
)

func reportRepo(t *testing.T) *pgstore.BattleReportRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	pc := testutil.NewPostgresContainer(t)
	pc.ApplyMigrations(t)
	return pgstore.NewBattleReportRepository(pc.RawPool)
}

func resolveSampleLand(t *testing.T, seed int64) (sim.Record, *battle.BattleResult) {
	t.Helper()
	a, b := force.SampleArmies()
	result, err := battle.ResolveLandBattle(a, b, "plains", seed)
	require.NoError(t, err)
	return sim.NewRecord("plains", a.ID, b.ID, seed, result), result
}

func TestBattleReportRepository_InsertAndGet(t *testing.T) {
	repo := reportRepo(t)
	ctx := context.Background()

	rec, result := resolveSampleLand(t, 17)
	stored, err := repo.Insert(ctx, rec, result)
	require.NoError(t, err)
	assert.NotZero(t, stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.NotEmpty(t, stored.Log)

	got, err := repo.Get(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Terrain, got.Terrain)
	assert.Equal(t, rec.Seed, got.Seed)
	assert.Equal(t, rec.Outcome, got.Outcome)
	assert.Equal(t, rec.Victor, got.Victor)
	assert.Equal(t, rec.CasualtiesA, got.CasualtiesA)
	assert.Equal(t, rec.CasualtiesB, got.CasualtiesB)
	assert.Equal(t, stored.Log, got.Log)
}

func TestBattleReportRepository_GetMissing(t *testing.T) {
	repo := reportRepo(t)

	_, err := repo.Get(context.Background(), 999999)
	assert.ErrorIs(t, err, pgstore.ErrReportNotFound)
}

func TestBattleReportRepository_ListRecent(t *testing.T) {
	repo := reportRepo(t)
	ctx := context.Background()

	var lastID int64
	for seed := int64(1); seed <= 3; seed++ {
		rec, result := resolveSampleLand(t, seed)
		stored, err := repo.Insert(ctx, rec, result)
		require.NoError(t, err)
		lastID = stored.ID
	}

	reports, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	// Newest first.
	assert.Equal(t, lastID, reports[0].ID)
	assert.Greater(t, reports[0].ID, reports[1].ID)
}

func TestBattleReportRepository_OutcomeCounts(t *testing.T) {
	repo := reportRepo(t)
	ctx := context.Background()

	total := 0
	for seed := int64(1); seed <= 5; seed++ {
		rec, result := resolveSampleLand(t, seed)
		_, err := repo.Insert(ctx, rec, result)
		require.NoError(t, err)
		total++
	}

	counts, err := repo.OutcomeCounts(ctx, "land")
	require.NoError(t, err)
	sum := 0
	for _, n := range counts {
		sum += n
	}
	assert.Equal(t, total, sum)

	naval, err := repo.OutcomeCounts(ctx, "naval")
	require.NoError(t, err)
	assert.Empty(t, naval)
}
