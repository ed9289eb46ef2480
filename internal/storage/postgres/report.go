package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blackpowder-sim/blackpowder/internal/game/battle"
	"github.com/blackpowder-sim/blackpowder/internal/sim"
)

// BattleReport is one persisted battle outcome.
type BattleReport struct {
	ID      int64
	Kind    string
	Terrain string
	Seed    int64

	ForceA string
	ForceB string

	Victor  string
	Outcome string

	CasualtiesA float64
	CasualtiesB float64
	Rounds      int

	Log       []string
	CreatedAt time.Time
}

// ErrReportNotFound is returned when a report lookup yields no results.
var ErrReportNotFound = errors.New("battle report not found")

// BattleReportRepository provides battle report persistence operations.
type BattleReportRepository struct {
	db *pgxpool.Pool
}

// NewBattleReportRepository creates a BattleReportRepository backed by the
// given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewBattleReportRepository(db *pgxpool.Pool) *BattleReportRepository {
	return &BattleReportRepository{db: db}
}

// Insert stores one resolved battle.
//
// Postcondition: Returns the stored report with ID and CreatedAt set.
func (r *BattleReportRepository) Insert(ctx context.Context, rec sim.Record, result *battle.BattleResult) (BattleReport, error) {
	report := BattleReport{
		Kind:        rec.Kind,
		Terrain:     rec.Terrain,
		Seed:        rec.Seed,
		ForceA:      rec.ForceA,
		ForceB:      rec.ForceB,
		Victor:      rec.Victor,
		Outcome:     rec.Outcome,
		CasualtiesA: rec.CasualtiesA,
		CasualtiesB: rec.CasualtiesB,
		Rounds:      rec.Rounds,
	}
	if result != nil {
		lines := make([]string, 0, len(result.Log))
		for _, event := range result.Log {
			lines = append(lines, event.String())
		}
		report.Log = lines
	}
	if report.Log == nil {
		report.Log = []string{}
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO battle_reports
		   (kind, terrain, seed, force_a, force_b, victor, outcome,
		    casualties_a, casualties_b, rounds, log)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at`,
		report.Kind, report.Terrain, report.Seed,
		report.ForceA, report.ForceB, report.Victor, report.Outcome,
		report.CasualtiesA, report.CasualtiesB, report.Rounds, report.Log,
	).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return BattleReport{}, fmt.Errorf("inserting battle report: %w", err)
	}

	return report, nil
}

// Get fetches one report by ID.
//
// Postcondition: Returns ErrReportNotFound when no such report exists.
func (r *BattleReportRepository) Get(ctx context.Context, id int64) (BattleReport, error) {
	var report BattleReport
	err := r.db.QueryRow(ctx,
		`SELECT id, kind, terrain, seed, force_a, force_b, victor, outcome,
		        casualties_a, casualties_b, rounds, log, created_at
		 FROM battle_reports WHERE id = $1`,
		id,
	).Scan(
		&report.ID, &report.Kind, &report.Terrain, &report.Seed,
		&report.ForceA, &report.ForceB, &report.Victor, &report.Outcome,
		&report.CasualtiesA, &report.CasualtiesB, &report.Rounds,
		&report.Log, &report.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return BattleReport{}, ErrReportNotFound
		}
		return BattleReport{}, fmt.Errorf("fetching battle report %d: %w", id, err)
	}
	return report, nil
}

// ListRecent returns the most recently stored reports, newest first.
//
// Precondition: limit >= 1.
func (r *BattleReportRepository) ListRecent(ctx context.Context, limit int) ([]BattleReport, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, kind, terrain, seed, force_a, force_b, victor, outcome,
		        casualties_a, casualties_b, rounds, log, created_at
		 FROM battle_reports
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing battle reports: %w", err)
	}
	defer rows.Close()

	var reports []BattleReport
	for rows.Next() {
		var report BattleReport
		if err := rows.Scan(
			&report.ID, &report.Kind, &report.Terrain, &report.Seed,
			&report.ForceA, &report.ForceB, &report.Victor, &report.Outcome,
			&report.CasualtiesA, &report.CasualtiesB, &report.Rounds,
			&report.Log, &report.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning battle report: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating battle reports: %w", err)
	}
	return reports, nil
}

// OutcomeCounts returns the number of stored reports per outcome class for
// one battle kind.
func (r *BattleReportRepository) OutcomeCounts(ctx context.Context, kind string) (map[string]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT outcome, COUNT(*) FROM battle_reports WHERE kind = $1 GROUP BY outcome`,
		kind,
	)
	if err != nil {
		return nil, fmt.Errorf("counting outcomes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("scanning outcome count: %w", err)
		}
		counts[outcome] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating outcome counts: %w", err)
	}
	return counts, nil
}
