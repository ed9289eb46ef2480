// Package main provides the batch battle simulator binary. It resolves a
// configured number of land or naval battles concurrently, writes one JSONL
// record per battle, and optionally persists reports to PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/blackpowder-sim/blackpowder/internal/config"
	"github.com/blackpowder-sim/blackpowder/internal/game/battle"
	"github.com/blackpowder-sim/blackpowder/internal/game/force"
	"github.com/blackpowder-sim/blackpowder/internal/observability"
	"github.com/blackpowder-sim/blackpowder/internal/sim"
	"github.com/blackpowder-sim/blackpowder/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	mode := flag.String("mode", "", "battle kind: land or naval (overrides config)")
	battles := flag.Int("battles", 0, "number of battles to resolve (overrides config)")
	workers := flag.Int("workers", 0, "concurrent resolution workers (overrides config)")
	terrain := flag.String("terrain", "", "terrain or sea lane identifier (overrides config)")
	seed := flag.Int64("seed", 0, "base seed; battle i uses seed+i (overrides config)")
	output := flag.String("out", "", "JSONL output path; empty = stdout (overrides config)")
	forcesDir := flag.String("forces-dir", "", "directory of force YAML files; empty = built-in samples")
	persist := flag.Bool("persist", false, "store battle reports in PostgreSQL")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	applyOverrides(&cfg, *mode, *battles, *workers, *terrain, *seed, *output, *forcesDir, *persist)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	simCfg := cfg.Simulation
	logger.Info("starting battle batch",
		zap.String("mode", simCfg.Mode),
		zap.String("terrain", simCfg.Terrain),
		zap.Int("battles", simCfg.Battles),
		zap.Int("workers", simCfg.Workers),
		zap.Int64("base_seed", simCfg.BaseSeed),
	)

	engine := battle.NewEngine(
		battle.WithTuning(cfg.Engine.Tuning()),
		battle.WithLogger(logger),
	)

	resolve, makeRecord, err := buildResolver(engine, simCfg)
	if err != nil {
		logger.Fatal("preparing forces", zap.Error(err))
	}

	runner := sim.NewRunner(simCfg.Workers, logger)
	results, err := runner.Run(ctx, simCfg.Battles, simCfg.BaseSeed, resolve)
	if err != nil {
		logger.Fatal("resolving battles", zap.Error(err))
	}

	records := make([]sim.Record, len(results))
	for i, result := range results {
		records[i] = makeRecord(simCfg.BaseSeed+int64(i), result)
	}

	if err := writeRecords(simCfg.Output, records); err != nil {
		logger.Fatal("writing records", zap.Error(err))
	}

	if simCfg.Persist {
		if err := persistReports(ctx, cfg, records, results); err != nil {
			logger.Fatal("persisting reports", zap.Error(err))
		}
	}

	logger.Info("batch complete",
		zap.Int("battles", len(records)),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// applyOverrides folds non-zero flag values over the loaded configuration.
func applyOverrides(cfg *config.Config, mode string, battles, workers int, terrain string, seed int64, output, forcesDir string, persist bool) {
	s := &cfg.Simulation
	if mode != "" {
		s.Mode = mode
	}
	if battles > 0 {
		s.Battles = battles
	}
	if workers > 0 {
		s.Workers = workers
	}
	if terrain != "" {
		s.Terrain = terrain
	}
	if seed != 0 {
		s.BaseSeed = seed
	}
	if output != "" {
		s.Output = output
	}
	if forcesDir != "" {
		s.ForcesDir = forcesDir
	}
	if persist {
		s.Persist = true
	}
}

// buildResolver binds the opposing forces and returns the per-battle resolve
// function plus a record builder carrying the force profiles.
func buildResolver(engine *battle.Engine, simCfg config.SimulationConfig) (sim.ResolveFunc, func(int64, *battle.BattleResult) sim.Record, error) {
	switch simCfg.Mode {
	case "land":
		var a, b *force.Army
		if simCfg.ForcesDir != "" {
			armies, err := force.LoadArmies(simCfg.ForcesDir)
			if err != nil {
				return nil, nil, err
			}
			if len(armies) < 2 {
				return nil, nil, fmt.Errorf("forces dir %s: need at least 2 army files, found %d", simCfg.ForcesDir, len(armies))
			}
			a, b = armies[0], armies[1]
		} else {
			a, b = force.SampleArmies()
		}
		resolve := func(ctx context.Context, index int, seed int64) (*battle.BattleResult, error) {
			return engine.ResolveLandBattle(a, b, simCfg.Terrain, seed)
		}
		makeRecord := func(seed int64, result *battle.BattleResult) sim.Record {
			return sim.NewLandRecord(simCfg.Terrain, a, b, seed, result)
		}
		return resolve, makeRecord, nil

	case "naval":
		var a, b *force.Armada
		if simCfg.ForcesDir != "" {
			fleets, err := force.LoadArmadas(simCfg.ForcesDir)
			if err != nil {
				return nil, nil, err
			}
			if len(fleets) < 2 {
				return nil, nil, fmt.Errorf("forces dir %s: need at least 2 fleet files, found %d", simCfg.ForcesDir, len(fleets))
			}
			a, b = fleets[0], fleets[1]
		} else {
			a, b = force.SampleArmadas()
		}
		resolve := func(ctx context.Context, index int, seed int64) (*battle.BattleResult, error) {
			return engine.ResolveNavalBattle(a, b, simCfg.Terrain, seed)
		}
		makeRecord := func(seed int64, result *battle.BattleResult) sim.Record {
			return sim.NewNavalRecord(simCfg.Terrain, a, b, seed, result)
		}
		return resolve, makeRecord, nil

	default:
		return nil, nil, fmt.Errorf("unknown simulation mode %q", simCfg.Mode)
	}
}

func writeRecords(path string, records []sim.Record) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return sim.WriteJSONL(w, records)
}

func persistReports(ctx context.Context, cfg config.Config, records []sim.Record, results []*battle.BattleResult) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	repo := postgres.NewBattleReportRepository(pool.DB())
	for i, rec := range records {
		if _, err := repo.Insert(ctx, rec, results[i]); err != nil {
			return err
		}
	}
	return nil
}
