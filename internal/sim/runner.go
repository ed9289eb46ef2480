package sim

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/blackpowder-sim/blackpowder/internal/game/battle"
)

// progressEvery is the batch-progress logging interval.
const progressEvery = 100

// ResolveFunc resolves one battle of a batch. index is the battle's position
// in the batch; seed is the dice seed derived for it. Implementations must be
// safe for concurrent use: the runner invokes them from multiple workers.
type ResolveFunc func(ctx context.Context, index int, seed int64) (*battle.BattleResult, error)

// Runner resolves a batch of battles across a bounded worker pool.
type Runner struct {
	workers int
	logger  *zap.Logger
}

// NewRunner creates a Runner with the given worker count.
//
// Precondition: workers >= 1.
func NewRunner(workers int, logger *zap.Logger) *Runner {
	if workers < 1 {
		panic("sim: runner needs at least one worker")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{workers: workers, logger: logger}
}

// Run resolves battles 0..n-1, battle i seeded with baseSeed+i, and returns
// the results in batch order regardless of which worker finished first.
//
// The first resolution error cancels the remaining work and is returned.
// Postcondition: On success, every slot of the returned slice is non-nil.
func (r *Runner) Run(ctx context.Context, n int, baseSeed int64, resolve ResolveFunc) ([]*battle.BattleResult, error) {
	if n < 1 {
		return nil, fmt.Errorf("sim: batch size must be >= 1, got %d", n)
	}

	results := make([]*battle.BattleResult, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			result, err := resolve(ctx, i, baseSeed+int64(i))
			if err != nil {
				return fmt.Errorf("battle %d: %w", i, err)
			}
			results[i] = result
			if (i+1)%progressEvery == 0 {
				r.logger.Info("batch progress", zap.Int("resolved", i+1), zap.Int("total", n))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
