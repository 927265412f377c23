package sim

import (
	"context"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

// RunBatch runs one independent simulator per seed in parallel and returns
// their stats in seed order. Each engine is owned by a single goroutine.
func RunBatch(ctx context.Context, cfg config.ClimberConfig, seeds []int64, logger *log.Logger) ([]Stats, error) {
	results := make([]Stats, len(seeds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			stats, err := New(cfg, seed, logger).Run(ctx)
			if err != nil {
				return err
			}
			results[i] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Record converts the stats into a storable run summary.
func (s Stats) Record() storage.RunRecord {
	patterns := make(map[string]int, len(s.Patterns))
	for k, v := range s.Patterns {
		patterns[k.String()] = v
	}
	return storage.RunRecord{
		Seed:              s.Seed,
		Ticks:             s.Ticks,
		FinalFrontier:     s.FinalFrontier,
		RowsGenerated:     s.RowsGenerated,
		RowsRetired:       s.RowsRetired,
		ObstaclesRetired:  s.ObstaclesRetired,
		Hazards:           s.Hazards,
		Fallbacks:         s.Fallbacks,
		PeakLiveObstacles: s.PeakLiveObstacles,
		MaxDifficulty:     s.MaxDifficulty,
		GapViolations:     s.GapViolations,
		Patterns:          patterns,
	}
}
