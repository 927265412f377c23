package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/generator"
)

func shortConfig(ticks int) config.ClimberConfig {
	cfg := config.DefaultConfig()
	cfg.Simulation.Ticks = ticks
	return cfg
}

func TestRunDeterministic(t *testing.T) {
	cfg := shortConfig(800)

	a, err := New(cfg, 77, nil).Run(context.Background())
	require.NoError(t, err)
	b, err := New(cfg, 77, nil).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRunProducesNoGapViolations(t *testing.T) {
	cfg := shortConfig(2000)

	for seed := int64(1); seed <= 20; seed++ {
		stats, err := New(cfg, seed, nil).Run(context.Background())
		require.NoError(t, err)

		assert.Zero(t, stats.GapViolations, "seed %d", seed)
		assert.Equal(t, 2000, stats.Ticks)
		assert.InDelta(t, 2000*cfg.Simulation.ClimbSpeed, stats.FinalFrontier, 1e-6)
	}
}

func TestRunBookkeeping(t *testing.T) {
	cfg := shortConfig(4000)
	s := New(cfg, 5, nil)

	stats, err := s.Run(context.Background())
	require.NoError(t, err)

	require.Positive(t, stats.RowsGenerated)
	assert.Equal(t, stats.RowsGenerated, stats.RowsRetired+s.Engine().RowCount(),
		"every generated row is either live or retired")

	total := 0
	for _, n := range stats.Patterns {
		total += n
	}
	assert.Equal(t, stats.RowsGenerated, total)

	// Live window stays bounded by lookahead plus retire buffer
	window := cfg.Simulation.Lookahead + cfg.Simulation.RetireBuffer
	maxRows := int(window/cfg.Generator.RowSpacing) + 2
	assert.LessOrEqual(t, s.Engine().RowCount(), maxRows)

	// 4000 ticks at 0.25 reaches row 250, where difficulty passes 3
	assert.Greater(t, stats.MaxDifficulty, 3.0)
	assert.Positive(t, stats.Hazards)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := New(shortConfig(1000), 1, nil).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, stats.Ticks)
}

func TestStepAdvancesFrontier(t *testing.T) {
	cfg := shortConfig(0)
	s := New(cfg, 3, nil)

	s.Step()
	s.Step()

	assert.InDelta(t, 2*cfg.Simulation.ClimbSpeed, s.Frontier(), 1e-9)
	assert.Positive(t, s.Engine().RowCount())
	assert.Equal(t, 2, s.Stats().Ticks)
}

func TestRunBatch(t *testing.T) {
	cfg := shortConfig(500)
	seeds := []int64{10, 11, 12, 13}

	results, err := RunBatch(context.Background(), cfg, seeds, nil)
	require.NoError(t, err)
	require.Len(t, results, len(seeds))

	for i, seed := range seeds {
		assert.Equal(t, seed, results[i].Seed)

		single, err := New(cfg, seed, nil).Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, single, results[i], "parallel run must match a serial run")
	}
}

func TestRunBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunBatch(ctx, shortConfig(100), []int64{1, 2}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatsRecord(t *testing.T) {
	stats := Stats{
		Seed:          9,
		Ticks:         10,
		RowsGenerated: 4,
		Patterns: map[generator.PatternKind]int{
			generator.PatternGap:    3,
			generator.PatternZigZag: 1,
		},
	}

	rec := stats.Record()
	assert.Equal(t, int64(9), rec.Seed)
	assert.Equal(t, 4, rec.RowsGenerated)
	assert.Equal(t, map[string]int{"gap": 3, "zigzag": 1}, rec.Patterns)
}
