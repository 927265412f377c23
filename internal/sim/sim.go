// Package sim drives a generator engine headlessly with a synthetic agent
// that climbs at a constant speed, and collects statistics about the rows
// it produces.
package sim

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/generator"
)

// Stats summarizes one simulation run.
type Stats struct {
	Seed              int64
	Ticks             int
	FinalFrontier     float64
	RowsGenerated     int
	RowsRetired       int
	ObstaclesRetired  int
	Hazards           int
	Fallbacks         int
	PeakLiveObstacles int
	MaxDifficulty     float64
	GapViolations     int
	Patterns          map[generator.PatternKind]int
}

// Simulator owns one engine and the synthetic agent climbing through it.
type Simulator struct {
	cfg      config.ClimberConfig
	engine   *generator.Engine
	logger   *log.Logger
	frontier float64
	stats    Stats
}

// New creates a simulator for one seed. A nil logger discards output.
func New(cfg config.ClimberConfig, seed int64, logger *log.Logger) *Simulator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("seed", seed)

	return &Simulator{
		cfg:    cfg,
		engine: generator.New(cfg.Generator, generator.NewSource(seed), generator.WithLogger(logger)),
		logger: logger,
		stats: Stats{
			Seed:     seed,
			Patterns: make(map[generator.PatternKind]int),
		},
	}
}

// Engine exposes the underlying engine for inspection.
func (s *Simulator) Engine() *generator.Engine {
	return s.engine
}

// Frontier returns the agent's current position.
func (s *Simulator) Frontier() float64 {
	return s.frontier
}

// Stats returns a copy of the statistics collected so far.
func (s *Simulator) Stats() Stats {
	out := s.stats
	out.Patterns = make(map[generator.PatternKind]int, len(s.stats.Patterns))
	for k, v := range s.stats.Patterns {
		out.Patterns[k] = v
	}
	return out
}

// Step runs one tick: the agent climbs, rows ahead are generated and rows
// far enough behind are retired.
func (s *Simulator) Step() {
	g := s.cfg.Generator
	sc := s.cfg.Simulation

	s.frontier += sc.ClimbSpeed
	rowsBefore := s.engine.RowCount()

	created := s.engine.Advance(s.frontier, sc.Lookahead)
	for _, row := range created {
		s.stats.RowsGenerated++
		s.stats.Patterns[row.Pattern]++
		s.stats.MaxDifficulty = max(s.stats.MaxDifficulty, row.Difficulty)
		if row.Hazard {
			s.stats.Hazards++
		}
		if row.Fallback {
			s.stats.Fallbacks++
		}

		obstacles := s.engine.RowObstacles(row.Index)
		if !generator.HasJumpableGap(obstacles, g.GameStartPosition, g.GameWidth, g.JumpWidth) {
			s.stats.GapViolations++
			lo, hi := generator.WidestGap(obstacles, g.GameStartPosition, g.GameWidth)
			s.logger.Warn("row without jumpable gap",
				"row", row.Index,
				"pattern", row.Pattern,
				"widest", hi-lo,
			)
		}
	}

	s.stats.PeakLiveObstacles = max(s.stats.PeakLiveObstacles, s.engine.ObstacleCount())

	s.stats.ObstaclesRetired += s.engine.RetireBehind(s.frontier, sc.RetireBuffer)
	s.stats.RowsRetired += rowsBefore + len(created) - s.engine.RowCount()

	s.stats.Ticks++
	s.stats.FinalFrontier = s.frontier
}

// Run steps the simulator for the configured number of ticks.
// It stops early and returns the context error if ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) (Stats, error) {
	for i := 0; i < s.cfg.Simulation.Ticks; i++ {
		if err := ctx.Err(); err != nil {
			return s.Stats(), err
		}
		s.Step()
	}

	s.logger.Debug("simulation finished",
		"ticks", s.stats.Ticks,
		"rows", s.stats.RowsGenerated,
		"violations", s.stats.GapViolations,
	)
	return s.Stats(), nil
}
