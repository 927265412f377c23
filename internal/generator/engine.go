// Package generator procedurally builds an endless vertical sequence of
// obstacle rows ahead of a climbing agent and retires rows left behind.
//
// An Engine is driven once per tick by a single owner: Advance extends the
// generated window toward the agent's frontier, Retire drops everything
// below a trailing threshold. Every row keeps at least one gap of JumpWidth
// so the agent can always pass. An Engine is not safe for concurrent use;
// independent engines may run in parallel.
package generator

import (
	"io"
	"math"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-climber/internal/config"
)

// Row is the immutable record of one generated row.
type Row struct {
	Index      int         `yaml:"index"`
	Y          float64     `yaml:"y"`
	Difficulty float64     `yaml:"difficulty"`
	Pattern    PatternKind `yaml:"pattern"`
	Fallback   bool        `yaml:"fallback,omitempty"` // Random placed nothing, Gap used instead
	Hazard     bool        `yaml:"hazard,omitempty"`
	Obstacles  int         `yaml:"obstacles"` // Number of obstacles created, hazard included
}

// GenerationState is a read-only view of the engine's progress.
type GenerationState struct {
	LastGeneratedY    float64
	CurrentDifficulty float64
	GeneratedRows     []int
}

// Engine generates and retires obstacle rows.
type Engine struct {
	cfg    config.GeneratorConfig
	src    Source
	rows   *RowTracker
	store  *Store
	logger *log.Logger

	records           map[int]Row
	lastGeneratedY    float64
	advanced          bool // Advance has run at least once
	currentDifficulty float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for generation diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine. The config is used as given; callers are expected
// to run config.Validate first.
func New(cfg config.GeneratorConfig, src Source, opts ...Option) *Engine {
	e := &Engine{
		cfg:               cfg,
		src:               src,
		rows:              NewRowTracker(),
		store:             NewStore(),
		logger:            log.New(io.Discard),
		records:           make(map[int]Row),
		currentDifficulty: cfg.Difficulty.Initial,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Advance generates every missing row between the frontier and
// frontierY+lookahead and returns the rows created by this call.
// Calling it again without moving the frontier generates nothing.
func (e *Engine) Advance(frontierY, lookahead float64) []Row {
	spacing := e.cfg.RowSpacing
	if spacing <= 0 {
		return nil
	}

	targetY := frontierY + lookahead
	startY := frontierY + spacing
	if e.advanced {
		startY = math.Max(e.lastGeneratedY, frontierY) + spacing
	}

	var created []Row
	for step := 0; ; step++ {
		// Multiply instead of accumulating so rows do not drift
		y := startY + float64(step)*spacing
		if y > targetY {
			break
		}

		index := RowIndexFor(y, spacing)
		if e.rows.Has(index) {
			continue
		}

		row := e.generateRow(index, y)
		e.rows.Mark(index)
		created = append(created, row)
	}

	e.lastGeneratedY = math.Max(e.lastGeneratedY, targetY-spacing)
	e.advanced = true

	return created
}

// generateRow builds and stores one row.
func (e *Engine) generateRow(index int, y float64) Row {
	e.currentDifficulty = difficultyFor(index, e.cfg.Difficulty)

	row := Row{
		Index:      index,
		Y:          y,
		Difficulty: e.currentDifficulty,
	}
	row.Pattern = choosePattern(index, e.src)

	obstacles, fallback := GeneratePattern(row.Pattern, e.cfg, row, e.src)
	row.Fallback = fallback
	if fallback {
		e.logger.Debug("random placement exhausted, using gap pattern", "row", index)
	}

	if hazard, ok := spawnHazard(e.cfg, row, e.src); ok {
		obstacles = append(obstacles, hazard)
		row.Hazard = true
	}
	row.Obstacles = len(obstacles)

	e.store.Add(obstacles...)
	e.records[index] = row

	e.logger.Debug("row generated",
		"row", index,
		"y", y,
		"pattern", row.Pattern,
		"difficulty", row.Difficulty,
		"obstacles", row.Obstacles,
		"hazard", row.Hazard,
	)
	return row
}

// Retire removes every obstacle below thresholdY and evicts the rows they
// belonged to, so those rows may be generated again. Rows below the
// threshold that produced no obstacles are evicted as well.
// Returns the number of obstacles removed.
func (e *Engine) Retire(thresholdY float64) int {
	removed := e.store.RemoveBelow(thresholdY)
	for _, o := range removed {
		e.evict(o.RowIndex)
	}

	// Collect first, then evict
	var empty []int
	for index, row := range e.records {
		if row.Y < thresholdY {
			empty = append(empty, index)
		}
	}
	for _, index := range empty {
		e.evict(index)
	}

	if len(removed) > 0 || len(empty) > 0 {
		e.logger.Debug("rows retired",
			"threshold", thresholdY,
			"obstacles", len(removed),
			"live", e.store.Len(),
		)
	}
	return len(removed)
}

// RetireBehind retires everything more than buffer below the frontier.
func (e *Engine) RetireBehind(frontierY, buffer float64) int {
	return e.Retire(frontierY - buffer)
}

func (e *Engine) evict(index int) {
	e.rows.Evict(index)
	delete(e.records, index)
}

// HasRow reports whether the row index is currently generated.
func (e *Engine) HasRow(index int) bool {
	return e.rows.Has(index)
}

// Rows returns the live row records ordered by index.
func (e *Engine) Rows() []Row {
	out := make([]Row, 0, len(e.records))
	for _, row := range e.records {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// RowCount returns the number of live rows.
func (e *Engine) RowCount() int {
	return e.rows.Len()
}

// Snapshot returns the live obstacles for the current tick.
func (e *Engine) Snapshot() []Obstacle {
	return e.store.Snapshot()
}

// RowObstacles returns the live obstacles of one row.
func (e *Engine) RowObstacles(index int) []Obstacle {
	return e.store.ByRow(index)
}

// ObstacleCount returns the number of live obstacles.
func (e *Engine) ObstacleCount() int {
	return e.store.Len()
}

// HazardCount returns the number of live moving hazards.
func (e *Engine) HazardCount() int {
	return e.store.Count(KindMoving)
}

// Highest returns the top edge of the highest live obstacle.
func (e *Engine) Highest() (float64, bool) {
	return e.store.Highest()
}

// State returns the current generation state.
func (e *Engine) State() GenerationState {
	return GenerationState{
		LastGeneratedY:    e.lastGeneratedY,
		CurrentDifficulty: e.currentDifficulty,
		GeneratedRows:     e.rows.Indices(),
	}
}
