package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHazardChance(t *testing.T) {
	assert.Equal(t, 0.0, HazardChance(1))
	assert.Equal(t, 0.0, HazardChance(2))
	assert.InDelta(t, 0.1, HazardChance(3), 1e-9)
	assert.InDelta(t, 0.3, HazardChance(5), 1e-9)
	assert.InDelta(t, 1.0, HazardChance(12), 1e-9)
	// Not capped
	assert.Greater(t, HazardChance(20), 1.0)
}

func TestSpawnHazardBelowThresholdDrawsNothing(t *testing.T) {
	src := &seqSource{vals: []float64{0}}
	_, ok := spawnHazard(testConfig(), Row{Index: 1, Y: 4, Difficulty: 2}, src)

	assert.False(t, ok)
	assert.Zero(t, src.drawn, "no draw at or below the threshold")
}

func TestSpawnHazard(t *testing.T) {
	cfg := testConfig()
	row := Row{Index: 3, Y: 12, Difficulty: 5}

	// chance roll, x, speed
	hazard, ok := spawnHazard(cfg, row, &seqSource{vals: []float64{0.1, 0.5, 0.5}})
	require.True(t, ok)

	assert.Equal(t, KindMoving, hazard.Kind)
	assert.Equal(t, "MovingObstacle_Row3", hazard.Name())
	assert.InDelta(t, 1.25, hazard.W, 1e-9)
	assert.InDelta(t, 4.375, hazard.X, 1e-9)
	assert.Equal(t, 12.0, hazard.Y)
	assert.Equal(t, cfg.ObstacleHeight, hazard.H)

	require.NotNil(t, hazard.Movement)
	assert.InDelta(t, 2.25, hazard.Movement.Speed, 1e-9)
	assert.Equal(t, 0.0, hazard.Movement.MinX)
	assert.Equal(t, 10.0, hazard.Movement.MaxX)
	assert.Equal(t, 1, hazard.Movement.Direction)
}

func TestSpawnHazardMissedRoll(t *testing.T) {
	src := &seqSource{vals: []float64{0.5}}
	_, ok := spawnHazard(testConfig(), Row{Difficulty: 5}, src)

	assert.False(t, ok)
	assert.Equal(t, 1, src.drawn)
}

func TestRowTracker(t *testing.T) {
	tr := NewRowTracker()

	assert.True(t, tr.Mark(3))
	assert.False(t, tr.Mark(3), "second mark is a no-op")
	assert.True(t, tr.Mark(-1))
	assert.True(t, tr.Has(3))
	assert.Equal(t, []int{-1, 3}, tr.Indices())

	tr.Evict(3)
	assert.False(t, tr.Has(3))
	assert.Equal(t, 1, tr.Len())
	assert.True(t, tr.Mark(3), "evicted rows can be marked again")
}

func TestRowIndexFor(t *testing.T) {
	assert.Equal(t, 0, RowIndexFor(0, 4))
	assert.Equal(t, 0, RowIndexFor(3.99, 4))
	assert.Equal(t, 1, RowIndexFor(4, 4))
	assert.Equal(t, -1, RowIndexFor(-0.5, 4))
	assert.Equal(t, -2, RowIndexFor(-4.5, 4))
}

func TestStoreRemoveBelow(t *testing.T) {
	s := NewStore()
	s.Add(
		newStatic(Row{Index: 1, Y: 4}, 0, 1, 0.5, "a"),
		newStatic(Row{Index: 2, Y: 8}, 0, 1, 0.5, "b"),
		newStatic(Row{Index: 1, Y: 4}, 5, 1, 0.5, "c"),
		newStatic(Row{Index: 3, Y: 12}, 0, 1, 0.5, "d"),
	)

	removed := s.RemoveBelow(5)
	require.Len(t, removed, 2)
	assert.Equal(t, "a", removed[0].Label)
	assert.Equal(t, "c", removed[1].Label)

	live := s.Snapshot()
	require.Len(t, live, 2)
	assert.Equal(t, "b", live[0].Label, "survivors keep their order")
	assert.Equal(t, "d", live[1].Label)

	assert.Nil(t, s.RemoveBelow(5), "nothing left below the threshold")
}

func TestStoreSnapshotIsCopy(t *testing.T) {
	s := NewStore()
	s.Add(newStatic(Row{Index: 1, Y: 4}, 0, 1, 0.5, "a"))

	snap := s.Snapshot()
	snap[0].X = 99

	assert.Equal(t, 0.0, s.Snapshot()[0].X)
}

func TestStoreQueries(t *testing.T) {
	s := NewStore()
	_, ok := s.Highest()
	assert.False(t, ok)

	hazard := newStatic(Row{Index: 2, Y: 8}, 3, 1, 0.5, "Moving")
	hazard.Kind = KindMoving
	s.Add(
		newStatic(Row{Index: 1, Y: 4}, 0, 1, 0.5, "a"),
		newStatic(Row{Index: 2, Y: 8}, 0, 1, 0.5, "b"),
		hazard,
	)

	top, ok := s.Highest()
	require.True(t, ok)
	assert.Equal(t, 8.5, top)
	assert.Equal(t, 1, s.Count(KindMoving))
	assert.Equal(t, 2, s.Count(KindStatic))
	assert.Len(t, s.ByRow(2), 2)
	assert.Empty(t, s.ByRow(7))
}

func TestWidestGap(t *testing.T) {
	block := func(x, w float64) Obstacle {
		return newStatic(Row{}, x, w, 1, "x")
	}

	tests := []struct {
		name      string
		obstacles []Obstacle
		lo, hi    float64
	}{
		{"empty row", nil, 0, 10},
		{"centre gap", []Obstacle{block(0, 4), block(6, 4)}, 4, 6},
		{"wall gap", []Obstacle{block(0, 7.5)}, 7.5, 10},
		{"overlapping spans", []Obstacle{block(0, 3), block(2, 3), block(8, 2)}, 5, 8},
		{"clipped to bounds", []Obstacle{block(-5, 6), block(9, 5)}, 1, 9},
		{"fully covered", []Obstacle{block(0, 10)}, 0, 0},
		{"outside the field", []Obstacle{block(-4, 2), block(12, 3), block(0, 6)}, 6, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := WidestGap(tt.obstacles, 0, 10)
			assert.InDelta(t, tt.lo, lo, 1e-9)
			assert.InDelta(t, tt.hi, hi, 1e-9)
		})
	}
}

func TestWidestGapOffsetField(t *testing.T) {
	left := newStatic(Row{}, 0, 5, 1, "x")
	right := newStatic(Row{}, 9, 4, 1, "x")

	lo, hi := WidestGap([]Obstacle{left, right}, 3, 13)
	assert.InDelta(t, 5, lo, 1e-9)
	assert.InDelta(t, 9, hi, 1e-9)
}

func TestWidestGapIgnoresHazards(t *testing.T) {
	hazard := newStatic(Row{}, 3, 4, 1, "Moving")
	hazard.Kind = KindMoving

	assert.True(t, HasJumpableGap([]Obstacle{hazard}, 0, 10, 10))
	assert.False(t, HasJumpableGap([]Obstacle{newStatic(Row{}, 3, 4, 1, "x")}, 0, 10, 4))
}
