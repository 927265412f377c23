package generator

import (
	"sort"

	"github.com/vovakirdan/tui-climber/internal/core"
)

// RowTracker records which row indices currently have generated content.
type RowTracker struct {
	rows map[int]struct{}
}

// NewRowTracker creates an empty tracker.
func NewRowTracker() *RowTracker {
	return &RowTracker{rows: make(map[int]struct{})}
}

// RowIndexFor returns the index of the row containing y.
func RowIndexFor(y, rowSpacing float64) int {
	return core.FloorDiv(y, rowSpacing)
}

// Has reports whether the row index is tracked.
func (t *RowTracker) Has(index int) bool {
	_, ok := t.rows[index]
	return ok
}

// Mark records a row index. Returns false if it was already tracked.
func (t *RowTracker) Mark(index int) bool {
	if t.Has(index) {
		return false
	}
	t.rows[index] = struct{}{}
	return true
}

// Evict forgets a row index so it can be generated again.
func (t *RowTracker) Evict(index int) {
	delete(t.rows, index)
}

// Len returns the number of tracked rows.
func (t *RowTracker) Len() int {
	return len(t.rows)
}

// Indices returns the tracked row indices in ascending order.
func (t *RowTracker) Indices() []int {
	out := make([]int, 0, len(t.rows))
	for idx := range t.rows {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}
