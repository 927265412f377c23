package generator

import (
	"sort"

	"github.com/vovakirdan/tui-climber/internal/core"
)

// gapEpsilon absorbs float error when a gap is exactly JumpWidth wide.
const gapEpsilon = 1e-9

// WidestGap returns the widest interval inside [start, end] that no static
// obstacle covers. Moving hazards are ignored.
func WidestGap(obstacles []Obstacle, start, end float64) (lo, hi float64) {
	type span struct{ lo, hi float64 }
	spans := make([]span, 0, len(obstacles))
	for _, o := range obstacles {
		if o.Kind != KindStatic {
			continue
		}
		l, h := core.ClampF(o.X, start, end), core.ClampF(o.Right(), start, end)
		if h > l {
			spans = append(spans, span{l, h})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })

	cursor := start
	bestLo, bestHi := start, start
	for _, s := range spans {
		if s.lo-cursor > bestHi-bestLo {
			bestLo, bestHi = cursor, s.lo
		}
		cursor = max(cursor, s.hi)
	}
	if end-cursor > bestHi-bestLo {
		bestLo, bestHi = cursor, end
	}
	return bestLo, bestHi
}

// HasJumpableGap reports whether the row's static obstacles leave a free
// interval of at least jump inside [start, end].
func HasJumpableGap(obstacles []Obstacle, start, end, jump float64) bool {
	lo, hi := WidestGap(obstacles, start, end)
	return hi-lo >= jump-gapEpsilon
}
