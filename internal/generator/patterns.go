package generator

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

// GeneratePattern places the static obstacles of one row.
// fallback reports that the Random pattern placed nothing and the row was
// filled with the Gap pattern instead.
func GeneratePattern(kind PatternKind, g config.GeneratorConfig, row Row, src Source) (obstacles []Obstacle, fallback bool) {
	switch kind {
	case PatternGap:
		return gapPattern(g, row, src), false
	case PatternRandom:
		return randomPattern(g, row, src)
	case PatternAlternating:
		return alternatingPattern(g, row, src), false
	case PatternZigZag:
		return zigZagPattern(g, row), false
	default:
		return randomPattern(g, row, src)
	}
}

// gapPattern fills the row except for one gap exactly JumpWidth wide.
func gapPattern(g config.GeneratorConfig, row Row, src Source) []Obstacle {
	start := g.GameStartPosition
	gapStart := uniform(src, start, g.GameWidth-g.JumpWidth)
	gapEnd := gapStart + g.JumpWidth

	obstacles := make([]Obstacle, 0, 2)
	if gapStart > start {
		obstacles = append(obstacles, newStatic(row, start, gapStart-start, g.ObstacleHeight, "Left"))
	}
	if gapEnd < g.GameWidth {
		obstacles = append(obstacles, newStatic(row, gapEnd, g.GameWidth-gapEnd, g.ObstacleHeight, "Right"))
	}
	return obstacles
}

// randomPattern scatters blocks so that every pair stays JumpWidth apart.
// Placement gets three attempts per wanted block; if none sticks the row
// falls back to the Gap pattern so it still has a guaranteed gap.
func randomPattern(g config.GeneratorConfig, row Row, src Source) ([]Obstacle, bool) {
	minObstacles := max(1, int(math.Floor(row.Difficulty)))
	maxObstacles := int(math.Floor(g.GameWidth / (g.MinObstacleWidth + g.JumpWidth)))
	numObstacles := min(maxObstacles, minObstacles+randInt(src, 0, 6))
	maxWidth := math.Min(g.MaxObstacleWidth, g.GameWidth/4)

	placed := make([]core.Rect, 0, max(numObstacles, 0))
	for attempt := 0; attempt < numObstacles*3; attempt++ {
		if len(placed) >= numObstacles {
			break
		}

		width := uniform(src, g.MinObstacleWidth, maxWidth)
		x := uniform(src, g.GameStartPosition, g.GameWidth-width)
		candidate := core.NewRect(x, row.Y, width, g.ObstacleHeight)

		if jumpableFrom(candidate, placed, g.JumpWidth) {
			placed = append(placed, candidate)
		}
	}

	if len(placed) == 0 {
		return gapPattern(g, row, src), true
	}

	obstacles := make([]Obstacle, len(placed))
	for i, r := range placed {
		obstacles[i] = newStatic(row, r.X, r.W, r.H, fmt.Sprintf("Random_%d", i))
	}
	return obstacles, false
}

// jumpableFrom reports whether candidate keeps a jumpable gap to every
// placed rectangle. A candidate is rejected only when its nearest edge
// distance is below jump AND it is not already jump-separated on either side.
func jumpableFrom(candidate core.Rect, placed []core.Rect, jump float64) bool {
	for _, existing := range placed {
		gap := math.Min(
			math.Abs(existing.X-candidate.Right()),
			math.Abs(candidate.X-existing.Right()),
		)
		separated := candidate.HorizontalGap(existing) >= jump
		if gap < jump && !separated {
			return false
		}
	}
	return true
}

// alternatingPattern places one block against a wall, leaving a gap of
// JumpWidth plus up to one unit on the other side.
func alternatingPattern(g config.GeneratorConfig, row Row, src Source) []Obstacle {
	start := g.GameStartPosition
	gapSize := g.JumpWidth + uniform(src, 0, 1)

	if src.Float64() > 0.5 {
		// Block on the left, gap against the right wall
		width := g.GameWidth - gapSize - start
		if width <= 0 {
			return nil
		}
		return []Obstacle{newStatic(row, start, width, g.ObstacleHeight, "Left")}
	}

	// Block on the right, gap against the left wall
	x := start + gapSize
	width := g.GameWidth - x
	if width <= 0 {
		return nil
	}
	return []Obstacle{newStatic(row, x, width, g.ObstacleHeight, "Right")}
}

// zigZagPattern splits the row into equal sections and puts a block in each,
// flush left in even sections and flush right in odd ones, so every section
// keeps JumpWidth open on one side.
func zigZagPattern(g config.GeneratorConfig, row Row) []Obstacle {
	start := g.GameStartPosition
	sections := int(math.Floor(row.Difficulty)) + 1
	sections = min(sections, int(math.Floor(g.GameWidth/(g.JumpWidth*2))))
	sections = max(sections, 1)

	sectionWidth := (g.GameWidth - start) / float64(sections)
	obstacleWidth := sectionWidth - g.JumpWidth
	if obstacleWidth <= 0 {
		return nil
	}

	obstacles := make([]Obstacle, 0, sections)
	for i := 0; i < sections; i++ {
		sectionX := start + float64(i)*sectionWidth
		if i%2 == 0 {
			obstacles = append(obstacles, newStatic(row, sectionX, obstacleWidth, g.ObstacleHeight, fmt.Sprintf("ZigLeft_%d", i)))
		} else {
			obstacles = append(obstacles, newStatic(row, sectionX+g.JumpWidth, obstacleWidth, g.ObstacleHeight, fmt.Sprintf("ZigRight_%d", i)))
		}
	}
	return obstacles
}
