package generator

import (
	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

// hazardThreshold is the difficulty above which moving hazards can appear.
const hazardThreshold = 2.0

// HazardChance returns the probability that a row of the given difficulty
// receives a moving hazard. It grows linearly past the threshold and is not
// capped; it reaches 1 at difficulty 12.
func HazardChance(difficulty float64) float64 {
	if difficulty <= hazardThreshold {
		return 0
	}
	return 0.3 * (difficulty - hazardThreshold) / 3
}

// spawnHazard rolls for a moving hazard on the row.
// No random draw happens at or below the threshold.
func spawnHazard(g config.GeneratorConfig, row Row, src Source) (Obstacle, bool) {
	if row.Difficulty <= hazardThreshold {
		return Obstacle{}, false
	}
	if src.Float64() >= HazardChance(row.Difficulty) {
		return Obstacle{}, false
	}

	width := g.MinObstacleWidth + (g.MaxObstacleWidth-g.MinObstacleWidth)*0.5
	x := uniform(src, g.GameStartPosition, g.GameWidth-width)
	speed := 1 + src.Float64()*row.Difficulty*0.5

	return Obstacle{
		Rect:     core.NewRect(x, row.Y, width, g.ObstacleHeight),
		RowIndex: row.Index,
		Kind:     KindMoving,
		Label:    "Moving",
		Movement: &Movement{
			Speed:     speed,
			MinX:      g.GameStartPosition,
			MaxX:      g.GameWidth,
			Direction: 1,
		},
	}, true
}
