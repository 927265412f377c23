package generator

import (
	"fmt"

	"github.com/vovakirdan/tui-climber/internal/core"
)

// ObstacleKind distinguishes fixed blocks from moving hazards.
type ObstacleKind int

const (
	KindStatic ObstacleKind = iota
	KindMoving
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	if k == KindMoving {
		return "moving"
	}
	return "static"
}

// MarshalYAML encodes the kind by name.
func (k ObstacleKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// Movement holds the initial motion parameters of a moving hazard.
// The engine only emits these values; whoever integrates motion owns and
// mutates them each tick.
type Movement struct {
	Speed     float64 `yaml:"speed"`
	MinX      float64 `yaml:"min_x"`
	MaxX      float64 `yaml:"max_x"`
	Direction int     `yaml:"direction"` // +1 right, -1 left
}

// Obstacle is one generated rectangle. The embedded Rect X is the left edge
// and Y the row the obstacle belongs to.
type Obstacle struct {
	core.Rect `yaml:",inline"`
	RowIndex  int          `yaml:"row"`
	Kind      ObstacleKind `yaml:"kind"`
	Label     string       `yaml:"label"`
	Movement  *Movement    `yaml:"movement,omitempty"`
}

// Name returns the diagnostic name of the obstacle.
func (o Obstacle) Name() string {
	if o.Kind == KindMoving {
		return fmt.Sprintf("MovingObstacle_Row%d", o.RowIndex)
	}
	return fmt.Sprintf("Obstacle_Row%d_%s", o.RowIndex, o.Label)
}

// newStatic builds a static obstacle spanning [x, x+w) on the given row.
func newStatic(row Row, x, w, h float64, label string) Obstacle {
	return Obstacle{
		Rect:     core.NewRect(x, row.Y, w, h),
		RowIndex: row.Index,
		Kind:     KindStatic,
		Label:    label,
	}
}
