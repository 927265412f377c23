package config

import (
	"errors"
	"fmt"
)

// ConfigurationError describes one rejected generator setting.
// The engine never validates its input; callers check with Validate before
// construction because invalid settings only degrade output (empty rows,
// no progression) rather than failing.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Reason)
}

// ErrInvalidConfig is matched by every error returned from Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Is lets errors.Is(err, ErrInvalidConfig) match any ConfigurationError.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Validate checks the generator record and returns all problems joined.
func Validate(g GeneratorConfig) error {
	var errs []error
	reject := func(field, reason string) {
		errs = append(errs, &ConfigurationError{Field: field, Reason: reason})
	}

	if g.RowSpacing <= 0 {
		reject("row_spacing", "must be positive")
	}
	if g.PlayWidth() <= 0 {
		reject("game_width", "must be greater than game_start_position")
	}
	if g.JumpWidth <= 0 {
		reject("jump_width", "must be positive")
	} else if g.JumpWidth >= g.PlayWidth() {
		reject("jump_width", "must be smaller than the play width")
	}
	if g.MinObstacleWidth <= 0 {
		reject("min_obstacle_width", "must be positive")
	}
	if g.MinObstacleWidth > g.MaxObstacleWidth {
		reject("min_obstacle_width", "must not exceed max_obstacle_width")
	}
	if g.ObstacleHeight <= 0 {
		reject("obstacle_height", "must be positive")
	}
	if g.Difficulty.IncreaseRate < 0 {
		reject("difficulty.increase_rate", "must not be negative")
	}
	if g.Difficulty.RowsPerIncrease < 0 {
		reject("difficulty.rows_per_increase", "must not be negative")
	}

	return errors.Join(errs...)
}

// ValidateSimulation checks the simulation section.
func ValidateSimulation(s SimulationConfig) error {
	var errs []error
	if s.ClimbSpeed < 0 {
		errs = append(errs, &ConfigurationError{Field: "simulation.climb_speed", Reason: "must not be negative"})
	}
	if s.Lookahead < 0 {
		errs = append(errs, &ConfigurationError{Field: "simulation.lookahead", Reason: "must not be negative"})
	}
	if s.RetireBuffer < 0 {
		errs = append(errs, &ConfigurationError{Field: "simulation.retire_buffer", Reason: "must not be negative"})
	}
	if s.Ticks < 0 {
		errs = append(errs, &ConfigurationError{Field: "simulation.ticks", Reason: "must not be negative"})
	}
	return errors.Join(errs...)
}
