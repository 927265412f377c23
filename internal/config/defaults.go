package config

import (
	_ "embed"
)

//go:embed defaults/climber.yaml
var defaultClimberYAML []byte

// DefaultConfig returns the default climber configuration.
func DefaultConfig() ClimberConfig {
	return ClimberConfig{
		Generator: GeneratorConfig{
			GameStartPosition: 0,
			GameWidth:         10,
			JumpWidth:         2,
			RowSpacing:        4,
			MinObstacleWidth:  1,
			MaxObstacleWidth:  1.5,
			ObstacleHeight:    0.5,
			Difficulty: DifficultyConfig{
				Initial:         1,
				IncreaseRate:    0.1,
				RowsPerIncrease: 10,
			},
		},
		Simulation: SimulationConfig{
			ClimbSpeed:   0.25,
			Lookahead:    20,
			RetireBuffer: 10,
			Ticks:        3600, // one minute at 60 ticks per second
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultClimberYAML
}
