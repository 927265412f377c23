// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the climber generator.
package config

// ClimberConfig contains all configuration for the climber.
type ClimberConfig struct {
	Generator  GeneratorConfig  `yaml:"generator"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// GeneratorConfig is the record the generation engine is constructed from.
// The play area spans [GameStartPosition, GameWidth] on the x axis.
type GeneratorConfig struct {
	GameStartPosition float64          `yaml:"game_start_position"`
	GameWidth         float64          `yaml:"game_width"`
	JumpWidth         float64          `yaml:"jump_width"`  // Narrowest gap the agent can pass
	RowSpacing        float64          `yaml:"row_spacing"` // Vertical distance between rows
	MinObstacleWidth  float64          `yaml:"min_obstacle_width"`
	MaxObstacleWidth  float64          `yaml:"max_obstacle_width"`
	ObstacleHeight    float64          `yaml:"obstacle_height"`
	Difficulty        DifficultyConfig `yaml:"difficulty"`
}

// PlayWidth returns the usable horizontal extent of the play area.
func (g GeneratorConfig) PlayWidth() float64 {
	return g.GameWidth - g.GameStartPosition
}

// DifficultyConfig defines the stepwise difficulty progression.
type DifficultyConfig struct {
	Initial         float64 `yaml:"initial"`
	IncreaseRate    float64 `yaml:"increase_rate"`     // Added once per step
	RowsPerIncrease int     `yaml:"rows_per_increase"` // Rows per step; 0 disables progression
}

// SimulationConfig drives the headless climbing agent used by simulate.
type SimulationConfig struct {
	ClimbSpeed   float64 `yaml:"climb_speed"`   // World units climbed per tick
	Lookahead    float64 `yaml:"lookahead"`     // Distance generated ahead of the agent
	RetireBuffer float64 `yaml:"retire_buffer"` // Distance kept behind the agent
	Ticks        int     `yaml:"ticks"`
}
