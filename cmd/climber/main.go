// climber generates endless climbing-course obstacle rows and inspects them
// from the terminal.
//
// Usage:
//
//	climber generate           - Generate rows ahead of a position and print them
//	climber simulate           - Run headless climbs and report statistics
//	climber inspect            - Draw a window of generated rows
//	climber runs               - Show stored simulation runs
//	climber config show        - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible generation
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - Difficulty preset: easy, normal, hard, fixed
//	--db <path>           - Set database path (default: ~/.climber/runs.db)
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "climber",
	Short: "Climber - Procedural obstacle rows for an endless climb",
	Long: `Climber procedurally generates rows of obstacles ahead of a climbing
agent. Every row keeps a gap the agent can jump through, and difficulty
grows with height.

Available commands:
  generate - Generate rows ahead of a position
  simulate - Run headless climbs and collect statistics
  inspect  - Draw a window of generated rows
  runs     - Show stored simulation runs
  config   - Show or validate the configuration

Examples:
  climber generate --from 0 --lookahead 40
  climber simulate --runs 8 --save
  climber inspect --seed 42 --at 200
  climber runs
  climber config show --difficulty hard`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the stderr logger shared by all commands.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "climber",
		Level:           level,
	}), nil
}

// loadConfig resolves the configuration from flags, applies the difficulty
// preset and validates the result.
func loadConfig() (config.ClimberConfig, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.ClimberConfig{}, fmt.Errorf("unknown difficulty preset %q", flagDifficulty)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.ClimberConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := config.Validate(cfg.Generator); err != nil {
		return config.ClimberConfig{}, err
	}
	if err := config.ValidateSimulation(cfg.Simulation); err != nil {
		return config.ClimberConfig{}, err
	}
	return cfg, nil
}

// runtimeConfig returns the per-invocation settings derived from flags.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	return rc
}
