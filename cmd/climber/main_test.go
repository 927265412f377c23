package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-climber/internal/config"
)

func withFlags(t *testing.T, cfgPath, difficulty string) {
	t.Helper()
	oldCfg, oldDiff := flagConfig, flagDifficulty
	flagConfig, flagDifficulty = cfgPath, difficulty
	t.Cleanup(func() {
		flagConfig, flagDifficulty = oldCfg, oldDiff
	})
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "climber.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigAppliesPreset(t *testing.T) {
	withFlags(t, writeConfig(t, "generator:\n  game_width: 12\n"), "hard")

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, 12.0, cfg.Generator.GameWidth)
	assert.Equal(t, config.InitialDifficultyForPreset(config.DifficultyHard), cfg.Generator.Difficulty.Initial)
}

func TestLoadConfigRejectsUnknownPreset(t *testing.T) {
	withFlags(t, writeConfig(t, "{}\n"), "brutal")

	_, err := loadConfig()
	assert.ErrorContains(t, err, "brutal")
}

func TestLoadConfigRejectsInvalidGenerator(t *testing.T) {
	withFlags(t, writeConfig(t, "generator:\n  row_spacing: 0\n"), "")

	_, err := loadConfig()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	old := flagLogLevel
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogLevel = old })

	_, err := newLogger()
	assert.Error(t, err)
}
