package generator

import (
	"math"

	"github.com/vovakirdan/tui-climber/internal/config"
)

// DifficultyFor returns the difficulty of a row.
// Difficulty rises by increaseRate once every rowsPerStep rows; a
// non-positive rowsPerStep disables progression.
func DifficultyFor(rowIndex int, initial, increaseRate float64, rowsPerStep int) float64 {
	if rowsPerStep <= 0 {
		return initial
	}
	steps := math.Floor(float64(rowIndex) / float64(rowsPerStep))
	return initial + steps*increaseRate
}

// difficultyFor applies a difficulty config to a row index.
func difficultyFor(rowIndex int, d config.DifficultyConfig) float64 {
	return DifficultyFor(rowIndex, d.Initial, d.IncreaseRate, d.RowsPerIncrease)
}
