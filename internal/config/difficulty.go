package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. An empty string is valid and
// means the config file's own difficulty section is used unchanged.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	case "":
		return "", true
	default:
		return "", false
	}
}

// InitialDifficultyForPreset returns the starting difficulty for a preset.
// Moving hazards only appear once difficulty exceeds 2.
func InitialDifficultyForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.0
	case DifficultyNormal:
		return 1.5
	case DifficultyHard:
		return 2.5
	default:
		return 1.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ClimberConfig, preset DifficultyPreset) {
	diff := &cfg.Generator.Difficulty
	switch preset {
	case "":
		return
	case DifficultyFixed:
		diff.IncreaseRate = 0
	default:
		diff.Initial = InitialDifficultyForPreset(preset)
	}

	if preset == DifficultyHard {
		diff.IncreaseRate *= 2
	}
}
