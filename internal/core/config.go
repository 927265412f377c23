package core

import "time"

// RuntimeConfig contains per-invocation settings shared by the commands.
type RuntimeConfig struct {
	ScreenW int   // Diagnostic screen width in characters
	ScreenH int   // Diagnostic screen height in characters
	Seed    int64 // RNG seed for deterministic generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time
	}
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
