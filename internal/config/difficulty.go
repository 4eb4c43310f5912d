package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and empty leave the loaded values untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.BaseSpeed *= 0.75
		cfg.Physics.SpeedIncrement *= 0.5
		cfg.Lily.BadTransformChance *= 0.5
	case DifficultyHard:
		cfg.Physics.BaseSpeed *= 1.3
		cfg.Physics.SpeedIncrement *= 2
		cfg.Lily.BadTransformChance = min(cfg.Lily.BadTransformChance*1.5, 1)
	case DifficultyFixed:
		// No progression: speed stays at base for the whole run
		cfg.Physics.SpeedIncrement = 0
	}
}
