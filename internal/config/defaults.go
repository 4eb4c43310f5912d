package config

import (
	_ "embed"
)

//go:embed defaults/lilyhop.yaml
var defaultYAML []byte

// Default returns the built-in configuration, matching the embedded YAML.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:  330,
			Height: 535,
			SpawnY: 330,
		},
		Lily: LilyConfig{
			Width:               60,
			Height:              60,
			BadTransformChance:  0.2,
			GoldChance:          0.15,
			GoldSpeedMultiplier: 1.5,
			GoldScore:           5,
		},
		Frog: FrogConfig{
			Width:          40,
			Height:         40,
			JumpHeight:     120,
			JumpDurationMs: 300,
			LandingMargin:  5,
		},
		Physics: PhysicsConfig{
			BaseSpeed:      3,
			SpeedIncrement: 0.05,
			ReferenceFPS:   60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
