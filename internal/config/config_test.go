package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML differs from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := Default()

	if cfg.JumpDuration() != 300*time.Millisecond {
		t.Errorf("JumpDuration() = %v", cfg.JumpDuration())
	}
	if cfg.FrameDuration() != time.Second/60 {
		t.Errorf("FrameDuration() = %v", cfg.FrameDuration())
	}
	if cfg.MaxPadX() != 270 {
		t.Errorf("MaxPadX() = %v, expected 270", cfg.MaxPadX())
	}
	if cfg.FrogX() != 145 {
		t.Errorf("FrogX() = %v, expected 145", cfg.FrogX())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Field.Width = 0 }, false},
		{"lily wider than field", func(c *Config) { c.Lily.Width = 400 }, false},
		{"negative speed", func(c *Config) { c.Physics.BaseSpeed = -1 }, false},
		{"chance above one", func(c *Config) { c.Lily.BadTransformChance = 1.5 }, false},
		{"negative gold chance", func(c *Config) { c.Lily.GoldChance = -0.1 }, false},
		{"zero jump", func(c *Config) { c.Frog.JumpDurationMs = 0 }, false},
		{"negative margin", func(c *Config) { c.Frog.LandingMargin = -1 }, false},
		{"margin covers lily", func(c *Config) { c.Frog.LandingMargin = 30 }, false},
		{"margin inverts lily", func(c *Config) { c.Frog.LandingMargin = 45 }, false},
		{"margin just fits", func(c *Config) { c.Frog.LandingMargin = 29 }, true},
		{"zero fps", func(c *Config) { c.Physics.ReferenceFPS = 0 }, false},
		{"certain hazard", func(c *Config) { c.Lily.BadTransformChance = 1 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  base_speed: 5\nlily:\n  gold_lily_score: 9\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.BaseSpeed != 5 {
		t.Errorf("BaseSpeed = %v, expected 5", cfg.Physics.BaseSpeed)
	}
	if cfg.Lily.GoldScore != 9 {
		t.Errorf("GoldScore = %v, expected 9", cfg.Lily.GoldScore)
	}
	// Untouched fields keep defaults
	if cfg.Field.Width != 330 {
		t.Errorf("Field.Width = %v, expected default 330", cfg.Field.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("frog:\n  jump_duration_ms: -3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() = %v, expected ErrInvalid", err)
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("round trip changed config: %+v", cfg)
	}
}

func TestApplyPreset(t *testing.T) {
	base := Default()

	fixed := Default()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Physics.SpeedIncrement != 0 {
		t.Errorf("fixed preset should disable progression, increment=%v", fixed.Physics.SpeedIncrement)
	}

	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Physics.BaseSpeed >= base.Physics.BaseSpeed {
		t.Error("easy preset should lower base speed")
	}

	hard := Default()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Lily.BadTransformChance <= base.Lily.BadTransformChance {
		t.Error("hard preset should raise hazard chance")
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset produced invalid config: %v", err)
	}

	normal := Default()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change config")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) = %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParsePreset(insane) = %v, expected ErrInvalid", err)
	}
}
