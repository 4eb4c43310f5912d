// Package config provides YAML-based game configuration loading and
// difficulty presets for LilyHop.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains the complete, immutable game configuration.
// Distances are in field units, one unit per screen pixel of the reference layout.
type Config struct {
	Field   FieldConfig   `yaml:"field"`
	Lily    LilyConfig    `yaml:"lily"`
	Frog    FrogConfig    `yaml:"frog"`
	Physics PhysicsConfig `yaml:"physics"`
}

// FieldConfig defines the playing field.
type FieldConfig struct {
	Width  float64 `yaml:"game_width"`
	Height float64 `yaml:"game_height"`
	SpawnY float64 `yaml:"spawn_y"` // Vertical row the pads travel along
}

// LilyConfig defines lily pad sizes and the random pad rules.
type LilyConfig struct {
	Width               float64 `yaml:"lily_width"`
	Height              float64 `yaml:"lily_height"`
	BadTransformChance  float64 `yaml:"bad_lily_transform_chance"`  // Chance a normal pad turns hazardous at a bounce
	GoldChance          float64 `yaml:"gold_lily_transform_chance"` // Chance a spawned pad is gold
	GoldSpeedMultiplier float64 `yaml:"gold_lily_speed_multiplier"`
	GoldScore           int     `yaml:"gold_lily_score"`
}

// FrogConfig defines the frog and its jump.
type FrogConfig struct {
	Width          float64 `yaml:"frog_width"`
	Height         float64 `yaml:"frog_height"`
	JumpHeight     float64 `yaml:"jump_height"`
	JumpDurationMs int     `yaml:"jump_duration_ms"`
	LandingMargin  float64 `yaml:"landing_margin"` // Inset applied to both pad edges in the landing test
}

// PhysicsConfig defines pad speed and its progression.
type PhysicsConfig struct {
	BaseSpeed      float64 `yaml:"base_speed"`      // Field units per reference frame
	SpeedIncrement float64 `yaml:"speed_increment"` // Added after every successful landing
	ReferenceFPS   int     `yaml:"reference_fps"`   // Frame rate the speeds are expressed in
}

// JumpDuration returns the flight time of a jump.
func (c Config) JumpDuration() time.Duration {
	return time.Duration(c.Frog.JumpDurationMs) * time.Millisecond
}

// FrameDuration returns the duration of one reference frame.
func (c Config) FrameDuration() time.Duration {
	fps := c.Physics.ReferenceFPS
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// MaxPadX returns the right-most resting position of a pad.
func (c Config) MaxPadX() float64 {
	return c.Field.Width - c.Lily.Width
}

// FrogX returns the left edge of the horizontally centred frog.
func (c Config) FrogX() float64 {
	return (c.Field.Width - c.Frog.Width) / 2
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field size must be positive", ErrInvalid)
	case c.Lily.Width <= 0 || c.Lily.Height <= 0:
		return fmt.Errorf("%w: lily size must be positive", ErrInvalid)
	case c.Frog.Width <= 0 || c.Frog.Height <= 0:
		return fmt.Errorf("%w: frog size must be positive", ErrInvalid)
	case c.Lily.Width > c.Field.Width || c.Frog.Width > c.Field.Width:
		return fmt.Errorf("%w: lily and frog must fit in the field", ErrInvalid)
	case c.Physics.BaseSpeed < 0 || c.Physics.SpeedIncrement < 0:
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalid)
	case c.Lily.GoldSpeedMultiplier < 0:
		return fmt.Errorf("%w: gold speed multiplier must not be negative", ErrInvalid)
	case !isProbability(c.Lily.BadTransformChance):
		return fmt.Errorf("%w: bad_lily_transform_chance %v not in [0,1]", ErrInvalid, c.Lily.BadTransformChance)
	case !isProbability(c.Lily.GoldChance):
		return fmt.Errorf("%w: gold_lily_transform_chance %v not in [0,1]", ErrInvalid, c.Lily.GoldChance)
	case c.Lily.GoldScore < 0:
		return fmt.Errorf("%w: gold_lily_score must not be negative", ErrInvalid)
	case c.Frog.JumpDurationMs <= 0:
		return fmt.Errorf("%w: jump_duration_ms must be positive", ErrInvalid)
	case c.Frog.LandingMargin < 0:
		return fmt.Errorf("%w: landing_margin must not be negative", ErrInvalid)
	case 2*c.Frog.LandingMargin >= c.Lily.Width:
		return fmt.Errorf("%w: landing_margin %v leaves no landing area on a %v wide lily", ErrInvalid, c.Frog.LandingMargin, c.Lily.Width)
	case c.Physics.ReferenceFPS <= 0:
		return fmt.Errorf("%w: reference_fps must be positive", ErrInvalid)
	}
	return nil
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
