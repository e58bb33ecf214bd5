// Package config provides YAML-based rules configuration loading and
// difficulty presets for Parking Jam.
package config

import (
	"fmt"
	"time"
)

// RulesConfig contains all tunable rules of the game.
type RulesConfig struct {
	Movement MovementConfig `yaml:"movement"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Exit     ExitConfig     `yaml:"exit"`
	Input    InputConfig    `yaml:"input"`
	Clock    ClockConfig    `yaml:"clock"`
}

// MovementConfig defines vehicle movement parameters.
type MovementConfig struct {
	Speed float64 `yaml:"speed"` // Lot units per second
}

// ScoringConfig defines penalties and bonuses.
type ScoringConfig struct {
	CollisionPenalty   int     `yaml:"collision_penalty"`
	PenaltyCooldown    float64 `yaml:"penalty_cooldown"` // Seconds
	TimeBonusPerSecond float64 `yaml:"time_bonus_per_second"`
}

// ExitConfig defines where the target vehicle leaves the lot.
type ExitConfig struct {
	Threshold float64 `yaml:"threshold"`
}

// InputConfig defines how held keys are emulated on terminals.
type InputConfig struct {
	HoldInitialMS int `yaml:"hold_initial_ms"` // Release window after the first press
	HoldRepeatMS  int `yaml:"hold_repeat_ms"`  // Release window once key repeat has started
}

// HoldInitial returns the initial hold window as a duration.
func (c InputConfig) HoldInitial() time.Duration {
	return time.Duration(c.HoldInitialMS) * time.Millisecond
}

// HoldRepeat returns the repeat hold window as a duration.
func (c InputConfig) HoldRepeat() time.Duration {
	return time.Duration(c.HoldRepeatMS) * time.Millisecond
}

// ClockConfig defines frame timing limits.
type ClockConfig struct {
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // Seconds
}

// Validate reports the first invalid value in the config.
func (c RulesConfig) Validate() error {
	switch {
	case c.Movement.Speed <= 0:
		return fmt.Errorf("config: movement.speed must be positive, got %v", c.Movement.Speed)
	case c.Scoring.CollisionPenalty < 0:
		return fmt.Errorf("config: scoring.collision_penalty must not be negative, got %d", c.Scoring.CollisionPenalty)
	case c.Scoring.PenaltyCooldown < 0:
		return fmt.Errorf("config: scoring.penalty_cooldown must not be negative, got %v", c.Scoring.PenaltyCooldown)
	case c.Scoring.TimeBonusPerSecond < 0:
		return fmt.Errorf("config: scoring.time_bonus_per_second must not be negative, got %v", c.Scoring.TimeBonusPerSecond)
	case c.Exit.Threshold <= 0:
		return fmt.Errorf("config: exit.threshold must be positive, got %v", c.Exit.Threshold)
	case c.Input.HoldInitialMS <= 0 || c.Input.HoldRepeatMS <= 0:
		return fmt.Errorf("config: input hold windows must be positive, got %d/%d", c.Input.HoldInitialMS, c.Input.HoldRepeatMS)
	case c.Clock.MaxFrameDelta <= 0:
		return fmt.Errorf("config: clock.max_frame_delta must be positive, got %v", c.Clock.MaxFrameDelta)
	}
	return nil
}

// DifficultyPreset represents a named rules preset.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset validates a preset name. Empty means normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
