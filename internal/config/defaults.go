package config

import (
	_ "embed"
)

//go:embed defaults/rules.yaml
var defaultRulesYAML []byte

// DefaultRulesConfig returns the default rules configuration.
func DefaultRulesConfig() RulesConfig {
	return RulesConfig{
		Movement: MovementConfig{
			Speed: 3.0,
		},
		Scoring: ScoringConfig{
			CollisionPenalty:   10,
			PenaltyCooldown:    0.5,
			TimeBonusPerSecond: 10,
		},
		Exit: ExitConfig{
			Threshold: 5.5,
		},
		Input: InputConfig{
			HoldInitialMS: 550,
			HoldRepeatMS:  120,
		},
		Clock: ClockConfig{
			MaxFrameDelta: 0.1,
		},
	}
}
