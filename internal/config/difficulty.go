package config

// ApplyPreset modifies the rules based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *RulesConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Scoring.CollisionPenalty /= 2
		cfg.Scoring.PenaltyCooldown *= 2
		cfg.Scoring.TimeBonusPerSecond /= 2
	case DifficultyHard:
		cfg.Scoring.CollisionPenalty *= 2
		cfg.Scoring.PenaltyCooldown /= 2
		cfg.Scoring.TimeBonusPerSecond *= 2
	}
}
