package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadRules("")
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	if cfg != DefaultRulesConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultRulesConfig())
	}
}

func TestLoadRulesSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", RulesFile), "movement:\n  speed: 4\n")
	cfg, err := LoadRules("")
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	if cfg.Movement.Speed != 4 {
		t.Errorf("local config: speed = %v, expected 4", cfg.Movement.Speed)
	}

	writeFile(t, filepath.Join(home, ".parkjam", "configs", RulesFile), "movement:\n  speed: 5\n")
	cfg, err = LoadRules("")
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	if cfg.Movement.Speed != 5 {
		t.Errorf("user config should win over local: speed = %v, expected 5", cfg.Movement.Speed)
	}

	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, "movement:\n  speed: 6\n")
	cfg, err = LoadRules(custom)
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	if cfg.Movement.Speed != 6 {
		t.Errorf("custom config should win: speed = %v, expected 6", cfg.Movement.Speed)
	}
}

func TestLoadRulesPartialFile(t *testing.T) {
	_, work := isolate(t)

	custom := filepath.Join(work, "partial.yaml")
	writeFile(t, custom, "scoring:\n  collision_penalty: 25\n")

	cfg, err := LoadRules(custom)
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	if cfg.Scoring.CollisionPenalty != 25 {
		t.Errorf("collision_penalty = %d, expected 25", cfg.Scoring.CollisionPenalty)
	}
	if cfg.Scoring.PenaltyCooldown != 0.5 || cfg.Movement.Speed != 3 {
		t.Errorf("unset keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadRulesInvalidLocalSkipped(t *testing.T) {
	_, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", RulesFile), "movement:\n  speed: -1\n")
	cfg, err := LoadRules("")
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	if cfg.Movement.Speed != 3 {
		t.Errorf("invalid local file should be skipped, speed = %v", cfg.Movement.Speed)
	}
}

func TestLoadRulesCustomErrors(t *testing.T) {
	_, work := isolate(t)

	if _, err := LoadRules(filepath.Join(work, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(work, "bad.yaml")
	writeFile(t, bad, "movement: [")
	if _, err := LoadRules(bad); err == nil {
		t.Error("malformed custom file should be an error")
	}

	invalid := filepath.Join(work, "invalid.yaml")
	writeFile(t, invalid, "clock:\n  max_frame_delta: 0\n")
	_, err := LoadRules(invalid)
	if err == nil || !strings.Contains(err.Error(), "max_frame_delta") {
		t.Errorf("invalid custom file error = %v, expected max_frame_delta", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RulesConfig)
	}{
		{"speed", func(c *RulesConfig) { c.Movement.Speed = 0 }},
		{"penalty", func(c *RulesConfig) { c.Scoring.CollisionPenalty = -1 }},
		{"cooldown", func(c *RulesConfig) { c.Scoring.PenaltyCooldown = -0.1 }},
		{"bonus", func(c *RulesConfig) { c.Scoring.TimeBonusPerSecond = -1 }},
		{"threshold", func(c *RulesConfig) { c.Exit.Threshold = 0 }},
		{"hold", func(c *RulesConfig) { c.Input.HoldRepeatMS = 0 }},
		{"clock", func(c *RulesConfig) { c.Clock.MaxFrameDelta = -1 }},
	}

	if err := DefaultRulesConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRulesConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestHoldDurations(t *testing.T) {
	in := InputConfig{HoldInitialMS: 550, HoldRepeatMS: 120}
	if in.HoldInitial() != 550*time.Millisecond {
		t.Errorf("HoldInitial() = %v", in.HoldInitial())
	}
	if in.HoldRepeat() != 120*time.Millisecond {
		t.Errorf("HoldRepeat() = %v", in.HoldRepeat())
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		input    string
		expected DifficultyPreset
		penalty  int
		cooldown float64
	}{
		{"", DifficultyNormal, 10, 0.5},
		{"normal", DifficultyNormal, 10, 0.5},
		{"easy", DifficultyEasy, 5, 1.0},
		{"hard", DifficultyHard, 20, 0.25},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			preset, err := ParseDifficultyPreset(tc.input)
			if err != nil {
				t.Fatalf("ParseDifficultyPreset(%q) failed: %v", tc.input, err)
			}
			if preset != tc.expected {
				t.Errorf("preset = %q, expected %q", preset, tc.expected)
			}

			cfg := DefaultRulesConfig()
			ApplyPreset(&cfg, preset)
			if cfg.Scoring.CollisionPenalty != tc.penalty || cfg.Scoring.PenaltyCooldown != tc.cooldown {
				t.Errorf("penalty/cooldown = %d/%v, expected %d/%v",
					cfg.Scoring.CollisionPenalty, cfg.Scoring.PenaltyCooldown, tc.penalty, tc.cooldown)
			}
		})
	}

	if _, err := ParseDifficultyPreset("nightmare"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}
