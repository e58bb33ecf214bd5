package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/parkjam/internal/games/parkjam/core"
)

func TestValidateLevel(t *testing.T) {
	if err := core.ValidateLevel(fourVehicleLevel()); err != nil {
		t.Fatalf("valid level rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*core.Level)
		code   string
	}{
		{"zero duration", func(l *core.Level) { l.Duration = 0 }, "INVALID_DURATION"},
		{"negative score", func(l *core.Level) { l.StartScore = -1 }, "INVALID_SCORE"},
		{"no target", func(l *core.Level) { l.Vehicles[0].Target = false }, "TARGET_COUNT"},
		{"two targets", func(l *core.Level) { l.Vehicles[1].Target = true }, "TARGET_COUNT"},
		{"wrong id", func(l *core.Level) { l.Vehicles[2].ID = 9 }, "VEHICLE_ID"},
		{"zero size", func(l *core.Level) { l.Vehicles[1].Size.Z = 0 }, "VEHICLE_SIZE"},
		{"out of range", func(l *core.Level) { l.Vehicles[1].Position.Z = 4.5 }, "VEHICLE_RANGE"},
		{"inverted range", func(l *core.Level) { l.Vehicles[3].MinPos = 6 }, "VEHICLE_RANGE"},
		{"overlap", func(l *core.Level) { l.Vehicles[3].Position = core.V(-3, 0.4, 0.5) }, "VEHICLE_OVERLAP"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl := fourVehicleLevel()
			tc.mutate(&lvl)

			err := core.ValidateLevel(lvl)
			var verr core.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ValidateLevel() = %v, expected ValidationError", err)
			}
			if verr.Code != tc.code {
				t.Errorf("Code = %q, expected %q", verr.Code, tc.code)
			}
		})
	}
}
