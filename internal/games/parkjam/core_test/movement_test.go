package core_test

import (
	"math"
	"testing"

	"github.com/vovakirdan/parkjam/internal/games/parkjam/core"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

// newTestSession builds a session over the given vehicles with the target selected.
func newTestSession(score int, remaining float64, vehicles ...core.Vehicle) *core.Session {
	return core.NewSession(core.Level{
		ID:         1,
		Duration:   remaining,
		StartScore: score,
		Vehicles:   vehicles,
	})
}

func TestTryMoveNoSelection(t *testing.T) {
	target := horizontal(0, 0, 0, 2, 1)
	target.Target = true
	s := newTestSession(100, 60, target)
	s.Selected = -1
	s.Cooldown = 0.3

	out := core.TryMove(s, core.Held{Right: true}, 0.1, core.DefaultRules())
	if out != core.NoInput {
		t.Errorf("TryMove() = %v, expected NoInput", out)
	}
	if s.Cooldown != 0.3 {
		t.Errorf("Cooldown = %v, expected untouched 0.3", s.Cooldown)
	}
}

func TestTryMoveIdleFrames(t *testing.T) {
	// Scenario: ten frames without input change nothing
	target := horizontal(0, -3, 0, 2.5, 1.2)
	target.Target = true
	s := newTestSession(1000, 120, target, vertical(1, 1, 2.5, 1.2, 2.5))
	before := append([]core.Vehicle(nil), s.Vehicles...)

	for i := 0; i < 10; i++ {
		if out := core.TryMove(s, core.Held{}, 1.0/60, core.DefaultRules()); out != core.NoInput {
			t.Fatalf("frame %d: TryMove() = %v, expected NoInput", i, out)
		}
	}

	for i := range before {
		if s.Vehicles[i].Position != before[i].Position {
			t.Errorf("vehicle %d moved: %v -> %v", i, before[i].Position, s.Vehicles[i].Position)
		}
	}
	if s.Score != 1000 || s.MoveCount != 0 {
		t.Errorf("Score = %d, MoveCount = %d, expected 1000 and 0", s.Score, s.MoveCount)
	}
}

func TestTryMoveAxisIsolation(t *testing.T) {
	tests := []struct {
		name    string
		vehicle core.Vehicle
		held    core.Held
	}{
		{"vertical ignores left", vertical(0, 0, 0, 1.2, 2), core.Held{Left: true}},
		{"vertical ignores right", vertical(0, 0, 0, 1.2, 2), core.Held{Right: true}},
		{"horizontal ignores up", horizontal(0, 0, 0, 2, 1.2), core.Held{Up: true}},
		{"horizontal ignores down", horizontal(0, 0, 0, 2, 1.2), core.Held{Down: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(100, 60, tc.vehicle)
			s.Selected = 0
			s.Cooldown = 0.5
			start := s.Vehicles[0].Position

			out := core.TryMove(s, tc.held, 0.1, core.DefaultRules())
			if out != core.NoInput {
				t.Errorf("TryMove() = %v, expected NoInput", out)
			}
			if s.Vehicles[0].Position != start {
				t.Errorf("Position = %v, expected %v", s.Vehicles[0].Position, start)
			}
			if !near(s.Cooldown, 0.4) {
				t.Errorf("Cooldown = %v, expected 0.4 (decremented regardless of input)", s.Cooldown)
			}
		})
	}
}

func TestTryMoveDirections(t *testing.T) {
	rules := core.DefaultRules()

	tests := []struct {
		name     string
		vehicle  core.Vehicle
		held     core.Held
		expected core.Vec3
	}{
		{"up decreases Z", vertical(0, 0, 0, 1.2, 2), core.Held{Up: true}, core.V(0, 0.4, -0.3)},
		{"down increases Z", vertical(0, 0, 0, 1.2, 2), core.Held{Down: true}, core.V(0, 0.4, 0.3)},
		{"left decreases X", horizontal(0, 0, 0, 2, 1.2), core.Held{Left: true}, core.V(-0.3, 0.4, 0)},
		{"right increases X", horizontal(0, 0, 0, 2, 1.2), core.Held{Right: true}, core.V(0.3, 0.4, 0)},
		{"opposite keys cancel", horizontal(0, 0, 0, 2, 1.2), core.Held{Left: true, Right: true}, core.V(0, 0.4, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(100, 60, tc.vehicle)
			s.Selected = 0

			out := core.TryMove(s, tc.held, 0.1, rules)
			if out != core.Moved {
				t.Fatalf("TryMove() = %v, expected Moved", out)
			}
			p := s.Vehicles[0].Position
			if !near(p.X, tc.expected.X) || !near(p.Z, tc.expected.Z) || p.Y != tc.expected.Y {
				t.Errorf("Position = %v, expected %v", p, tc.expected)
			}
			if s.MoveCount != 1 {
				t.Errorf("MoveCount = %d, expected 1", s.MoveCount)
			}
		})
	}
}

func TestTryMoveClamp(t *testing.T) {
	tests := []struct {
		name     string
		vehicle  core.Vehicle
		held     core.Held
		expected float64
	}{
		{"horizontal max", horizontal(0, 4.9, 0, 2, 1.2), core.Held{Right: true}, 5},
		{"horizontal min", horizontal(0, -4.9, 0, 2, 1.2), core.Held{Left: true}, -5},
		{"vertical max", vertical(0, 0, 3.8, 1.2, 2), core.Held{Down: true}, 4},
		{"vertical min", vertical(0, 0, -3.8, 1.2, 2), core.Held{Up: true}, -4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(100, 60, tc.vehicle)
			s.Selected = 0

			core.TryMove(s, tc.held, 1.0, core.DefaultRules())
			if got := s.Vehicles[0].Coord(); got != tc.expected {
				t.Errorf("Coord() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestTryMoveReachesExit(t *testing.T) {
	// Scenario: target at 5.4 moves 0.2 past the 5.5 threshold
	target := horizontal(0, 5.4, 0, 2.5, 1.2)
	target.Target = true
	target.MaxPos = 6.5
	s := newTestSession(900, 37.5, target)

	rules := core.DefaultRules()
	rules.Speed = 2

	out := core.TryMove(s, core.Held{Right: true}, 0.1, rules)
	if out != core.MovedAndWon {
		t.Fatalf("TryMove() = %v, expected MovedAndWon", out)
	}
	if bonus := s.TimeBonus(rules); bonus != 375 {
		t.Errorf("TimeBonus() = %d, expected 375", bonus)
	}
}

func TestTryMoveNonTargetPastThreshold(t *testing.T) {
	v := horizontal(0, 5.4, 0, 2, 1.2)
	v.MaxPos = 6.5
	s := newTestSession(100, 60, v)
	s.Selected = 0

	if out := core.TryMove(s, core.Held{Right: true}, 0.1, core.DefaultRules()); out != core.Moved {
		t.Errorf("TryMove() = %v, expected Moved for a non-target vehicle", out)
	}
}

func TestTryMovePenaltyRateLimit(t *testing.T) {
	// Scenario: penalty, none 0.1s later, penalty again after the cooldown
	target := horizontal(0, 0, 0, 2, 2)
	target.Target = true
	s := newTestSession(100, 60, target, horizontal(1, 2, 0, 2, 2))
	rules := core.DefaultRules()
	right := core.Held{Right: true}

	steps := []struct {
		dt    float64
		score int
	}{
		{0.01, 90},
		{0.1, 90},
		{0.6, 80},
	}

	for i, step := range steps {
		out := core.TryMove(s, right, step.dt, rules)
		if out != core.Blocked {
			t.Fatalf("step %d: TryMove() = %v, expected Blocked", i, out)
		}
		if s.Score != step.score {
			t.Errorf("step %d: Score = %d, expected %d", i, s.Score, step.score)
		}
	}

	if s.Collisions != 2 {
		t.Errorf("Collisions = %d, expected 2", s.Collisions)
	}
	if s.Vehicles[0].Position.X != 0 {
		t.Errorf("blocked vehicle moved to %v", s.Vehicles[0].Position.X)
	}
	if s.MoveCount != 0 {
		t.Errorf("MoveCount = %d, expected 0", s.MoveCount)
	}
}

func TestTryMoveScoreFloor(t *testing.T) {
	target := horizontal(0, 0, 0, 2, 2)
	target.Target = true
	s := newTestSession(5, 60, target, horizontal(1, 2, 0, 2, 2))

	core.TryMove(s, core.Held{Right: true}, 0.1, core.DefaultRules())
	if s.Score != 0 {
		t.Errorf("Score = %d, expected 0", s.Score)
	}
}

func TestMoveOutcomeString(t *testing.T) {
	if core.MovedAndWon.String() != "MovedAndWon" {
		t.Errorf("MovedAndWon.String() = %q", core.MovedAndWon.String())
	}
}
