package core

import "math"

// Rules holds the tuning constants of the simulation.
type Rules struct {
	Speed              float64 // Units per second along the constrained axis
	CollisionPenalty   int     // Points lost per penalized collision
	PenaltyCooldown    float64 // Seconds after a penalty during which collisions are free
	ExitThreshold      float64 // Target coordinate that counts as reaching the exit
	TimeBonusPerSecond float64 // Bonus points per remaining second on a win
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		Speed:              3.0,
		CollisionPenalty:   10,
		PenaltyCooldown:    0.5,
		ExitThreshold:      5.5,
		TimeBonusPerSecond: 10,
	}
}

// Session is the mutable state of one attempt at a level.
type Session struct {
	LevelID    int
	Vehicles   []Vehicle // Private copy of the level's vehicles
	Score      int
	Remaining  float64 // Countdown seconds left
	Selected   int     // Index into Vehicles, -1 for none
	Cooldown   float64 // Penalty cooldown seconds left
	MoveCount  int
	Collisions int // Penalized collisions only
}

// NewSession builds a fresh session for the level. The target vehicle starts selected.
func NewSession(l Level) *Session {
	vehicles := make([]Vehicle, len(l.Vehicles))
	copy(vehicles, l.Vehicles)
	return &Session{
		LevelID:   l.ID,
		Vehicles:  vehicles,
		Score:     l.StartScore,
		Remaining: l.Duration,
		Selected:  targetIndex(vehicles),
	}
}

// Tick advances the countdown by dt and reports whether it has run out.
// Remaining never goes below zero.
func (s *Session) Tick(dt float64) bool {
	s.Remaining -= dt
	if s.Remaining <= 0 {
		s.Remaining = 0
		return true
	}
	return false
}

// Penalize deducts the collision penalty, flooring the score at zero,
// and restarts the cooldown.
func (s *Session) Penalize(r Rules) {
	s.Score -= r.CollisionPenalty
	if s.Score < 0 {
		s.Score = 0
	}
	s.Cooldown = r.PenaltyCooldown
	s.Collisions++
}

// TimeBonus returns the points awarded for the time left on the clock.
func (s *Session) TimeBonus(r Rules) int {
	if s.Remaining <= 0 {
		return 0
	}
	return int(math.Floor(s.Remaining * r.TimeBonusPerSecond))
}

// Select makes vehicle i the selected one. Out-of-range indices are ignored.
func (s *Session) Select(i int) bool {
	if i < 0 || i >= len(s.Vehicles) {
		return false
	}
	s.Selected = i
	return true
}

// SelectTarget selects the target vehicle.
func (s *Session) SelectTarget() bool {
	return s.Select(targetIndex(s.Vehicles))
}

// SelectedVehicle returns the selected vehicle, if any.
func (s *Session) SelectedVehicle() (Vehicle, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Vehicles) {
		return Vehicle{}, false
	}
	return s.Vehicles[s.Selected], true
}
