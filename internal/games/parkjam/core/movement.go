package core

import (
	platformcore "github.com/vovakirdan/parkjam/internal/core"
)

// Held is the latched state of the four direction keys.
type Held struct {
	Up, Down, Left, Right bool
}

// Any reports whether any direction is held.
func (h Held) Any() bool {
	return h.Up || h.Down || h.Left || h.Right
}

// MoveOutcome is the result of one movement attempt.
type MoveOutcome int

const (
	NoInput     MoveOutcome = iota // Nothing selected or no direction along the vehicle's axis
	Blocked                        // Candidate overlaps another vehicle; nothing moved
	Moved                          // Vehicle moved
	MovedAndWon                    // Target moved onto the exit
)

// String returns the string representation of an outcome.
func (o MoveOutcome) String() string {
	switch o {
	case NoInput:
		return "NoInput"
	case Blocked:
		return "Blocked"
	case Moved:
		return "Moved"
	case MovedAndWon:
		return "MovedAndWon"
	default:
		return "Unknown"
	}
}

// Delta returns the signed displacement along axis for the held keys.
// Opposite keys cancel. The second result is false when no key along the axis is held.
func (h Held) Delta(axis Axis, step float64) (float64, bool) {
	var d float64
	var held bool
	if axis == AxisZ {
		if h.Up {
			d -= step
			held = true
		}
		if h.Down {
			d += step
			held = true
		}
	} else {
		if h.Left {
			d -= step
			held = true
		}
		if h.Right {
			d += step
			held = true
		}
	}
	return d, held
}

// TryMove resolves one frame of movement for the selected vehicle.
//
// Rules:
//  1. Nothing selected: NoInput, session untouched
//  2. Cooldown decreases by dt (floor 0) on every call
//  3. Candidate = coordinate + speed*dt per held key along the vehicle's axis
//  4. Candidate is clamped to [MinPos, MaxPos]
//  5. No key along the axis: NoInput
//  6. Candidate overlaps another vehicle: Blocked, penalized only when cooldown is over
//  7. Otherwise the move is committed; the target at or past the exit gives MovedAndWon
//
// The win bonus is not applied here.
func TryMove(s *Session, h Held, dt float64, r Rules) MoveOutcome {
	v, ok := s.SelectedVehicle()
	if !ok {
		return NoInput
	}

	s.Cooldown -= dt
	if s.Cooldown < 0 {
		s.Cooldown = 0
	}

	delta, held := h.Delta(v.Axis(), r.Speed*dt)
	if !held {
		return NoInput
	}

	coord := platformcore.ClampF(v.Coord()+delta, v.MinPos, v.MaxPos)
	candidate := v.WithCoord(coord)

	if WouldCollide(s.Vehicles, s.Selected, candidate) {
		if s.Cooldown <= 0 {
			s.Penalize(r)
		}
		return Blocked
	}

	s.Vehicles[s.Selected].Position = candidate
	s.MoveCount++

	if v.Target && coord >= r.ExitThreshold {
		return MovedAndWon
	}
	return Moved
}
