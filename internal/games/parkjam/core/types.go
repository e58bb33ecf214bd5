// Package core provides the puzzle engine for Parking Jam: vehicles, collision,
// movement, scoring and UI hit-testing.
// This package is UI-agnostic and deterministic.
package core

import (
	platformcore "github.com/vovakirdan/parkjam/internal/core"
)

// Vec3 is a point or size in lot space. X runs left to right, Z runs far to
// near, Y is height and never changes during play.
type Vec3 struct {
	X, Y, Z float64
}

// V creates a Vec3.
func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Axis identifies the single axis a vehicle may slide along.
type Axis uint8

const (
	AxisX Axis = iota // horizontal vehicles
	AxisZ             // vertical vehicles
)

// String returns the string representation of an axis.
func (a Axis) String() string {
	if a == AxisZ {
		return "Z"
	}
	return "X"
}

// Vehicle is one movable block in the lot.
type Vehicle struct {
	ID       int // Index within the level's vehicle list
	Position Vec3
	Size     Vec3 // Full box dimensions
	Color    platformcore.Color
	Vertical bool // Moves along Z when true, along X otherwise
	Target   bool // The vehicle that has to reach the exit
	MinPos   float64
	MaxPos   float64
}

// Axis returns the axis this vehicle is constrained to.
func (v Vehicle) Axis() Axis {
	if v.Vertical {
		return AxisZ
	}
	return AxisX
}

// Coord returns the position along the constrained axis.
func (v Vehicle) Coord() float64 {
	if v.Vertical {
		return v.Position.Z
	}
	return v.Position.X
}

// HalfExtent returns half of the size, used for overlap math.
func (v Vehicle) HalfExtent() Vec3 {
	return Vec3{X: v.Size.X / 2, Y: v.Size.Y / 2, Z: v.Size.Z / 2}
}

// WithCoord returns the vehicle position with the constrained axis replaced by c.
func (v Vehicle) WithCoord(c float64) Vec3 {
	p := v.Position
	if v.Vertical {
		p.Z = c
	} else {
		p.X = c
	}
	return p
}

// Level is a static puzzle definition.
type Level struct {
	ID         int
	Name       string
	Difficulty string  // easy, medium, hard
	Duration   float64 // Countdown in seconds
	StartScore int
	Vehicles   []Vehicle
}

// TargetIndex returns the index of the target vehicle, or -1 if the level has none.
func (l Level) TargetIndex() int {
	return targetIndex(l.Vehicles)
}

// Clone returns a deep copy of the level so callers can mutate vehicles freely.
func (l Level) Clone() Level {
	c := l
	c.Vehicles = make([]Vehicle, len(l.Vehicles))
	copy(c.Vehicles, l.Vehicles)
	return c
}

func targetIndex(vehicles []Vehicle) int {
	for i, v := range vehicles {
		if v.Target {
			return i
		}
	}
	return -1
}
