package core_test

import (
	"testing"

	"github.com/vovakirdan/parkjam/internal/games/parkjam/core"
)

// horizontal builds a horizontal vehicle centered at (x, z) with the given footprint.
func horizontal(id int, x, z, w, d float64) core.Vehicle {
	return core.Vehicle{
		ID:       id,
		Position: core.V(x, 0.4, z),
		Size:     core.V(w, 0.8, d),
		MinPos:   -5,
		MaxPos:   5,
	}
}

// vertical builds a vertical vehicle centered at (x, z) with the given footprint.
func vertical(id int, x, z, w, d float64) core.Vehicle {
	v := horizontal(id, x, z, w, d)
	v.Vertical = true
	v.MinPos = -4
	v.MaxPos = 4
	return v
}

func TestBoxesOverlap(t *testing.T) {
	size := core.V(2, 0.8, 2)

	tests := []struct {
		name     string
		a, b     core.Vec3
		expected bool
	}{
		{"same position", core.V(0, 0, 0), core.V(0, 0, 0), true},
		{"partial overlap", core.V(0, 0, 0), core.V(1.5, 0, 0.5), true},
		{"touching on X", core.V(0, 0, 0), core.V(2, 0, 0), false},
		{"touching on Z", core.V(0, 0, 0), core.V(0, 0, 2), false},
		{"overlap on X only", core.V(0, 0, 0), core.V(1, 0, 5), false},
		{"overlap on Z only", core.V(0, 0, 0), core.V(5, 0, 1), false},
		{"height ignored", core.V(0, 0, 0), core.V(0.5, 10, 0.5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := core.BoxesOverlap(tc.a, size, tc.b, size); got != tc.expected {
				t.Errorf("BoxesOverlap(a, b) = %v, expected %v", got, tc.expected)
			}
			if got := core.BoxesOverlap(tc.b, size, tc.a, size); got != tc.expected {
				t.Errorf("BoxesOverlap(b, a) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxesOverlapSymmetricMixedSizes(t *testing.T) {
	aPos, aSize := core.V(-3, 0.4, 0), core.V(2.5, 0.8, 1.2)
	bPos, bSize := core.V(-1.5, 0.4, 0.2), core.V(1.2, 0.8, 3)

	ab := core.BoxesOverlap(aPos, aSize, bPos, bSize)
	ba := core.BoxesOverlap(bPos, bSize, aPos, aSize)
	if ab != ba {
		t.Errorf("overlap is not symmetric: %v vs %v", ab, ba)
	}
	if !ab {
		t.Error("expected boxes to overlap")
	}
}

func TestWouldCollideSkipsSelf(t *testing.T) {
	vehicles := []core.Vehicle{
		horizontal(0, 0, 0, 2, 1),
	}

	if core.WouldCollide(vehicles, 0, vehicles[0].Position) {
		t.Error("a vehicle should never collide with itself")
	}
}

func TestWouldCollideTouchingEdges(t *testing.T) {
	// Scenario: edges exactly touching are not a collision
	vehicles := []core.Vehicle{
		horizontal(0, 0, 0, 2, 2),
		horizontal(1, 2, 0, 2, 2),
	}

	if core.WouldCollide(vehicles, 0, vehicles[0].Position) {
		t.Error("touching edges should not collide")
	}
	if !core.WouldCollide(vehicles, 0, core.V(0.01, 0.4, 0)) {
		t.Error("moving into the neighbor should collide")
	}
}

func TestWouldCollideInvalidIndex(t *testing.T) {
	vehicles := []core.Vehicle{horizontal(0, 0, 0, 2, 2)}

	if core.WouldCollide(vehicles, 5, core.V(0, 0, 0)) {
		t.Error("invalid moving index should report no collision")
	}
}
