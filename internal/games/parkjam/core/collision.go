package core

// BoxesOverlap reports whether two boxes overlap on the ground plane (X and Z).
// Height is ignored. Intervals are open, so boxes sharing an edge do not overlap.
// The test is symmetric in its arguments.
func BoxesOverlap(aPos, aSize, bPos, bSize Vec3) bool {
	return spanOverlap(aPos.X, aSize.X/2, bPos.X, bSize.X/2) &&
		spanOverlap(aPos.Z, aSize.Z/2, bPos.Z, bSize.Z/2)
}

func spanOverlap(c, e, o, oe float64) bool {
	return c-e < o+oe && c+e > o-oe
}

// WouldCollide reports whether vehicles[moving] placed at candidate would
// overlap any other vehicle. The moving vehicle is skipped by index.
func WouldCollide(vehicles []Vehicle, moving int, candidate Vec3) bool {
	if moving < 0 || moving >= len(vehicles) {
		return false
	}
	size := vehicles[moving].Size
	for i, other := range vehicles {
		if i == moving {
			continue
		}
		if BoxesOverlap(candidate, size, other.Position, other.Size) {
			return true
		}
	}
	return false
}
