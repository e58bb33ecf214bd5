package parkjam

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Phase      string
	Level      int
	Score      int
	Remaining  float64
	Cooldown   float64
	Selected   int
	MoveCount  int
	Collisions int
	Coords     []float64 // Constrained-axis coordinate per vehicle
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Phase:    g.phase.Name(),
		Selected: -1,
	}

	s := session(g.phase)
	if s == nil {
		return snap
	}

	snap.Level = s.LevelID
	snap.Score = s.Score
	snap.Remaining = s.Remaining
	snap.Cooldown = s.Cooldown
	snap.Selected = s.Selected
	snap.MoveCount = s.MoveCount
	snap.Collisions = s.Collisions
	snap.Coords = make([]float64, len(s.Vehicles))
	for i, v := range s.Vehicles {
		snap.Coords[i] = v.Coord()
	}
	return snap
}

// Hash returns an FNV-1a digest of the snapshot. Floats are hashed bit-exact.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}

	put(s.Tick)
	h.Write([]byte(s.Phase))
	put(uint64(s.Level))
	put(uint64(s.Score))
	put(math.Float64bits(s.Remaining))
	put(math.Float64bits(s.Cooldown))
	put(uint64(s.Selected))
	put(uint64(s.MoveCount))
	put(uint64(s.Collisions))
	for _, c := range s.Coords {
		put(math.Float64bits(c))
	}
	return h.Sum64()
}
