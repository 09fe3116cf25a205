package pong

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a flat copy of the simulation state.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick       uint64
	BallX      float64
	BallY      float64
	BallDirX   float64
	BallDirY   float64
	LeftY      float64
	RightY     float64
	LeftScore  int
	RightScore int
}

// Snapshot returns the current simulation state.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Tick:       s.tick,
		BallX:      s.Ball.Position.X,
		BallY:      s.Ball.Position.Y,
		BallDirX:   s.Ball.Direction.X,
		BallDirY:   s.Ball.Direction.Y,
		LeftY:      s.Left.Position.Y,
		RightY:     s.Right.Position.Y,
		LeftScore:  s.Left.Score,
		RightScore: s.Right.Score,
	}
}

// Hash returns an FNV-1a digest of the snapshot. Equal states hash equal.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	write := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:]) //nolint:errcheck // hash.Hash never returns an error
	}

	write(snap.Tick)
	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallDirX, snap.BallDirY, snap.LeftY, snap.RightY} {
		write(math.Float64bits(f))
	}
	write(uint64(int64(snap.LeftScore)))  //nolint:gosec // scores are non-negative
	write(uint64(int64(snap.RightScore))) //nolint:gosec // scores are non-negative
	return h.Sum64()
}
