package breakout

import "math"

// Snapshot is a flat copy of the session state for determinism checks.
type Snapshot struct {
	Tick    uint64
	State   string
	Ticks   int
	Tries   int // -1 when no round is running
	Won     bool
	Message string

	// Zero when no round is running
	PaddleX float64
	BallX   float64
	BallY   float64
	BallVX  float64
	BallVY  float64

	// Bottom-left corners of live bricks in wall order, two values each
	BricksRemaining int
	BrickData       []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	m := g.machine
	snap := Snapshot{
		Tick:    g.tick,
		State:   m.State().String(),
		Ticks:   m.Ticks(),
		Tries:   m.Tries(),
		Won:     m.Won(),
		Message: m.Message(),
	}

	r := m.Round()
	if r == nil {
		return snap
	}

	snap.PaddleX = r.Paddle().X
	if b := r.Ball(); b != nil {
		snap.BallX, snap.BallY = b.X, b.Y
		snap.BallVX, snap.BallVY = b.VX, b.VY
	}

	bricks := r.Wall().Bricks()
	snap.BricksRemaining = len(bricks)
	snap.BrickData = make([]float64, 0, len(bricks)*2)
	for _, b := range bricks {
		snap.BrickData = append(snap.BrickData, b.Rect.X, b.Rect.Y)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Ticks)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Tries)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	if snap.Won {
		h = h*31 + 1
	}
	for _, c := range snap.State + snap.Message {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}

	for _, v := range []float64{snap.PaddleX, snap.BallX, snap.BallY, snap.BallVX, snap.BallVY} {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.BrickData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
