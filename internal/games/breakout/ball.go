package breakout

import (
	"math/rand"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Ball is the moving ball. X, Y is the bottom-left of its bounding box.
type Ball struct {
	X, Y     float64
	VX, VY   float64 // Velocity per tick
	Diameter float64
	Color    core.Color
}

// NewBall serves a ball from the middle of the playfield.
// It falls at the configured vertical speed with a random horizontal speed
// and direction.
func NewBall(cfg config.BreakoutConfig, rng *rand.Rand) *Ball {
	d := cfg.Ball.Diameter
	vx := cfg.Ball.MinSpeedX + rng.Float64()*(cfg.Ball.MaxSpeedX-cfg.Ball.MinSpeedX)
	if rng.Intn(2) == 0 {
		vx = -vx
	}
	color, _ := core.ParseColor(cfg.Ball.Color)

	return &Ball{
		X:        cfg.Playfield.Width/2 - d/2,
		Y:        cfg.Playfield.Height/2 - d/2,
		VX:       vx,
		VY:       cfg.Ball.SpeedY,
		Diameter: d,
		Color:    color,
	}
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.Diameter, b.Diameter)
}

// Contains reports whether the point lies inside the bounding box.
func (b *Ball) Contains(x, y float64) bool {
	return b.Bounds().Contains(x, y)
}

// Corners returns the bounding-box corners in collision sampling order.
func (b *Ball) Corners() [4]core.Point {
	return b.Bounds().Corners()
}

// Move advances the ball by its velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// Top returns the y-coordinate of the top of the ball.
func (b *Ball) Top() float64 {
	return b.Y + b.Diameter
}

// Right returns the x-coordinate of the right of the ball.
func (b *Ball) Right() float64 {
	return b.X + b.Diameter
}

// Render draws the ball.
func (b *Ball) Render(dst core.Surface) {
	dst.FillEllipse(b.Bounds(), b.Color)
}
