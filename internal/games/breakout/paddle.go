package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Paddle is the player's bat. Only X changes during play.
type Paddle struct {
	X, Y          float64 // Bottom-left corner
	Width, Height float64
	Color         core.Color

	maxX        float64 // Playfield width minus paddle width
	clickOffset float64 // Pointer x minus paddle x at the moment of press
}

// NewPaddle creates a paddle centered horizontally at the configured offset.
func NewPaddle(cfg config.BreakoutConfig) *Paddle {
	color, _ := core.ParseColor(cfg.Paddle.Color)
	return &Paddle{
		X:      cfg.Playfield.Width/2 - cfg.Paddle.Width/2,
		Y:      cfg.Paddle.Offset,
		Width:  cfg.Paddle.Width,
		Height: cfg.Paddle.Height,
		Color:  color,
		maxX:   cfg.Playfield.Width - cfg.Paddle.Width,
	}
}

// Bounds returns the paddle's rectangle.
func (p *Paddle) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Contains reports whether the point lies on the paddle.
func (p *Paddle) Contains(x, y float64) bool {
	return p.Bounds().Contains(x, y)
}

// Update drags the paddle with the pointer.
// On press the grab offset is recorded and the paddle stays put; while held
// the paddle keeps that offset from the pointer, clamped to the playfield.
func (p *Paddle) Update(pointer, prev *core.Point) {
	switch core.DetectEdge(prev, pointer) {
	case core.EdgeDown:
		p.clickOffset = pointer.X - p.X
	case core.EdgeHeld:
		p.X = core.ClampF(pointer.X-p.clickOffset, 0, p.maxX)
	}
}

// Render draws the paddle.
func (p *Paddle) Render(dst core.Surface) {
	dst.FillRect(p.Bounds(), p.Color)
}
