// Package breakout implements a Breakout-style brick breaker: the brick wall,
// ball and paddle models, one round of play, and the state machine that
// sequences serve, play, pause, win and loss.
package breakout

import (
	"errors"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ErrBrickNotFound is returned when removing a brick that is not in the wall.
var ErrBrickNotFound = errors.New("breakout: brick not in wall")

// Brick is a single destructible rectangle.
// Bricks are compared by pointer identity.
type Brick struct {
	Rect  core.Rect
	Color core.Color
	Row   int // Layout row, 0 is the top row
}

// Bounds returns the brick's rectangle.
func (b *Brick) Bounds() core.Rect {
	return b.Rect
}

// Contains reports whether the point lies on the brick.
func (b *Brick) Contains(x, y float64) bool {
	return b.Rect.Contains(x, y)
}

// BrickWall holds the live bricks in layout order.
type BrickWall struct {
	bricks []*Brick
}

// NewBrickWall lays out a fresh wall.
// Rows start YOffset below the top of the playfield and step downward by
// brick height plus vertical gap. Each row starts half a horizontal gap from
// the left edge.
func NewBrickWall(cfg config.BreakoutConfig) *BrickWall {
	b := cfg.Bricks
	palette := cfg.PaletteColors()
	if len(palette) == 0 {
		palette = []core.Color{core.ColorDefault}
	}

	w := &BrickWall{bricks: make([]*Brick, 0, b.Rows*b.PerRow)}

	y := cfg.Playfield.Height - b.YOffset
	for row := range b.Rows {
		x := b.SepH / 2
		color := palette[row%len(palette)]
		for range b.PerRow {
			w.bricks = append(w.bricks, &Brick{
				Rect:  core.NewRect(x, y, b.Width, b.Height),
				Color: color,
				Row:   row,
			})
			x += b.Width + b.SepH
		}
		y -= b.Height + b.SepV
	}
	return w
}

// Bricks returns the live bricks in layout order.
// The slice must not be modified by the caller.
func (w *BrickWall) Bricks() []*Brick {
	return w.bricks
}

// Len returns the number of live bricks.
func (w *BrickWall) Len() int {
	return len(w.bricks)
}

// IsEmpty reports whether every brick has been removed.
func (w *BrickWall) IsEmpty() bool {
	return len(w.bricks) == 0
}

// BrickAt returns the first brick in layout order containing (x, y), or nil.
func (w *BrickWall) BrickAt(x, y float64) *Brick {
	for _, b := range w.bricks {
		if b.Contains(x, y) {
			return b
		}
	}
	return nil
}

// Remove deletes the brick from the wall, preserving the order of the rest.
func (w *BrickWall) Remove(brick *Brick) error {
	for i, b := range w.bricks {
		if b == brick {
			w.bricks = append(w.bricks[:i], w.bricks[i+1:]...)
			return nil
		}
	}
	return ErrBrickNotFound
}

// Render draws every live brick.
func (w *BrickWall) Render(dst core.Surface) {
	for _, b := range w.bricks {
		dst.FillRect(b.Rect, b.Color)
	}
}
