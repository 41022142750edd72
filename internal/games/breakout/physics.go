package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// collidingObject samples the ball's four bounding-box corners and returns
// the first object hit, or nil.
//
// For each corner the paddle is tested before the bricks, and bricks are
// tested in wall order. The first match wins, so at most one object is
// reported per frame even when the ball overlaps several.
func (r *Round) collidingObject() core.Shape {
	for _, c := range r.ball.Corners() {
		if r.paddle.Contains(c.X, c.Y) {
			return r.paddle
		}
		if b := r.wall.BrickAt(c.X, c.Y); b != nil {
			return b
		}
	}
	return nil
}

// StepBall moves the ball one tick and resolves collisions.
//
// Responses depend on the velocity before the move and are applied
// independently: every bounce sets the component to the negated pre-move
// value, so two bounces on one axis in a frame still flip it once.
// Rising balls ignore the paddle. A ball reaching the floor sets the
// lost-life flag and keeps going.
func (r *Round) StepBall() {
	if r.ball == nil {
		panic("breakout: StepBall called with no ball in play")
	}
	ball := r.ball
	vx, vy := ball.VX, ball.VY

	ball.Move()

	hit := r.collidingObject()
	brick, hitBrick := hit.(*Brick)
	_, hitPaddle := hit.(*Paddle)

	if vy > 0 {
		if ball.Top() >= r.cfg.Playfield.Height {
			ball.VY = -vy
		}
		if hitBrick {
			ball.VY = -vy
			r.removeBrick(brick)
		}
	}
	if vy < 0 {
		if ball.Y <= 0 {
			r.lostLife = true
		}
		if hitPaddle {
			ball.VY = -vy
		}
		if hitBrick {
			ball.VY = -vy
			r.removeBrick(brick)
		}
	}
	if vx > 0 && ball.Right() >= r.cfg.Playfield.Width {
		ball.VX = -vx
	}
	if vx < 0 && ball.X <= 0 {
		ball.VX = -vx
	}
}

// removeBrick takes a brick found by collision detection out of the wall.
// The brick came from the live wall this frame, so a miss is a bug.
func (r *Round) removeBrick(b *Brick) {
	if err := r.wall.Remove(b); err != nil {
		panic(fmt.Sprintf("breakout: removing brick at (%v, %v): %v", b.Rect.X, b.Rect.Y, err))
	}
	r.logger.Debug("brick removed", "row", b.Row, "x", b.Rect.X, "remaining", r.wall.Len())
}
