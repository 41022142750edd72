package breakout

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Round is one game from serve to an empty wall or running out of balls.
// It owns the wall, the paddle and the ball in play.
type Round struct {
	cfg    config.BreakoutConfig
	rng    *rand.Rand
	logger *log.Logger

	paddle *Paddle
	wall   *BrickWall
	ball   *Ball

	tries    int         // Extra balls left after the current one
	lostLife bool        // Set when the ball reaches the floor
	last     *core.Point // Pointer sample seen by the previous UpdatePaddle
}

// NewRound lays out a fresh wall and paddle and serves the first ball.
// A nil logger discards output.
func NewRound(cfg config.BreakoutConfig, rng *rand.Rand, logger *log.Logger) *Round {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Round{
		cfg:    cfg,
		rng:    rng,
		logger: logger,
		paddle: NewPaddle(cfg),
		wall:   NewBrickWall(cfg),
		ball:   NewBall(cfg, rng),
		tries:  cfg.Gameplay.Tries,
	}
}

// UpdatePaddle feeds this tick's pointer sample to the paddle.
func (r *Round) UpdatePaddle(pointer *core.Point) {
	r.paddle.Update(pointer, r.last)
	r.last = copyPoint(pointer)
}

// ResetBall serves a new ball from the center of the playfield.
func (r *Round) ResetBall() {
	r.ball = NewBall(r.cfg, r.rng)
	r.logger.Debug("ball served", "vx", r.ball.VX, "vy", r.ball.VY)
}

// IsWon reports whether every brick has been cleared.
func (r *Round) IsWon() bool {
	return r.wall.IsEmpty()
}

// Tries returns the number of extra balls left.
func (r *Round) Tries() int {
	return r.tries
}

// SetTries sets the number of extra balls left.
func (r *Round) SetTries(n int) {
	if n < 0 {
		panic("breakout: negative tries")
	}
	r.tries = n
}

// LostLife reports whether the ball has reached the floor.
func (r *Round) LostLife() bool {
	return r.lostLife
}

// SetLostLife sets or clears the lost-life flag.
func (r *Round) SetLostLife(lost bool) {
	r.lostLife = lost
}

// Paddle returns the paddle.
func (r *Round) Paddle() *Paddle { return r.paddle }

// Wall returns the brick wall.
func (r *Round) Wall() *BrickWall { return r.wall }

// Ball returns the ball in play.
func (r *Round) Ball() *Ball { return r.ball }

// Render draws the wall, the paddle and the ball, in that order.
func (r *Round) Render(dst core.Surface) {
	r.wall.Render(dst)
	r.paddle.Render(dst)
	if r.ball != nil {
		r.ball.Render(dst)
	}
}

func copyPoint(p *core.Point) *core.Point {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
