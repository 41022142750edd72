package breakout

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestNewPaddle(t *testing.T) {
	p := NewPaddle(config.DefaultBreakoutConfig())

	if p.X != 211 || p.Y != 30 {
		t.Errorf("paddle at (%v, %v), expected (211, 30)", p.X, p.Y)
	}
	if p.Width != 58 || p.Height != 11 {
		t.Errorf("paddle size %vx%v, expected 58x11", p.Width, p.Height)
	}
}

func TestPaddlePressRecordsOffset(t *testing.T) {
	p := NewPaddle(config.DefaultBreakoutConfig())
	p.X = 50

	// Absent on frame N, present at x=100 on frame N+1
	p.Update(nil, nil)
	p.Update(&core.Point{X: 100, Y: 35}, nil)

	if p.clickOffset != 50 {
		t.Errorf("clickOffset = %v, expected 50", p.clickOffset)
	}
	if p.X != 50 {
		t.Errorf("paddle moved to %v on press, expected it to stay at 50", p.X)
	}
}

func TestPaddleDragKeepsOffset(t *testing.T) {
	p := NewPaddle(config.DefaultBreakoutConfig())
	prev := &core.Point{X: 261, Y: 35}
	p.Update(prev, nil) // offset 50

	tests := []struct {
		pointerX float64
		want     float64
	}{
		{300, 250},
		{290, 240},
		{10, 0},     // clamped left
		{1000, 422}, // clamped right
		{100, 50},
	}

	for _, tc := range tests {
		curr := &core.Point{X: tc.pointerX, Y: 0}
		p.Update(curr, prev)
		if p.X != tc.want {
			t.Errorf("pointer at %v: paddle X = %v, expected %v", tc.pointerX, p.X, tc.want)
		}
		prev = curr
	}

	// Release leaves the paddle where it is
	p.Update(nil, prev)
	if p.X != 50 {
		t.Errorf("paddle moved on release to %v, expected 50", p.X)
	}
}

func TestPaddleStaysInPlayfield(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	p := NewPaddle(cfg)
	maxX := cfg.Playfield.Width - cfg.Paddle.Width
	rng := rand.New(rand.NewSource(7))

	var prev *core.Point
	for i := 0; i < 2000; i++ {
		var curr *core.Point
		if rng.Intn(4) != 0 {
			curr = &core.Point{X: rng.Float64()*1200 - 400, Y: rng.Float64() * 620}
		}
		p.Update(curr, prev)
		if p.X < 0 || p.X > maxX {
			t.Fatalf("frame %d: paddle X = %v outside [0, %v]", i, p.X, maxX)
		}
		prev = curr
	}
}
