package breakout

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

const frame = 1.0 / 60

var tap = &core.Point{X: 240, Y: 35}

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	return NewMachine(config.DefaultBreakoutConfig(), rand.New(rand.NewSource(3)), nil)
}

// click releases the pointer for a frame, then presses it.
func click(m *Machine) {
	m.Update(frame, nil)
	m.Update(frame, tap)
}

// runCountdown releases the pointer and steps until the countdown ends.
func runCountdown(t *testing.T, m *Machine) {
	t.Helper()
	for i := 0; i < 3*m.cfg.Gameplay.PhaseTicks; i++ {
		m.Update(frame, nil)
	}
	if m.State() != StateActive {
		t.Fatalf("state after countdown = %v, expected active", m.State())
	}
}

// dropBall puts the ball on the floor, away from the paddle, and steps once.
func dropBall(m *Machine) {
	b := m.Round().Ball()
	b.X, b.Y, b.VX, b.VY = 100, 0, 0, -5
	m.Update(frame, nil)
}

func TestMachineStartsInactive(t *testing.T) {
	m := newTestMachine(t)

	if m.State() != StateInactive {
		t.Errorf("initial state = %v, expected inactive", m.State())
	}
	if m.Message() != "Click to play!\n\nLives: 3" {
		t.Errorf("Message() = %q", m.Message())
	}
	if m.Tries() != -1 {
		t.Errorf("Tries() = %d, expected -1 with no round", m.Tries())
	}

	m.Update(frame, nil)
	if m.State() != StateInactive {
		t.Errorf("no pointer: state = %v, expected inactive", m.State())
	}
}

func TestMachineClickStartsCountdownSameFrame(t *testing.T) {
	m := newTestMachine(t)
	m.Update(frame, tap)

	if m.State() != StateCountdown {
		t.Fatalf("state = %v, expected countdown", m.State())
	}
	if m.Message() != "3" {
		t.Errorf("Message() = %q, expected the countdown to run in the click frame", m.Message())
	}
	if m.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", m.Ticks())
	}
	if m.Tries() != 2 {
		t.Errorf("Tries() = %d, expected 2", m.Tries())
	}
}

func TestMachineCountdownMessages(t *testing.T) {
	m := newTestMachine(t)
	m.Update(frame, tap)

	want := map[int]string{59: "3", 60: "2", 119: "2", 120: "1", 179: "1", 180: ""}
	for k := 1; k <= 180; k++ {
		m.Update(frame, nil)
		if msg, ok := want[k]; ok && m.Message() != msg {
			t.Errorf("after %d frames: Message() = %q, expected %q", k, m.Message(), msg)
		}
	}
	if m.State() != StateActive {
		t.Errorf("state = %v, expected active", m.State())
	}
}

func TestMachineCountdownIgnoresDt(t *testing.T) {
	deltas := [][]float64{
		{frame},
		{0},
		{5.0},
		{0.001, 2.5, 0.1},
	}

	for _, ds := range deltas {
		m := newTestMachine(t)
		m.Update(ds[0], tap)

		frames := 0
		for m.State() == StateCountdown {
			m.Update(ds[frames%len(ds)], nil)
			frames++
			if frames > 1000 {
				t.Fatal("countdown never ended")
			}
		}
		if frames != 180 {
			t.Errorf("dt %v: countdown took %d frames after the click, expected 180", ds, frames)
		}
	}
}

func TestMachineLoseAllLives(t *testing.T) {
	m := newTestMachine(t)
	click(m)
	runCountdown(t, m)

	for _, lives := range []int{2, 1} {
		dropBall(m)
		if m.State() != StatePaused {
			t.Fatalf("state = %v, expected paused", m.State())
		}
		want := fmt.Sprintf("Lost a life!\nClick for a new ball\n\nLives: %d", lives)
		if m.Message() != want {
			t.Errorf("Message() = %q, expected %q", m.Message(), want)
		}

		click(m)
		if m.State() != StatePausedCountdown {
			t.Fatalf("state = %v, expected paused_countdown", m.State())
		}
		if m.Tries() != lives-1 {
			t.Errorf("Tries() = %d, expected %d", m.Tries(), lives-1)
		}
		if m.Round().LostLife() {
			t.Error("serving a new ball should clear the lost-life flag")
		}
		runCountdown(t, m)
	}

	dropBall(m)
	if m.State() != StateGameOver {
		t.Fatalf("state = %v, expected gameover", m.State())
	}
	if m.Won() {
		t.Error("Won() should be false after losing the last ball")
	}
	if m.Round() != nil {
		t.Error("round should be dropped on game over")
	}
	if m.Message() != "Game over!\nClick to start over" {
		t.Errorf("Message() = %q", m.Message())
	}

	click(m)
	if m.State() != StateInactive {
		t.Errorf("click on game over: state = %v, expected inactive", m.State())
	}
	if m.Message() != "Click to play!\n\nLives: 3" {
		t.Errorf("Message() = %q", m.Message())
	}
}

func TestMachineWin(t *testing.T) {
	m := newTestMachine(t)
	click(m)
	runCountdown(t, m)

	r := m.Round()
	r.SetTries(0)
	r.wall = &BrickWall{bricks: []*Brick{{Rect: core.NewRect(200, 300, 43, 8)}}}
	b := r.Ball()
	b.X, b.Y, b.VX, b.VY = 210, 280, 0, 5
	m.Update(frame, nil)

	if m.State() != StateGameOver {
		t.Fatalf("state = %v, expected gameover", m.State())
	}
	if !m.Won() {
		t.Error("Won() should be true after clearing the wall")
	}
	if m.Message() != "You win!\nClick to start over" {
		t.Errorf("Message() = %q", m.Message())
	}
}

func TestMachineLoseBeatsWin(t *testing.T) {
	m := newTestMachine(t)
	click(m)
	runCountdown(t, m)

	// Last brick sits on the floor so the final ball clears it and is lost
	r := m.Round()
	r.SetTries(0)
	r.wall = &BrickWall{bricks: []*Brick{{Rect: core.NewRect(95, -10, 30, 12)}}}
	dropBall(m)

	if m.State() != StateGameOver {
		t.Fatalf("state = %v, expected gameover", m.State())
	}
	if m.Won() {
		t.Error("losing the last ball should take precedence over an empty wall")
	}
}

func TestMachineLostBallWithEmptyWallPausesFirst(t *testing.T) {
	m := newTestMachine(t)
	click(m)
	runCountdown(t, m)

	r := m.Round()
	r.SetTries(1)
	r.wall = &BrickWall{bricks: []*Brick{{Rect: core.NewRect(95, -10, 30, 12)}}}
	dropBall(m)

	if m.State() != StatePaused {
		t.Fatalf("state = %v, expected paused while a ball is left", m.State())
	}
	if !r.IsWon() {
		t.Fatal("the falling ball should have cleared the last brick")
	}

	// The win is reported once the next ball is in play.
	click(m)
	for i := 0; i < 3*m.cfg.Gameplay.PhaseTicks && m.State() != StateGameOver; i++ {
		m.Update(frame, nil)
	}
	if m.State() != StateGameOver || !m.Won() {
		t.Errorf("state = %v won = %v, expected a won gameover after the serve", m.State(), m.Won())
	}
}

func TestMachineClickOnFinalFrameKeepsGameOver(t *testing.T) {
	m := newTestMachine(t)
	click(m)
	runCountdown(t, m)
	m.Round().SetTries(0)

	b := m.Round().Ball()
	b.X, b.Y, b.VX, b.VY = 100, 0, 0, -5
	m.Update(frame, tap) // press lands on the losing frame

	if m.State() != StateGameOver {
		t.Fatalf("state = %v, expected gameover", m.State())
	}

	click(m)
	if m.State() != StateInactive {
		t.Errorf("state = %v, expected inactive after a fresh click", m.State())
	}
}

func TestMachineRender(t *testing.T) {
	m := newTestMachine(t)
	s := &recordingSurface{}
	m.Render(s)
	if len(s.rects) != 0 || len(s.labels) != 1 {
		t.Errorf("title screen drew %d rects and %d labels, expected only the message", len(s.rects), len(s.labels))
	}

	m.Update(frame, tap)
	s = &recordingSurface{}
	m.Render(s)

	// 100 bricks and the paddle, then the ball, then the countdown
	if len(s.rects) != 101 {
		t.Errorf("drew %d rects, expected 101", len(s.rects))
	}
	if len(s.ellipses) != 1 {
		t.Errorf("drew %d ellipses, expected 1", len(s.ellipses))
	}
	if len(s.labels) != 1 || s.labels[0].Text != "3" {
		t.Errorf("labels = %+v, expected the countdown", s.labels)
	}
	if s.order[len(s.order)-1] != "label" {
		t.Error("message should be drawn last")
	}
}

type recordingSurface struct {
	rects    []core.Rect
	ellipses []core.Rect
	labels   []core.Label
	order    []string
}

func (s *recordingSurface) FillRect(r core.Rect, _ core.Color) {
	s.rects = append(s.rects, r)
	s.order = append(s.order, "rect")
}

func (s *recordingSurface) FillEllipse(r core.Rect, _ core.Color) {
	s.ellipses = append(s.ellipses, r)
	s.order = append(s.order, "ellipse")
}

func (s *recordingSurface) DrawLabel(l core.Label) {
	s.labels = append(s.labels, l)
	s.order = append(s.order, "label")
}
