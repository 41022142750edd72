package breakout

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// State is a phase of the game session.
type State int

const (
	StateInactive        State = iota // Title screen, waiting for a click
	StateCountdown                    // Counting down to the first serve
	StateActive                       // Ball in play
	StatePaused                       // Ball lost, waiting for a click
	StatePausedCountdown              // Counting down to the next serve
	StateGameOver                     // Won or lost, waiting for a click
)

// String returns the state name used in logs and GameState.Phase.
func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateCountdown:
		return "countdown"
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StatePausedCountdown:
		return "paused_countdown"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Message texts.
const (
	msgWin      = "You win!\nClick to start over"
	msgLose     = "Game over!\nClick to start over"
	msgTitleFmt = "Click to play!\n\nLives: %d"
	msgLostFmt  = "Lost a life!\nClick for a new ball\n\nLives: %d"
)

// Machine sequences a session: title screen, countdown, play, pauses
// between balls, and the game-over screen.
// It holds at most one Round, present from the first click until the
// round ends.
type Machine struct {
	cfg    config.BreakoutConfig
	rng    *rand.Rand
	logger *log.Logger

	state   State
	round   *Round
	ticks   int // Countdown ticks since entering a countdown state
	won     bool
	last    *core.Point // Pointer sample from the previous Update
	message *core.Label // nil while the ball is in play
}

// NewMachine creates a machine on the title screen.
// A nil logger discards output.
func NewMachine(cfg config.BreakoutConfig, rng *rand.Rand, logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Machine{cfg: cfg, rng: rng, logger: logger}
	m.init()
	return m
}

// init puts the machine on the title screen with no round.
func (m *Machine) init() {
	m.state = StateInactive
	m.round = nil
	m.ticks = 0
	m.won = false
	m.setMessage(fmt.Sprintf(msgTitleFmt, m.cfg.Gameplay.Tries+1), m.cfg.Playfield.Height/2, true)
}

// Update advances the session by one frame.
//
// pointer is this frame's pointer sample, nil when nothing is pressed.
// dt is the time since the previous frame in seconds; it is logged but all
// timing is counted in frames.
//
// Handlers run in a fixed order and each checks the current state, so a
// transition lets the next state's handler run in the same frame.
func (m *Machine) Update(dt float64, pointer *core.Point) {
	if dt > 0.5 {
		m.logger.Debug("slow frame", "dt", dt)
	}
	entered := m.state
	clicked := core.DetectEdge(m.last, pointer) == core.EdgeDown

	if m.state == StateInactive && clicked {
		m.round = NewRound(m.cfg, m.rng, m.logger)
		m.ticks = 0
		m.transition(StateCountdown)
	}

	if m.state == StateCountdown {
		m.round.UpdatePaddle(pointer)
		m.countdown()
	}

	if m.state == StatePaused && clicked {
		m.round.SetTries(m.round.Tries() - 1)
		m.transition(StatePausedCountdown)
	}

	if m.state == StatePausedCountdown {
		m.round.ResetBall()
		m.round.UpdatePaddle(pointer)
		m.round.SetLostLife(false)
		m.countdown()
	}

	if m.state == StateActive {
		m.round.UpdatePaddle(pointer)
		m.round.StepBall()
		m.resolve()
	}

	if m.state == StateGameOver {
		if m.won {
			m.setMessage(msgWin, m.cfg.Playfield.Height/2, true)
		} else {
			m.setMessage(msgLose, m.cfg.Playfield.Height/2, true)
		}
		// A click on the frame the round ends does not skip the screen.
		if entered == StateGameOver && clicked {
			m.logger.Info("session restarted")
			m.init()
		}
	}

	m.last = copyPoint(pointer)
}

// countdown shows 3, 2, 1 for PhaseTicks frames each, then starts play.
func (m *Machine) countdown() {
	phase := m.cfg.Gameplay.PhaseTicks
	y := m.cfg.Playfield.Height/2 - m.cfg.Playfield.Height/5

	switch {
	case m.ticks < phase:
		m.setMessage("3", y, false)
	case m.ticks < 2*phase:
		m.setMessage("2", y, false)
	case m.ticks < 3*phase:
		m.setMessage("1", y, false)
	default:
		m.message = nil
		m.transition(StateActive)
	}
	m.ticks++
}

// resolve checks the round after the ball has moved.
// Losing the last ball takes precedence over clearing the wall.
func (m *Machine) resolve() {
	r := m.round
	switch {
	case r.LostLife() && r.Tries() > 0:
		m.logger.Info("life lost", "tries", r.Tries())
		m.setMessage(fmt.Sprintf(msgLostFmt, r.Tries()), m.cfg.Playfield.Height/2, true)
		m.ticks = 0
		m.transition(StatePaused)
	case r.LostLife():
		m.logger.Info("game lost", "bricks", r.Wall().Len())
		m.round = nil
		m.won = false
		m.transition(StateGameOver)
	case r.IsWon():
		m.logger.Info("game won", "tries", r.Tries())
		m.round = nil
		m.won = true
		m.transition(StateGameOver)
	}
}

func (m *Machine) transition(next State) {
	m.logger.Info("transition", "state", m.state, "next", next)
	m.state = next
}

func (m *Machine) setMessage(text string, y float64, boxed bool) {
	m.message = &core.Label{
		Text:  text,
		X:     m.cfg.Playfield.Width / 2,
		Y:     y,
		Color: core.ColorBrightWhite,
		Boxed: boxed,
	}
}

// Render draws the round, if any, and then the current message.
func (m *Machine) Render(dst core.Surface) {
	if m.round != nil {
		m.round.Render(dst)
	}
	if m.message != nil {
		dst.DrawLabel(*m.message)
	}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Tries returns the extra balls left, or -1 when no round is running.
func (m *Machine) Tries() int {
	if m.round == nil {
		return -1
	}
	return m.round.Tries()
}

// Won reports whether the last finished round cleared the wall.
func (m *Machine) Won() bool {
	return m.won
}

// Message returns the text currently shown, or "" while the ball is in play.
func (m *Machine) Message() string {
	if m.message == nil {
		return ""
	}
	return m.message.Text
}

// Round returns the round in progress, or nil.
func (m *Machine) Round() *Round {
	return m.round
}

// Ticks returns the countdown frame counter.
func (m *Machine) Ticks() int {
	return m.ticks
}
