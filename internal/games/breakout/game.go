package breakout

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives session events; discarded unless SetLogger is called.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names clear the preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		logger.Warn("ignoring difficulty preset", "err", err)
	}
	difficultyPreset = p
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts the session state machine to the arcade game interface.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.BreakoutConfig
	machine *Machine
	tick    uint64
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset loads the config and starts a new session on the title screen.
// Serves are drawn from an RNG seeded with runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		logger.Warn("falling back to default config", "err", err)
		cfg = config.DefaultBreakoutConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.machine = NewMachine(cfg, rand.New(rand.NewSource(runtime.Seed)), logger)
	g.tick = 0

	logger.Debug("session reset",
		"seed", runtime.Seed,
		"difficulty", string(difficultyPreset),
		"bricks", cfg.Bricks.Rows*cfg.Bricks.PerRow,
	)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	dt := in.DT
	if dt <= 0 {
		dt = g.runtime.FrameDelta()
	}
	g.tick++
	g.machine.Update(dt, in.Pointer)

	return core.StepResult{State: g.State()}
}

// Render draws the session scaled to fill the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.machine.Render(core.NewCanvas(dst, g.cfg.Playfield.Width, g.cfg.Playfield.Height))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	m := g.machine
	return core.GameState{
		Phase:    m.State().String(),
		Tries:    m.Tries(),
		GameOver: m.State() == StateGameOver,
		Won:      m.Won(),
		Paused:   m.State() == StatePaused,
	}
}

// Playfield returns the playfield size in world units.
func (g *Game) Playfield() (width, height float64) {
	return g.cfg.Playfield.Width, g.cfg.Playfield.Height
}

// Register the game
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
