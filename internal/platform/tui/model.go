package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// footerRows is the number of terminal rows reserved below the playfield.
const footerRows = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	fixedSeed  bool // Keep the seed on restart
	inputFrame core.InputFrame
	gameState  core.GameState
	pointer    *Pointer
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenW and cfg.ScreenH are the terminal size; the footer is
// subtracted from the playfield. A nil logger discards output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = max(cfg.ScreenH-footerRows, 1)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		fixedSeed:  fixed,
		inputFrame: core.NewInputFrame(),
		pointer:    &Pointer{},
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.pointer.Handle(msg, m.viewport())
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.logger.Info("quit", "phase", m.gameState.Phase)
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		m.inputFrame.Set(core.ActionRestart)
	}
	return m, nil
}

// handleResize processes window resize events.
// The game simulates in its own units, so only the buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-footerRows, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	m.logger.Debug("resized", "cols", m.config.ScreenW, "rows", m.config.ScreenH)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		m.inputFrame.DT = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	if m.inputFrame.Has(core.ActionRestart) {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		m.logger.Info("restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	m.inputFrame.Pointer = m.pointer.Sample()
	result := m.game.Step(m.inputFrame)
	if result.State.Phase != m.gameState.Phase {
		m.logger.Debug("phase", "from", m.gameState.Phase, "to", result.State.Phase)
	}
	m.gameState = result.State

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// viewport maps screen cells onto the game's playfield.
// Games without their own units are addressed in cells.
func (m Model) viewport() core.Viewport {
	v := core.Viewport{
		Cols:   m.screen.Width(),
		Rows:   m.screen.Height(),
		Width:  float64(m.screen.Width()),
		Height: float64(m.screen.Height()),
	}
	if sized, ok := m.game.(registry.Sized); ok {
		v.Width, v.Height = sized.Playfield()
	}
	return v
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderFrame(m.screen, m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Press, drag and release events
	)

	_, err := p.Run()
	return err
}
