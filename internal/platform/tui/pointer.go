package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Pointer turns left-button mouse events into one sample per tick.
//
// The sample is present while the button is held and absent otherwise.
// A press that is released before the next tick still yields one present
// sample, so quick clicks are not lost between ticks.
type Pointer struct {
	pos     core.Point
	held    bool
	latched bool // Pressed since the last sample
}

// Handle records a mouse event. Cells are projected into the playfield
// through view.
func (p *Pointer) Handle(msg tea.MouseMsg, view core.Viewport) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		p.pos = view.ToWorld(msg.X, msg.Y)
		p.held = true
		p.latched = true
	case tea.MouseActionMotion:
		if p.held {
			p.pos = view.ToWorld(msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		p.held = false
	}
}

// Sample returns this tick's pointer sample and clears the press latch.
func (p *Pointer) Sample() *core.Point {
	present := p.held || p.latched
	p.latched = false
	if !present {
		return nil
	}
	pos := p.pos
	return &pos
}
