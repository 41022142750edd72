package tui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// 48x31 cells over a 480x620 playfield: 10 units per column, 20 per row.
var testView = core.Viewport{Cols: 48, Rows: 31, Width: 480, Height: 620}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func TestPointerSamples(t *testing.T) {
	p := &Pointer{}

	if p.Sample() != nil {
		t.Error("untouched pointer should sample absent")
	}

	p.Handle(press(24, 30), testView)
	s := p.Sample()
	if s == nil {
		t.Fatal("pressed pointer should sample present")
	}
	if !near(s.X, 245) || !near(s.Y, 10) {
		t.Errorf("sample at (%v, %v), expected (245, 10)", s.X, s.Y)
	}

	p.Handle(motion(10, 30), testView)
	if s := p.Sample(); s == nil || !near(s.X, 105) {
		t.Errorf("drag sample = %v, expected x=105", s)
	}

	p.Handle(release(10, 30), testView)
	if p.Sample() != nil {
		t.Error("released pointer should sample absent")
	}
}

func TestPointerLatchesQuickClick(t *testing.T) {
	p := &Pointer{}

	p.Handle(press(5, 5), testView)
	p.Handle(release(5, 5), testView)

	if p.Sample() == nil {
		t.Error("a click inside one tick should still yield one present sample")
	}
	if p.Sample() != nil {
		t.Error("the latched click should only be delivered once")
	}
}

func TestPointerIgnoresHoverAndOtherButtons(t *testing.T) {
	p := &Pointer{}

	p.Handle(motion(5, 5), testView)
	if p.Sample() != nil {
		t.Error("motion without a press should not sample present")
	}

	p.Handle(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, testView)
	if p.Sample() != nil || p.held {
		t.Error("right button should be ignored")
	}
}

func TestKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKey(tc.msg); got != tc.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.SetColored(0, 0, 'a', core.ColorRed)
	s.SetColored(1, 0, 'b', core.ColorRed)
	s.SetColored(2, 1, 'c', core.ColorCyan)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") {
		t.Errorf("first row %q should contain the run \"ab\"", lines[0])
	}
	if !strings.Contains(lines[1], "c") {
		t.Errorf("second row %q should contain \"c\"", lines[1])
	}

	frame := RenderFrame(s, "q quit")
	if !strings.Contains(frame, "q quit") {
		t.Error("frame should include the footer")
	}
	if got := strings.Count(frame, "\n"); got != 2 {
		t.Errorf("frame has %d newlines, expected 2", got)
	}
}

// recordingGame remembers the frames it was stepped with.
type recordingGame struct {
	frames []core.InputFrame
}

func (g *recordingGame) ID() string               { return "recording" }
func (g *recordingGame) Title() string            { return "Recording" }
func (g *recordingGame) Reset(core.RuntimeConfig) {}
func (g *recordingGame) Render(*core.Screen)      {}
func (g *recordingGame) State() core.GameState    { return core.GameState{} }

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in)
	return core.StepResult{}
}

func TestTickForwardsMeasuredDelta(t *testing.T) {
	g := &recordingGame{}
	var m tea.Model = NewModel(g, core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1}, nil)

	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m, _ = m.Update(TickMsg(t0))
	m, _ = m.Update(TickMsg(t0.Add(700 * time.Millisecond)))
	_, _ = m.Update(TickMsg(t0.Add(716 * time.Millisecond)))

	if len(g.frames) != 3 {
		t.Fatalf("game stepped %d times, expected 3", len(g.frames))
	}
	if g.frames[0].DT != 0 {
		t.Errorf("first tick DT = %v, expected 0 (no measurement yet)", g.frames[0].DT)
	}
	if !near(g.frames[1].DT, 0.7) {
		t.Errorf("second tick DT = %v, expected 0.7", g.frames[1].DT)
	}
	if !near(g.frames[2].DT, 0.016) {
		t.Errorf("third tick DT = %v, expected 0.016", g.frames[2].DT)
	}
}
