package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionRestart        // R key - reset the session to the title screen
	ActionQuit           // Q, Ctrl+C - exit the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
type InputFrame struct {
	// Pointer is the pointer sample for this tick, nil when nothing is pressed.
	Pointer *Point

	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// DT is the measured wall time since the previous tick in seconds.
	// Zero means the platform has no measurement and the nominal frame
	// delta applies.
	DT float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets actions, the pointer sample and DT for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = nil
	f.DT = 0
}

// PointerEdge classifies how the pointer changed between two samples.
type PointerEdge int

const (
	EdgeNone PointerEdge = iota // Not pressed in either sample
	EdgeDown                    // Pressed now, not pressed before
	EdgeHeld                    // Pressed in both samples
	EdgeUp                      // Released since the previous sample
)

// String returns a human-readable name for the edge.
func (e PointerEdge) String() string {
	switch e {
	case EdgeNone:
		return "none"
	case EdgeDown:
		return "down"
	case EdgeHeld:
		return "held"
	case EdgeUp:
		return "up"
	default:
		return "unknown"
	}
}

// DetectEdge compares the previous and current pointer samples.
func DetectEdge(prev, curr *Point) PointerEdge {
	switch {
	case prev == nil && curr != nil:
		return EdgeDown
	case prev != nil && curr != nil:
		return EdgeHeld
	case prev != nil && curr == nil:
		return EdgeUp
	default:
		return EdgeNone
	}
}
