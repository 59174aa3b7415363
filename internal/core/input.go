package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - shift piece left
	ActionRight           // D, Right arrow - shift piece right
	ActionRotate          // W, Up arrow, X - rotate piece clockwise
	ActionSoftDrop        // S, Down arrow - move piece down one row
	ActionHardDrop        // Space - drop piece to the floor and lock
	ActionConfirm         // Enter - confirm selection in menu
	ActionBack            // B - go back to menu
	ActionRestart         // R key - restart game after game over
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionPause           // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two simulation ticks.
// Presses are kept in arrival order and repeated presses are kept, so
// tapping Left three times within one frame moves three cells.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the recorded actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of recorded actions.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{actions: make([]Action, len(f.actions))}
	copy(clone.actions, f.actions)
	return clone
}
