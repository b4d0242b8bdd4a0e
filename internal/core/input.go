package core

// Action represents a semantic viewer action, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // W, Up arrow - move the player up
	ActionDown          // S, Down arrow - move the player down
	ActionLeft          // A, Left arrow - move the player left
	ActionRight         // D, Right arrow - move the player right
	ActionPause         // P, Space - pause/unpause the scene
	ActionStep          // N - advance one tick while paused
	ActionMethod        // M - cycle the narrow-phase method
	ActionFiner         // + - more grid chunks
	ActionCoarser       // - - fewer grid chunks
	ActionGrid          // G - toggle the grid overlay
	ActionRestart       // R - restart the scene
	ActionQuit          // Q, Ctrl+C - exit the viewer
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionStep:
		return "Step"
	case ActionMethod:
		return "Method"
	case ActionFiner:
		return "Finer"
	case ActionCoarser:
		return "Coarser"
	case ActionGrid:
		return "Grid"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
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
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Movement converts the directional actions into a unit step.
func (f InputFrame) Movement() (dx, dy float64) {
	if f.Has(ActionLeft) {
		dx--
	}
	if f.Has(ActionRight) {
		dx++
	}
	if f.Has(ActionUp) {
		dy--
	}
	if f.Has(ActionDown) {
		dy++
	}
	return dx, dy
}
