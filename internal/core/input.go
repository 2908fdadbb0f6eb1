package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionLeft                // Left arrow, A - start moving left
	ActionLeftRelease         // stop moving left
	ActionRight               // Right arrow, D - start moving right
	ActionRightRelease        // stop moving right
	ActionJump                // Space, Up, W - jump or double jump
	ActionConfirm             // Enter - start from the title screen
	ActionBack                // B, Escape - leave the scoreboard
	ActionRestart             // R - restart after game over
	ActionQuit                // Q, Ctrl+C - exit
	ActionPause               // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionLeftRelease:
		return "LeftRelease"
	case ActionRight:
		return "Right"
	case ActionRightRelease:
		return "RightRelease"
	case ActionJump:
		return "Jump"
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

// InputFrame is the ordered queue of actions delivered between two ticks.
// The platform appends as events arrive; the game drains it once at the
// start of the next tick, so later actions override earlier ones.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make([]Action, 0, 4)}
	f.Actions = append(f.Actions, actions...)
	return f
}

// Push appends an action to the queue.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was queued this frame.
func (f InputFrame) Has(a Action) bool {
	for _, queued := range f.Actions {
		if queued == a {
			return true
		}
	}
	return false
}

// Clear empties the queue for the next frame, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

