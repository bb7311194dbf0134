package core

// Action represents a semantic input signal, abstracted from physical key presses.
type Action int

const (
	ActionNone           Action = iota
	ActionStartOrRestart        // Enter - start a run, or reload after death
	ActionJump                  // Space, Up, W - jump
	ActionScoreboard            // Tab - open run history
	ActionBack                  // Esc, B - leave a secondary screen
	ActionQuit                  // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStartOrRestart:
		return "StartOrRestart"
	case ActionJump:
		return "Jump"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
