package core

// Action represents a semantic game action, abstracted from physical key presses.
// Keyboard, tap and click inputs all collapse to one of these.
type Action int

const (
	ActionNone   Action = iota
	ActionJump          // Space, Up, W, Enter, mouse press - start a run or jump
	ActionScores        // Tab - toggle the leaderboard overlay
	ActionQuit          // Q, Ctrl+C - exit the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
