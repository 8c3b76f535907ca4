package state

// GameState represents the current state of a session
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateLost
	StateWon
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateLost:
		return "Lost"
	case StateWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Terminal returns true once the session is decided
func (s GameState) Terminal() bool {
	return s == StateLost || s == StateWon
}
