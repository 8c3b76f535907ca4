package entity

// AnimState is the animation tag the renderer reads for an entity
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimLongIdle
	AnimWalking
	AnimJumping
	AnimHurt
	AnimDead
	AnimScared
	AnimAlert
	AnimRotation
	AnimSplash
)

// String returns the animation name
func (a AnimState) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimLongIdle:
		return "longIdle"
	case AnimWalking:
		return "walking"
	case AnimJumping:
		return "jumping"
	case AnimHurt:
		return "hurt"
	case AnimDead:
		return "dead"
	case AnimScared:
		return "scared"
	case AnimAlert:
		return "alert"
	case AnimRotation:
		return "rotation"
	case AnimSplash:
		return "splash"
	default:
		return "unknown"
	}
}
