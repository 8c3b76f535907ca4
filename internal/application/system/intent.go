package system

import "github.com/younwookim/desertrun/internal/domain/entity"

// Intent represents an action that an entity wants to perform
type Intent interface {
	isIntent()
}

// MoveIntent represents a horizontal movement intention
type MoveIntent struct {
	EntityID entity.EntityID
	Dir      int // -1 for left, 1 for right
}

func (MoveIntent) isIntent() {}

// JumpIntent represents a jump intention
type JumpIntent struct {
	EntityID entity.EntityID
	Impulse  float64
}

func (JumpIntent) isIntent() {}

// ThrowIntent represents a bottle throw intention
type ThrowIntent struct {
	EntityID entity.EntityID
}

func (ThrowIntent) isIntent() {}

// HasThrow reports whether intents contain a throw
func HasThrow(intents []Intent) bool {
	for _, in := range intents {
		if _, ok := in.(ThrowIntent); ok {
			return true
		}
	}
	return false
}
