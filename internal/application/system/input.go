package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/desertrun/internal/domain/entity"
	"github.com/younwookim/desertrun/internal/infrastructure/config"
)

// InputSystem turns keyboard state into character intents
type InputSystem struct {
	config *config.PhysicsConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.PhysicsConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// InputState holds the four gameplay buttons sampled once per movement step
type InputState struct {
	Left  bool
	Right bool
	Jump  bool
	Throw bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:  ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Throw: ebiten.IsKeyPressed(ebiten.KeyD),
	}
}

// Intents converts an input state into intents for the character.
// Left wins when both directions are held.
func (s *InputSystem) Intents(id entity.EntityID, in InputState) []Intent {
	var intents []Intent
	switch {
	case in.Left:
		intents = append(intents, MoveIntent{EntityID: id, Dir: -1})
	case in.Right:
		intents = append(intents, MoveIntent{EntityID: id, Dir: 1})
	}
	if in.Jump {
		intents = append(intents, JumpIntent{EntityID: id, Impulse: s.config.Kinematics.JumpImpulse})
	}
	if in.Throw {
		intents = append(intents, ThrowIntent{EntityID: id})
	}
	return intents
}
