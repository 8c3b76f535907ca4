package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/desertrun/internal/domain/entity"
)

func TestNewInputSystem(t *testing.T) {
	cfg := createTestGameConfig()

	sys := NewInputSystem(cfg.Physics)

	require.NotNil(t, sys)
	assert.Equal(t, cfg.Physics, sys.config)
}

func TestInputSystem_Intents(t *testing.T) {
	cfg := createTestGameConfig()
	sys := NewInputSystem(cfg.Physics)
	id := entity.EntityID(1)

	tests := []struct {
		name string
		in   InputState
		want []Intent
	}{
		{"nothing", InputState{}, nil},
		{"left", InputState{Left: true}, []Intent{MoveIntent{EntityID: id, Dir: -1}}},
		{"right", InputState{Right: true}, []Intent{MoveIntent{EntityID: id, Dir: 1}}},
		{"left wins", InputState{Left: true, Right: true}, []Intent{MoveIntent{EntityID: id, Dir: -1}}},
		{"jump", InputState{Jump: true}, []Intent{JumpIntent{EntityID: id, Impulse: 30}}},
		{"run, jump and throw", InputState{Right: true, Jump: true, Throw: true}, []Intent{
			MoveIntent{EntityID: id, Dir: 1},
			JumpIntent{EntityID: id, Impulse: 30},
			ThrowIntent{EntityID: id},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sys.Intents(id, tt.in))
		})
	}
}

func TestHasThrow(t *testing.T) {
	assert.False(t, HasThrow(nil))
	assert.False(t, HasThrow([]Intent{MoveIntent{Dir: 1}}))
	assert.True(t, HasThrow([]Intent{MoveIntent{Dir: 1}, ThrowIntent{}}))
}
