package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBody_IsAirborne(t *testing.T) {
	b := &Body{Sprite: Sprite{Y: 145}, GroundY: 145}
	assert.False(t, b.IsAirborne())

	b.Y = 100
	assert.True(t, b.IsAirborne())

	b.Y = 400
	b.AlwaysAirborne = true
	assert.True(t, b.IsAirborne(), "projectiles stay airborne below ground")
}

func TestBody_Launch(t *testing.T) {
	b := &Body{}
	b.Launch(30)
	assert.Equal(t, 30.0, b.VY)

	b.Launch(0)
	assert.Equal(t, 30.0, b.VY, "zero impulse is ignored")

	b.Launch(-5)
	assert.Equal(t, 30.0, b.VY, "negative impulse is ignored")
}

func TestBody_Move(t *testing.T) {
	b := &Body{Sprite: Sprite{X: 100}, Speed: 300}

	b.MoveRight(0.5)
	assert.Equal(t, 250.0, b.X)
	assert.False(t, b.FacingLeft)

	b.MoveLeft(0.25)
	assert.Equal(t, 175.0, b.X)
	assert.True(t, b.FacingLeft)
}

func TestSnapshotOf(t *testing.T) {
	b := &Body{Sprite: Sprite{X: 10, Y: 100}, VY: -2.5, GroundY: 145}
	s := SnapshotOf(b)

	assert.Equal(t, Snapshot{PrevX: 10, PrevY: 100, PrevVY: -2.5, WasAirborne: true}, s)

	// snapshot is a copy
	b.Y = 145
	assert.Equal(t, 100.0, s.PrevY)
}
