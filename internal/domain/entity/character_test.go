package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func createTestCharacter() *Character {
	return NewCharacter(1, 100, 145, 130, 280, Inset{Top: 105, Left: 25, Right: 35, Bottom: 3}, 300)
}

func TestNewCharacter(t *testing.T) {
	c := createTestCharacter()

	assert.Equal(t, 100.0, c.X)
	assert.Equal(t, 145.0, c.Y)
	assert.Equal(t, MaxEnergy, c.Energy)
	assert.False(t, c.IsAirborne())
	assert.Equal(t, AnimIdle, c.Anim)
}

func TestCharacter_Scare(t *testing.T) {
	c := createTestCharacter()
	c.Scare(time.Second, 2*time.Second)

	assert.True(t, c.IsScared(time.Second))
	assert.True(t, c.IsScared(2999*time.Millisecond))
	assert.False(t, c.IsScared(3*time.Second))
}

func TestCharacter_IdleFor(t *testing.T) {
	c := createTestCharacter()
	c.Touch(time.Second)
	assert.Equal(t, 4*time.Second, c.IdleFor(5*time.Second))
}

func TestCharacter_Throw(t *testing.T) {
	cooldown := 500 * time.Millisecond

	t.Run("no ammo", func(t *testing.T) {
		c := createTestCharacter()
		assert.False(t, c.CanThrow(0, cooldown))
	})

	t.Run("first throw has no cooldown", func(t *testing.T) {
		c := createTestCharacter()
		c.Ammo = 2
		assert.True(t, c.CanThrow(0, cooldown))
	})

	t.Run("cooldown", func(t *testing.T) {
		c := createTestCharacter()
		c.Ammo = 2
		c.Throw(time.Second)
		assert.Equal(t, 1, c.Ammo)
		assert.False(t, c.CanThrow(time.Second+400*time.Millisecond, cooldown))
		assert.True(t, c.CanThrow(time.Second+500*time.Millisecond, cooldown))
	})

	t.Run("dead", func(t *testing.T) {
		c := createTestCharacter()
		c.Ammo = 2
		c.Hit(100, 0)
		assert.False(t, c.CanThrow(time.Second, cooldown))
	})
}
