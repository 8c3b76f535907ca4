package entity

import "time"

// Character is the player-controlled entity
type Character struct {
	Body
	Health

	ID EntityID

	ScaredUntil time.Duration
	LastMove    time.Duration // last time any input moved the character
	Ammo        int           // bottles carried
	Coins       int
	LastThrow   time.Duration
	thrown      bool
}

// NewCharacter creates a character standing on its ground line
func NewCharacter(id EntityID, x, groundY, w, h float64, inset Inset, speed float64) *Character {
	return &Character{
		Body: Body{
			Sprite:  Sprite{X: x, Y: groundY, W: w, H: h, Inset: inset},
			Speed:   speed,
			GroundY: groundY,
		},
		Health: NewHealth(),
		ID:     id,
	}
}

// Scare keeps the character scared until now+d
func (c *Character) Scare(now, d time.Duration) {
	c.ScaredUntil = now + d
}

// IsScared returns true while a scare is running
func (c *Character) IsScared(now time.Duration) bool {
	return now < c.ScaredUntil
}

// Touch records input activity for idle tracking
func (c *Character) Touch(now time.Duration) {
	c.LastMove = now
}

// IdleFor returns how long the character has been without input
func (c *Character) IdleFor(now time.Duration) time.Duration {
	return since(now, c.LastMove)
}

// CanThrow checks ammo and the throw cooldown
func (c *Character) CanThrow(now, cooldown time.Duration) bool {
	if c.Ammo <= 0 || c.IsDead() {
		return false
	}
	return !c.thrown || since(now, c.LastThrow) >= cooldown
}

// Throw spends one bottle and starts the cooldown
func (c *Character) Throw(now time.Duration) {
	c.Ammo--
	c.LastThrow = now
	c.thrown = true
}
