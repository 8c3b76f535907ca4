package system

import (
	"math"
	"time"

	"github.com/younwookim/desertrun/internal/domain/entity"
	"github.com/younwookim/desertrun/internal/domain/event"
	"github.com/younwookim/desertrun/internal/infrastructure/config"
)

// MovementSystem moves entities horizontally on the movement phase
type MovementSystem struct {
	config   *config.GameConfig
	policies Policies
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(cfg *config.GameConfig, policies Policies) *MovementSystem {
	return &MovementSystem{
		config:   cfg,
		policies: policies,
	}
}

// UpdateCharacter applies move and jump intents and clamps the character to
// [0, endX]. Throw intents are handled by the tick, not here.
func (s *MovementSystem) UpdateCharacter(c *entity.Character, intents []Intent, endX float64, now time.Duration, dt float64) []event.Event {
	if c.IsDead() {
		return nil
	}

	var events []event.Event
	for _, in := range intents {
		switch it := in.(type) {
		case MoveIntent:
			if it.Dir < 0 {
				c.MoveLeft(dt)
			} else if it.Dir > 0 {
				c.MoveRight(dt)
			}
			c.Touch(now)
		case JumpIntent:
			c.Touch(now)
			if c.IsAirborne() || c.VY > 0 {
				continue
			}
			c.Launch(it.Impulse)
			events = append(events, event.New(event.Jump, 0, now))
		}
	}

	c.X = clamp(c.X, 0, endX)
	return events
}

// UpdateEnemy runs the enemy's AI for one movement step
func (s *MovementSystem) UpdateEnemy(e *entity.Enemy, c *entity.Character, dt float64) {
	if !e.IsAlive() {
		return
	}

	switch s.policies.Lookup(e.Kind).AI {
	case AIChase:
		s.updateChaseAI(e, c, dt)
	default:
		e.MoveLeft(dt)
	}
}

func (s *MovementSystem) updateChaseAI(e *entity.Enemy, c *entity.Character, dt float64) {
	if !e.Activated {
		return
	}

	dx := centerX(&c.Sprite) - centerX(&e.Sprite)
	if math.Abs(dx) < s.config.Physics.Boss.MinApproach {
		return
	}

	e.Speed = e.CurrentSpeed()
	if dx < 0 {
		e.MoveLeft(dt)
	} else {
		e.MoveRight(dt)
	}
}

// UpdateProjectile flies a projectile in its throw direction
func (s *MovementSystem) UpdateProjectile(p *entity.Projectile, dt float64) {
	if p.Broken {
		return
	}
	if p.ThrowLeft {
		p.MoveLeft(dt)
	} else {
		p.MoveRight(dt)
	}
}

// UpdateDecoration drifts clouds; static layers have zero drift
func (s *MovementSystem) UpdateDecoration(d *entity.Decoration, dt float64) {
	d.X += d.Drift * dt
}

// BossDistance returns the horizontal distance between the sprite centers
func BossDistance(c *entity.Character, boss *entity.Enemy) float64 {
	return math.Abs(centerX(&c.Sprite) - centerX(&boss.Sprite))
}

func centerX(s *entity.Sprite) float64 {
	return s.X + s.W/2
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
