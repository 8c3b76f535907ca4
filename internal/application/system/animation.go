package system

import (
	"time"

	"github.com/younwookim/desertrun/internal/domain/entity"
	"github.com/younwookim/desertrun/internal/infrastructure/config"
)

// AnimationSystem picks the animation tag of every entity on the animation phase
type AnimationSystem struct {
	config *config.GameConfig
}

// NewAnimationSystem creates a new animation system
func NewAnimationSystem(cfg *config.GameConfig) *AnimationSystem {
	return &AnimationSystem{config: cfg}
}

// UpdateCharacter sets the character animation. period is the animation
// phase period; input within the last period counts as walking.
func (s *AnimationSystem) UpdateCharacter(c *entity.Character, now, period time.Duration) {
	switch {
	case c.IsDead():
		c.Anim = entity.AnimDead
	case c.IsHurt(now):
		c.Anim = entity.AnimHurt
	case c.IsAirborne():
		c.Anim = entity.AnimJumping
	case c.IsScared(now):
		c.Anim = entity.AnimScared
	case c.IdleFor(now) <= period:
		c.Anim = entity.AnimWalking
	case c.IdleFor(now) >= s.config.Physics.Combat.IdleTimeout():
		c.Anim = entity.AnimLongIdle
	default:
		c.Anim = entity.AnimIdle
	}
}

// UpdateEnemy sets an enemy animation
func (s *AnimationSystem) UpdateEnemy(e *entity.Enemy, c *entity.Character, now time.Duration) {
	switch {
	case e.Dead || e.IsDead():
		e.Anim = entity.AnimDead
	case e.IsHurt(now):
		e.Anim = entity.AnimHurt
	case e.Kind != entity.EnemyBoss:
		e.Anim = entity.AnimWalking
	case !e.Activated:
		e.Anim = entity.AnimIdle
	case BossDistance(c, e) < s.config.Physics.Boss.MinApproach:
		e.Anim = entity.AnimAlert
	default:
		e.Anim = entity.AnimWalking
	}
}

// UpdateProjectile sets a projectile animation
func (s *AnimationSystem) UpdateProjectile(p *entity.Projectile) {
	if p.Broken {
		p.Anim = entity.AnimSplash
		return
	}
	p.Anim = entity.AnimRotation
}
