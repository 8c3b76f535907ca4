package system

import (
	"github.com/younwookim/desertrun/internal/domain/entity"
	"github.com/younwookim/desertrun/internal/domain/event"
	"github.com/younwookim/desertrun/internal/infrastructure/config"
)

// AIType defines the type of AI movement
type AIType int

const (
	AIWalk  AIType = iota // walk left at a constant speed
	AIChase               // wait for activation, then close in on the character
)

// EnemyPolicy holds the rules that differ between enemy kinds
type EnemyPolicy struct {
	AI        AIType
	Stompable bool

	// A projectile hit either kills outright or drains ProjectileDamage
	ProjectileKills  bool
	ProjectileDamage int
	HitEvent         event.Kind
}

// Policies maps an enemy kind to its rules
type Policies map[entity.EnemyKind]EnemyPolicy

// DefaultPolicies returns the policy table for the shipped enemy kinds
func DefaultPolicies(cfg *config.CombatConfig) Policies {
	return Policies{
		entity.EnemyWalker: {
			AI:              AIWalk,
			Stompable:       true,
			ProjectileKills: true,
			HitEvent:        event.EnemyKill,
		},
		entity.EnemySmallWalker: {
			AI:              AIWalk,
			Stompable:       true,
			ProjectileKills: true,
			HitEvent:        event.EnemyKill,
		},
		entity.EnemyBoss: {
			AI:               AIChase,
			ProjectileDamage: cfg.BossHitDamage,
			HitEvent:         event.BossHurt,
		},
	}
}

// Lookup returns the policy of a kind. Unknown kinds get the zero policy:
// not stompable and unaffected by projectiles.
func (p Policies) Lookup(kind entity.EnemyKind) EnemyPolicy {
	return p[kind]
}
