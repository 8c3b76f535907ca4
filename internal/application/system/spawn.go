package system

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/desertrun/internal/domain/entity"
	"github.com/younwookim/desertrun/internal/infrastructure/config"
)

// Spawner builds entities from config and hands out entity IDs
type Spawner struct {
	config *config.GameConfig
	rng    *rand.Rand
	nextID entity.EntityID
}

// NewSpawner creates a spawner. rng drives per-instance speeds and spread.
func NewSpawner(cfg *config.GameConfig, rng *rand.Rand) *Spawner {
	return &Spawner{
		config: cfg,
		rng:    rng,
	}
}

// NextID returns a fresh entity ID
func (s *Spawner) NextID() entity.EntityID {
	s.nextID++
	return s.nextID
}

// Character creates the character at x on its ground line
func (s *Spawner) Character(x float64) *entity.Character {
	cc := s.config.Entities.Character
	c := entity.NewCharacter(s.NextID(), x, cc.GroundY, cc.Size.W, cc.Size.H, cc.Inset.Inset(), cc.Speed)
	c.HurtWindow = s.config.Physics.Combat.HurtWindow()
	return c
}

// Enemy creates an enemy of kind at x
func (s *Spawner) Enemy(kind entity.EnemyKind, x float64) (*entity.Enemy, error) {
	ec, ok := s.config.Entities.Enemies[kind.String()]
	if !ok {
		return nil, fmt.Errorf("no entity config for enemy %s", kind)
	}

	speed := ec.Speed.Min
	if ec.Speed.Max > ec.Speed.Min {
		speed += s.rng.Float64() * (ec.Speed.Max - ec.Speed.Min)
	}

	e := entity.NewEnemy(s.NextID(), kind, x, ec.GroundY, ec.Size.W, ec.Size.H, ec.Inset.Inset(), speed)
	e.HurtWindow = s.config.Physics.Combat.HurtWindow()

	if kind == entity.EnemyBoss {
		boss := s.config.Physics.Boss
		e.Speed = boss.BaseSpeed
		e.BaseSpeed = boss.BaseSpeed
		e.EnragedSpeed = boss.EnragedSpeed
		e.EnrageBelow = boss.EnrageBelow
		e.Anim = entity.AnimIdle
	}
	return e, nil
}

// Collectible creates a pickup of kind at x, y
func (s *Spawner) Collectible(kind entity.CollectibleKind, x, y float64) (*entity.Collectible, error) {
	cc, ok := s.config.Entities.Collectibles[kind.String()]
	if !ok {
		return nil, fmt.Errorf("no entity config for collectible %s", kind)
	}
	return entity.NewCollectible(s.NextID(), kind, x, y, cc.Size.W, cc.Size.H, cc.Inset.Inset()), nil
}

// Projectile creates a bottle thrown by the character
func (s *Spawner) Projectile(c *entity.Character) *entity.Projectile {
	pc := s.config.Entities.Projectile
	tc := s.config.Physics.Throw

	x := c.X + tc.OffsetX
	if c.FacingLeft {
		x = c.X + c.W - tc.OffsetX - pc.Size.W
	}

	return entity.NewProjectile(
		s.NextID(),
		x, c.Y+tc.OffsetY,
		pc.Size.W, pc.Size.H,
		pc.Inset.Inset(),
		tc.Speed,
		s.config.Physics.Kinematics.ThrowImpulse,
		pc.GroundY,
		c.FacingLeft,
	)
}
