package system

import (
	"github.com/younwookim/desertrun/internal/domain/entity"
	"github.com/younwookim/desertrun/internal/infrastructure/config"
)

// KinematicSystem applies the discrete gravity step
type KinematicSystem struct {
	config *config.KinematicsConfig
}

// NewKinematicSystem creates a new kinematic system
func NewKinematicSystem(cfg *config.KinematicsConfig) *KinematicSystem {
	return &KinematicSystem{config: cfg}
}

// Integrate runs one gravity step on a body.
// Bodies that are grounded and not launched are left alone.
func (s *KinematicSystem) Integrate(b *entity.Body) {
	if b.IsAirborne() || b.VY > 0 {
		b.Y -= b.VY
		b.VY -= s.config.Acceleration
	}

	// Ground contact
	if !b.AlwaysAirborne && b.Y >= b.GroundY {
		b.Y = b.GroundY
		b.VY = 0
	}
}

// Step snapshots the character and integrates it together with every
// flying projectile. The snapshot is taken before gravity is applied.
func (s *KinematicSystem) Step(c *entity.Character, projectiles []*entity.Projectile) entity.Snapshot {
	snap := entity.SnapshotOf(&c.Body)
	s.Integrate(&c.Body)

	for _, p := range projectiles {
		if p.Broken {
			continue
		}
		s.Integrate(&p.Body)
	}
	return snap
}
