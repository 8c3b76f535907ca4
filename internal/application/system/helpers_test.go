package system

import (
	"math/rand"

	"github.com/younwookim/desertrun/internal/domain/entity"
	"github.com/younwookim/desertrun/internal/infrastructure/config"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func createTestGameConfig() *config.GameConfig {
	return &config.GameConfig{
		Physics: &config.PhysicsConfig{
			Scheduler: config.SchedulerConfig{
				MovementHz:  60,
				PhysicsHz:   25,
				AnimationHz: 10,
			},
			Kinematics: config.KinematicsConfig{
				Acceleration:  2.5,
				JumpImpulse:   30,
				BounceImpulse: 15,
				ThrowImpulse:  30,
			},
			Combat: config.CombatConfig{
				HitDamage:       15,
				BossHitDamage:   10,
				HurtWindowMs:    1000,
				GraceWindowMs:   1000,
				ThrowCooldownMs: 500,
				TerminalDelayMs: 2000,
				IdleTimeoutMs:   5000,
				ScareMs:         2000,
			},
			Boss: config.BossConfig{
				ActivationX:  2000,
				MinApproach:  50,
				BaseSpeed:    90,
				EnragedSpeed: 150,
				EnrageBelow:  50,
			},
			Splash:   config.SplashConfig{Frames: 6, FrameMs: 50},
			Capacity: config.CapacityConfig{Coin: 10, Bottle: 10},
			Throw:    config.ThrowConfig{OffsetX: 50, OffsetY: 100, Speed: 400},
		},
		Entities: &config.EntitiesConfig{
			Character: config.CharacterConfig{
				Size:    config.SizeConfig{W: 130, H: 280},
				Inset:   config.InsetConfig{Top: 105, Left: 25, Right: 35, Bottom: 3},
				GroundY: 145,
				Speed:   300,
			},
			Enemies: map[string]config.EnemyConfig{
				"walker": {
					Size:    config.SizeConfig{W: 60, H: 80},
					Inset:   config.InsetConfig{Top: 5, Left: 5, Right: 10, Bottom: 10},
					GroundY: 350,
					Speed:   config.RangeConfig{Min: 9, Max: 39},
				},
				"smallWalker": {
					Size:    config.SizeConfig{W: 40, H: 40},
					Inset:   config.InsetConfig{Top: -15, Left: 8, Right: 5, Bottom: 5},
					GroundY: 385,
					Speed:   config.RangeConfig{Min: 9, Max: 27},
				},
				"boss": {
					Size:    config.SizeConfig{W: 250, H: 400},
					Inset:   config.InsetConfig{Top: 60, Left: 30, Right: 30, Bottom: 20},
					GroundY: 55,
					Speed:   config.RangeConfig{Min: 90, Max: 90},
				},
			},
			Collectibles: map[string]config.CollectibleConfig{
				"coin": {
					Size:  config.SizeConfig{W: 100, H: 100},
					Inset: config.InsetConfig{Top: 30, Left: 30, Right: 30, Bottom: 30},
				},
				"bottle": {
					Size:  config.SizeConfig{W: 70, H: 80},
					Inset: config.InsetConfig{Top: 10, Left: 20, Right: 20, Bottom: 10},
				},
			},
			Projectile: config.ProjectileConfig{
				Size:    config.SizeConfig{W: 50, H: 60},
				Inset:   config.InsetConfig{Top: 5, Left: 5, Right: 5, Bottom: 5},
				GroundY: 370,
			},
		},
	}
}

// fixture bundles a config and a spawner for building test entities
type fixture struct {
	cfg *config.GameConfig
	sp  *Spawner
}

func newFixture() *fixture {
	cfg := createTestGameConfig()
	return &fixture{cfg: cfg, sp: NewSpawner(cfg, testRNG())}
}

// character at x=100 standing on the ground; hit rect x 125..195, y 250..422
func (f *fixture) character() *entity.Character {
	return f.sp.Character(100)
}

// walker at x; hit rect x+5..x+50, y 355..420
func (f *fixture) walker(x float64) *entity.Enemy {
	e, err := f.sp.Enemy(entity.EnemyWalker, x)
	if err != nil {
		panic(err)
	}
	return e
}

// boss at x; hit rect x+30..x+220, y 115..435
func (f *fixture) boss(x float64) *entity.Enemy {
	e, err := f.sp.Enemy(entity.EnemyBoss, x)
	if err != nil {
		panic(err)
	}
	return e
}

// projectile whose hit rect is x+5..x+45, y+5..y+55
func (f *fixture) projectile(x, y float64) *entity.Projectile {
	pc := f.cfg.Entities.Projectile
	return entity.NewProjectile(f.sp.NextID(), x, y, pc.Size.W, pc.Size.H, pc.Inset.Inset(), 400, 0, pc.GroundY, false)
}
