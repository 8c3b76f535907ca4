package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/desertrun/internal/domain/entity"
	"github.com/younwookim/desertrun/internal/domain/event"
)

const frame = 1.0 / 60

func TestMovementSystem_UpdateCharacter(t *testing.T) {
	f := newFixture()
	sys := NewMovementSystem(f.cfg, DefaultPolicies(&f.cfg.Physics.Combat))

	t.Run("walks right", func(t *testing.T) {
		c := f.character()
		events := sys.UpdateCharacter(c, []Intent{MoveIntent{EntityID: c.ID, Dir: 1}}, 2700, time.Second, 0.5)

		assert.Empty(t, events)
		assert.Equal(t, 250.0, c.X)
		assert.False(t, c.FacingLeft)
		assert.Equal(t, time.Second, c.LastMove)
	})

	t.Run("clamped at zero", func(t *testing.T) {
		c := f.character()
		sys.UpdateCharacter(c, []Intent{MoveIntent{EntityID: c.ID, Dir: -1}}, 2700, 0, 1)

		assert.Equal(t, 0.0, c.X)
		assert.True(t, c.FacingLeft)
	})

	t.Run("clamped at level end", func(t *testing.T) {
		c := f.character()
		c.X = 2690
		sys.UpdateCharacter(c, []Intent{MoveIntent{EntityID: c.ID, Dir: 1}}, 2700, 0, 1)

		assert.Equal(t, 2700.0, c.X)
	})

	t.Run("jump only from the ground", func(t *testing.T) {
		c := f.character()
		jump := []Intent{JumpIntent{EntityID: c.ID, Impulse: 30}}

		events := sys.UpdateCharacter(c, jump, 2700, 0, frame)
		assert.Len(t, events, 1)
		assert.Equal(t, event.Jump, events[0].Kind)
		assert.Equal(t, 30.0, c.VY)

		c.Y = 100
		c.VY = -5
		events = sys.UpdateCharacter(c, jump, 2700, 0, frame)
		assert.Empty(t, events)
		assert.Equal(t, -5.0, c.VY)
	})

	t.Run("dead characters do not move", func(t *testing.T) {
		c := f.character()
		c.Hit(100, 0)
		events := sys.UpdateCharacter(c, []Intent{MoveIntent{Dir: 1}, JumpIntent{Impulse: 30}}, 2700, 0, 1)

		assert.Empty(t, events)
		assert.Equal(t, 100.0, c.X)
		assert.Equal(t, 0.0, c.VY)
	})
}

func TestMovementSystem_Walker(t *testing.T) {
	f := newFixture()
	sys := NewMovementSystem(f.cfg, DefaultPolicies(&f.cfg.Physics.Combat))
	c := f.character()

	w := f.walker(500)
	w.Speed = 30
	sys.UpdateEnemy(w, c, 1)
	assert.Equal(t, 470.0, w.X)
	assert.True(t, w.FacingLeft)

	w.Die(0)
	sys.UpdateEnemy(w, c, 1)
	assert.Equal(t, 470.0, w.X, "dead enemies stay put")
}

func TestMovementSystem_Boss(t *testing.T) {
	f := newFixture()
	sys := NewMovementSystem(f.cfg, DefaultPolicies(&f.cfg.Physics.Combat))

	t.Run("dormant boss waits", func(t *testing.T) {
		c := f.character()
		boss := f.boss(2500)
		sys.UpdateEnemy(boss, c, 1)
		assert.Equal(t, 2500.0, boss.X)
	})

	t.Run("closes in at base speed", func(t *testing.T) {
		c := f.character()
		c.X = 1000
		boss := f.boss(2500)
		boss.Activate()

		sys.UpdateEnemy(boss, c, 1)
		assert.Equal(t, 2410.0, boss.X)
		assert.True(t, boss.FacingLeft)
	})

	t.Run("enraged below half energy", func(t *testing.T) {
		c := f.character()
		c.X = 1000
		boss := f.boss(2500)
		boss.Activate()
		boss.Energy = 40

		sys.UpdateEnemy(boss, c, 1)
		assert.Equal(t, 2350.0, boss.X)
	})

	t.Run("follows a character behind it", func(t *testing.T) {
		c := f.character()
		c.X = 2700
		boss := f.boss(2000)
		boss.Activate()

		sys.UpdateEnemy(boss, c, 1)
		assert.Equal(t, 2090.0, boss.X)
		assert.False(t, boss.FacingLeft)
	})

	t.Run("stops within min approach", func(t *testing.T) {
		c := f.character()
		boss := f.boss(0)
		boss.Activate()
		// centers: character 100+65=165, boss X+125
		boss.X = 165 - 125 + 49

		before := boss.X
		sys.UpdateEnemy(boss, c, 1)
		assert.Equal(t, before, boss.X)
	})

	t.Run("dead boss halts", func(t *testing.T) {
		c := f.character()
		c.X = 1000
		boss := f.boss(2500)
		boss.Activate()
		boss.Hit(100, 0)

		sys.UpdateEnemy(boss, c, 1)
		assert.Equal(t, 2500.0, boss.X)
	})
}

func TestMovementSystem_Projectile(t *testing.T) {
	f := newFixture()
	sys := NewMovementSystem(f.cfg, DefaultPolicies(&f.cfg.Physics.Combat))

	p := f.projectile(100, 200)
	sys.UpdateProjectile(p, 0.5)
	assert.Equal(t, 300.0, p.X)

	left := f.projectile(100, 200)
	left.ThrowLeft = true
	sys.UpdateProjectile(left, 0.5)
	assert.Equal(t, -100.0, left.X)

	p.Break(0)
	sys.UpdateProjectile(p, 0.5)
	assert.Equal(t, 300.0, p.X, "broken projectiles stop")
}

func TestMovementSystem_Decoration(t *testing.T) {
	f := newFixture()
	sys := NewMovementSystem(f.cfg, DefaultPolicies(&f.cfg.Physics.Combat))

	d := &entity.Decoration{Sprite: entity.Sprite{X: 100}, Drift: -9}
	sys.UpdateDecoration(d, 2)
	assert.Equal(t, 82.0, d.X)
}
