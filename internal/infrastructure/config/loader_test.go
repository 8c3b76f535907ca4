package config

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 720, cfg.Display.ScreenWidth)
	assert.Equal(t, 480, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Scheduler.MovementHz)
	assert.Equal(t, 25, cfg.Scheduler.PhysicsHz)
	assert.Equal(t, 2.5, cfg.Kinematics.Acceleration)
	assert.Equal(t, 30.0, cfg.Kinematics.JumpImpulse)
	assert.Equal(t, 15.0, cfg.Kinematics.BounceImpulse)
	assert.Equal(t, 15, cfg.Combat.HitDamage)
	assert.Equal(t, time.Second, cfg.Combat.HurtWindow())
	assert.Equal(t, time.Second, cfg.Combat.GraceWindow())
	assert.Equal(t, 500*time.Millisecond, cfg.Combat.ThrowCooldown())
	assert.Equal(t, 2*time.Second, cfg.Combat.TerminalDelay())
	assert.Equal(t, 2000.0, cfg.Boss.ActivationX)
	assert.Equal(t, 6, cfg.Splash.Frames)
	assert.Equal(t, 50*time.Millisecond, cfg.Splash.Frame())
}

func TestLoader_LoadEntities(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadEntities()
	require.NoError(t, err)

	assert.Equal(t, 130.0, cfg.Character.Size.W)
	assert.Equal(t, 105.0, cfg.Character.Inset.Top)
	assert.Equal(t, 145.0, cfg.Character.GroundY)

	small, ok := cfg.Enemies["smallWalker"]
	require.True(t, ok)
	assert.Equal(t, -15.0, small.Inset.Top)

	boss, ok := cfg.Enemies["boss"]
	require.True(t, ok)
	assert.Equal(t, 250.0, boss.Size.W)

	coin, ok := cfg.Collectibles["coin"]
	require.True(t, ok)
	assert.Equal(t, 30.0, coin.Inset.Inset().Left)
}

func TestLoader_LoadLevel(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadLevel("level1")
	require.NoError(t, err)

	assert.Equal(t, "level1", cfg.Name)
	assert.Equal(t, 2700.0, cfg.EndX)
	assert.Len(t, cfg.Coins, 10)
	assert.Len(t, cfg.Bottles, 10)
	require.Len(t, cfg.Enemies, 3)
	assert.Equal(t, "boss", cfg.Enemies[2].Kind)
	assert.Equal(t, 2500.0, cfg.Enemies[2].X)
}

func TestLoader_LoadLevel_Missing(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	_, err := loader.LoadLevel("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read level nope")
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Physics)
	assert.NotNil(t, cfg.Entities)
}

func TestFSLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/tiny.yaml": {Data: []byte("endX: 500\ncoins:\n  - {x: 10, y: 20}\n")},
		"levels/bad.yaml":  {Data: []byte("coins: [\n")},
		"levels/zero.yaml": {Data: []byte("name: zero\n")},
		"physics.json":     {Data: []byte(`{"scheduler": {"movementHz": 0}}`)},
	}
	loader := NewFSLoader(fsys, "mem")

	t.Run("name defaults to file name", func(t *testing.T) {
		cfg, err := loader.LoadLevel("tiny")
		require.NoError(t, err)
		assert.Equal(t, "tiny", cfg.Name)
		assert.Equal(t, PointConfig{X: 10, Y: 20}, cfg.Coins[0])
	})

	t.Run("parse error", func(t *testing.T) {
		_, err := loader.LoadLevel("bad")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse level bad")
	})

	t.Run("missing endX", func(t *testing.T) {
		_, err := loader.LoadLevel("zero")
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("invalid physics", func(t *testing.T) {
		_, err := loader.LoadPhysics()
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("missing entities", func(t *testing.T) {
		_, err := loader.LoadEntities()
		assert.Error(t, err)
	})
}

func TestPeriod(t *testing.T) {
	assert.Equal(t, 40*time.Millisecond, Period(25))
	assert.Equal(t, 100*time.Millisecond, Period(10))
	assert.Equal(t, time.Duration(0), Period(0))
}
