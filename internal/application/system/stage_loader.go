package system

import (
	"fmt"

	"github.com/younwookim/desertrun/internal/domain/entity"
	"github.com/younwookim/desertrun/internal/infrastructure/config"
)

// LoadLevel converts a LevelConfig into a Level entity
func LoadLevel(cfg *config.LevelConfig, sp *Spawner) (*entity.Level, error) {
	lvl := &entity.Level{
		Name:   cfg.Name,
		EndX:   cfg.EndX,
		SpawnX: cfg.Spawn.X,
		SpawnY: sp.config.Entities.Character.GroundY,
	}

	for _, spawn := range cfg.Enemies {
		kind, ok := entity.ParseEnemyKind(spawn.Kind)
		if !ok {
			return nil, fmt.Errorf("level %s: unknown enemy kind %q", cfg.Name, spawn.Kind)
		}

		count := spawn.Count
		if count <= 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			x := spawn.X
			if spawn.Spread > 0 {
				x += sp.rng.Float64() * spawn.Spread
			}
			e, err := sp.Enemy(kind, x)
			if err != nil {
				return nil, fmt.Errorf("level %s: %w", cfg.Name, err)
			}
			lvl.Enemies = append(lvl.Enemies, e)
		}
	}

	for _, p := range cfg.Coins {
		c, err := sp.Collectible(entity.CollectCoin, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", cfg.Name, err)
		}
		lvl.Coins = append(lvl.Coins, c)
	}

	for _, p := range cfg.Bottles {
		b, err := sp.Collectible(entity.CollectBottle, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", cfg.Name, err)
		}
		lvl.Bottles = append(lvl.Bottles, b)
	}

	for _, d := range cfg.Decorations {
		repeat := d.Repeat
		if repeat <= 0 {
			repeat = 1
		}
		for i := 0; i < repeat; i++ {
			lvl.Decorations = append(lvl.Decorations, &entity.Decoration{
				Sprite: entity.Sprite{X: float64(i) * d.Every, Y: d.Y, W: d.W, H: d.H},
				Layer:  d.Layer,
				Drift:  d.Drift,
			})
		}
	}

	return lvl, nil
}
