package config

import "github.com/younwookim/desertrun/internal/domain/entity"

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Character    CharacterConfig              `json:"character"`
	Enemies      map[string]EnemyConfig       `json:"enemies"`
	Collectibles map[string]CollectibleConfig `json:"collectibles"`
	Projectile   ProjectileConfig             `json:"projectile"`
}

type SizeConfig struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type InsetConfig struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Inset converts to the domain inset
func (c InsetConfig) Inset() entity.Inset {
	return entity.Inset{Top: c.Top, Left: c.Left, Right: c.Right, Bottom: c.Bottom}
}

type RangeConfig struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type CharacterConfig struct {
	Size    SizeConfig  `json:"size"`
	Inset   InsetConfig `json:"inset"`
	GroundY float64     `json:"groundY"`
	Speed   float64     `json:"speed"` // pixels per second
}

type EnemyConfig struct {
	Size    SizeConfig  `json:"size"`
	Inset   InsetConfig `json:"inset"`
	GroundY float64     `json:"groundY"`
	Speed   RangeConfig `json:"speed"` // pixels per second, drawn per instance
}

type CollectibleConfig struct {
	Size  SizeConfig  `json:"size"`
	Inset InsetConfig `json:"inset"`
}

type ProjectileConfig struct {
	Size    SizeConfig  `json:"size"`
	Inset   InsetConfig `json:"inset"`
	GroundY float64     `json:"groundY"`
}
