package config

// LevelConfig is the root config for levels/<name>.yaml
type LevelConfig struct {
	Name        string             `yaml:"name"`
	EndX        float64            `yaml:"endX"`
	Spawn       PointConfig        `yaml:"spawn"`
	Enemies     []EnemySpawnConfig `yaml:"enemies"`
	Coins       []PointConfig      `yaml:"coins"`
	Bottles     []PointConfig      `yaml:"bottles"`
	Decorations []DecorationConfig `yaml:"decorations"`
}

type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// EnemySpawnConfig places Count enemies of Kind. With Spread > 0 each
// instance gets X plus a seeded random offset in [0, Spread).
type EnemySpawnConfig struct {
	Kind   string  `yaml:"kind"`
	X      float64 `yaml:"x"`
	Spread float64 `yaml:"spread"`
	Count  int     `yaml:"count"`
}

// DecorationConfig is a background layer repeated every Every pixels
type DecorationConfig struct {
	Layer  string  `yaml:"layer"`
	Y      float64 `yaml:"y"`
	W      float64 `yaml:"w"`
	H      float64 `yaml:"h"`
	Every  float64 `yaml:"every"`
	Repeat int     `yaml:"repeat"`
	Drift  float64 `yaml:"drift"`
}
