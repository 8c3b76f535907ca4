package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by validation errors
var ErrInvalid = errors.New("invalid config")

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
}

// Loader loads game configuration from JSON and YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	var cfg PhysicsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("physics.json: %w", err)
	}

	return &cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "entities.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read entities.json: %w", err)
	}

	var cfg EntitiesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse entities.json: %w", err)
	}

	return &cfg, nil
}

// LoadLevel loads a level YAML file
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	path := "levels/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}
	if cfg.EndX <= 0 {
		return nil, fmt.Errorf("level %s: endX must be positive: %w", name, ErrInvalid)
	}

	return &cfg, nil
}

// LoadAll loads all base configurations (physics, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:  physics,
		Entities: entities,
	}, nil
}

// Validate checks the values the scheduler and resolver divide by or rely on
func (c *PhysicsConfig) Validate() error {
	s := c.Scheduler
	if s.MovementHz <= 0 || s.PhysicsHz <= 0 || s.AnimationHz <= 0 {
		return fmt.Errorf("scheduler rates must be positive: %w", ErrInvalid)
	}
	if c.Kinematics.Acceleration <= 0 {
		return fmt.Errorf("acceleration must be positive: %w", ErrInvalid)
	}
	if c.Capacity.Coin <= 0 || c.Capacity.Bottle <= 0 {
		return fmt.Errorf("capacities must be positive: %w", ErrInvalid)
	}
	if c.Splash.Frames <= 0 {
		return fmt.Errorf("splash needs at least one frame: %w", ErrInvalid)
	}
	return nil
}
