package entity

import "time"

// EntityID is a unique identifier for an entity
type EntityID uint32

// EnemyKind tags an enemy variant. Behaviour differences live in the
// resolver's policy table, not in the entity.
type EnemyKind int

const (
	EnemyWalker EnemyKind = iota
	EnemySmallWalker
	EnemyBoss
)

// String returns the config key of the enemy kind
func (k EnemyKind) String() string {
	switch k {
	case EnemyWalker:
		return "walker"
	case EnemySmallWalker:
		return "smallWalker"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// ParseEnemyKind converts a config key into an EnemyKind
func ParseEnemyKind(s string) (EnemyKind, bool) {
	switch s {
	case "walker":
		return EnemyWalker, true
	case "smallWalker":
		return EnemySmallWalker, true
	case "boss":
		return EnemyBoss, true
	}
	return 0, false
}

// CollectibleKind tags a pickup variant
type CollectibleKind int

const (
	CollectCoin CollectibleKind = iota
	CollectBottle
)

// String returns the name used in "collected:<kind>" events
func (k CollectibleKind) String() string {
	switch k {
	case CollectCoin:
		return "coin"
	case CollectBottle:
		return "bottle"
	default:
		return "unknown"
	}
}

// Sprite is the static part of every entity: where it is, how big it is,
// how its collision rect is shrunk and which animation the renderer shows.
type Sprite struct {
	X, Y  float64
	W, H  float64
	Inset Inset
	Anim  AnimState
}

// HitRect returns the inset collision rectangle in world coordinates
func (s *Sprite) HitRect() Rect {
	return s.Inset.Apply(s.X, s.Y, s.W, s.H)
}

// Collectible is a coin or a bottle lying in the level
type Collectible struct {
	Sprite
	ID   EntityID
	Kind CollectibleKind
}

// NewCollectible creates a pickup at pixel position x, y
func NewCollectible(id EntityID, kind CollectibleKind, x, y, w, h float64, inset Inset) *Collectible {
	return &Collectible{
		Sprite: Sprite{X: x, Y: y, W: w, H: h, Inset: inset},
		ID:     id,
		Kind:   kind,
	}
}

// Decoration is a background layer or cloud. It never collides.
type Decoration struct {
	Sprite
	Layer string
	Drift float64 // pixels per second, negative drifts left
}

// Level is the content of a stage, fixed at construction.
// The world copies the slices it mutates.
type Level struct {
	Name        string
	EndX        float64
	SpawnX      float64
	SpawnY      float64
	Enemies     []*Enemy
	Coins       []*Collectible
	Bottles     []*Collectible
	Decorations []*Decoration
}

// Boss returns the first boss of the level, or nil
func (l *Level) Boss() *Enemy {
	for _, e := range l.Enemies {
		if e.Kind == EnemyBoss {
			return e
		}
	}
	return nil
}

// since returns now-t clamped at zero
func since(now, t time.Duration) time.Duration {
	if now < t {
		return 0
	}
	return now - t
}
