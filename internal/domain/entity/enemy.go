package entity

import "time"

// Enemy is a walker, a small walker or the boss.
// Kind-specific rules are looked up by the resolver, not stored here.
type Enemy struct {
	Body
	Health

	ID   EntityID
	Kind EnemyKind

	// Death is deferred: the corpse stays until the grace window passes
	Dead      bool
	DeathTime time.Duration

	// Boss only
	Activated    bool
	BaseSpeed    float64
	EnragedSpeed float64
	EnrageBelow  int
}

// NewEnemy creates an enemy standing on its ground line
func NewEnemy(id EntityID, kind EnemyKind, x, groundY, w, h float64, inset Inset, speed float64) *Enemy {
	return &Enemy{
		Body: Body{
			Sprite:     Sprite{X: x, Y: groundY, W: w, H: h, Inset: inset, Anim: AnimWalking},
			Speed:      speed,
			FacingLeft: true,
			GroundY:    groundY,
		},
		Health:    NewHealth(),
		ID:        id,
		Kind:      kind,
		BaseSpeed: speed,
	}
}

// IsAlive returns true if the enemy can still interact
func (e *Enemy) IsAlive() bool {
	return !e.Dead && !e.IsDead()
}

// Die marks the enemy dead at now and stops it.
// Calling it on a dead enemy does nothing.
func (e *Enemy) Die(now time.Duration) {
	if e.Dead {
		return
	}
	e.Dead = true
	e.DeathTime = now
	e.Speed = 0
	e.Anim = AnimDead
}

// Activate latches the boss into its alert state. Returns false if it already was.
func (e *Enemy) Activate() bool {
	if e.Activated {
		return false
	}
	e.Activated = true
	e.Anim = AnimAlert
	return true
}

// Enraged returns true when energy dropped below the enrage threshold
func (e *Enemy) Enraged() bool {
	return e.EnrageBelow > 0 && e.Energy < e.EnrageBelow
}

// CurrentSpeed returns the horizontal speed for this movement step
func (e *Enemy) CurrentSpeed() float64 {
	if e.Kind != EnemyBoss {
		return e.Speed
	}
	if e.IsDead() {
		return 0
	}
	if e.Enraged() {
		return e.EnragedSpeed
	}
	return e.BaseSpeed
}

// Removable returns true once the enemy has been dead for at least grace
func (e *Enemy) Removable(now, grace time.Duration) bool {
	return e.Dead && since(now, e.DeathTime) >= grace
}
