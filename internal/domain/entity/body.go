package entity

// Body is the kinematic part of a movable entity.
//
// Y grows downward like screen coordinates. VY is measured in pixels per
// kinematic step and is positive when moving up, so a gravity step does
// Y -= VY and then VY -= acceleration.
type Body struct {
	Sprite

	VY         float64 // pixels per kinematic step, positive = up
	Speed      float64 // horizontal speed, pixels per second
	FacingLeft bool

	GroundY        float64 // Y treated as standing on the ground
	AlwaysAirborne bool    // projectiles fly until they break
}

// IsAirborne returns true while the body is above its ground line
func (b *Body) IsAirborne() bool {
	return b.AlwaysAirborne || b.Y < b.GroundY
}

// Launch gives the body an upward impulse. It is the only way VY becomes positive.
func (b *Body) Launch(impulse float64) {
	if impulse <= 0 {
		return
	}
	b.VY = impulse
}

// MoveRight moves the body right by Speed*dt and faces right
func (b *Body) MoveRight(dt float64) {
	b.X += b.Speed * dt
	b.FacingLeft = false
}

// MoveLeft moves the body left by Speed*dt and faces left
func (b *Body) MoveLeft(dt float64) {
	b.X -= b.Speed * dt
	b.FacingLeft = true
}

// Snapshot is the body state captured at the start of a kinematic step.
// The resolver reads it for that tick only.
type Snapshot struct {
	PrevX, PrevY float64
	PrevVY       float64
	WasAirborne  bool
}

// SnapshotOf captures the current state of a body
func SnapshotOf(b *Body) Snapshot {
	return Snapshot{
		PrevX:       b.X,
		PrevY:       b.Y,
		PrevVY:      b.VY,
		WasAirborne: b.IsAirborne(),
	}
}
