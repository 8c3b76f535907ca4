package entity

import "time"

// Projectile is a thrown bottle
type Projectile struct {
	Body

	ID        EntityID
	ThrowLeft bool

	Broken   bool
	BrokenAt time.Duration
}

// NewProjectile creates an airborne bottle with an upward launch
func NewProjectile(id EntityID, x, y, w, h float64, inset Inset, speed, impulse, groundY float64, throwLeft bool) *Projectile {
	p := &Projectile{
		Body: Body{
			Sprite:         Sprite{X: x, Y: y, W: w, H: h, Inset: inset, Anim: AnimRotation},
			Speed:          speed,
			FacingLeft:     throwLeft,
			GroundY:        groundY,
			AlwaysAirborne: true,
		},
		ID:        id,
		ThrowLeft: throwLeft,
	}
	p.Launch(impulse)
	return p
}

// Break latches the projectile as broken. Returns false if it already was.
func (p *Projectile) Break(now time.Duration) bool {
	if p.Broken {
		return false
	}
	p.Broken = true
	p.BrokenAt = now
	p.AlwaysAirborne = false
	p.VY = 0
	p.Speed = 0
	p.Anim = AnimSplash
	return true
}

// Landed returns true when a flying projectile reached its ground line
func (p *Projectile) Landed() bool {
	return !p.Broken && p.Y >= p.GroundY
}

// SplashFrame returns the splash frame index at now, or -1 if not broken
func (p *Projectile) SplashFrame(now, frame time.Duration) int {
	if !p.Broken {
		return -1
	}
	if frame <= 0 {
		return 0
	}
	return int(since(now, p.BrokenAt) / frame)
}

// SplashDone returns true once all splash frames were shown
func (p *Projectile) SplashDone(now time.Duration, frames int, frame time.Duration) bool {
	if !p.Broken {
		return false
	}
	return since(now, p.BrokenAt) >= time.Duration(frames)*frame
}
