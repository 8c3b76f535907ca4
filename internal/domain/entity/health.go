package entity

import "time"

const (
	// MaxEnergy is the energy of a freshly spawned entity
	MaxEnergy = 100

	// DefaultHurtWindow is how long an entity counts as hurt after a hit
	DefaultHurtWindow = 1000 * time.Millisecond
)

// Health tracks energy and the time of the last hit.
// Times are simulated time since the session started.
type Health struct {
	Energy     int
	LastHit    time.Duration
	HurtWindow time.Duration

	wasHit bool
}

// NewHealth returns full health with the default hurt window
func NewHealth() Health {
	return Health{Energy: MaxEnergy, HurtWindow: DefaultHurtWindow}
}

// Hit removes amount energy, floored at zero, and records the hit time
func (h *Health) Hit(amount int, now time.Duration) {
	if amount < 0 {
		amount = 0
	}
	h.Energy -= amount
	if h.Energy < 0 {
		h.Energy = 0
	}
	h.LastHit = now
	h.wasHit = true
}

// IsHurt returns true within the hurt window after the last hit
func (h *Health) IsHurt(now time.Duration) bool {
	if !h.wasHit {
		return false
	}
	window := h.HurtWindow
	if window <= 0 {
		window = DefaultHurtWindow
	}
	return since(now, h.LastHit) < window
}

// IsDead returns true once energy reached zero
func (h *Health) IsDead() bool {
	return h.Energy == 0
}

// Percent returns energy as a 0-100 percentage
func (h *Health) Percent() int {
	return h.Energy * 100 / MaxEnergy
}

// Reset restores full energy. Only used at (re)spawn.
func (h *Health) Reset() {
	h.Energy = MaxEnergy
	h.LastHit = 0
	h.wasHit = false
}
