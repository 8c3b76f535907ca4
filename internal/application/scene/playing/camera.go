package playing

import (
	"github.com/younwookim/desertrun/internal/domain/entity"
	"github.com/younwookim/desertrun/internal/infrastructure/config"
)

// Camera is the left edge of the view in world pixels. It eases toward
// its target instead of snapping.
type Camera struct {
	X float64
}

// Target returns where the camera wants to be. The character sits OffsetX
// from the left edge; when the alerted boss is behind the character the
// view pans further back to keep it in sight.
func Target(c *entity.Character, boss *entity.Enemy, cfg config.CameraConfig) float64 {
	target := c.X - cfg.OffsetX
	if boss != nil && boss.Activated && boss.X < c.X {
		target = c.X - cfg.BossLookAhead
	}
	if target < 0 {
		target = 0
	}
	return target
}

// Follow moves the camera a fraction of the way to its target
func (cam *Camera) Follow(c *entity.Character, boss *entity.Enemy, cfg config.CameraConfig) {
	easing := cfg.Easing
	if easing <= 0 || easing > 1 {
		easing = 1
	}
	cam.X += (Target(c, boss, cfg) - cam.X) * easing
}

// Snap moves the camera straight to its target
func (cam *Camera) Snap(c *entity.Character, boss *entity.Enemy, cfg config.CameraConfig) {
	cam.X = Target(c, boss, cfg)
}
