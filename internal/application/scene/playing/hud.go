package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/desertrun/internal/application/system"
	"github.com/younwookim/desertrun/internal/application/world"
	"github.com/younwookim/desertrun/internal/infrastructure/config"
)

var (
	colorBarBG     = color.RGBA{60, 60, 60, 200}
	colorBarHealth = color.RGBA{100, 200, 100, 255}
	colorBarCoins  = color.RGBA{255, 215, 0, 255}
	colorBarAmmo   = color.RGBA{80, 160, 220, 255}
	colorBarBoss   = color.RGBA{200, 60, 60, 255}
)

const (
	barW = 120.0
	barH = 10.0
)

// HUD holds the bar values, all 0-100
type HUD struct {
	Health  int
	Coins   int
	Bottles int

	Boss     int
	ShowBoss bool // only after the boss was alerted
}

// HUDOf reads the bar values from the world
func HUDOf(w *world.World, capacity config.CapacityConfig) HUD {
	c := w.Character()
	h := HUD{
		Health:  c.Percent(),
		Coins:   system.Percent(c.Coins, capacity.Coin),
		Bottles: system.Percent(c.Ammo, capacity.Bottle),
	}
	if boss := w.Boss(); boss != nil && boss.Activated {
		h.Boss = boss.Percent()
		h.ShowBoss = true
	}
	return h
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	h := HUDOf(p.world, p.config.Physics.Capacity)

	drawBar(screen, 10, 10, h.Health, colorBarHealth, "HP")
	drawBar(screen, 10, 26, h.Coins, colorBarCoins, "COINS")
	drawBar(screen, 10, 42, h.Bottles, colorBarAmmo, "BOTTLES")
	if h.ShowBoss {
		drawBar(screen, float64(p.screenW)-barW-60, 10, h.Boss, colorBarBoss, "BOSS")
	}

	mute := ""
	if p.sound != nil && p.sound.Muted() {
		mute = " [muted]"
	}
	ebitenutil.DebugPrintAt(screen, "ARROWS: move | SPACE: jump | D: throw | M: mute | ESC: pause"+mute, 10, p.screenH-20)
}

func drawBar(screen *ebiten.Image, x, y float64, pct int, c color.Color, label string) {
	ebitenutil.DrawRect(screen, x, y, barW, barH, colorBarBG)
	ebitenutil.DrawRect(screen, x, y, barW*float64(pct)/100, barH, c)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %d", label, pct), int(x+barW)+6, int(y)-3)
}
