// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/desertrun/internal/application/scene"
	"github.com/younwookim/desertrun/internal/infrastructure/config"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	logger  *log.Logger
	screenW int
	screenH int
	dt      float64
	frames  int
}

// New creates a Game sized by the display config with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, display config.DisplayConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	dt := 1.0 / 60.0
	if display.Framerate > 0 {
		dt = 1.0 / float64(display.Framerate)
	}

	g := &Game{
		current: initialScene,
		logger:  logger,
		screenW: display.ScreenWidth,
		screenH: display.ScreenHeight,
		dt:      dt,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.frames++

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.logger.Debug("scene change", "from", sceneName(g.current), "to", sceneName(next), "frame", g.frames)
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close exits the current scene. Call it after ebiten.RunGame returns.
func (g *Game) Close() {
	g.current.OnExit()
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Frames returns the number of Update calls so far
func (g *Game) Frames() int {
	return g.frames
}

func sceneName(s scene.Scene) string {
	return fmt.Sprintf("%T", s)
}
