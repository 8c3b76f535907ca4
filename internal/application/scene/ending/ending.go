// Package ending shows the outcome of a run and offers a restart.
package ending

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/desertrun/internal/application/scene"
)

var (
	colorWon  = color.RGBA{40, 90, 40, 255}
	colorLost = color.RGBA{100, 20, 20, 255}
)

// Result is what a finished run reports
type Result struct {
	Level    string
	Won      bool
	Coins    int
	Duration time.Duration

	Best    time.Duration // fastest recorded win on the level
	HasBest bool
}

// RestartFunc builds the scene a restart switches to
type RestartFunc func() (scene.Scene, error)

// Ending is the win/lose screen
type Ending struct {
	result  Result
	restart RestartFunc
	screenW int
	screenH int
}

// New creates the ending scene. restart may be nil, then only quitting is offered.
func New(r Result, restart RestartFunc, screenW, screenH int) *Ending {
	return &Ending{
		result:  r,
		restart: restart,
		screenW: screenW,
		screenH: screenH,
	}
}

// Update waits for a restart or quit key
func (e *Ending) Update(_ float64) (scene.Scene, error) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return e.Restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return nil, ebiten.Termination
	}
	return nil, nil
}

// Restart returns the scene of a fresh run, or nil if restarting is not offered
func (e *Ending) Restart() (scene.Scene, error) {
	if e.restart == nil {
		return nil, nil
	}
	return e.restart()
}

// Result returns the run result shown by the scene
func (e *Ending) Result() Result {
	return e.result
}

// Text returns the message drawn on the screen
func (e *Ending) Text() string {
	title := "YOU LOST"
	if e.result.Won {
		title = "YOU WON"
	}

	text := fmt.Sprintf("%s\n\nLevel: %s\nCoins: %d\nTime:  %s",
		title, e.result.Level, e.result.Coins, formatDuration(e.result.Duration))
	if e.result.HasBest {
		text += "\nBest:  " + formatDuration(e.result.Best)
	}

	if e.restart != nil {
		text += "\n\nSPACE: play again | Q: quit"
	} else {
		text += "\n\nQ: quit"
	}
	return text
}

// Draw renders the ending screen
func (e *Ending) Draw(screen *ebiten.Image) {
	bg := colorLost
	if e.result.Won {
		bg = colorWon
	}
	screen.Fill(bg)
	ebitenutil.DebugPrintAt(screen, e.Text(), e.screenW/2-80, e.screenH/2-60)
}

func (e *Ending) OnEnter() {}

func (e *Ending) OnExit() {}

func formatDuration(d time.Duration) string {
	return d.Round(100 * time.Millisecond).String()
}
