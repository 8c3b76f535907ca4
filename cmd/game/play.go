package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/desertrun/internal/application/game"
	"github.com/younwookim/desertrun/internal/application/replay"
	"github.com/younwookim/desertrun/internal/application/scene"
	"github.com/younwookim/desertrun/internal/application/scene/playing"
	"github.com/younwookim/desertrun/internal/infrastructure/audio"
	"github.com/younwookim/desertrun/internal/infrastructure/config"
	"github.com/younwookim/desertrun/internal/infrastructure/storage"
)

const defaultLevel = "level1"

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Play a level in a window.

Controls:
  Left/Right  - Move
  Space/Up    - Jump
  D           - Throw a bottle
  M           - Mute
  Esc         - Pause
  Tab         - Show hit boxes

Examples:
  game play
  game play practice
  game play --seed 42 --record run.json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")
}

func runPlay(cmd *cobra.Command, args []string) {
	level := defaultLevel
	if len(args) > 0 {
		level = args[0]
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := playing.Options{Seed: seed, RecordPath: flagRecord}
	if err := runWindow(level, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runWindow opens the store and the speaker, then runs a level until the
// window closes
func runWindow(level string, opts playing.Options) error {
	logger := newLogger()

	cfg, lc, err := loadConfigs(level)
	if err != nil {
		return err
	}

	// Results and settings are optional, the game runs without them
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores disabled", "err", err)
	} else {
		defer store.Close()
	}

	sound := newSound(cfg.Physics.Audio, store, logger)
	defer sound.Cleanup()

	display := cfg.Physics.Display
	opts.Sound = sound
	opts.Logger = logger
	if opts.Replay != nil {
		// Watching a replay does not add a result
		display.Framerate = opts.Replay.TPS
	} else {
		opts.Store = store
	}
	p, err := playing.New(cfg, lc, opts)
	if err != nil {
		return err
	}

	return runGame(p, display, lc.Name, logger)
}

// newSound starts the speaker and restores the saved mute setting
func newSound(cfg config.AudioConfig, store *storage.Store, logger *log.Logger) *audio.SoundManager {
	sound := audio.NewSoundManager(cfg, logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	if store != nil {
		muted, err := store.Muted()
		if err != nil {
			logger.Warn("cannot read mute setting", "err", err)
		}
		sound.SetMuted(muted)
	}
	return sound
}

func runGame(first scene.Scene, display config.DisplayConfig, title string, logger *log.Logger) error {
	g := game.New(first, display, logger)
	defer g.Close()

	scale := display.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(display.ScreenWidth*scale, display.ScreenHeight*scale)
	ebiten.SetWindowTitle("Desert Run - " + title)
	tps := display.Framerate
	if tps <= 0 {
		tps = replay.DefaultTPS
	}
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	logger.Debug("window closed", "frames", g.Frames())
	return nil
}
