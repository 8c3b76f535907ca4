package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/younwookim/desertrun/internal/application/replay"
	"github.com/younwookim/desertrun/internal/application/scene/playing"
	"github.com/younwookim/desertrun/internal/application/state"
	"github.com/younwookim/desertrun/internal/application/system"
	"github.com/younwookim/desertrun/internal/application/world"
	"github.com/younwookim/desertrun/internal/domain/event"
	"github.com/younwookim/desertrun/internal/infrastructure/config"
)

var flagHeadless bool

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Watch or verify a recorded run",
	Long: `Play back a run recorded with 'game play --record'.

With --headless the run is simulated without a window, as fast as
possible, and the events and the outcome are printed.

Examples:
  game replay run.json
  game replay run.json --headless`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Simulate without a window and print the events")
}

func runReplay(cmd *cobra.Command, args []string) {
	data, err := replay.LoadReplay(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
		os.Exit(1)
	}
	level := data.Level
	if level == "" {
		level = defaultLevel
	}

	if !flagHeadless {
		if err := runWindow(level, playing.Options{Replay: data}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, lc, err := loadConfigs(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sum, err := runHeadless(cmd.Context(), cfg, lc, data, newLogger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sum.Print(os.Stdout)
}

// Summary is the result of a headless replay
type Summary struct {
	Level    string
	Seed     int64
	Frames   int
	Duration time.Duration // simulated time covered by the frames
	Events   []event.Event
	State    state.GameState
	Outcome  *bool // nil while the outcome is not delivered yet
	Coins    int
	Energy   int
	X        float64
}

// Print writes the summary as plain text
func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "Replay - %s (seed %d)\n", s.Level, s.Seed)
	fmt.Fprintf(w, "%-10s %s\n", "TIME", "EVENT")
	for _, e := range s.Events {
		fmt.Fprintf(w, "%-10s %s(%d)\n", e.At, e.Kind, e.Payload)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Frames:  %d (%s)\n", s.Frames, s.Duration)
	fmt.Fprintf(w, "State:   %s\n", s.State)
	switch {
	case s.Outcome == nil:
		fmt.Fprintln(w, "Outcome: pending")
	case *s.Outcome:
		fmt.Fprintln(w, "Outcome: won")
	default:
		fmt.Fprintln(w, "Outcome: lost")
	}
	fmt.Fprintf(w, "Coins:   %d\n", s.Coins)
	fmt.Fprintf(w, "Energy:  %d\n", s.Energy)
	fmt.Fprintf(w, "X:       %.1f\n", s.X)
}

// runHeadless feeds every recorded frame through a session and collects
// what came out. The same data always yields the same summary.
func runHeadless(ctx context.Context, cfg *config.GameConfig, lc *config.LevelConfig, data *replay.ReplayData, logger *log.Logger) (Summary, error) {
	if len(data.Frames) == 0 {
		return Summary{}, replay.ErrNoFrames
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	sp := system.NewSpawner(cfg, rand.New(rand.NewSource(data.Seed)))
	lvl, err := system.LoadLevel(lc, sp)
	if err != nil {
		return Summary{}, err
	}
	w := world.New(cfg, lvl, sp, logger)
	session := world.NewSession(w, logger)
	session.Start(ctx)

	sum := Summary{
		Level:    lc.Name,
		Seed:     data.Seed,
		Frames:   len(data.Frames),
		Duration: data.Duration(),
	}

	var g errgroup.Group
	g.Go(func() error {
		for e := range session.Events() {
			sum.Events = append(sum.Events, e)
		}
		return nil
	})

	r := replay.NewReplayer(*data)
	dt := r.FrameDuration()
	submitErr := func() error {
		for {
			in, ok := r.GetInput()
			if !ok {
				break
			}
			if err := session.Submit(ctx, world.Frame{Input: in, DT: dt}); err != nil {
				return err
			}
		}
		// The worker only takes this frame once the last one is fully emitted
		return session.Submit(ctx, world.Frame{})
	}()

	stopErr := session.Stop()
	_ = g.Wait()
	if submitErr != nil {
		return Summary{}, submitErr
	}
	if stopErr != nil {
		return Summary{}, stopErr
	}

	select {
	case won := <-session.Outcome():
		sum.Outcome = &won
	default:
	}
	sum.State = w.State()
	c := w.Character()
	sum.Coins = c.Coins
	sum.Energy = c.Energy
	sum.X = c.X
	return sum, nil
}
