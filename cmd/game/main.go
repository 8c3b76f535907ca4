// game is a desert side-scroller: run right, stomp or splash the enemies
// and beat the boss at the end of the level.
//
// Usage:
//
//	game play [level]        - Play a level (default: level1)
//	game replay <file>       - Watch a recorded run, or verify it with --headless
//	game scores [level]      - Show recent results and the best time
//
// Global flags:
//
//	--config <dir>  - Load configs from a directory instead of the embedded ones
//	--db <path>     - Set database path (default: ~/.desertrun/scores.db)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--debug         - Enable debug logging
package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/desertrun/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

var (
	// Global flags
	flagConfigDir string
	flagDBPath    string
	flagSeed      int64
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Desert Run - a side-scrolling platform game",
	Long: `Desert Run is a side-scroller. Run right, jump on the small enemies,
throw bottles at the big ones and defeat the boss at the end of the level.

Available commands:
  play     - Play a level
  replay   - Watch or verify a recorded run
  scores   - View results

Examples:
  game play
  game play level1 --record run.json
  game replay run.json --headless
  game scores level1`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (default: embedded configs)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.desertrun/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger creates the stderr logger shared by all commands
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "desertrun",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newLoader returns a loader for --config, or for the embedded configs
func newLoader() (*config.Loader, error) {
	if flagConfigDir != "" {
		return config.NewLoader(flagConfigDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadConfigs loads the base configs and one level
func loadConfigs(level string) (*config.GameConfig, *config.LevelConfig, error) {
	loader, err := newLoader()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, err
	}
	lc, err := loader.LoadLevel(level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, lc, nil
}
