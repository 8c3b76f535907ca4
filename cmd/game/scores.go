package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/younwookim/desertrun/internal/infrastructure/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show recent results",
	Long: `Display the most recent runs, newest first. With a level only that
level's runs and its best winning time are shown.

Examples:
  game scores
  game scores level1 --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
}

func runScores(cmd *cobra.Command, args []string) {
	level := ""
	if len(args) > 0 {
		level = args[0]
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	results, err := store.Results(level, flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	title := level
	if title == "" {
		title = "all levels"
	}
	fmt.Printf("Results - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'game play' to record the first run!")
		return
	}

	// Print header
	fmt.Printf("  %-10s  %-5s  %-5s  %-8s  %s\n", "Level", "Won", "Coins", "Time", "Date")
	fmt.Printf("  %-10s  %-5s  %-5s  %-8s  %s\n", "-----", "---", "-----", "----", "----")

	for _, r := range results {
		won := "no"
		if r.Won {
			won = "yes"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-10s  %-5s  %-5d  %-8s  %s\n", r.Level, won, r.Coins, r.Duration, dateStr)
	}

	if level == "" {
		return
	}
	fmt.Println()
	best, ok, err := store.BestTime(level)
	if err == nil && ok {
		fmt.Printf("Best: %s\n", best)
	}
}
