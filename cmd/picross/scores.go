package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkotenko/picross/internal/registry"
	"github.com/dkotenko/picross/internal/storage"
)

var (
	flagScoreSize       int
	flagScoreDifficulty string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best solve times",
	Long: `Display the top 10 fastest solves for a board class.

Examples:
  picross scores
  picross scores classic --size 15 --difficulty hard
  picross scores daily`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoreSize, "size", 10, "Board size")
	scoresCmd.Flags().StringVar(&flagScoreDifficulty, "difficulty", "normal", "Difficulty label")
}

func runScores(cmd *cobra.Command, args []string) {
	modeID := "classic"
	if len(args) > 0 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'picross list' to see available modes.")
		os.Exit(1)
	}

	size := flagScoreSize
	difficulty := flagScoreDifficulty
	if modeID == "daily" {
		size = 15
		difficulty = "normal"
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.BestResults(modeID, size, difficulty, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Times - %s %dx%d %s\n", modeID, size, size, difficulty)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'picross play %s' to set the first time!\n", modeID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %s\n", "Rank", "Time", "Mistakes", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %s\n", "----", "----", "--------", "----", "----")

	for i, entry := range results {
		secs := entry.DurationTicks / flagFPS
		timeStr := fmt.Sprintf("%d:%02d", secs/60, secs%60)
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-8d  %-10d  %s\n", i+1, timeStr, entry.Mistakes, entry.Seed, dateStr)
	}

	if modeID == "daily" {
		if streak, err := store.DailyStreak(time.Now()); err == nil && streak > 0 {
			fmt.Println()
			fmt.Printf("Current daily streak: %d\n", streak)
		}
	}
}
