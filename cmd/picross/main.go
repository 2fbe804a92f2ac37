// picross is a terminal nonogram game with deterministic, seed-based
// puzzle generation.
//
// Usage:
//
//	picross list              - List available modes
//	picross play [mode]       - Play a puzzle (classic by default)
//	picross menu              - Start the interactive menu
//	picross generate          - Print a generated puzzle to stdout
//	picross serve             - Start SSH server for remote play
//	picross scores [mode]     - Show best solve times
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set puzzle seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.picross/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/dkotenko/picross/internal/games/picross"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "picross",
	Short: "Picross - Solve nonogram puzzles in your terminal",
	Long: `Picross is a terminal nonogram (picture cross) game. Every puzzle
is generated from a seed, so the same seed always yields the same board.

Available commands:
  list     - Show all available modes
  play     - Play a puzzle directly
  menu     - Interactive mode picker
  generate - Print a generated puzzle without playing it
  serve    - Start SSH server for remote play
  scores   - View best solve times

Examples:
  picross play
  picross play daily
  picross play --size 15 --difficulty hard --seed 42
  picross generate --size 10 --seed-text lighthouse
  picross serve --ssh :2222
  picross scores classic --size 10 --difficulty normal`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Puzzle seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.picross/results.db", "Path to results database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
