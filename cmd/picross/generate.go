package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dkotenko/picross/internal/config"
	"github.com/dkotenko/picross/internal/puzzle"
)

var (
	flagGenSize       int
	flagGenDifficulty string
	flagGenSeedText   string
	flagGenConfig     string
	flagGenHideGrid   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a puzzle and print it",
	Long: `Generate a puzzle headlessly and print its solution grid and
hints to stdout. Useful for inspecting what a seed produces.

Examples:
  picross generate
  picross generate --size 15 --difficulty hard
  picross generate --seed 42
  picross generate --seed-text lighthouse --hide-grid`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&flagGenSize, "size", 0, "Board size (default from config)")
	generateCmd.Flags().StringVar(&flagGenDifficulty, "difficulty", "", "Difficulty: easy, normal, hard, expert")
	generateCmd.Flags().StringVar(&flagGenSeedText, "seed-text", "", "Seed phrase (overrides --seed)")
	generateCmd.Flags().StringVar(&flagGenConfig, "config", "", "Path to custom config YAML")
	generateCmd.Flags().BoolVar(&flagGenHideGrid, "hide-grid", false, "Print hints only, not the solution")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagGenConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	size := cfg.Board.DefaultSize
	if flagGenSize > 0 {
		if !cfg.ValidSize(flagGenSize) {
			return fmt.Errorf("invalid size %d (valid: %v)", flagGenSize, cfg.Board.Sizes)
		}
		size = flagGenSize
	}

	label := cfg.Board.DefaultDifficulty
	if flagGenDifficulty != "" {
		label = flagGenDifficulty
	}
	band, err := cfg.BandFor(label)
	if err != nil {
		return err
	}

	var seed puzzle.Seed
	switch {
	case flagGenSeedText != "":
		seed = puzzle.SeedFromText(flagGenSeedText)
	case flagSeed != 0:
		seed = puzzle.Seed(uint32(flagSeed))
	default:
		seed = puzzle.RandomSeed()
	}

	data := puzzle.Generate(seed, size, band)
	hints := puzzle.DeriveHints(data.Grid)

	fmt.Printf("%s  (%dx%d, %s, seed %d)\n\n", data.Title, size, size, band.Label, data.Seed)

	if !flagGenHideGrid {
		printGrid(os.Stdout, data.Grid)
		fmt.Println()
	}

	fmt.Println("Row hints:")
	for i, runs := range hints.Rows {
		fmt.Printf("  %2d: %s\n", i+1, formatRuns(runs))
	}
	fmt.Println("Column hints:")
	for i, runs := range hints.Cols {
		fmt.Printf("  %2d: %s\n", i+1, formatRuns(runs))
	}

	return nil
}

// printGrid writes the solution as filled/empty glyphs.
func printGrid(w *os.File, g *puzzle.Grid) {
	for row := 0; row < g.Size; row++ {
		var b strings.Builder
		b.WriteString("  ")
		for col := 0; col < g.Size; col++ {
			if g.Get(row, col) == 1 {
				b.WriteString("█ ")
			} else {
				b.WriteString("· ")
			}
		}
		fmt.Fprintln(w, b.String())
	}
}

// formatRuns renders a hint run list, "0" for an empty line.
func formatRuns(runs []int) string {
	if len(runs) == 0 {
		return "0"
	}
	parts := make([]string, len(runs))
	for i, r := range runs {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, " ")
}
