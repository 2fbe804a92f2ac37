package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkotenko/picross/internal/config"
	"github.com/dkotenko/picross/internal/core"
	"github.com/dkotenko/picross/internal/games/picross"
	"github.com/dkotenko/picross/internal/platform/tui"
	"github.com/dkotenko/picross/internal/registry"
	"github.com/dkotenko/picross/internal/storage"
)

var (
	flagConfig     string
	flagSize       int
	flagDifficulty string
	flagSeedText   string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a puzzle",
	Long: `Start solving a puzzle. Without arguments this plays classic mode;
pass "daily" for the shared daily puzzle.

Controls:
  Arrows/WASD/HJKL - Move cursor
  Space/Z/Enter    - Fill cell
  X                - Cross cell
  P                - Pause
  R                - Restart with a fresh puzzle
  Q/Ctrl+C         - Quit

When no board flags are given, classic mode shows a setup screen first.

Examples:
  picross play
  picross play daily
  picross play --size 15 --difficulty hard
  picross play --seed 42
  picross play --seed-text "my favorite phrase"
  picross play --config ./my-picross.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (must be one of the configured sizes)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, normal, hard, expert")
	playCmd.Flags().StringVar(&flagSeedText, "seed-text", "", "Seed phrase (overrides --seed)")
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := "classic"
	if len(args) > 0 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'picross list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size early for the setup screen
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		SeedText: flagSeedText,
	}

	picross.SetConfigPath(flagConfig)
	picross.SetSize(flagSize)
	picross.SetDifficulty(flagDifficulty)

	// Classic mode without board flags goes through the setup screen
	if modeID == "classic" && flagSize == 0 && flagDifficulty == "" && flagSeedText == "" && flagSeed == 0 {
		gameCfg, cfgErr := config.Load(flagConfig)
		if cfgErr != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", cfgErr)
			os.Exit(1)
		}

		selection, updatedCfg, selErr := tui.RunSetup(gameCfg, cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		picross.SetSize(selection.Size)
		picross.SetDifficulty(selection.Difficulty)
		cfg.SeedText = selection.SeedText
	}

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
