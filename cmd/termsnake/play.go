package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termsnake/internal/config"
	"github.com/vovakirdan/termsnake/internal/engine"
	"github.com/vovakirdan/termsnake/internal/platform/tui"
	"github.com/vovakirdan/termsnake/internal/storage"
)

var flagDimension int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a game session in the current terminal.

Controls:
  Arrows/WASD - Change direction (also starts the game)
  P/Esc       - Pause
  R           - New game
  Q/Ctrl+C    - Quit

Examples:
  termsnake play
  termsnake play --dimension 30
  termsnake play --config ./my-snake.yaml
  termsnake play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagDimension, "dimension", 0, "Board dimension (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	fileCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	raw := fileCfg.Raw()
	if flagDimension > 0 {
		raw.Dimension = flagDimension
	}

	cfg, err := engine.Normalize(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Each board cell is two columns wide plus the frame.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < 2*cfg.Dimension+2 || h < cfg.Dimension+4 {
			fmt.Fprintf(os.Stderr,
				"Warning: terminal %dx%d is small for a %d-cell board; the view may clip\n",
				w, h, cfg.Dimension)
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	eng := engine.New(cfg, seed)
	runErr := tui.Run(eng, store, fileCfg.Keys)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
