// termsnake is a terminal snake game with a deterministic engine,
// playable locally or over SSH.
//
// Usage:
//
//	termsnake play             - Play in the local terminal
//	termsnake scores           - Show high scores
//	termsnake serve            - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible food placement
//	--db <path>     - Set database path (default: ~/.termsnake/scores.db)
//	--config <path> - Path to a custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termsnake",
	Short: "Snake in your terminal",
	Long: `termsnake is a terminal-based snake game. The snake grows as it
eats, the game speeds up on food milestones, and scores are kept in a
local SQLite database.

Available commands:
  play     - Play in the local terminal
  scores   - View high scores, export history, or show statistics
  serve    - Start an SSH server for remote play

Examples:
  termsnake play
  termsnake play --dimension 30
  termsnake scores --stats
  termsnake serve --ssh :23235`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.termsnake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
