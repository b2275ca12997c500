package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termsnake/internal/storage"
)

var (
	flagLimit  int
	flagExport string
	flagStats  bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores, export the full history as CSV,
or print aggregate statistics.

Examples:
  termsnake scores
  termsnake scores --limit 25
  termsnake scores --export history.csv
  termsnake scores --stats
  termsnake scores --clear`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagExport, "export", "", "Write the full score history to a CSV file")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show aggregate statistics")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagExport != "" {
		f, err := os.Create(flagExport)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating export file: %v\n", err)
			os.Exit(1)
		}
		if err := store.ExportCSV(f); err != nil {
			f.Close()
			fmt.Fprintf(os.Stderr, "Error exporting scores: %v\n", err)
			os.Exit(1)
		}
		f.Close()
		fmt.Printf("Score history written to %s\n", flagExport)
		return
	}

	if flagStats {
		sum, err := store.Summarize()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing statistics: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Score statistics")
		fmt.Println()
		fmt.Printf("  Games:   %d\n", sum.Games)
		fmt.Printf("  Wins:    %d\n", sum.Wins)
		fmt.Printf("  Best:    %d\n", sum.Best)
		fmt.Printf("  Mean:    %.1f\n", sum.Mean)
		fmt.Printf("  Std dev: %.1f\n", sum.StdDev)
		return
	}

	scores, err := store.TopScores(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'termsnake play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-6s  %s\n", "Rank", "Score", "Length", "Board", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-6s  %s\n", "----", "-----", "------", "-----", "----")

	for i, entry := range scores {
		marker := ""
		if entry.Won {
			marker = " (win)"
		}
		fmt.Printf("  %-4d  %-8d  %-7d  %-6d  %s%s\n",
			i+1, entry.Score, entry.SnakeLen, entry.Dimension,
			entry.CreatedAt.Format("2006-01-02 15:04"), marker)
	}
}
