package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordblocks/internal/registry"
	"github.com/vovakirdan/wordblocks/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game.

Examples:
  arcade scores blocks
  arcade scores blocks_timed
  arcade scores blocks --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores and word stats for the game")
}

// mustOpenStore opens the database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	title := registry.Title(gameID)

	store := mustOpenStore()

	if flagClearScores {
		err := store.ClearScores(gameID)
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %s\n", "Rank", "Score", "Level", "Lines", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %s\n", i+1, entry.Score, entry.Level, entry.Lines, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Avg: %.0f  Lines: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines)
	}
}
