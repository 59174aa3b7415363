package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordblocks/internal/registry"
)

var (
	flagWordsLimit int
	flagClearWords bool
)

var wordsCmd = &cobra.Command{
	Use:   "words [game]",
	Short: "Show the most cleared words",
	Long: `Display the vocabulary words cleared most often. Without a game the
counts of every game are added together.

Examples:
  arcade words
  arcade words blocks_timed --limit 20
  arcade words --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWords,
}

func init() {
	wordsCmd.Flags().IntVar(&flagWordsLimit, "limit", 10, "Number of words to show")
	wordsCmd.Flags().BoolVar(&flagClearWords, "clear", false, "Delete word stats")
}

func runWords(cmd *cobra.Command, args []string) {
	gameID := ""
	heading := "Most Cleared Words"
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
			os.Exit(1)
		}
		heading = fmt.Sprintf("%s - %s", heading, registry.Title(gameID))
	}

	store := mustOpenStore()
	defer store.Close()

	if flagClearWords {
		if err := store.ClearWords(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing words: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Cleared word stats.")
		return
	}

	words, err := store.TopWords(gameID, flagWordsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving words: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(heading)
	fmt.Println()

	if len(words) == 0 {
		fmt.Println("No words cleared yet.")
		return
	}

	maxWordLen := 4 // "Word" header
	for _, w := range words {
		maxWordLen = max(maxWordLen, len(w.Word))
	}

	fmt.Printf("  %-4s  %-*s  %-7s  %s\n", "Rank", maxWordLen, "Word", "Cleared", "Last")
	fmt.Printf("  %-4s  %-*s  %-7s  %s\n", "----", maxWordLen, "----", "-------", "----")
	for i, w := range words {
		fmt.Printf("  %-4d  %-*s  %-7d  %s\n", i+1, maxWordLen, w.Word, w.Times, w.LastCleared.Format("2006-01-02 15:04"))
	}
}
