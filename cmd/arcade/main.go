// arcade runs Word Blocks, a falling block game whose pieces carry
// vocabulary words, in the terminal or over SSH.
//
// Usage:
//
//	arcade list              - List available games and vocabulary topics
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade words [game]      - Show the most cleared words
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//
// Flag defaults can also come from the environment or a .env file:
// ARCADE_DB, ARCADE_FPS, ARCADE_LOG_LEVEL, ARCADE_TOPIC.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/wordblocks/internal/games/blocks"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagLogFile     string
	flagLogLevel    string
	flagConfig      string
	flagDifficulty  string
	flagTopic       string
	flagContentURL  string
	flagContentFile string
)

func main() {
	// A missing .env is normal
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Word Blocks - a vocabulary falling block game for the terminal",
	Long: `Word Blocks is a falling block game where every piece carries a word.
Complete a row and the words in it are cleared, together with their
definitions.

Available commands:
  list     - Show all available games and vocabulary topics
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  words    - View the most cleared words

Examples:
  arcade list
  arcade play blocks
  arcade play blocks_timed --topic science
  arcade menu
  arcade serve --ssh :2222
  arcade scores blocks`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second) [ARCADE_FPS]")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database [ARCADE_DB]")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (serve logs to stderr by default)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error [ARCADE_LOG_LEVEL]")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagTopic, "topic", "", "Vocabulary topic [ARCADE_TOPIC]")
	pf.StringVar(&flagContentURL, "content-url", "", "Fetch vocabulary as JSON from this URL")
	pf.StringVar(&flagContentFile, "content-file", "", "Read vocabulary from this YAML file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(wordsCmd)
}
