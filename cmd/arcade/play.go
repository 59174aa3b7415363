package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordblocks/internal/core"
	"github.com/vovakirdan/wordblocks/internal/platform/tui"
	"github.com/vovakirdan/wordblocks/internal/registry"
	"github.com/vovakirdan/wordblocks/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Move piece
  Up, W, X         - Rotate clockwise
  Down, S          - Soft drop
  Space            - Hard drop
  P/Esc            - Pause
  R                - Restart (after game over)
  B                - Back (when paused or after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 3
  hard   - Start at level 6 with a faster speed floor
  fixed  - No level progression

Examples:
  arcade play blocks
  arcade play blocks_timed --topic geography
  arcade play blocks --difficulty hard
  arcade play blocks --content-file ./words.yaml
  arcade play blocks --config ./my-blocks.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

// terminalConfig builds a runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database, warning and continuing without it
// on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	logger.Info("starting game", "game", gameID, "topic", flagTopic, "seed", flagSeed)

	_, runErr := tui.Run(game, store, terminalConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
