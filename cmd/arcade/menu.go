package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordblocks/internal/games/blocks"
	"github.com/vovakirdan/wordblocks/internal/platform/tui"
	"github.com/vovakirdan/wordblocks/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game and Left/Right
to pick a vocabulary topic. Press B after a game ends to return to the
menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change topic
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	cfg := terminalConfig()
	topic := flagTopic

	for {
		menuResult, err := tui.RunMenu(store, cfg, topic)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep size changes and the chosen topic for the next round
		cfg = menuResult.Config
		topic = menuResult.Topic

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if bg, ok := game.(*blocks.Game); ok {
			bg.SetTopic(topic)
		}

		// Fresh seed per game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		logger.Info("starting game", "game", menuResult.GameID, "topic", topic)

		backToMenu, err := tui.Run(game, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
