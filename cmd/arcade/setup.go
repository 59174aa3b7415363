package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordblocks/internal/config"
	"github.com/vovakirdan/wordblocks/internal/content"
	"github.com/vovakirdan/wordblocks/internal/games/blocks"
	"github.com/vovakirdan/wordblocks/internal/platform/tui"
)

// logger is configured by setup before any command runs.
var logger = log.New(io.Discard)

// envDefaults fills flags the user did not set from the environment.
func envDefaults(cmd *cobra.Command) error {
	flags := cmd.Flags()

	if v := os.Getenv("ARCADE_DB"); v != "" && !flags.Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv("ARCADE_LOG_LEVEL"); v != "" && !flags.Changed("log-level") {
		flagLogLevel = v
	}
	if v := os.Getenv("ARCADE_TOPIC"); v != "" && !flags.Changed("topic") {
		flagTopic = v
	}
	if v := os.Getenv("ARCADE_FPS"); v != "" && !flags.Changed("fps") {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ARCADE_FPS: %w", err)
		}
		flagFPS = fps
	}
	return nil
}

// setup runs before every command: environment defaults, logging and the
// game settings shared by play, menu and serve.
func setup(cmd *cobra.Command, _ []string) error {
	if err := envDefaults(cmd); err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagContentURL != "" && flagContentFile != "" {
		return fmt.Errorf("--content-url and --content-file are mutually exclusive")
	}
	if flagDifficulty != "" {
		if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
			return err
		}
	}

	l, err := newLogger(cmd.Name() == "serve")
	if err != nil {
		return err
	}
	logger = l

	blocks.SetLogger(logger)
	tui.SetLogger(logger)
	blocks.SetConfigPath(flagConfig)
	blocks.SetDifficultyPreset(flagDifficulty)
	blocks.SetTopic(flagTopic)
	switch {
	case flagContentURL != "":
		blocks.SetContentProvider(content.HTTPProvider{URL: flagContentURL})
	case flagContentFile != "":
		blocks.SetContentProvider(content.FileProvider{Path: flagContentFile})
	}
	return nil
}

// newLogger builds the process logger. Interactive commands own the
// terminal, so they only log when --log-file is given.
func newLogger(toStderr bool) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	var out io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		// The file stays open for the life of the process.
		out = f
	case toStderr:
		out = os.Stderr
	}

	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	}), nil
}
