// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// BlocksConfig contains all configuration for the Word Blocks game.
type BlocksConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Rotation   RotationConfig   `yaml:"rotation"`
	Content    ContentConfig    `yaml:"content"`
	Timed      TimedConfig      `yaml:"timed"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines gravity speed. Intervals are in milliseconds.
type TimingConfig struct {
	BaseIntervalMs int `yaml:"base_interval_ms"`
	IntervalStepMs int `yaml:"interval_step_ms"` // removed per level
	MinIntervalMs  int `yaml:"min_interval_ms"`
	MaxCatchUp     int `yaml:"max_catch_up"` // drop intents per tick at most
}

// BaseInterval returns the level 1 gravity interval.
func (t TimingConfig) BaseInterval() time.Duration {
	return time.Duration(t.BaseIntervalMs) * time.Millisecond
}

// IntervalStep returns the per-level speedup.
func (t TimingConfig) IntervalStep() time.Duration {
	return time.Duration(t.IntervalStepMs) * time.Millisecond
}

// MinInterval returns the gravity floor.
func (t TimingConfig) MinInterval() time.Duration {
	return time.Duration(t.MinIntervalMs) * time.Millisecond
}

// ScoringConfig defines the point table and level pacing.
type ScoringConfig struct {
	LineScores     []int `yaml:"line_scores"` // indexed by rows cleared at once
	LinesPerLevel  int   `yaml:"lines_per_level"`
	SoftDropPoints int   `yaml:"soft_drop_points"`
	HardDropPoints int   `yaml:"hard_drop_points"`
}

// RotationConfig defines the wall kick offsets tried after an in-place
// rotation fails.
type RotationConfig struct {
	KickOffsets []int `yaml:"kick_offsets"`
}

// ContentConfig selects where vocabulary comes from. File and URL are
// mutually exclusive; with neither set the built-in decks are used.
type ContentConfig struct {
	Topic     string `yaml:"topic"`
	File      string `yaml:"file"`
	URL       string `yaml:"url"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// Timeout returns the fetch timeout.
func (c ContentConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// TimedConfig configures the time-boxed variant.
type TimedConfig struct {
	LimitSeconds int `yaml:"limit_seconds"`
}

// Limit returns the round length.
func (t TimedConfig) Limit() time.Duration {
	return time.Duration(t.LimitSeconds) * time.Second
}

// DifficultyConfig defines the starting level and whether it rises.
type DifficultyConfig struct {
	StartLevel int  `yaml:"start_level"`
	Fixed      bool `yaml:"fixed"` // level never rises
}

// largestPiece is the longest side of the standard pieces.
const largestPiece = 4

// Validate reports the first problem that would make the game unplayable.
func (c BlocksConfig) Validate() error {
	var errs []error

	if c.Board.Width < largestPiece || c.Board.Height < largestPiece {
		errs = append(errs, fmt.Errorf("board must be at least %dx%d, got %dx%d",
			largestPiece, largestPiece, c.Board.Width, c.Board.Height))
	}
	if c.Timing.BaseIntervalMs <= 0 || c.Timing.MinIntervalMs <= 0 {
		errs = append(errs, errors.New("timing intervals must be positive"))
	}
	if c.Timing.IntervalStepMs < 0 {
		errs = append(errs, errors.New("timing interval_step_ms must not be negative"))
	}
	if c.Timing.MaxCatchUp <= 0 {
		errs = append(errs, errors.New("timing max_catch_up must be positive"))
	}
	if len(c.Scoring.LineScores) == 0 {
		errs = append(errs, errors.New("scoring line_scores must not be empty"))
	}
	if c.Scoring.LinesPerLevel <= 0 {
		errs = append(errs, errors.New("scoring lines_per_level must be positive"))
	}
	if c.Content.File != "" && c.Content.URL != "" {
		errs = append(errs, errors.New("content file and url are mutually exclusive"))
	}
	if c.Timed.LimitSeconds < 0 {
		errs = append(errs, errors.New("timed limit_seconds must not be negative"))
	}
	if c.Difficulty.StartLevel < 0 {
		errs = append(errs, errors.New("difficulty start_level must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid blocks config: %w", errors.Join(errs...))
	}
	return nil
}
