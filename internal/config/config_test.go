package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultBlocksConfigValid(t *testing.T) {
	if err := DefaultBlocksConfig().Validate(); err != nil {
		t.Fatalf("DefaultBlocksConfig().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := parseBlocks(defaultBlocksYAML)
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	def := DefaultBlocksConfig()

	if cfg.Board != def.Board {
		t.Errorf("Board = %+v, expected %+v", cfg.Board, def.Board)
	}
	if cfg.Timing != def.Timing {
		t.Errorf("Timing = %+v, expected %+v", cfg.Timing, def.Timing)
	}
	if len(cfg.Scoring.LineScores) != len(def.Scoring.LineScores) {
		t.Errorf("LineScores = %v, expected %v", cfg.Scoring.LineScores, def.Scoring.LineScores)
	}
	if len(cfg.Rotation.KickOffsets) != 4 || cfg.Rotation.KickOffsets[0] != -1 {
		t.Errorf("KickOffsets = %v, expected [-1 1 -2 2]", cfg.Rotation.KickOffsets)
	}
}

func TestLoadBlocksCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	data := []byte("board:\n  width: 10\ntimed:\n  limit_seconds: 30\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlocks(path)
	if err != nil {
		t.Fatalf("LoadBlocks() error = %v", err)
	}
	if cfg.Board.Width != 10 {
		t.Errorf("Board.Width = %d, expected 10", cfg.Board.Width)
	}
	if cfg.Board.Height != 20 {
		t.Errorf("Board.Height = %d, expected default 20", cfg.Board.Height)
	}
	if cfg.Timed.Limit() != 30*time.Second {
		t.Errorf("Timed.Limit() = %v, expected 30s", cfg.Timed.Limit())
	}
}

func TestLoadBlocksMissingCustomPath(t *testing.T) {
	if _, err := LoadBlocks(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadBlocks() with a missing file should fail")
	}
}

func TestLoadBlocksBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	if err := os.WriteFile(path, []byte("board: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBlocks(path); err == nil {
		t.Error("LoadBlocks() with broken YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BlocksConfig)
		wantErr bool
	}{
		{"defaults", func(*BlocksConfig) {}, false},
		{"narrow board", func(c *BlocksConfig) { c.Board.Width = 3 }, true},
		{"short board", func(c *BlocksConfig) { c.Board.Height = 2 }, true},
		{"zero interval", func(c *BlocksConfig) { c.Timing.BaseIntervalMs = 0 }, true},
		{"negative step", func(c *BlocksConfig) { c.Timing.IntervalStepMs = -5 }, true},
		{"no catch up", func(c *BlocksConfig) { c.Timing.MaxCatchUp = 0 }, true},
		{"empty score table", func(c *BlocksConfig) { c.Scoring.LineScores = nil }, true},
		{"zero lines per level", func(c *BlocksConfig) { c.Scoring.LinesPerLevel = 0 }, true},
		{"file and url", func(c *BlocksConfig) {
			c.Content.File = "deck.yaml"
			c.Content.URL = "http://localhost"
		}, true},
		{"minimal board", func(c *BlocksConfig) {
			c.Board.Width = 4
			c.Board.Height = 4
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBlocksConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		input     string
		preset    DifficultyPreset
		level     int
		fixed     bool
		shouldErr bool
	}{
		{"", DifficultyNormal, 3, false, false},
		{"easy", DifficultyEasy, 1, false, false},
		{"HARD", DifficultyHard, 6, false, false},
		{"fixed", DifficultyFixed, 1, true, false},
		{"nightmare", "", 0, false, true},
	}

	for _, tt := range tests {
		p, err := ParseDifficulty(tt.input)
		if tt.shouldErr {
			if err == nil {
				t.Errorf("ParseDifficulty(%q) should fail", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDifficulty(%q) error = %v", tt.input, err)
			continue
		}
		if p != tt.preset {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tt.input, p, tt.preset)
		}

		cfg := DefaultBlocksConfig()
		ApplyBlocksPreset(&cfg, p)
		if cfg.Difficulty.StartLevel != tt.level {
			t.Errorf("preset %q start level = %d, expected %d", p, cfg.Difficulty.StartLevel, tt.level)
		}
		if cfg.Difficulty.Fixed != tt.fixed {
			t.Errorf("preset %q fixed = %v, expected %v", p, cfg.Difficulty.Fixed, tt.fixed)
		}
	}
}
