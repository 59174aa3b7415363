package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const blocksFile = "blocks.yaml"

// LoadBlocks loads Word Blocks configuration.
// Search order: customPath -> ~/.arcade/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default
// Files are layered over the defaults, so a file only needs the keys it changes.
func LoadBlocks(customPath string) (BlocksConfig, error) {
	// Try custom path first
	if customPath != "" {
		path := expandHome(customPath)
		data, err := os.ReadFile(path)
		if err != nil {
			return BlocksConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		cfg, err := parseBlocks(data)
		if err != nil {
			return BlocksConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(blocksFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBlocks(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", blocksFile)); err == nil {
		if cfg, err := parseBlocks(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseBlocks(defaultBlocksYAML)
	if err != nil {
		return DefaultBlocksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseBlocks(data []byte) (BlocksConfig, error) {
	cfg := DefaultBlocksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlocksConfig{}, err
	}
	return cfg, nil
}

// ApplyBlocksPreset modifies the config based on a difficulty preset.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	cfg.Difficulty.StartLevel = StartLevelForPreset(preset)
	cfg.Difficulty.Fixed = IsFixedPreset(preset)

	// Hard also trims the gravity floor
	if preset == DifficultyHard && cfg.Timing.MinIntervalMs > 60 {
		cfg.Timing.MinIntervalMs = 60
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
