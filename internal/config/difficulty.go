package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParseDifficulty converts a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// StartLevelForPreset returns the level a game starts at for a preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 6
	default:
		return 1
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
