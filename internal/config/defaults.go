package config

import (
	_ "embed"
)

//go:embed defaults/difficulty.yaml
var defaultDifficultyYAML []byte

// DefaultProfiles returns the built-in difficulty tiers.
func DefaultProfiles() Profiles {
	return Profiles{
		Easy: Profile{
			DrawCount:       1,
			Deal:            "winnable",
			ShowHints:       true,
			AutoComplete:    true,
			UndoLimit:       -1,
			ScoreMultiplier: 0.5,
			SpiderSuits:     1,
		},
		Normal: Profile{
			DrawCount:       3,
			Deal:            "standard",
			ShowHints:       true,
			AutoComplete:    true,
			UndoLimit:       20,
			ScoreMultiplier: 1.0,
			SpiderSuits:     2,
		},
		Hard: Profile{
			DrawCount:       3,
			Deal:            "hard",
			ShowHints:       false,
			AutoComplete:    false,
			UndoLimit:       5,
			ScoreMultiplier: 2.0,
			SpiderSuits:     4,
		},
	}
}

// GetDefaultYAML returns the embedded default difficulty YAML.
func GetDefaultYAML() []byte {
	return defaultDifficultyYAML
}
