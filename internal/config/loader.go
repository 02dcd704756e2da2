package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadProfiles loads the difficulty tiers.
// Search order: customPath -> ~/.solitaire/configs/difficulty.yaml -> ./configs/difficulty.yaml -> embedded default
func LoadProfiles(customPath string) (Profiles, error) {
	var p Profiles

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return p, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &p); err != nil {
			return p, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return p, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("difficulty.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &p); err == nil {
				return p, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/difficulty.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &p); err == nil {
			return p, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDifficultyYAML, &p); err != nil {
		return DefaultProfiles(), nil // Fallback to hardcoded if embed fails
	}
	return p, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".solitaire", "configs", filename)
}
