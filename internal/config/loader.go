package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPursuit loads the pursuit configuration. Keys missing from a file keep
// their DefaultPursuitConfig value.
// Search order: customPath -> ~/.pursuit/configs/pursuit.yaml -> ./configs/pursuit.yaml -> embedded default
func LoadPursuit(customPath string) (PursuitConfig, error) {
	cfg := DefaultPursuitConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pursuit.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if parsed, ok := decodeOver(data); ok {
				return parsed, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "pursuit.yaml")); err == nil {
		if parsed, ok := decodeOver(data); ok {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if parsed, ok := decodeOver(defaultPursuitYAML); ok {
		return parsed, nil
	}
	return DefaultPursuitConfig(), nil // Fallback to hardcoded if embed fails
}

// decodeOver unmarshals data on top of the hardcoded defaults.
func decodeOver(data []byte) (PursuitConfig, bool) {
	cfg := DefaultPursuitConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pursuit", "configs", filename)
}

// ApplyPursuitPreset modifies the config based on a difficulty preset.
func ApplyPursuitPreset(cfg *PursuitConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Seeker.VulnerableTicks = 420
		cfg.Pursuer.BehaviorInterval = 14
		cfg.Pursuer.SightRange = 180
	case DifficultyHard:
		cfg.Seeker.VulnerableTicks = 200
		cfg.Pursuer.BehaviorInterval = 6
		cfg.Pursuer.SightRange = 320
	}
}
