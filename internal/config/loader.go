package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the embedded default configuration.
func Default() FileConfig {
	var cfg FileConfig
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		// The embedded file is part of the build; a parse failure here
		// is a packaging bug. Fall back to hardcoded values.
		return FileConfig{
			Board: BoardSection{Dimension: 20},
			Food:  FoodSection{GrowthPerFood: 1, ScorePerFood: 1, PerSpeedStep: 10},
			Speed: SpeedSection{InitialMs: 250, MinMs: 50, DecayPercent: 1},
			Keys:  KeysSection{Pause: "p", Restart: "r", SaveGame: "ctrl+s"},
		}
	}
	return cfg
}

// Load resolves the game configuration.
// Search order: customPath -> ~/.termsnake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Files unmarshal over the defaults, so partial configs keep documented
// values for keys they omit.
func Load(customPath string) (FileConfig, error) {
	cfg := Default()

	// Custom path is authoritative: failures surface instead of
	// silently falling through.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory.
	if userPath := userConfigPath("config.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = Default()
		}
	}

	// Try local configs directory.
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = Default()
	}

	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termsnake", filename)
}
