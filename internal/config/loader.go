package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads runner configuration on top of the given base tuning.
// Search order: customPath -> ~/.stormrunner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
// Files only need to contain the values they change.
func LoadRunner(customPath string, base RunnerConfig) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := base
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if cfg, ok := overlayFile(userCfgPath, base); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := overlayFile(filepath.Join("configs", "runner.yaml"), base); ok {
		return cfg, nil
	}

	return base, nil
}

// LoadDefault parses the embedded default YAML.
func LoadDefault() RunnerConfig {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

func overlayFile(path string, base RunnerConfig) (RunnerConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stormrunner", "configs", filename)
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded tuning as is, including its progression switch.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	case DifficultyEasy, DifficultyHard:
		cfg.Difficulty.Enabled = true
	default:
		return
	}

	switch preset {
	case DifficultyEasy:
		cfg.Player.StartLives = 5
		cfg.Storm.SpeedMultiplier = 1.05
		cfg.Spawn.Obstacles.Chance = 0.5
	case DifficultyHard:
		cfg.Player.StartLives = 2
		cfg.Difficulty.InitialSpeed = 1.5
		cfg.Storm.SpeedMultiplier = 1.2
	}
	if cfg.Player.MaxLives < cfg.Player.StartLives {
		cfg.Player.MaxLives = cfg.Player.StartLives
	}
}
