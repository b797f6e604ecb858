package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-local config file, relative to the working directory.
const LocalConfigPath = "configs/snake.yaml"

// LoadSnake loads the game configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Files overlay the defaults, so a partial file only changes the keys it names.
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg, _, err := LoadSnakeFrom(customPath)
	return cfg, err
}

// LoadSnakeFrom is LoadSnake that also reports which file was used.
// The source is "embedded" when no file was found.
func LoadSnakeFrom(customPath string) (SnakeConfig, string, error) {
	// Try custom path first; a missing custom file is an error.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSnake(data)
		if err != nil {
			return SnakeConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{UserConfigPath(), LocalConfigPath}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parseSnake(data)
		if err != nil {
			return SnakeConfig{}, "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, path, nil
	}

	cfg, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		// Fallback to hardcoded if the embedded file is broken.
		return DefaultSnakeConfig(), "embedded", nil
	}
	return cfg, "embedded", nil
}

// parseSnake decodes YAML over the defaults and validates the result.
func parseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	// Validate accepted it, so only the spelling changes.
	cfg.Difficulty, _ = ParsePreset(string(cfg.Difficulty))
	return cfg, nil
}

// UserConfigPath returns the per-user config file, or empty if home is unavailable.
func UserConfigPath() string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// UserDir returns ~/.snake, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake")
}

// DefaultDBPath returns the default score database location.
func DefaultDBPath() string {
	dir := UserDir()
	if dir == "" {
		return "snake.db"
	}
	return filepath.Join(dir, "snake.db")
}

// DefaultLogPath returns the default log file location for interactive play.
func DefaultLogPath() string {
	dir := UserDir()
	if dir == "" {
		return "snake.log"
	}
	return filepath.Join(dir, "snake.log")
}
