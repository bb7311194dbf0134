package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.arcade/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
// Files are decoded on top of the defaults, so partial files only override what they name.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/runner.yaml"); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hardcoded defaults and validates the result.
func parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ErrInvalidConfig is returned (wrapped) for configs that cannot drive a game.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports the first value that would break the simulation.
func (c RunnerConfig) Validate() error {
	switch {
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: physics.gravity must be positive", ErrInvalidConfig)
	case c.Physics.JumpImpulse <= 0:
		return fmt.Errorf("%w: physics.jump_impulse must be positive", ErrInvalidConfig)
	case c.Physics.ObstacleSpeed <= 0:
		return fmt.Errorf("%w: physics.obstacle_speed must be positive", ErrInvalidConfig)
	case c.Obstacles.MinIntervalMS <= 0:
		return fmt.Errorf("%w: obstacles.min_interval_ms must be positive", ErrInvalidConfig)
	case c.Obstacles.MaxIntervalMS < c.Obstacles.MinIntervalMS:
		return fmt.Errorf("%w: obstacles.max_interval_ms below min_interval_ms", ErrInvalidConfig)
	case c.Obstacles.InitialDelayMS < 0:
		return fmt.Errorf("%w: obstacles.initial_delay_ms must not be negative", ErrInvalidConfig)
	case c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0:
		return fmt.Errorf("%w: obstacle size must be positive", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Collision.Margin < 0:
		return fmt.Errorf("%w: collision.margin must not be negative", ErrInvalidConfig)
	case c.Animation.Frames <= 0 || c.Animation.JumpEvery <= 0 || c.Animation.RunEvery <= 0:
		return fmt.Errorf("%w: animation cadence must be positive", ErrInvalidConfig)
	case c.Layout.CellWidth <= 0 || c.Layout.CellHeight <= 0:
		return fmt.Errorf("%w: layout cell size must be positive", ErrInvalidConfig)
	}
	return nil
}
