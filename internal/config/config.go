// Package config provides YAML-based configuration loading for the runner.
package config

import "fmt"

// RunnerConfig contains all tunables for the runner game.
type RunnerConfig struct {
	Physics   RunnerPhysics   `yaml:"physics"`
	Obstacles RunnerObstacles `yaml:"obstacles"`
	Player    RunnerPlayer    `yaml:"player"`
	Collision RunnerCollision `yaml:"collision"`
	Scoring   RunnerScoring   `yaml:"scoring"`
	Animation RunnerAnimation `yaml:"animation"`
	Layout    RunnerLayout    `yaml:"layout"`
}

// RunnerPhysics holds the viewport coefficients the derived settings are computed from.
// Each setting is a linear function of the viewport height or width.
type RunnerPhysics struct {
	Gravity       float64 `yaml:"gravity"`        // x viewport height, per tick
	JumpImpulse   float64 `yaml:"jump_impulse"`   // x viewport height, per tick
	WorldSpeed    float64 `yaml:"world_speed"`    // x viewport width, per tick
	ObstacleSpeed float64 `yaml:"obstacle_speed"` // x viewport width, per tick
}

// RunnerObstacles defines obstacle spawn timing and lifecycle.
type RunnerObstacles struct {
	InitialDelayMS int     `yaml:"initial_delay_ms"`
	MinIntervalMS  int     `yaml:"min_interval_ms"`
	MaxIntervalMS  int     `yaml:"max_interval_ms"`
	DespawnX       float64 `yaml:"despawn_x"`
	Width          int     `yaml:"width"`  // cells
	Height         int     `yaml:"height"` // cells
}

// RunnerPlayer defines the player's on-screen footprint in cells.
type RunnerPlayer struct {
	X            int `yaml:"x"`
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundOffset int `yaml:"ground_offset"` // rows between ground line and screen bottom
}

// RunnerCollision controls collision forgiveness.
type RunnerCollision struct {
	Margin float64 `yaml:"margin"` // world units shaved off every side of both boxes
}

// RunnerScoring defines the per-tick score increment.
type RunnerScoring struct {
	PerTick float64 `yaml:"per_tick"`
}

// RunnerAnimation defines sprite cadence.
type RunnerAnimation struct {
	Frames    int `yaml:"frames"`     // frames per pose
	JumpEvery int `yaml:"jump_every"` // ticks per jump frame
	RunEvery  int `yaml:"run_every"`  // ticks per run/death frame
}

// RunnerLayout maps terminal cells to world units.
type RunnerLayout struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// DifficultyPreset represents a named collision forgiveness level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// MarginForPreset returns the collision margin for a difficulty preset.
func MarginForPreset(preset DifficultyPreset) (float64, bool) {
	switch preset {
	case DifficultyEasy:
		return 28, true
	case DifficultyNormal:
		return 25, true
	case DifficultyHard:
		return 20, true
	default:
		return 0, false
	}
}

// ParsePreset converts a CLI string into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if m, ok := MarginForPreset(preset); ok {
		cfg.Collision.Margin = m
	}
}
