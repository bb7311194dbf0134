package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:       0.002,
			JumpImpulse:   0.035,
			WorldSpeed:    0.006,
			ObstacleSpeed: 0.009,
		},
		Obstacles: RunnerObstacles{
			InitialDelayMS: 2000,
			MinIntervalMS:  1000,
			MaxIntervalMS:  2500,
			DespawnX:       -100,
			Width:          6,
			Height:         3,
		},
		Player: RunnerPlayer{
			X:            8,
			Width:        7,
			Height:       4,
			GroundOffset: 2,
		},
		Collision: RunnerCollision{
			Margin: 25,
		},
		Scoring: RunnerScoring{
			PerTick: 0.2,
		},
		Animation: RunnerAnimation{
			Frames:    10,
			JumpEvery: 8,
			RunEvery:  5,
		},
		Layout: RunnerLayout{
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
