package runner

import "time"

// Event is emitted by the game for audio, render and presentation
// collaborators. Drain them with Game.DrainEvents after every call.
type Event interface {
	runnerEvent()
}

// RunStartedEvent is emitted when the start signal begins a run.
type RunStartedEvent struct {
	Generation uint64
}

func (RunStartedEvent) runnerEvent() {}

// JumpedEvent is emitted when the player leaves the ground.
type JumpedEvent struct{}

func (JumpedEvent) runnerEvent() {}

// LandedEvent is emitted when the player touches down while still running.
type LandedEvent struct{}

func (LandedEvent) runnerEvent() {}

// SpawnedEvent is emitted when an obstacle enters at the right edge.
type SpawnedEvent struct {
	Obstacle Obstacle
}

func (SpawnedEvent) runnerEvent() {}

// DestroyedEvent is emitted when an obstacle leaves past the left edge.
type DestroyedEvent struct {
	Obstacle Obstacle
}

func (DestroyedEvent) runnerEvent() {}

// HighScoreEvent is emitted every time the floored score beats the high score.
type HighScoreEvent struct {
	Score int
}

func (HighScoreEvent) runnerEvent() {}

// DiedEvent is emitted on the collision that ends a run.
type DiedEvent struct {
	Score      int
	ObstacleID int
}

func (DiedEvent) runnerEvent() {}

// RunResult is the end-of-run summary handed to presentation.
type RunResult struct {
	Generation     uint64
	FinalScore     int
	FinalHighScore int
	Ticks          int
	Duration       time.Duration
}

// RunEndedEvent is emitted exactly once per run, when the death animation completes.
type RunEndedEvent struct {
	Result RunResult
}

func (RunEndedEvent) runnerEvent() {}

// ReloadedEvent is emitted when the restart signal resets a dead game to idle.
type ReloadedEvent struct {
	Generation uint64
}

func (ReloadedEvent) runnerEvent() {}
