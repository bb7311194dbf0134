package runner

import (
	"math"
	"time"
)

// Phase is the session-level state of the game loop.
type Phase int

const (
	PhaseIdle    Phase = iota // Waiting for the start signal
	PhaseRunning              // Simulation active
	PhaseDead                 // Collided; death animation playing out
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Obstacle is the simulation half of an obstacle. Render-side resources are
// keyed by ID and owned by the renderer.
type Obstacle struct {
	ID int     // Unique within a run
	X  float64 // Left edge in world units
}

// GameState is the single mutable aggregate owned by Game.
// Dead implies !Running; Jumping is only meaningful while !Dead.
type GameState struct {
	Running bool
	Dead    bool
	Jumping bool

	Score        float64 // Non-decreasing while running, frozen on death
	PlayerHeight float64 // Vertical offset above ground, never negative
	Velocity     float64 // Upward rate per tick
	BackgroundX  float64 // World scroll offset

	Obstacles []Obstacle // Spawn order, which is also left-to-right order

	AnimationFrame int // Always in [1, frames]

	LastTickTime time.Time
	LastDelta    time.Duration // Elapsed time measured by the last tick
	StartedAt    time.Time
	Ticks        int // Simulation ticks in the current run

	NextObstacleID int
	Generation     uint64 // Incremented on every run start and reload
}

// newGameState returns the state of a freshly loaded, idle game.
func newGameState(generation uint64) GameState {
	return GameState{
		Obstacles:      make([]Obstacle, 0, 8),
		AnimationFrame: 1,
		NextObstacleID: 1,
		Generation:     generation,
	}
}

// Phase derives the session phase from the state flags.
func (s *GameState) Phase() Phase {
	switch {
	case s.Dead:
		return PhaseDead
	case s.Running:
		return PhaseRunning
	default:
		return PhaseIdle
	}
}

// Active reports whether ticks still need to be delivered.
func (s *GameState) Active() bool {
	return s.Running || s.Dead
}

// Grounded reports whether the player is on the ground with no jump
// in progress, i.e. there is no arc left to integrate.
func (s *GameState) Grounded() bool {
	return !s.Jumping && s.PlayerHeight <= 0
}

// DisplayScore returns the floored score shown to the player.
func (s *GameState) DisplayScore() int {
	return int(math.Floor(s.Score))
}
