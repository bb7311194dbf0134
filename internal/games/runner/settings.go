package runner

import "github.com/vovakirdan/block-runner/internal/config"

// Settings are per-tick physics values derived from the viewport.
// They are recomputed on resize and only affect future integration steps.
type Settings struct {
	Gravity             float64
	JumpImpulse         float64
	WorldScrollSpeed    float64
	ObstacleScrollSpeed float64

	ViewportW float64 // World units; obstacles spawn at this x
	ViewportH float64
}

// NewSettings derives settings for a viewport of w x h world units.
func NewSettings(p config.RunnerPhysics, w, h float64) Settings {
	return Settings{
		Gravity:             h * p.Gravity,
		JumpImpulse:         h * p.JumpImpulse,
		WorldScrollSpeed:    w * p.WorldSpeed,
		ObstacleScrollSpeed: w * p.ObstacleSpeed,
		ViewportW:           w,
		ViewportH:           h,
	}
}
