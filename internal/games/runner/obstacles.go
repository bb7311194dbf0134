package runner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/block-runner/internal/clock"
	"github.com/vovakirdan/block-runner/internal/config"
)

// ObstacleTrack handles spawning, movement, and removal of obstacles.
// Spawns run on wall-clock timers, independent of the tick loop.
type ObstacleTrack struct {
	cfg   config.RunnerObstacles
	rng   *rand.Rand
	sched clock.Scheduler
	edge  float64 // Right edge of the viewport in world units

	onSpawn func(Obstacle)
}

// NewObstacleTrack creates a track that arms its timers on sched.
func NewObstacleTrack(cfg config.RunnerObstacles, sched clock.Scheduler, seed int64) *ObstacleTrack {
	return &ObstacleTrack{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		sched: sched,
	}
}

// Reset reseeds the inter-arrival RNG.
func (t *ObstacleTrack) Reset(seed int64) {
	t.rng = rand.New(rand.NewSource(seed))
}

// SetEdge updates the x coordinate new obstacles appear at.
func (t *ObstacleTrack) SetEdge(x float64) {
	t.edge = x
}

// InitialDelay is the wait before the first obstacle of a run.
func (t *ObstacleTrack) InitialDelay() time.Duration {
	return time.Duration(t.cfg.InitialDelayMS) * time.Millisecond
}

// NextDelay draws an inter-arrival time uniformly from [min, max).
func (t *ObstacleTrack) NextDelay() time.Duration {
	lo := float64(t.cfg.MinIntervalMS)
	span := float64(t.cfg.MaxIntervalMS - t.cfg.MinIntervalMS)
	ms := lo + t.rng.Float64()*span
	return time.Duration(ms * float64(time.Millisecond))
}

// Arm schedules a spawn for the run identified by st.Generation.
func (t *ObstacleTrack) Arm(st *GameState, d time.Duration) {
	gen := st.Generation
	t.sched.AfterFunc(d, func() {
		t.fire(st, gen)
	})
}

// fire handles a spawn timer. Timers from an earlier generation, or firing
// while the run is not live, are dropped and arm nothing, which ends the chain.
func (t *ObstacleTrack) fire(st *GameState, gen uint64) {
	if st.Generation != gen {
		return
	}
	if _, ok := t.Spawn(st); !ok {
		return
	}
	t.Arm(st, t.NextDelay())
}

// Spawn appends a new obstacle at the right edge. No-op unless running.
func (t *ObstacleTrack) Spawn(st *GameState) (Obstacle, bool) {
	if !st.Running || st.Dead {
		return Obstacle{}, false
	}

	o := Obstacle{ID: st.NextObstacleID, X: t.edge}
	st.NextObstacleID++
	st.Obstacles = append(st.Obstacles, o)

	if t.onSpawn != nil {
		t.onSpawn(o)
	}
	return o, true
}

// Advance moves every obstacle left and removes the ones past the despawn
// threshold, preserving the order of survivors. Returns the removed obstacles.
func (t *ObstacleTrack) Advance(st *GameState, s Settings) []Obstacle {
	var destroyed []Obstacle

	kept := st.Obstacles[:0]
	for _, o := range st.Obstacles {
		o.X -= s.ObstacleScrollSpeed
		if o.X < t.cfg.DespawnX {
			destroyed = append(destroyed, o)
			continue
		}
		kept = append(kept, o)
	}
	st.Obstacles = kept

	return destroyed
}
