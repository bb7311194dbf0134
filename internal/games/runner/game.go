// Package runner implements a side-scrolling "avoid the block" runner.
// The player runs automatically and jumps over blocks that arrive on
// randomized wall-clock timers; a collision ends the run and the time
// survived is scored against a persisted high score.
//
// The simulation advances by fixed increments per delivered tick. Elapsed
// time is measured and reported but never used to scale the step, so game
// speed follows the platform's tick rate.
package runner

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/block-runner/internal/clock"
	"github.com/vovakirdan/block-runner/internal/config"
	"github.com/vovakirdan/block-runner/internal/core"
)

// Deps are the collaborators a Game needs.
type Deps struct {
	Clock     clock.Source    // Defaults to the system clock
	Scheduler clock.Scheduler // Required; spawn timers are armed here
	Store     HighScoreStore  // Optional; nil keeps the high score in memory
	Layout    Layout          // Defaults to a TermLayout for the runtime screen
	Logger    *log.Logger     // Defaults to discarding output
}

// Game is the orchestrator. It owns the GameState and is the only thing
// that mutates it; every method must be called from one goroutine.
type Game struct {
	cfg      config.RunnerConfig
	runtime  core.RuntimeConfig
	clock    clock.Source
	layout   Layout
	logger   *log.Logger
	state    GameState
	settings Settings
	track    *ObstacleTrack
	score    *ScoreKeeper
	anim     *AnimationState
	result   *RunResult
	events   []Event
}

// New creates an idle game and loads the high score.
func New(cfg config.RunnerConfig, runtime core.RuntimeConfig, deps Deps) *Game {
	if deps.Scheduler == nil {
		panic("runner: nil scheduler")
	}
	if deps.Clock == nil {
		deps.Clock = clock.System{}
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	if deps.Layout == nil {
		deps.Layout = NewTermLayout(cfg, runtime.ScreenW, runtime.ScreenH)
	}

	g := &Game{
		cfg:     cfg,
		runtime: runtime,
		clock:   deps.Clock,
		layout:  deps.Layout,
		logger:  deps.Logger,
		state:   newGameState(0),
		track:   NewObstacleTrack(cfg.Obstacles, deps.Scheduler, runtime.Seed),
		score:   NewScoreKeeper(deps.Store, cfg.Scoring.PerTick, deps.Logger),
		anim:    NewAnimationState(cfg.Animation),
	}
	g.track.onSpawn = func(o Obstacle) {
		g.emit(SpawnedEvent{Obstacle: o})
	}
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	return g
}

// ID returns the short name used for files the game writes, like screenshots.
func (g *Game) ID() string {
	return "runner"
}

// Signal handles a logical input signal. Signals that are not actionable
// in the current phase are ignored.
func (g *Game) Signal(a core.Action) {
	switch a {
	case core.ActionStartOrRestart:
		switch g.state.Phase() {
		case PhaseIdle:
			g.start()
		case PhaseDead:
			g.reload()
		}
	case core.ActionJump:
		if g.state.Running && !g.state.Jumping {
			if jump(&g.state, g.settings) {
				g.anim.Show(PoseJump)
				g.emit(JumpedEvent{})
			}
		}
	}
}

// start resets run-scoped state and arms the first spawn.
func (g *Game) start() {
	now := g.clock.Now()
	gen := g.state.Generation + 1

	g.state = newGameState(gen)
	g.state.Running = true
	g.state.LastTickTime = now
	g.state.StartedAt = now
	g.result = nil

	g.anim.Reset()
	g.anim.Show(PoseRun)
	g.track.Reset(g.runtime.Seed + int64(gen))
	g.track.Arm(&g.state, g.track.InitialDelay())

	g.logger.Debug("run started", "generation", gen, "high_score", g.score.HighScore())
	g.emit(RunStartedEvent{Generation: gen})
}

// reload performs the full reset from Dead back to Idle. Pending spawn
// timers belong to the old generation and turn into no-ops.
func (g *Game) reload() {
	gen := g.state.Generation + 1

	g.state = newGameState(gen)
	g.result = nil
	g.anim.Reset()
	g.score.Load()

	g.logger.Debug("reloaded", "generation", gen)
	g.emit(ReloadedEvent{Generation: gen})
}

// Frame runs one display tick. While running it steps physics, world
// scroll, obstacles, score and collisions in that order; animation is
// stepped on every tick. It returns whether another tick should be scheduled.
func (g *Game) Frame(now time.Time) bool {
	st := &g.state
	if !st.Active() {
		return false
	}

	st.LastDelta = now.Sub(st.LastTickTime)
	st.LastTickTime = now

	if st.Running && !st.Dead {
		st.Ticks++

		if integrate(st, g.settings) {
			g.anim.Show(PoseRun)
			g.emit(LandedEvent{})
		}
		scrollWorld(st, g.settings)
		for _, o := range g.track.Advance(st, g.settings) {
			g.emit(DestroyedEvent{Obstacle: o})
		}
		if g.score.Tick(st) {
			g.emit(HighScoreEvent{Score: g.score.HighScore()})
		}
		if o, hit := firstHit(g.layout, st, g.cfg.Collision.Margin); hit {
			g.gameOver(o)
		}
	}

	if g.anim.Step(st) {
		g.endRun(now)
	}

	return st.Active()
}

// gameOver freezes the run on collision. Repeated calls are no-ops.
func (g *Game) gameOver(o Obstacle) {
	st := &g.state
	if st.Dead {
		return
	}

	st.Running = false
	st.Dead = true
	st.Jumping = false
	st.AnimationFrame = 1
	g.anim.Show(PoseDead)

	g.logger.Debug("collision", "obstacle", o.ID, "score", st.DisplayScore())
	g.emit(DiedEvent{Score: st.DisplayScore(), ObstacleID: o.ID})
}

// endRun builds the end-of-run summary once the death strip has played.
func (g *Game) endRun(now time.Time) {
	st := &g.state
	res := RunResult{
		Generation:     st.Generation,
		FinalScore:     st.DisplayScore(),
		FinalHighScore: g.score.HighScore(),
		Ticks:          st.Ticks,
		Duration:       now.Sub(st.StartedAt),
	}
	g.result = &res

	g.logger.Info("run ended", "score", res.FinalScore, "high_score", res.FinalHighScore, "ticks", res.Ticks)
	g.emit(RunEndedEvent{Result: res})
}

// Resize recomputes the derived settings for a new terminal size. In-flight
// positions are left alone; only future steps see the new values.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW = cols
	g.runtime.ScreenH = rows
	var vp viewporter = NewTermLayout(g.cfg, cols, rows)
	if r, ok := g.layout.(resizableLayout); ok {
		r.Resize(cols, rows)
		vp = r
	}

	w, h := vp.Viewport()
	g.settings = NewSettings(g.cfg.Physics, w, h)
	g.track.SetEdge(w)
}

// Settings returns the current derived settings.
func (g *Game) Settings() Settings {
	return g.settings
}

// Phase returns the session phase.
func (g *Game) Phase() Phase {
	return g.state.Phase()
}

// Active reports whether the game still wants ticks.
func (g *Game) Active() bool {
	return g.state.Active()
}

// HighScore returns the in-memory high score.
func (g *Game) HighScore() int {
	return g.score.HighScore()
}

// emit queues an event for DrainEvents.
func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// DrainEvents returns the events queued since the last call.
func (g *Game) DrainEvents() []Event {
	events := g.events
	g.events = nil
	return events
}

// Snapshot is a read-only view of the game for rendering.
type Snapshot struct {
	Phase        Phase
	Anim         AnimMode
	Sprite       Sprite
	PlayerHeight float64
	BackgroundX  float64
	Obstacles    []Obstacle
	Score        int
	HighScore    int
	LastDelta    time.Duration
	Generation   uint64
	Result       *RunResult // Set once the run has ended
}

// Snapshot returns the current render view. Obstacles are copied.
func (g *Game) Snapshot() Snapshot {
	st := &g.state
	obstacles := make([]Obstacle, len(st.Obstacles))
	copy(obstacles, st.Obstacles)

	return Snapshot{
		Phase:        st.Phase(),
		Anim:         g.anim.Mode(st),
		Sprite:       g.anim.Sprite(),
		PlayerHeight: st.PlayerHeight,
		BackgroundX:  st.BackgroundX,
		Obstacles:    obstacles,
		Score:        st.DisplayScore(),
		HighScore:    g.score.HighScore(),
		LastDelta:    st.LastDelta,
		Generation:   st.Generation,
		Result:       g.result,
	}
}
