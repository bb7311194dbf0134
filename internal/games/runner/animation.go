package runner

import "github.com/vovakirdan/block-runner/internal/config"

// Pose selects which sprite strip is shown.
type Pose int

const (
	PoseIdle Pose = iota
	PoseRun
	PoseJump
	PoseDead
)

// String returns the sprite strip name.
func (p Pose) String() string {
	switch p {
	case PoseIdle:
		return "Idle"
	case PoseRun:
		return "Run"
	case PoseJump:
		return "Jump"
	case PoseDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Sprite identifies one frame of one pose, e.g. Run (3).
type Sprite struct {
	Pose  Pose
	Frame int
}

// AnimMode is the animation state machine's current state.
type AnimMode int

const (
	AnimIdle AnimMode = iota
	AnimRunning
	AnimJumping
	AnimDying
	AnimFinished
)

// AnimationState is the sprite selector. It is stepped on every tick,
// including after death, so the death strip can play out.
type AnimationState struct {
	cfg      config.RunnerAnimation
	counter  int
	sprite   Sprite
	finished bool
}

// NewAnimationState creates an idle animation.
func NewAnimationState(cfg config.RunnerAnimation) *AnimationState {
	a := &AnimationState{cfg: cfg}
	a.Reset()
	return a
}

// Reset returns to the idle pose with a zeroed tick counter.
func (a *AnimationState) Reset() {
	a.counter = 0
	a.sprite = Sprite{Pose: PoseIdle, Frame: 1}
	a.finished = false
}

// Sprite returns the frame to draw.
func (a *AnimationState) Sprite() Sprite {
	return a.sprite
}

// Show switches to the first frame of a pose.
func (a *AnimationState) Show(p Pose) {
	a.sprite = Sprite{Pose: p, Frame: 1}
}

// Mode reports the state machine's state for the given game state.
func (a *AnimationState) Mode(st *GameState) AnimMode {
	switch {
	case a.finished:
		return AnimFinished
	case st.Dead:
		return AnimDying
	case st.Jumping:
		return AnimJumping
	case st.Running:
		return AnimRunning
	default:
		return AnimIdle
	}
}

// Step advances the animation by one tick. It returns true exactly once
// per run: on the tick the death strip completes.
func (a *AnimationState) Step(st *GameState) bool {
	a.counter++

	// Jumping takes priority and uses its own cadence.
	if st.Jumping && !st.Dead {
		if a.counter%a.cfg.JumpEvery == 0 {
			st.AnimationFrame = a.cycle(st.AnimationFrame)
			a.sprite = Sprite{Pose: PoseJump, Frame: st.AnimationFrame}
		}
		return false
	}

	if a.counter%a.cfg.RunEvery != 0 {
		return false
	}

	switch {
	case st.Dead:
		if st.AnimationFrame < a.cfg.Frames {
			st.AnimationFrame++
			a.sprite = Sprite{Pose: PoseDead, Frame: st.AnimationFrame}
			return false
		}
		if a.finished {
			return false
		}
		a.finished = true
		return true
	case st.Running:
		st.AnimationFrame = a.cycle(st.AnimationFrame)
		a.sprite = Sprite{Pose: PoseRun, Frame: st.AnimationFrame}
	}
	return false
}

// cycle advances a frame number through 1..Frames, wrapping to 1.
func (a *AnimationState) cycle(frame int) int {
	frame++
	if frame > a.cfg.Frames {
		frame = 1
	}
	return frame
}
