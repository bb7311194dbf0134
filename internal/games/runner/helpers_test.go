package runner

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/block-runner/internal/clock"
	"github.com/vovakirdan/block-runner/internal/config"
	"github.com/vovakirdan/block-runner/internal/core"
)

const frameDur = time.Second / 60

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// memStore is an in-memory HighScoreStore recording every write.
type memStore struct {
	high    int
	writes  []int
	loadErr error
	saveErr error
}

func (m *memStore) HighScore() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.high, nil
}

func (m *memStore) SetHighScore(score int) error {
	m.writes = append(m.writes, score)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.high = score
	return nil
}

var errDisk = errors.New("disk on fire")

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func newTestGame(t *testing.T, store HighScoreStore) (*Game, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual(epoch)
	g := New(config.DefaultRunnerConfig(), testRuntime(), Deps{
		Clock:     clk,
		Scheduler: clk,
		Store:     store,
	})
	return g, clk
}

// tick advances the clock by one frame and delivers it.
func tick(g *Game, clk *clock.Manual) bool {
	clk.Advance(frameDur)
	return g.Frame(clk.Now())
}

// runUntil ticks until cond holds or max ticks elapse. Returns ticks used.
func runUntil(t *testing.T, g *Game, clk *clock.Manual, max int, cond func() bool) int {
	t.Helper()
	for i := 1; i <= max; i++ {
		tick(g, clk)
		if cond() {
			return i
		}
	}
	t.Fatalf("condition not met within %d ticks (phase %v)", max, g.Phase())
	return max
}

// autoJump jumps when the nearest obstacle is about to reach the player.
func autoJump(g *Game) {
	for _, o := range g.state.Obstacles {
		if o.X > 100 && o.X <= 200 {
			g.Signal(core.ActionJump)
			return
		}
	}
}

func countEvents[T Event](events []Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

func testPhysics() config.RunnerPhysics {
	return config.DefaultRunnerConfig().Physics
}
