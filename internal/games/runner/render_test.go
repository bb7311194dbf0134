package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/block-runner/internal/clock"
	"github.com/vovakirdan/block-runner/internal/config"
	"github.com/vovakirdan/block-runner/internal/core"
)

type renderRig struct {
	game   *Game
	clk    *clock.Manual
	layout *TermLayout
	rend   *Renderer
	screen *core.Screen
}

func newRenderRig(t *testing.T, store HighScoreStore) *renderRig {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	rt := testRuntime()
	clk := clock.NewManual(epoch)
	layout := NewTermLayout(cfg, rt.ScreenW, rt.ScreenH)

	return &renderRig{
		game:   New(cfg, rt, Deps{Clock: clk, Scheduler: clk, Store: store, Layout: layout}),
		clk:    clk,
		layout: layout,
		rend:   NewRenderer(cfg, layout),
		screen: core.NewScreen(rt.ScreenW, rt.ScreenH),
	}
}

// step ticks once and feeds the events to the renderer.
func (r *renderRig) step() {
	tick(r.game, r.clk)
	r.pump()
}

func (r *renderRig) pump() {
	for _, e := range r.game.DrainEvents() {
		r.rend.Handle(e)
	}
}

func (r *renderRig) draw() string {
	r.rend.Draw(r.screen, r.game.Snapshot())
	return r.screen.String()
}

func TestDrawIdleScreen(t *testing.T) {
	r := newRenderRig(t, &memStore{high: 17})
	out := r.draw()

	for _, want := range []string{"BLOCK RUNNER", "Enter to start", "Best: 17", "Score: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("idle screen missing %q", want)
		}
	}

	ground := r.layout.GroundRow()
	if c := r.screen.Get(1, ground); c != GroundChar && c != GroundMark {
		t.Errorf("ground row has %q, expected ground texture", c)
	}
}

func TestSkinsFollowObstacleLifecycle(t *testing.T) {
	r := newRenderRig(t, nil)
	r.game.Signal(core.ActionStartOrRestart)
	r.pump()

	destroyed := false
	for i := 0; i < 1500; i++ {
		autoJump(r.game)
		before := r.rend.Skins()
		r.step()
		if r.rend.Skins() < before {
			destroyed = true
		}
		if got, live := r.rend.Skins(), len(r.game.Snapshot().Obstacles); got != live {
			t.Fatalf("tick %d: %d skins for %d live obstacles", i, got, live)
		}
	}
	if !destroyed {
		t.Error("no skin was released")
	}
}

func TestDrawObstacleAtLayoutColumn(t *testing.T) {
	r := newRenderRig(t, nil)
	r.game.Signal(core.ActionStartOrRestart)
	r.pump()
	for len(r.game.Snapshot().Obstacles) == 0 {
		r.step()
	}
	for i := 0; i < 40; i++ {
		r.step()
	}
	r.draw()

	o := r.game.Snapshot().Obstacles[0]
	rect := r.layout.ObstacleRect(o)
	if c := r.screen.GetCell(rect.X, rect.Bottom()-1); c.Rune != skins[0].glyph || c.Color != skins[0].color {
		t.Errorf("obstacle cell = %+v, expected first skin", c)
	}
	if c := r.screen.Get(rect.X-1, rect.Bottom()-1); c == skins[0].glyph {
		t.Error("obstacle drawn left of its rect")
	}
}

func TestDrawGameOverAfterRunEnded(t *testing.T) {
	r := newRenderRig(t, nil)
	r.game.Signal(core.ActionStartOrRestart)
	r.pump()

	for r.game.Phase() != PhaseDead {
		r.step()
	}
	if strings.Contains(r.draw(), "GAME OVER") {
		t.Error("end screen shown before the death strip finished")
	}

	for r.game.Snapshot().Result == nil {
		r.step()
	}
	out := r.draw()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Enter to continue") {
		t.Errorf("end screen missing:\n%s", out)
	}

	r.game.Signal(core.ActionStartOrRestart)
	r.pump()
	if r.rend.Skins() != 0 {
		t.Errorf("%d skins survived the reload", r.rend.Skins())
	}
	if !strings.Contains(r.draw(), "BLOCK RUNNER") {
		t.Error("reload should return to the idle screen")
	}
}

func TestSpriteStripsFitPlayerRect(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	for _, pose := range []Pose{PoseIdle, PoseRun, PoseJump, PoseDead} {
		for frame := 1; frame <= cfg.Animation.Frames; frame++ {
			rows := spriteRows(Sprite{Pose: pose, Frame: frame})
			if len(rows) == 0 || len(rows) > cfg.Player.Height {
				t.Fatalf("%v (%d): %d rows", pose, frame, len(rows))
			}
			for _, row := range rows {
				if n := len([]rune(row)); n > cfg.Player.Width {
					t.Errorf("%v (%d): row %q is %d wide", pose, frame, row, n)
				}
			}
		}
	}
}

func TestHUDFlagsNewBest(t *testing.T) {
	r := newRenderRig(t, &memStore{high: 3})
	r.game.Signal(core.ActionStartOrRestart)
	r.pump()

	r.step()
	if strings.Contains(r.draw(), "NEW BEST") {
		t.Fatal("NEW BEST shown before the high score was beaten")
	}

	for i := 0; i < 60 && r.game.HighScore() <= 3; i++ {
		r.step()
	}
	if r.game.HighScore() <= 3 {
		t.Fatal("score never passed the stored high score")
	}
	if out := r.draw(); !strings.Contains(out, "NEW BEST") {
		t.Errorf("HUD missing NEW BEST after beating the high score:\n%s", out)
	}

	// The next run starts without the flag.
	r.rend.Handle(RunStartedEvent{})
	if strings.Contains(r.draw(), "NEW BEST") {
		t.Error("NEW BEST carried over into a new run")
	}
}
