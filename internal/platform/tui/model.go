package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/block-runner/internal/clock"
	"github.com/vovakirdan/block-runner/internal/config"
	"github.com/vovakirdan/block-runner/internal/core"
	"github.com/vovakirdan/block-runner/internal/games/runner"
	"github.com/vovakirdan/block-runner/internal/storage"
)

// Sound is the audio collaborator. *audio.SoundManager satisfies it.
type Sound interface {
	StartRun()
	PauseRun()
	ResumeRun()
	StopRun()
	PlayJump()
	PlayDeath()
}

type silence struct{}

func (silence) StartRun()  {}
func (silence) PauseRun()  {}
func (silence) ResumeRun() {}
func (silence) StopRun()   {}
func (silence) PlayJump()  {}
func (silence) PlayDeath() {}

// Options configures a Model.
type Options struct {
	Config  config.RunnerConfig
	Runtime core.RuntimeConfig
	Store   storage.Backend // Optional
	Sound   Sound           // Optional
	Logger  *log.Logger     // Optional
	Player  string          // Shown in logs, e.g. the SSH user

	// ScreenshotDir receives ctrl+s dumps. Empty means ~/.arcade/screenshots.
	ScreenshotDir string
}

type view int

const (
	viewGame view = iota
	viewScores
)

// Model is the Bubble Tea model running one game session.
type Model struct {
	game          *runner.Game
	renderer      *runner.Renderer
	sched         *teaScheduler
	screen        *core.Screen
	store         storage.Backend
	sound         Sound
	logger        *log.Logger
	keys          *KeyMapper
	scores        ScoreboardModel
	runtime       core.RuntimeConfig
	player        string
	screenshotDir string
	view          view
	ticking       bool
	quitting      bool
}

// NewModel creates an idle session.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Sound == nil {
		opts.Sound = silence{}
	}

	sched := &teaScheduler{}
	layout := runner.NewTermLayout(opts.Config, rt.ScreenW, rt.ScreenH)

	var hs runner.HighScoreStore
	if opts.Store != nil {
		hs = opts.Store
	}

	game := runner.New(opts.Config, rt, runner.Deps{
		Clock:     clock.System{},
		Scheduler: sched,
		Store:     hs,
		Layout:    layout,
		Logger:    opts.Logger,
	})

	scores := NewScoreboardModel(opts.Store, rt.ScreenW, rt.ScreenH)
	scores.embedded = true

	return Model{
		game:          game,
		renderer:      runner.NewRenderer(opts.Config, layout),
		sched:         sched,
		screen:        core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:         opts.Store,
		sound:         opts.Sound,
		logger:        opts.Logger,
		keys:          NewKeyMapper(),
		scores:        scores,
		runtime:       rt,
		player:        opts.Player,
		screenshotDir: opts.ScreenshotDir,
	}
}

// Init starts idle. Ticks begin with the first run.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m.handleTick(time.Time(msg))

	case timerMsg:
		msg.fn()
		return m, m.afterGame()

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		if m.view == viewScores {
			return m.updateScores(msg)
		}
		return m.handleKey(msg)
	}

	if m.view == viewScores {
		return m.updateScores(msg)
	}
	return m, nil
}

// handleKey processes keyboard input on the game screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.sound.StopRun()
		return m, tea.Quit

	case core.ActionScoreboard:
		if m.game.Phase() == runner.PhaseIdle {
			m.view = viewScores
			m.scores.Reload()
		}
		return m, nil

	case core.ActionStartOrRestart, core.ActionJump:
		m.game.Signal(action)
	}

	cmd := m.afterGame()
	if m.game.Active() && !m.ticking {
		m.ticking = true
		cmd = tea.Batch(cmd, tickCmd(m.runtime.TickRate))
	}
	return m, cmd
}

// handleTick runs one frame and keeps the tick chain alive while the game
// wants it. Only one chain is ever in flight.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	more := m.game.Frame(now)
	cmd := m.afterGame()

	if !more {
		m.ticking = false
		return m, cmd
	}
	return m, tea.Batch(cmd, tickCmd(m.runtime.TickRate))
}

// handleResize processes window resize events. The run is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)

	var cmd tea.Cmd
	m.scores, cmd = m.scores.update(msg)
	return m, cmd
}

func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.scores, cmd = m.scores.update(msg)

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.scores.goingBack = false
		m.view = viewGame
	}
	return m, cmd
}

// afterGame routes the game's queued events and returns the timers it armed.
func (m *Model) afterGame() tea.Cmd {
	for _, e := range m.game.DrainEvents() {
		m.renderer.Handle(e)

		switch ev := e.(type) {
		case runner.RunStartedEvent:
			m.sound.StartRun()
		case runner.JumpedEvent:
			m.sound.PauseRun()
			m.sound.PlayJump()
		case runner.LandedEvent:
			m.sound.ResumeRun()
		case runner.DiedEvent:
			m.sound.StopRun()
			m.sound.PlayDeath()
		case runner.ReloadedEvent:
			m.sound.StopRun()
		case runner.RunEndedEvent:
			m.saveRun(ev.Result)
		}
	}
	return m.sched.flush()
}

// saveRun appends the finished run to the history. Best effort.
func (m *Model) saveRun(res runner.RunResult) {
	if m.store == nil {
		return
	}
	id, err := m.store.SaveRun(storage.RecordFromResult(res))
	if err != nil {
		m.logger.Warn("could not save run", "score", res.FinalScore, "error", err)
		return
	}
	m.logger.Info("run saved", "run_id", id, "player", m.player, "score", res.FinalScore)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.renderer.Draw(m.screen, m.game.Snapshot())

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("could not resolve home for screenshot", "error", err)
			return
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not write screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.view == viewScores {
		return m.scores.View()
	}

	m.renderer.Draw(m.screen, m.game.Snapshot())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program in the alternate screen.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
