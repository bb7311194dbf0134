// Package tui provides the Bubble Tea frontend for the runner.
// It owns the terminal loop, input mapping, the timer bridge and the
// scoreboard, and serves the same model over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after the
// frame interval for tickRate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// timerMsg carries a scheduled callback back to the update goroutine.
type timerMsg struct {
	fn func()
}

// teaScheduler implements clock.Scheduler on top of tea.Tick. Timers armed
// during an Update are collected and returned as commands, and their
// callbacks run inside a later Update, so game state is only touched from
// the Bubble Tea event loop.
type teaScheduler struct {
	pending []tea.Cmd
}

func (s *teaScheduler) AfterFunc(d time.Duration, fn func()) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{fn: fn}
	}))
}

// flush returns the armed timers as one command, or nil.
func (s *teaScheduler) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
