// Package clock is the runner's only bridge to real time: a timestamp
// source and a one-shot timer scheduler. Callbacks are always delivered on
// the simulation goroutine, so the game itself needs no locking.
package clock

import (
	"sort"
	"time"
)

// Source supplies monotonically increasing timestamps.
type Source interface {
	Now() time.Time
}

// Scheduler arms fire-and-forget one-shot timers.
// Implementations must invoke fn on the goroutine that drives the game.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// System reads the wall clock.
type System struct{}

// Now returns the current local time.
func (System) Now() time.Time { return time.Now() }

// Manual is a deterministic Source and Scheduler. Time only moves when
// Advance is called; due callbacks fire synchronously inside Advance.
type Manual struct {
	now    time.Time
	seq    uint64
	timers []timer
}

type timer struct {
	at  time.Time
	seq uint64
	fn  func()
}

// NewManual creates a manual clock starting at the given instant.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the manual clock's current instant.
func (m *Manual) Now() time.Time {
	return m.now
}

// AfterFunc schedules fn to run once Advance reaches now+d.
func (m *Manual) AfterFunc(d time.Duration, fn func()) {
	m.seq++
	m.timers = append(m.timers, timer{at: m.now.Add(d), seq: m.seq, fn: fn})
}

// Pending returns the number of armed timers.
func (m *Manual) Pending() int {
	return len(m.timers)
}

// Advance moves time forward by d, firing every timer that falls due in
// deadline order. Timers armed by a callback fire too if they fall inside
// the window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		idx := m.nextDue(target)
		if idx < 0 {
			break
		}
		t := m.timers[idx]
		m.timers = append(m.timers[:idx], m.timers[idx+1:]...)
		m.now = t.at
		t.fn()
	}
	m.now = target
}

// nextDue returns the index of the earliest timer due at or before target.
func (m *Manual) nextDue(target time.Time) int {
	if len(m.timers) == 0 {
		return -1
	}
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].at.Equal(m.timers[j].at) {
			return m.timers[i].seq < m.timers[j].seq
		}
		return m.timers[i].at.Before(m.timers[j].at)
	})
	if m.timers[0].at.After(target) {
		return -1
	}
	return 0
}
