// Package audio plays the runner's sound effects through beep. Audio is
// best effort: every method is safe to call before or without a working
// output device, and failures are never surfaced to the game loop.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager owns the speaker mixer and the looping run sound.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	run         *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a silent manager. Call Initialize to open the device.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the output device. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether sounds reach a device.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Close silences everything. The manager can be initialized again.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.run != nil {
		sm.run.Paused = true
		sm.run = nil
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// StartRun starts the footstep loop from the beginning.
func (sm *SoundManager) StartRun() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.run != nil {
		sm.run.Paused = true
	}
	sm.run = &beep.Ctrl{Streamer: NewStepGenerator(sampleRate)}
	sm.mixer.Add(sm.run)
	speaker.Unlock()
}

// PauseRun pauses the footstep loop, e.g. while airborne.
func (sm *SoundManager) PauseRun() {
	sm.setRunPaused(true)
}

// ResumeRun resumes a paused footstep loop.
func (sm *SoundManager) ResumeRun() {
	sm.setRunPaused(false)
}

func (sm *SoundManager) setRunPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.run == nil {
		return
	}
	speaker.Lock()
	sm.run.Paused = paused
	speaker.Unlock()
}

// StopRun ends the footstep loop.
func (sm *SoundManager) StopRun() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.run == nil {
		return
	}
	speaker.Lock()
	sm.run.Paused = true
	sm.run.Streamer = nil
	speaker.Unlock()
	sm.run = nil
}

// PlayJump plays a short rising blip.
func (sm *SoundManager) PlayJump() {
	sm.play(beep.Take(sampleRate.N(120*time.Millisecond), NewSweepGenerator(sampleRate, 320, 880, 120*time.Millisecond)))
}

// PlayDeath plays a falling crash.
func (sm *SoundManager) PlayDeath() {
	sm.play(beep.Take(sampleRate.N(450*time.Millisecond), NewCrashGenerator(sampleRate, 1)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
