package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// StepGenerator produces an endless footstep pattern.
type StepGenerator struct {
	sr     beep.SampleRate
	pos    int
	period int
	click  int
}

// NewStepGenerator creates a footstep generator at sr.
func NewStepGenerator(sr beep.SampleRate) *StepGenerator {
	return &StepGenerator{
		sr:     sr,
		period: sr.N(180 * time.Millisecond),
		click:  sr.N(25 * time.Millisecond),
	}
}

func (g *StepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		p := g.pos % g.period
		sample := 0.0
		if p < g.click {
			env := 1 - float64(p)/float64(g.click)
			t := float64(p) / float64(g.sr)
			sample = 0.12 * env * math.Sin(2*math.Pi*140*t)
		}
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *StepGenerator) Err() error {
	return nil
}

// SweepGenerator glides a sine from one frequency to another.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep lasting d.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, length: sr.N(d)}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		k := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*k
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := 0.2 * (1 - k) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// CrashGenerator mixes decaying noise with a falling rumble.
type CrashGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewCrashGenerator creates a crash generator. The seed fixes the noise.
func NewCrashGenerator(sr beep.SampleRate, seed int64) *CrashGenerator {
	return &CrashGenerator{sr: sr, seed: seed}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * 6)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := math.Sin(2 * math.Pi * (160 - 100*math.Min(t/0.45, 1)) * t)

		sample := env * (0.2*noise + 0.25*rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}
