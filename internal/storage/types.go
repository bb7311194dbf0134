package storage

import (
	"time"

	"github.com/vovakirdan/block-runner/internal/games/runner"
)

// RunRecord is one finished run in the history.
type RunRecord struct {
	ID        int64
	RunID     string
	Score     int
	HighScore int // High score at the end of the run
	Ticks     int
	Duration  time.Duration
	CreatedAt time.Time
}

// RecordFromResult converts an end-of-run summary into a history row.
func RecordFromResult(res runner.RunResult) RunRecord {
	return RunRecord{
		Score:     res.FinalScore,
		HighScore: res.FinalHighScore,
		Ticks:     res.Ticks,
		Duration:  res.Duration,
	}
}

func (r RunRecord) normalize() RunRecord {
	if r.RunID == "" {
		r.RunID = newRunID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	// Stored at second precision.
	r.CreatedAt = r.CreatedAt.UTC().Truncate(time.Second)
	return r
}

// Stats aggregates the history.
type Stats struct {
	Runs       int
	BestRun    int
	AvgScore   float64
	TotalTicks int64
	HighScore  int
	LastPlayed time.Time
}

// Backend is everything the frontends need from persistence.
type Backend interface {
	runner.HighScoreStore
	SaveRun(r RunRecord) (string, error)
	TopRuns(limit int) ([]RunRecord, error)
	RecentRuns(limit int) ([]RunRecord, error)
	Stats() (Stats, error)
	Reset() error
	Close() error
}
