package storage

import (
	"cmp"
	"slices"
	"sync"
)

// Memory is a process-local Backend. Used for tests and when no database
// path is configured.
type Memory struct {
	mu     sync.Mutex
	high   int
	runs   []RunRecord
	nextID int64
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

func (m *Memory) HighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.high, nil
}

func (m *Memory) SetHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.high = max(m.high, score)
	return nil
}

func (m *Memory) SaveRun(r RunRecord) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r = r.normalize()
	r.ID = m.nextID
	m.nextID++
	m.runs = append(m.runs, r)
	return r.RunID, nil
}

func (m *Memory) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return m.sorted(limit, func(a, b RunRecord) int {
		return cmp.Or(cmp.Compare(b.Score, a.Score), cmp.Compare(a.ID, b.ID))
	}), nil
}

func (m *Memory) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return m.sorted(limit, func(a, b RunRecord) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
	}), nil
}

func (m *Memory) sorted(limit int, order func(a, b RunRecord) int) []RunRecord {
	m.mu.Lock()
	runs := slices.Clone(m.runs)
	m.mu.Unlock()

	slices.SortFunc(runs, order)
	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs
}

func (m *Memory) Stats() (Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := Stats{Runs: len(m.runs), HighScore: m.high}
	total := 0
	for _, r := range m.runs {
		total += r.Score
		st.BestRun = max(st.BestRun, r.Score)
		st.TotalTicks += int64(r.Ticks)
		if r.CreatedAt.After(st.LastPlayed) {
			st.LastPlayed = r.CreatedAt
		}
	}
	if st.Runs > 0 {
		st.AvgScore = float64(total) / float64(st.Runs)
	}
	return st, nil
}

func (m *Memory) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.high = 0
	m.runs = nil
	return nil
}

func (m *Memory) Close() error {
	return nil
}

var _ Backend = (*Memory)(nil)
