package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/block-runner/internal/games/runner"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// backends runs a test against both implementations.
func backends(t *testing.T, fn func(t *testing.T, b Backend)) {
	t.Run("sqlite", func(t *testing.T) { fn(t, openTestStore(t)) })
	t.Run("memory", func(t *testing.T) { fn(t, NewMemory()) })
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestHighScoreNeverDecreases(t *testing.T) {
	backends(t, func(t *testing.T, b Backend) {
		high, err := b.HighScore()
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if high != 0 {
			t.Errorf("empty store high score = %d, expected 0", high)
		}

		for _, v := range []int{10, 50, 30, 50, 49} {
			if err := b.SetHighScore(v); err != nil {
				t.Fatalf("SetHighScore(%d) failed: %v", v, err)
			}
		}

		high, _ = b.HighScore()
		if high != 50 {
			t.Errorf("high score = %d, expected 50", high)
		}
	})
}

func TestHighScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SetHighScore(77)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore(); high != 77 {
		t.Errorf("high score after reopen = %d, expected 77", high)
	}
}

func TestSaveRunAndQuery(t *testing.T) {
	backends(t, func(t *testing.T, b Backend) {
		base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		scores := []int{100, 50, 200, 75}
		ids := make(map[string]bool)

		for i, s := range scores {
			id, err := b.SaveRun(RunRecord{
				Score:     s,
				HighScore: 200,
				Ticks:     s * 5,
				Duration:  time.Duration(s) * 100 * time.Millisecond,
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			})
			if err != nil {
				t.Fatalf("SaveRun() failed: %v", err)
			}
			if id == "" || ids[id] {
				t.Fatalf("SaveRun() returned empty or duplicate id %q", id)
			}
			ids[id] = true
		}

		top, err := b.TopRuns(3)
		if err != nil {
			t.Fatalf("TopRuns() failed: %v", err)
		}
		if len(top) != 3 || top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 75 {
			t.Errorf("TopRuns(3) = %+v", top)
		}
		if top[0].Duration != 20*time.Second || top[0].Ticks != 1000 {
			t.Errorf("top run duration %v ticks %d", top[0].Duration, top[0].Ticks)
		}

		recent, err := b.RecentRuns(2)
		if err != nil {
			t.Fatalf("RecentRuns() failed: %v", err)
		}
		if len(recent) != 2 || recent[0].Score != 75 || recent[1].Score != 200 {
			t.Errorf("RecentRuns(2) = %+v", recent)
		}
		if !recent[0].CreatedAt.Equal(base.Add(3 * time.Minute)) {
			t.Errorf("CreatedAt = %v, expected %v", recent[0].CreatedAt, base.Add(3*time.Minute))
		}
	})
}

func TestStats(t *testing.T) {
	backends(t, func(t *testing.T, b Backend) {
		st, err := b.Stats()
		if err != nil {
			t.Fatalf("Stats() failed: %v", err)
		}
		if st.Runs != 0 || !st.LastPlayed.IsZero() {
			t.Errorf("empty stats = %+v", st)
		}

		last := time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC)
		b.SaveRun(RunRecord{Score: 10, Ticks: 50, CreatedAt: last.Add(-time.Hour)})
		b.SaveRun(RunRecord{Score: 30, Ticks: 150, CreatedAt: last})
		b.SetHighScore(30)

		st, err = b.Stats()
		if err != nil {
			t.Fatalf("Stats() failed: %v", err)
		}
		if st.Runs != 2 || st.BestRun != 30 || st.AvgScore != 20 || st.TotalTicks != 200 || st.HighScore != 30 {
			t.Errorf("stats = %+v", st)
		}
		if !st.LastPlayed.Equal(last) {
			t.Errorf("LastPlayed = %v, expected %v", st.LastPlayed, last)
		}
	})
}

func TestReset(t *testing.T) {
	backends(t, func(t *testing.T, b Backend) {
		b.SetHighScore(99)
		b.SaveRun(RunRecord{Score: 99})

		if err := b.Reset(); err != nil {
			t.Fatalf("Reset() failed: %v", err)
		}

		if high, _ := b.HighScore(); high != 0 {
			t.Errorf("high score after reset = %d", high)
		}
		if runs, _ := b.TopRuns(10); len(runs) != 0 {
			t.Errorf("%d runs survived reset", len(runs))
		}
	})
}

func TestRecordFromResult(t *testing.T) {
	r := RecordFromResult(runner.RunResult{
		Generation:     3,
		FinalScore:     41,
		FinalHighScore: 90,
		Ticks:          205,
		Duration:       3 * time.Second,
	})

	if r.Score != 41 || r.HighScore != 90 || r.Ticks != 205 || r.Duration != 3*time.Second {
		t.Errorf("RecordFromResult() = %+v", r)
	}
}
