package runner

import "testing"

func TestScoreKeeperLoad(t *testing.T) {
	tests := []struct {
		name     string
		store    HighScoreStore
		expected int
	}{
		{"no store", nil, 0},
		{"stored value", &memStore{high: 42}, 42},
		{"negative value", &memStore{high: -3}, 0},
		{"read error", &memStore{high: 42, loadErr: errDisk}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k := NewScoreKeeper(tc.store, 0.2, nil)
			if got := k.HighScore(); got != tc.expected {
				t.Errorf("HighScore() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestScoreKeeperWritesThroughOnImprovement(t *testing.T) {
	store := &memStore{high: 2}
	k := NewScoreKeeper(store, 0.2, nil)
	st := runningState(1)

	improved := 0
	for i := 0; i < 25; i++ {
		if k.Tick(&st) {
			improved++
		}
	}

	if st.DisplayScore() < 4 {
		t.Fatalf("score = %v after 25 ticks, expected about 5", st.Score)
	}
	if k.HighScore() != st.DisplayScore() {
		t.Errorf("HighScore() = %d, expected %d", k.HighScore(), st.DisplayScore())
	}
	if improved != len(store.writes) {
		t.Errorf("%d improvements but %d writes", improved, len(store.writes))
	}
	for i, w := range store.writes {
		if w <= 2 {
			t.Errorf("write %d = %d did not beat the loaded high score", i, w)
		}
		if i > 0 && w <= store.writes[i-1] {
			t.Errorf("writes not increasing: %v", store.writes)
		}
	}
}

func TestScoreKeeperSwallowsStoreErrors(t *testing.T) {
	store := &memStore{saveErr: errDisk}
	k := NewScoreKeeper(store, 0.2, nil)
	st := runningState(1)

	for i := 0; i < 10; i++ {
		k.Tick(&st)
	}

	if k.HighScore() != st.DisplayScore() || k.HighScore() == 0 {
		t.Errorf("in-memory high score = %d, expected %d", k.HighScore(), st.DisplayScore())
	}
	if len(store.writes) == 0 {
		t.Error("expected write attempts despite errors")
	}
}

func TestScoreFrozenWhenNotRunning(t *testing.T) {
	k := NewScoreKeeper(nil, 0.2, nil)
	st := newGameState(1)
	st.Dead = true
	st.Score = 3.4

	if k.Tick(&st) {
		t.Error("tick while dead reported an improvement")
	}
	if st.Score != 3.4 {
		t.Errorf("score changed while dead: %v", st.Score)
	}
}
