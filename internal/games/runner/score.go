package runner

import (
	"io"

	"github.com/charmbracelet/log"
)

// HighScoreStore is the persistence collaborator for the best-ever score.
type HighScoreStore interface {
	HighScore() (int, error)
	SetHighScore(score int) error
}

// ScoreKeeper accumulates the time-survived score and keeps the high
// score written through to the store on every improvement.
type ScoreKeeper struct {
	store   HighScoreStore
	perTick float64
	high    int
	logger  *log.Logger
}

// NewScoreKeeper creates a keeper and loads the persisted high score.
func NewScoreKeeper(store HighScoreStore, perTick float64, logger *log.Logger) *ScoreKeeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	k := &ScoreKeeper{
		store:   store,
		perTick: perTick,
		logger:  logger,
	}
	k.Load()
	return k
}

// Load reads the high score from the store. A missing store, a failed
// read or a negative value all count as zero.
func (k *ScoreKeeper) Load() {
	k.high = 0
	if k.store == nil {
		return
	}

	v, err := k.store.HighScore()
	if err != nil {
		k.logger.Warn("could not load high score", "error", err)
		return
	}
	if v > 0 {
		k.high = v
	}
}

// HighScore returns the in-memory high score.
func (k *ScoreKeeper) HighScore() int {
	return k.high
}

// Tick adds one tick's worth of score while running. When the floored
// score beats the high score it is persisted synchronously; the returned
// flag reports the improvement.
func (k *ScoreKeeper) Tick(st *GameState) bool {
	if !st.Running {
		return false
	}

	st.Score += k.perTick

	current := st.DisplayScore()
	if current <= k.high {
		return false
	}

	k.high = current
	if k.store != nil {
		if err := k.store.SetHighScore(current); err != nil {
			k.logger.Warn("could not persist high score", "score", current, "error", err)
		}
	}
	return true
}
