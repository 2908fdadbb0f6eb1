package storage

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Tracker is the score sink of a play session. It reads the persisted high
// score when a session begins, writes it whenever the running score beats it,
// and appends finished sessions to the history when the backend keeps one.
// Persistence failures are logged, never fatal.
type Tracker struct {
	gameID  string
	scores  HighScores
	history ScoreHistory
	logger  *log.Logger
	best    int
}

var _ core.Hooks = (*Tracker)(nil)

// NewTracker creates a tracker for one game.
func NewTracker(gameID string, scores HighScores, logger *log.Logger) *Tracker {
	t := &Tracker{gameID: gameID, scores: scores, logger: logger}
	if h, ok := scores.(ScoreHistory); ok {
		t.history = h
	}
	return t
}

// Begin reads the persisted high score. A missing or malformed value counts as 0.
func (t *Tracker) Begin() int {
	raw, err := t.scores.ReadHighScore(t.gameID)
	if err != nil {
		t.logger.Warn("cannot read high score", "game", t.gameID, "err", err)
		t.best = 0
		return 0
	}

	best, err := ParseHighScore(raw)
	if err != nil {
		if errors.Is(err, ErrMalformedHighScore) {
			t.logger.Warn("ignoring malformed high score", "game", t.gameID, "value", raw)
		}
		best = 0
	}
	t.best = best
	t.logger.Debug("high score loaded", "game", t.gameID, "high", best)
	return best
}

// Best returns the highest score seen so far, persisted or not.
func (t *Tracker) Best() int {
	return t.best
}

// OnStart is part of core.Hooks.
func (t *Tracker) OnStart() {
	t.logger.Info("session started", "game", t.gameID, "high", t.best)
}

// OnRestart is part of core.Hooks.
func (t *Tracker) OnRestart() {
	t.logger.Info("session restarted", "game", t.gameID, "high", t.best)
}

// OnCoin persists the score as soon as it exceeds the high score.
func (t *Tracker) OnCoin(score int) {
	t.logger.Debug("coin collected", "score", score)
	if score <= t.best {
		return
	}
	t.best = score
	if err := t.scores.WriteHighScore(t.gameID, score); err != nil {
		t.logger.Warn("cannot save high score", "game", t.gameID, "score", score, "err", err)
	}
}

// OnGameOver records the finished session in the history.
func (t *Tracker) OnGameOver(score int) {
	t.logger.Info("game over", "game", t.gameID, "score", score, "high", t.best)
	if t.history == nil {
		return
	}
	if _, err := t.history.SaveScore(t.gameID, score); err != nil {
		t.logger.Warn("cannot save score", "game", t.gameID, "score", score, "err", err)
	}
}
