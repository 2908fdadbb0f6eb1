// Package storage persists the high score and the score history.
//
// Two backends exist: a SQLite database (the default, which also keeps every
// finished session) and a gdata key/value store holding the single high-score
// value, the way a browser game would keep it in local storage.
package storage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Backend names accepted by OpenBackend.
const (
	BackendSQLite = "sqlite"
	BackendGData  = "gdata"
)

// ErrUnknownBackend is returned for an unsupported --store value.
var ErrUnknownBackend = errors.New("storage: unknown backend")

// ErrMalformedHighScore marks a persisted high score that is not an integer.
var ErrMalformedHighScore = errors.New("storage: malformed high score")

// HighScores keeps the best score per game as raw text, so a corrupted value
// can be detected instead of failing the read.
type HighScores interface {
	// ReadHighScore returns the stored value, or "" if none was saved.
	ReadHighScore(gameID string) (string, error)
	WriteHighScore(gameID string, score int) error
	ClearHighScore(gameID string) error
	Close() error
}

// ScoreHistory records finished sessions. Only the SQLite backend has one.
type ScoreHistory interface {
	SaveScore(gameID string, score int) (int64, error)
	TopScores(gameID string, limit int) ([]ScoreEntry, error)
	ClearScores(gameID string) error
}

// OpenBackend opens the named backend. path is the database file for SQLite
// and the application name for gdata.
func OpenBackend(kind, path string) (HighScores, error) {
	switch kind {
	case "", BackendSQLite:
		s, err := Open(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendGData:
		s, err := OpenGData(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w %q (want %s or %s)", ErrUnknownBackend, kind, BackendSQLite, BackendGData)
	}
}

// ParseHighScore decodes a stored value. Empty means no score yet.
func ParseHighScore(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedHighScore, raw)
	}
	return n, nil
}
