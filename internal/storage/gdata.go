package storage

import (
	"fmt"
	"strconv"

	"github.com/quasilyte/gdata"
)

// itemStore is the part of *gdata.Manager the KV backend needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// KVStore keeps one high-score item per game in the platform's
// application data directory.
type KVStore struct {
	items itemStore
}

var _ HighScores = (*KVStore)(nil)

// OpenGData opens the gdata store for the given application name.
func OpenGData(appName string) (*KVStore, error) {
	if appName == "" {
		appName = "tui_platformer"
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open gdata store: %w", err)
	}
	return &KVStore{items: m}, nil
}

func highScoreKey(gameID string) string {
	return gameID + "_highScore"
}

// ReadHighScore returns the stored high score text, or "" if none was saved.
func (k *KVStore) ReadHighScore(gameID string) (string, error) {
	data, err := k.items.LoadItem(highScoreKey(gameID))
	if err != nil {
		return "", fmt.Errorf("storage: cannot load high score: %w", err)
	}
	return string(data), nil
}

// WriteHighScore replaces the stored high score.
func (k *KVStore) WriteHighScore(gameID string, score int) error {
	if err := k.items.SaveItem(highScoreKey(gameID), []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// ClearHighScore overwrites the item with empty data, which reads back as no score.
func (k *KVStore) ClearHighScore(gameID string) error {
	if err := k.items.SaveItem(highScoreKey(gameID), nil); err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	return nil
}

// Close is a no-op; every item is written through immediately.
func (k *KVStore) Close() error {
	return nil
}
