package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenNestedPath(t *testing.T) {
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

func TestStoreHighScoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	raw, err := store.ReadHighScore("platformer")
	if err != nil {
		t.Fatalf("ReadHighScore() failed: %v", err)
	}
	if raw != "" {
		t.Errorf("expected no high score yet, got %q", raw)
	}

	if err := store.WriteHighScore("platformer", 20); err != nil {
		t.Fatalf("WriteHighScore() failed: %v", err)
	}
	if err := store.WriteHighScore("platformer", 30); err != nil {
		t.Fatalf("WriteHighScore() failed: %v", err)
	}

	raw, _ = store.ReadHighScore("platformer")
	if raw != "30" {
		t.Errorf("ReadHighScore() = %q, expected \"30\"", raw)
	}

	if err := store.ClearHighScore("platformer"); err != nil {
		t.Fatalf("ClearHighScore() failed: %v", err)
	}
	if raw, _ := store.ReadHighScore("platformer"); raw != "" {
		t.Errorf("high score should be gone after clear, got %q", raw)
	}
}

func TestStoreHistory(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("platformer", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("other", 500)

	scores, err := store.TopScores("platformer", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 200 || scores[1].Score != 100 {
		t.Errorf("TopScores(2) = %+v, expected 200 then 100", scores)
	}

	stats, err := store.GameStats("platformer")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.BestScore != 200 {
		t.Errorf("stats = %+v, expected 3 games with best 200", stats)
	}

	if err := store.ClearScores("platformer"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("platformer", 10); len(scores) != 0 {
		t.Errorf("expected empty history after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("clearing one game must not touch another")
	}
}

func TestOpenBackendUnknown(t *testing.T) {
	_, err := OpenBackend("redis", "")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("error %v should wrap ErrUnknownBackend", err)
	}
}

func TestParseHighScore(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"42", 42, false},
		{" 7\n", 7, false},
		{"NaN", 0, true},
		{"12abc", 0, true},
		{"-5", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseHighScore(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHighScore(%q) error = %v", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("ParseHighScore(%q) = %d, expected %d", tt.raw, got, tt.want)
		}
	}
}
