package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestSaveAndRetrieveSessions(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveSession("platformer", score, 30, 60); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}
	if _, err := store.SaveSession("walker", 500, 120, 58); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	sessions, err := store.TopSessions("platformer", 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}

	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(sessions))
	}
	if sessions[0].Score != 200 || sessions[1].Score != 100 || sessions[2].Score != 50 {
		t.Errorf("sessions not ordered by score desc: %d %d %d",
			sessions[0].Score, sessions[1].Score, sessions[2].Score)
	}
	if sessions[0].AvgFPS != 60 || sessions[0].DurationSecs != 30 {
		t.Errorf("session metadata lost: %+v", sessions[0])
	}
}

func TestTopSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveSession("walker", i*10, 10, 60); err != nil {
			t.Fatal(err)
		}
	}

	sessions, err := store.TopSessions("walker", 3)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Errorf("expected limit of 3, got %d", len(sessions))
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	if score, err := store.HighScore("platformer"); err != nil || score != 0 {
		t.Errorf("HighScore on empty store = %d, %v; expected 0, nil", score, err)
	}

	store.SaveSession("platformer", 6, 45, 60)
	store.SaveSession("platformer", 4, 20, 60)

	score, err := store.HighScore("platformer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 6 {
		t.Errorf("HighScore = %d, expected 6", score)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession("particles", 100, 10, 60)
	store.SaveSession("particles", 300, 20, 59)

	stats, err := store.Stats("particles")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.Sessions != 2 {
		t.Errorf("Sessions = %d, expected 2", stats.Sessions)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, expected 200", stats.AvgScore)
	}
	if stats.TotalSecs != 30 {
		t.Errorf("TotalSecs = %d, expected 30", stats.TotalSecs)
	}
}

func TestClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession("walker", 10, 5, 60)
	store.SaveSession("platformer", 20, 5, 60)

	deleted, err := store.ClearSessions("walker")
	if err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("ClearSessions() deleted %d rows, expected 1", deleted)
	}

	walker, _ := store.TopSessions("walker", 10)
	if len(walker) != 0 {
		t.Errorf("walker sessions remain after clear: %d", len(walker))
	}
	other, _ := store.TopSessions("platformer", 10)
	if len(other) != 1 {
		t.Errorf("clear should not touch other games, got %d", len(other))
	}
}
