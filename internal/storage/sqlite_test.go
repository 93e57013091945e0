package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"
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

func save(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveScore(ScoreRecord{GameID: gameID, Score: score, Level: 1}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "asteroids", 100)
	save(t, store, "asteroids", 50)
	save(t, store, "asteroids", 200)
	save(t, store, "asteroids_precise", 500)

	scores, err := store.TopScores("asteroids", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	precise, err := store.TopScores("asteroids_precise", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(precise) != 1 {
		t.Errorf("Expected 1 precise score, got %d", len(precise))
	}
}

func TestStoreSaveRecordFields(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveScore(ScoreRecord{
		GameID: "asteroids",
		Score:  42,
		Level:  3,
		Player: "ada",
		RunID:  "run-1",
	})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if id == 0 {
		t.Error("SaveScore() should return the row ID")
	}

	scores, err := store.TopScores("asteroids", 1)
	if err != nil || len(scores) != 1 {
		t.Fatalf("TopScores() = %v, %v", scores, err)
	}
	e := scores[0]
	if e.ID != id || e.Score != 42 || e.Level != 3 || e.Player != "ada" || e.RunID != "run-1" {
		t.Errorf("unexpected entry %+v", e)
	}
	if e.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
	if time.Since(e.CreatedAt) > time.Hour || time.Since(e.CreatedAt) < -time.Hour {
		t.Errorf("CreatedAt = %v, expected about now", e.CreatedAt)
	}
}

func TestStoreSaveSameRunUpdates(t *testing.T) {
	store := openTestStore(t)

	first, err := store.SaveScore(ScoreRecord{GameID: "asteroids", Score: 10, Level: 1, RunID: "run-x"})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	second, err := store.SaveScore(ScoreRecord{GameID: "asteroids", Score: 25, Level: 2, RunID: "run-x"})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if first != second {
		t.Errorf("same run should keep its row: %d vs %d", first, second)
	}

	scores, _ := store.AllScores("asteroids")
	if len(scores) != 1 || scores[0].Score != 25 || scores[0].Level != 2 {
		t.Errorf("expected a single updated row, got %+v", scores)
	}
}

func TestStoreGeneratesRunID(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "asteroids", 1)
	save(t, store, "asteroids", 1)

	scores, _ := store.AllScores("asteroids")
	if len(scores) != 2 {
		t.Fatalf("runs without an ID should not collide, got %d rows", len(scores))
	}
	if scores[0].RunID == "" || scores[0].RunID == scores[1].RunID {
		t.Errorf("expected distinct generated run IDs, got %q and %q", scores[0].RunID, scores[1].RunID)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("asteroids")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "asteroids", 100)
	save(t, store, "asteroids", 300)
	save(t, store, "asteroids", 200)

	high, err = store.HighScore("asteroids")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "asteroids", 100)
	save(t, store, "asteroids", 200)
	save(t, store, "asteroids_precise", 300)

	if err := store.ClearScores("asteroids"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("asteroids", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	precise, _ := store.TopScores("asteroids_precise", 10)
	if len(precise) != 1 {
		t.Errorf("other variants should not be affected by clearing")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		save(t, store, "test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(ScoreRecord{GameID: "asteroids", Score: 10, Level: 2}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveScore(ScoreRecord{GameID: "asteroids", Score: 30, Level: 4}); err != nil {
		t.Fatal(err)
	}

	stats, err := store.GetGameStats("asteroids")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.BestLevel != 4 || stats.TotalScore != 40 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %f, expected 20", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for unplayed game %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["asteroids"].HighScore != 30 {
		t.Errorf("unexpected all-games stats %v", all)
	}
}

func TestStoreMigratesOldSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`
		CREATE TABLE scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO scores (game_id, score) VALUES ('asteroids', 7);
		INSERT INTO scores (game_id, score) VALUES ('asteroids', 9);
	`)
	db.Close()
	if err != nil {
		t.Fatal(err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on an old database failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("asteroids", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 9 || scores[0].Level != 0 || scores[0].RunID != "" {
		t.Errorf("old rows not preserved: %+v", scores)
	}

	save(t, store, "asteroids", 11)
	if high, _ := store.HighScore("asteroids"); high != 11 {
		t.Errorf("HighScore() = %d after migration, expected 11", high)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
