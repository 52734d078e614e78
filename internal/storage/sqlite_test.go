package storage

import (
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
		t.Error("database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("match3", 1234); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("match3")
	if err != nil || high != 1234 {
		t.Errorf("HighScore() = %d, %v; want 1234", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("match3", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("match3", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("scores not sorted descending: %v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("match3", (i+1)*100)
	}

	scores, err := store.TopScores("match3", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[2].Score != 300 {
		t.Errorf("scores not in expected order: %v", scores)
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("match3")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for empty game, got %d", high)
	}
}

func TestStoreLevelResults(t *testing.T) {
	store := openTestStore(t)

	results := []LevelResult{
		{GameID: "match3", Level: 1, Score: 900},
		{GameID: "match3", Level: 1, Score: 1500, Stars: 2, Completed: true},
		{GameID: "match3", Level: 1, Score: 1200, Stars: 1, Completed: true},
		{GameID: "match3", Level: 2, Score: 2000, Stars: 3}, // failed attempts carry no stars
	}
	for _, r := range results {
		if _, err := store.SaveLevelResult(r); err != nil {
			t.Fatalf("SaveLevelResult() failed: %v", err)
		}
	}

	best, err := store.BestLevelResults("match3")
	if err != nil {
		t.Fatalf("BestLevelResults() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(best))
	}

	one := best[1]
	if one.BestScore != 1500 || one.BestStars != 2 || one.Attempts != 3 || one.Cleared != 2 {
		t.Errorf("level 1 best = %+v", one)
	}
	two := best[2]
	if two.BestStars != 0 || two.Cleared != 0 || two.Attempts != 1 {
		t.Errorf("level 2 best = %+v", two)
	}

	stars, err := store.BestStars("match3", 1)
	if err != nil || stars != 2 {
		t.Errorf("BestStars(1) = %d, %v; want 2", stars, err)
	}
	stars, err = store.BestStars("match3", 5)
	if err != nil || stars != 0 {
		t.Errorf("BestStars(5) = %d, %v; want 0", stars, err)
	}

	recent, err := store.RecentLevelResults("match3", 2)
	if err != nil {
		t.Fatalf("RecentLevelResults() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Level != 2 || recent[0].Completed {
		t.Errorf("recent = %+v", recent)
	}
	if !recent[1].Completed || recent[1].Stars != 1 {
		t.Errorf("second recent = %+v", recent[1])
	}
}

func TestStoreSaveLevelResultRejectsBadLevel(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveLevelResult(LevelResult{GameID: "match3", Level: 0}); err == nil {
		t.Error("expected error for level 0")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("match3", 100)
	store.SaveScore("other", 300)
	store.SaveLevelResult(LevelResult{GameID: "match3", Level: 1, Score: 100, Stars: 1, Completed: true})

	if err := store.ClearScores("match3"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("match3", 10); len(scores) != 0 {
		t.Errorf("expected 0 scores after clear, got %d", len(scores))
	}
	if best, _ := store.BestLevelResults("match3"); len(best) != 0 {
		t.Errorf("expected no level results after clear, got %d", len(best))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("other games should not be affected")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("match3", 100)
	store.SaveScore("match3", 300)

	stats, err := store.GetGameStats("match3")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}
