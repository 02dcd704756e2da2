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

func TestStoreSaveAndRetrieveResults(t *testing.T) {
	store := openTestStore(t)

	entries := []ResultEntry{
		{Variant: "klondike", Difficulty: "normal", Score: 100, Moves: 120, Duration: 300, Won: true},
		{Variant: "klondike", Difficulty: "easy", Score: 50, Moves: 80, Duration: 200, Won: false},
		{Variant: "klondike", Difficulty: "hard", Score: 200, Moves: 150, Duration: 600, Won: true},
		{Variant: "spider", Difficulty: "normal", Score: 500, Moves: 200, Duration: 900, Won: true},
	}
	for _, e := range entries {
		if _, err := store.SaveResult(e); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.TopResults("klondike", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Should be sorted descending
	if results[0].Score != 200 || results[1].Score != 100 || results[2].Score != 50 {
		t.Errorf("Results not in expected order: %v", results)
	}
	if results[0].Difficulty != "hard" {
		t.Errorf("Expected top result difficulty hard, got %q", results[0].Difficulty)
	}
	if !results[0].Won {
		t.Error("Expected top result to be a win")
	}

	spiderResults, err := store.TopResults("spider", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(spiderResults) != 1 {
		t.Errorf("Expected 1 spider result, got %d", len(spiderResults))
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(ResultEntry{Variant: "klondike", Difficulty: "normal", Score: (i + 1) * 100})
	}

	results, err := store.TopResults("klondike", 3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}

	if results[0].Score != 500 || results[1].Score != 400 || results[2].Score != 300 {
		t.Errorf("Results not in expected order: %v", results)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No results yet
	high, err := store.HighScore("klondike")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty variant, got %d", high)
	}

	store.SaveResult(ResultEntry{Variant: "klondike", Difficulty: "normal", Score: 100})
	store.SaveResult(ResultEntry{Variant: "klondike", Difficulty: "normal", Score: 300})
	store.SaveResult(ResultEntry{Variant: "klondike", Difficulty: "normal", Score: 200})

	high, err = store.HighScore("klondike")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(ResultEntry{Variant: "klondike", Difficulty: "normal", Score: 100})
	store.SaveResult(ResultEntry{Variant: "klondike", Difficulty: "normal", Score: 200})
	store.SaveResult(ResultEntry{Variant: "spider", Difficulty: "normal", Score: 300})

	if err := store.ClearResults("klondike"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	klondikeResults, _ := store.TopResults("klondike", 10)
	if len(klondikeResults) != 0 {
		t.Errorf("Expected 0 klondike results after clear, got %d", len(klondikeResults))
	}

	spiderResults, _ := store.TopResults("spider", 10)
	if len(spiderResults) != 1 {
		t.Errorf("Spider results should not be affected by clearing klondike")
	}
}

func TestStoreVariantStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(ResultEntry{Variant: "klondike", Difficulty: "normal", Score: 100, Won: true})
	store.SaveResult(ResultEntry{Variant: "klondike", Difficulty: "normal", Score: 300, Won: false})
	store.SaveResult(ResultEntry{Variant: "klondike", Difficulty: "hard", Score: 200, Won: true})

	stats, err := store.GetVariantStats("klondike")
	if err != nil {
		t.Fatalf("GetVariantStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("Expected 3 games, got %d", stats.GamesCount)
	}
	if stats.WinsCount != 2 {
		t.Errorf("Expected 2 wins, got %d", stats.WinsCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}

	all, err := store.GetAllVariantStats()
	if err != nil {
		t.Fatalf("GetAllVariantStats() failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected stats for 1 variant, got %d", len(all))
	}
	if all["klondike"] == nil || all["klondike"].GamesCount != 3 {
		t.Errorf("Unexpected aggregated stats: %+v", all)
	}
}

func TestStoreSaveSlots(t *testing.T) {
	store := openTestStore(t)

	// Empty slot
	entry, err := store.LoadGame("autosave")
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if entry != nil {
		t.Fatal("Expected nil for an empty slot")
	}

	state := []byte(`{"variant":"klondike"}`)
	err = store.SaveGame(SaveEntry{Slot: "autosave", Variant: "klondike", Difficulty: "normal", State: state})
	if err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	entry, err = store.LoadGame("autosave")
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if entry == nil {
		t.Fatal("Expected save entry, got nil")
	}
	if entry.Variant != "klondike" || entry.Difficulty != "normal" {
		t.Errorf("Unexpected save metadata: %+v", entry)
	}
	if string(entry.State) != string(state) {
		t.Errorf("State blob did not round-trip: %q", entry.State)
	}

	// Overwrite the same slot
	state2 := []byte(`{"variant":"spider"}`)
	err = store.SaveGame(SaveEntry{Slot: "autosave", Variant: "spider", Difficulty: "hard", State: state2})
	if err != nil {
		t.Fatalf("SaveGame() overwrite failed: %v", err)
	}

	entry, _ = store.LoadGame("autosave")
	if entry == nil || entry.Variant != "spider" {
		t.Errorf("Expected overwritten slot to hold spider, got %+v", entry)
	}

	saves, err := store.ListSaves()
	if err != nil {
		t.Fatalf("ListSaves() failed: %v", err)
	}
	if len(saves) != 1 {
		t.Errorf("Expected 1 save slot, got %d", len(saves))
	}

	if err := store.DeleteSave("autosave"); err != nil {
		t.Fatalf("DeleteSave() failed: %v", err)
	}
	entry, _ = store.LoadGame("autosave")
	if entry != nil {
		t.Error("Expected slot to be empty after delete")
	}
}

func TestStoreExpandNestedPath(t *testing.T) {
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
