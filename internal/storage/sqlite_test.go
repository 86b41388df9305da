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

func TestStoreSaveAndBestRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun("01-molten-floor", true, 2, 1800); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun("01-molten-floor", true, 0, 1200); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun("01-molten-floor", true, 1, 2400); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	// Incomplete runs never show up on the board
	if _, err := store.SaveRun("01-molten-floor", false, 3, 900); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	// Different level
	if _, err := store.SaveRun("02-drip-caverns", true, 0, 3000); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.BestRuns("01-molten-floor", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Fastest first
	if runs[0].DurationTicks != 1200 || runs[1].DurationTicks != 1800 || runs[2].DurationTicks != 2400 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
	if !runs[0].Completed || runs[0].Deaths != 0 {
		t.Errorf("Best run = %+v, want completed with 0 deaths", runs[0])
	}

	otherRuns, err := store.BestRuns("02-drip-caverns", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(otherRuns) != 1 {
		t.Errorf("Expected 1 run for other level, got %d", len(otherRuns))
	}
}

func TestStoreBestRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun("test", true, 0, (i+1)*100)
	}

	runs, err := store.BestRuns("test", 3)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].DurationTicks != 100 || runs[1].DurationTicks != 200 || runs[2].DurationTicks != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("one", true, 0, 100)
	store.SaveRun("two", false, 2, 200)
	store.SaveRun("three", true, 1, 300)

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}

	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs with limit, got %d", len(runs))
	}
	if runs[0].LevelID != "three" || runs[1].LevelID != "two" {
		t.Errorf("Recent runs not newest-first: %v", runs)
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	stats, err := store.GetLevelStats("empty")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.Attempts != 0 || stats.BestTicks != 0 {
		t.Errorf("Empty level stats = %+v, want zeros", stats)
	}

	store.SaveRun("pit", false, 3, 500)
	store.SaveRun("pit", true, 1, 2000)
	store.SaveRun("pit", true, 0, 1500)

	stats, err = store.GetLevelStats("pit")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}

	if stats.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", stats.Attempts)
	}
	if stats.Completions != 2 {
		t.Errorf("Completions = %d, want 2", stats.Completions)
	}
	if stats.TotalDeaths != 4 {
		t.Errorf("TotalDeaths = %d, want 4", stats.TotalDeaths)
	}
	if stats.BestTicks != 1500 {
		t.Errorf("BestTicks = %d, want 1500", stats.BestTicks)
	}
}

func TestStoreAllLevelStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("one", true, 0, 100)
	store.SaveRun("one", false, 1, 50)
	store.SaveRun("two", true, 2, 300)

	stats, err := store.GetAllLevelStats()
	if err != nil {
		t.Fatalf("GetAllLevelStats() failed: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 levels, got %d", len(stats))
	}
	if stats["one"].Attempts != 2 || stats["one"].Completions != 1 {
		t.Errorf("Level one stats = %+v", stats["one"])
	}
	if stats["two"].BestTicks != 300 {
		t.Errorf("Level two best = %d, want 300", stats["two"].BestTicks)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("one", true, 0, 100)
	store.SaveRun("one", true, 1, 200)
	store.SaveRun("two", true, 0, 300)

	if err := store.ClearRuns("one"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	oneRuns, _ := store.BestRuns("one", 10)
	if len(oneRuns) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(oneRuns))
	}

	twoRuns, _ := store.BestRuns("two", 10)
	if len(twoRuns) != 1 {
		t.Errorf("Other level should not be affected by clear")
	}
}

func TestStoreNestedPath(t *testing.T) {
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
