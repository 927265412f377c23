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

func sampleRun(seed int64, rows int) RunRecord {
	return RunRecord{
		Seed:              seed,
		Ticks:             3600,
		FinalFrontier:     900,
		RowsGenerated:     rows,
		RowsRetired:       rows - 8,
		ObstaclesRetired:  rows * 2,
		Hazards:           3,
		Fallbacks:         1,
		PeakLiveObstacles: 19,
		MaxDifficulty:     3.2,
		Patterns: map[string]int{
			"gap":    rows / 2,
			"random": rows - rows/2,
		},
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(sampleRun(1, 100)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	// Migrations must be a no-op the second time
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected 1 run after reopening, got %d", len(runs))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(sampleRun(42, 120))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil {
		t.Fatal("RunByID() returned nil for a stored run")
	}

	if run.Seed != 42 || run.RowsGenerated != 120 || run.Ticks != 3600 {
		t.Errorf("Unexpected run fields: %+v", run)
	}
	if run.MaxDifficulty != 3.2 || run.FinalFrontier != 900 {
		t.Errorf("Float fields not preserved: %+v", run)
	}
	if run.Patterns["gap"] != 60 || run.Patterns["random"] != 60 {
		t.Errorf("Unexpected pattern histogram: %v", run.Patterns)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	run, err := store.RunByID(999)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run != nil {
		t.Errorf("Expected nil for missing run, got %+v", run)
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(sampleRun(int64(i), (i+1)*10)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Newest first
	if runs[0].Seed != 4 || runs[1].Seed != 3 || runs[2].Seed != 2 {
		t.Errorf("Runs not in expected order: %d, %d, %d", runs[0].Seed, runs[1].Seed, runs[2].Seed)
	}
	if len(runs[0].Patterns) != 2 {
		t.Errorf("Expected pattern histogram on listed runs, got %v", runs[0].Patterns)
	}
}

func TestStorePatternTotals(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(sampleRun(1, 10))
	store.SaveRun(sampleRun(2, 20))
	store.SaveRun(RunRecord{Seed: 3, Patterns: map[string]int{"zigzag": 4}})

	totals, err := store.PatternTotals()
	if err != nil {
		t.Fatalf("PatternTotals() failed: %v", err)
	}
	if len(totals) != 3 {
		t.Fatalf("Expected 3 patterns, got %d", len(totals))
	}

	want := []PatternTotal{{"gap", 15}, {"random", 15}, {"zigzag", 4}}
	for i, w := range want {
		if totals[i] != w {
			t.Errorf("totals[%d] = %+v, want %+v", i, totals[i], w)
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastRun.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(sampleRun(1, 10))
	store.SaveRun(sampleRun(2, 30))

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.TotalRows != 40 || stats.AvgRows != 20 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(sampleRun(1, 10))
	store.SaveRun(sampleRun(2, 20))

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	totals, _ := store.PatternTotals()
	if len(totals) != 0 {
		t.Errorf("Expected no pattern totals after clear, got %v", totals)
	}
}
