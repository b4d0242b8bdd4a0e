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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Scene: "ring", Method: "sat", ChunksX: 12, ChunksY: 14, Ticks: 600, Bullets: 9000, NarrowTests: 120, PlayerHits: 2, MeanTickUS: 41.5},
		{Scene: "ring", Method: "gjk", ChunksX: 12, ChunksY: 14, Ticks: 600, Bullets: 9000, NarrowTests: 120, PlayerHits: 2, MeanTickUS: 55.0},
		{Scene: "rain", Method: "sat", ChunksX: 6, ChunksY: 7, Ticks: 300, MeanTickUS: 12.25},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns("ring", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 ring runs, got %d", len(got))
	}
	// Newest first
	if got[0].Method != "gjk" || got[1].Method != "sat" {
		t.Errorf("Unexpected order: %s, %s", got[0].Method, got[1].Method)
	}
	if got[1].Bullets != 9000 || got[1].NarrowTests != 120 || got[1].ChunksY != 14 {
		t.Errorf("Run fields not round-tripped: %+v", got[1])
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns(all) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 runs overall, got %d", len(all))
	}
}

func TestStoreFastestRuns(t *testing.T) {
	store := openTestStore(t)

	for _, us := range []float64{30, 10, 20, 40} {
		if _, err := store.SaveRun(Run{Scene: "spiral", Method: "sat", ChunksX: 1, ChunksY: 1, MeanTickUS: us}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.FastestRuns("spiral", 2)
	if err != nil {
		t.Fatalf("FastestRuns() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(got))
	}
	if got[0].MeanTickUS != 10 || got[1].MeanTickUS != 20 {
		t.Errorf("Expected 10, 20; got %v, %v", got[0].MeanTickUS, got[1].MeanTickUS)
	}
}

func TestStoreSceneStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.SceneStats("lasers")
	if err != nil {
		t.Fatalf("SceneStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestTickUS != 0 {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	store.SaveRun(Run{Scene: "lasers", Method: "sat", ChunksX: 1, ChunksY: 1, Ticks: 100, MeanTickUS: 20})
	store.SaveRun(Run{Scene: "lasers", Method: "sat", ChunksX: 1, ChunksY: 1, Ticks: 200, MeanTickUS: 40})

	stats, err := store.SceneStats("lasers")
	if err != nil {
		t.Fatalf("SceneStats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, expected 2", stats.Runs)
	}
	if stats.BestTickUS != 20 || stats.AvgTickUS != 30 {
		t.Errorf("Best/Avg = %v/%v, expected 20/30", stats.BestTickUS, stats.AvgTickUS)
	}
	if stats.TotalTicks != 300 {
		t.Errorf("TotalTicks = %d, expected 300", stats.TotalTicks)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Scene: "ring", Method: "sat", ChunksX: 1, ChunksY: 1})
	store.SaveRun(Run{Scene: "rain", Method: "sat", ChunksX: 1, ChunksY: 1})

	if err := store.ClearRuns("ring"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	ring, _ := store.RecentRuns("ring", 10)
	if len(ring) != 0 {
		t.Errorf("Expected ring runs cleared, got %d", len(ring))
	}
	rain, _ := store.RecentRuns("rain", 10)
	if len(rain) != 1 {
		t.Errorf("Expected rain run kept, got %d", len(rain))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.danmaku/runs.db")
	if err != nil {
		t.Fatalf("Open() with ~ failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".danmaku", "runs.db")); err != nil {
		t.Errorf("Expected database under home: %v", err)
	}
}
