package storage

import (
	"math"
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndLoadRun(t *testing.T) {
	store := openTestStore(t)

	want := Run{
		GameID: "storm",
		Player: "alice",
		Seed:   -42,
		Preset: "fixed",
		Steps:  1234,
		Score:  987,
		Coins:  12,
		Digest: math.MaxUint64 - 7, // Exceeds a signed SQLite integer
		Trace: []TraceStep{
			{Step: 0, Actions: []string{"confirm"}},
			{Step: 40, Actions: []string{"jump"}},
			{Step: 41, Actions: []string{"jump", "pause"}},
		},
	}

	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if got == nil {
		t.Fatal("Run() returned nil for a saved run")
	}

	if got.ID != id || got.GameID != want.GameID || got.Player != want.Player || got.Seed != want.Seed ||
		got.Preset != want.Preset || got.Steps != want.Steps || got.Score != want.Score || got.Coins != want.Coins {
		t.Errorf("Run() = %+v, want %+v", got, want)
	}
	if got.Digest != want.Digest {
		t.Errorf("digest = %x, want %x", got.Digest, want.Digest)
	}
	if len(got.Trace) != 3 || got.Trace[2].Step != 41 || len(got.Trace[2].Actions) != 2 || got.Trace[2].Actions[1] != "pause" {
		t.Errorf("trace = %+v", got.Trace)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at was not set")
	}
}

func TestStoreMissingRun(t *testing.T) {
	store := openTestStore(t)

	got, err := store.Run(99)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if got != nil {
		t.Errorf("Run() = %+v, want nil", got)
	}
}

func TestStoreEmptyTrace(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{GameID: "storm", Steps: 10})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	got, err := store.Run(id)
	if err != nil || got == nil {
		t.Fatalf("Run() = %v, %v", got, err)
	}
	if len(got.Trace) != 0 {
		t.Errorf("trace = %+v, want empty", got.Trace)
	}
}

func TestStoreRecentAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Run{
		{GameID: "storm", Score: 100},
		{GameID: "storm", Score: 50},
		{GameID: "storm_classic", Score: 500},
		{GameID: "storm", Score: 200},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns("storm", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}
	// Newest first
	if recent[0].Score != 200 || recent[2].Score != 100 {
		t.Errorf("recent order: %d, %d, %d", recent[0].Score, recent[1].Score, recent[2].Score)
	}

	all, err := store.RecentRuns("", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 2 || all[1].GameID != "storm_classic" {
		t.Errorf("RecentRuns(all) = %+v", all)
	}

	top, err := store.TopRuns("storm", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 || top[0].Score != 200 || top[1].Score != 100 {
		t.Errorf("TopRuns() = %+v", top)
	}
}

func TestStoreStatsAndClear(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Run{
		{GameID: "storm", Score: 100, Coins: 3},
		{GameID: "storm", Score: 300, Coins: 9},
		{GameID: "storm_classic", Score: 40, Coins: 1},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	storm := stats["storm"]
	if storm == nil {
		t.Fatal("missing stats for storm")
	}
	if storm.RunsCount != 2 || storm.HighScore != 300 || storm.MostCoins != 9 || storm.AvgScore != 200 {
		t.Errorf("storm stats = %+v", storm)
	}

	if err := store.ClearRuns("storm"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, err := store.RecentRuns("storm", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	others, _ := store.RecentRuns("storm_classic", 10)
	if len(others) != 1 {
		t.Error("ClearRuns removed another game's runs")
	}
}
