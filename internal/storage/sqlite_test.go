package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/dkotenko/picross/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "picross.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesSchema(t *testing.T) {
	store := openTestStore(t)

	// A fresh database answers queries without errors
	entries, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults on empty db failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestSaveAndQueryResults(t *testing.T) {
	store := openTestStore(t)

	results := []core.Result{
		{Mode: "classic", Seed: 42, Size: 10, Difficulty: "normal", Ticks: 900, Mistakes: 2},
		{Mode: "classic", Seed: 7, Size: 10, Difficulty: "normal", Ticks: 600, Mistakes: 0},
		{Mode: "classic", Seed: 99, Size: 15, Difficulty: "hard", Ticks: 300, Mistakes: 1},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult failed: %v", err)
		}
	}

	best, err := store.BestResults("classic", 10, "normal", 10)
	if err != nil {
		t.Fatalf("BestResults failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("expected 2 results for 10x10 normal, got %d", len(best))
	}
	if best[0].DurationTicks != 600 {
		t.Errorf("fastest solve should come first, got %d ticks", best[0].DurationTicks)
	}
	if best[0].Seed != 7 {
		t.Errorf("seed not preserved: %d", best[0].Seed)
	}

	// The 15x15 hard solve does not leak into the 10x10 board
	for _, e := range best {
		if e.Size != 10 || e.Difficulty != "normal" {
			t.Errorf("board class mixed into results: %+v", e)
		}
	}
}

func TestBestDuration(t *testing.T) {
	store := openTestStore(t)

	ticks, err := store.BestDuration("classic", 10, "normal")
	if err != nil {
		t.Fatalf("BestDuration on empty db failed: %v", err)
	}
	if ticks != 0 {
		t.Errorf("empty db best = %d, want 0", ticks)
	}

	store.SaveResult(core.Result{Mode: "classic", Size: 10, Difficulty: "normal", Ticks: 500})
	store.SaveResult(core.Result{Mode: "classic", Size: 10, Difficulty: "normal", Ticks: 450})

	ticks, err = store.BestDuration("classic", 10, "normal")
	if err != nil {
		t.Fatalf("BestDuration failed: %v", err)
	}
	if ticks != 450 {
		t.Errorf("best = %d, want 450", ticks)
	}
}

func TestRecentResultsOrder(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(core.Result{Mode: "classic", Seed: 1, Size: 5, Difficulty: "easy", Ticks: 100})
	store.SaveResult(core.Result{Mode: "daily", Seed: 2, Size: 15, Difficulty: "normal", Ticks: 200})

	recent, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].Seed != 2 {
		t.Errorf("most recent solve should come first, got seed %d", recent[0].Seed)
	}
}

func TestDailyStreak(t *testing.T) {
	store := openTestStore(t)

	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	insertDaily := func(day string) {
		_, err := store.db.Exec(
			`INSERT INTO results (mode, seed, size, difficulty, duration_ticks, mistakes, played_on)
			 VALUES ('daily', 1, 15, 'normal', 100, 0, ?)`, day)
		if err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	streak, err := store.DailyStreak(today)
	if err != nil {
		t.Fatalf("DailyStreak on empty db failed: %v", err)
	}
	if streak != 0 {
		t.Errorf("empty streak = %d, want 0", streak)
	}

	// Three consecutive days ending today
	insertDaily("2026-03-08")
	insertDaily("2026-03-09")
	insertDaily("2026-03-10")
	streak, _ = store.DailyStreak(today)
	if streak != 3 {
		t.Errorf("streak = %d, want 3", streak)
	}

	// A gap resets the count
	insertDaily("2026-03-05")
	streak, _ = store.DailyStreak(today)
	if streak != 3 {
		t.Errorf("streak across gap = %d, want 3", streak)
	}

	// Today unsolved: the streak counts from yesterday
	store.ClearResults("daily")
	insertDaily("2026-03-08")
	insertDaily("2026-03-09")
	streak, _ = store.DailyStreak(today)
	if streak != 2 {
		t.Errorf("streak with open today = %d, want 2", streak)
	}
}

func TestGetSolveStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetSolveStats("classic")
	if err != nil {
		t.Fatalf("GetSolveStats on empty db failed: %v", err)
	}
	if stats.Solves != 0 {
		t.Errorf("empty stats solves = %d", stats.Solves)
	}

	store.SaveResult(core.Result{Mode: "classic", Size: 10, Difficulty: "normal", Ticks: 400, Mistakes: 1})
	store.SaveResult(core.Result{Mode: "classic", Size: 10, Difficulty: "normal", Ticks: 600, Mistakes: 3})

	stats, err = store.GetSolveStats("classic")
	if err != nil {
		t.Fatalf("GetSolveStats failed: %v", err)
	}
	if stats.Solves != 2 {
		t.Errorf("solves = %d, want 2", stats.Solves)
	}
	if stats.BestTicks != 400 {
		t.Errorf("best = %d, want 400", stats.BestTicks)
	}
	if stats.AvgTicks != 500 {
		t.Errorf("avg = %v, want 500", stats.AvgTicks)
	}
	if stats.TotalMistakes != 4 {
		t.Errorf("mistakes = %d, want 4", stats.TotalMistakes)
	}
}

func TestClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(core.Result{Mode: "classic", Size: 10, Difficulty: "normal", Ticks: 100})
	store.SaveResult(core.Result{Mode: "daily", Size: 15, Difficulty: "normal", Ticks: 100})

	if err := store.ClearResults("classic"); err != nil {
		t.Fatalf("ClearResults failed: %v", err)
	}

	recent, _ := store.RecentResults(10)
	if len(recent) != 1 || recent[0].Mode != "daily" {
		t.Errorf("clear removed the wrong rows: %+v", recent)
	}
}
