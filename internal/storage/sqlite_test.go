package storage

import (
	"os"
	"path/filepath"
	"slices"
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
	dbPath := filepath.Join(tmpDir, "nested", "journal.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndRecentDreams(t *testing.T) {
	store := openTestStore(t)

	dreams := []DreamEntry{
		{Theme: "Blue Ocean", MazeWidth: 19, MazeHeight: 15, Duration: 12.5},
		{Theme: "Purple Forest", MazeWidth: 19, MazeHeight: 15, Items: []string{"Bicycle", "Knife"}, Duration: 40},
		{Dreamer: "alice", Theme: "Blue Ocean", MazeWidth: 21, MazeHeight: 21, Items: []string{"Knife"}, Duration: 3},
	}
	for _, d := range dreams {
		if _, err := store.SaveDream(d); err != nil {
			t.Fatalf("SaveDream() failed: %v", err)
		}
	}

	got, err := store.RecentDreams(10)
	if err != nil {
		t.Fatalf("RecentDreams() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("RecentDreams() returned %d entries, expected 3", len(got))
	}

	// Newest first
	if got[0].Dreamer != "alice" || got[0].MazeWidth != 21 {
		t.Errorf("newest dream = %+v, expected alice's", got[0])
	}
	if got[2].Dreamer != "local" {
		t.Errorf("default dreamer = %q, expected local", got[2].Dreamer)
	}
	if !slices.Equal(got[1].Items, []string{"Bicycle", "Knife"}) {
		t.Errorf("items = %v, expected [Bicycle Knife]", got[1].Items)
	}
	if len(got[2].Items) != 0 {
		t.Errorf("items = %v, expected none", got[2].Items)
	}
	if got[1].Duration != 40 {
		t.Errorf("duration = %g, expected 40", got[1].Duration)
	}
}

func TestRecentDreamsLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		store.SaveDream(DreamEntry{Theme: "Green Fields", MazeWidth: 19, MazeHeight: 15})
	}

	got, err := store.RecentDreams(3)
	if err != nil {
		t.Fatalf("RecentDreams() failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("RecentDreams(3) returned %d entries", len(got))
	}
	if got[0].ID <= got[1].ID {
		t.Error("RecentDreams() not ordered newest first")
	}
}

func TestDreamByID(t *testing.T) {
	store := openTestStore(t)
	id, err := store.SaveDream(DreamEntry{Theme: "Golden Plains", MazeWidth: 19, MazeHeight: 15, Items: []string{"Bicycle"}})
	if err != nil {
		t.Fatalf("SaveDream() failed: %v", err)
	}

	got, err := store.DreamByID(id)
	if err != nil || got == nil {
		t.Fatalf("DreamByID() = %v, %v", got, err)
	}
	if got.Theme != "Golden Plains" || !slices.Equal(got.Items, []string{"Bicycle"}) {
		t.Errorf("DreamByID() = %+v", got)
	}

	missing, err := store.DreamByID(id + 100)
	if err != nil || missing != nil {
		t.Errorf("DreamByID(missing) = %v, %v, expected nil, nil", missing, err)
	}
}

func TestWorldStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveDream(DreamEntry{Theme: "Blue Ocean", MazeWidth: 19, MazeHeight: 15, Duration: 10, Items: []string{"Knife"}})
	store.SaveDream(DreamEntry{Theme: "Blue Ocean", MazeWidth: 19, MazeHeight: 15, Duration: 5, Items: []string{"Bicycle", "Knife"}})
	store.SaveDream(DreamEntry{Theme: "Pink Mountains", MazeWidth: 19, MazeHeight: 15, Duration: 7})

	stats, err := store.WorldStats()
	if err != nil {
		t.Fatalf("WorldStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("WorldStats() returned %d worlds, expected 2", len(stats))
	}

	ocean := stats[0]
	if ocean.Theme != "Blue Ocean" || ocean.Dreams != 2 || ocean.TotalDuration != 15 || ocean.ItemsFound != 3 {
		t.Errorf("ocean stats = %+v", ocean)
	}
	if stats[1].Theme != "Pink Mountains" || stats[1].ItemsFound != 0 {
		t.Errorf("mountain stats = %+v", stats[1])
	}
	if ocean.LastDreamt.IsZero() {
		t.Error("LastDreamt not parsed")
	}
}

func TestClearDreams(t *testing.T) {
	store := openTestStore(t)
	store.SaveDream(DreamEntry{Theme: "Orange Desert", Items: []string{"Knife"}})

	if err := store.ClearDreams(); err != nil {
		t.Fatalf("ClearDreams() failed: %v", err)
	}
	got, err := store.RecentDreams(10)
	if err != nil {
		t.Fatalf("RecentDreams() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("RecentDreams() after clear = %d entries", len(got))
	}
}
