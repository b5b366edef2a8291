package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsLevelEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "level_1.json")
	if err := os.WriteFile(target, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "level_1.json" {
			t.Fatalf("event for %s, want level_1.json", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for edited level file")
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
