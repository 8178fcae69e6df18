package bench

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "c4solver-bench-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	store, err := Open(filepath.Join(tmpDir, "db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadReturnsEmptyRecordWhenUnset(t *testing.T) {
	store := openTestStore(t)
	rec, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec.PositionsSolved != 0 || rec.TotalNodes != 0 || rec.TotalMicros != 0 {
		t.Fatalf("expected a zero-value record, got %+v", rec)
	}
}

func TestRecordRunAccumulatesAcrossRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RecordRun("End-Easy", 10, 1000, 5000); err != nil {
		t.Fatalf("first RecordRun: %v", err)
	}
	rec, err := store.RecordRun("Middle-Easy", 5, 500, 2500)
	if err != nil {
		t.Fatalf("second RecordRun: %v", err)
	}

	if rec.PositionsSolved != 15 {
		t.Fatalf("PositionsSolved = %d, want 15 (accumulated)", rec.PositionsSolved)
	}
	if rec.TotalNodes != 1500 {
		t.Fatalf("TotalNodes = %d, want 1500 (accumulated)", rec.TotalNodes)
	}
	if rec.TotalMicros != 7500 {
		t.Fatalf("TotalMicros = %d, want 7500 (accumulated)", rec.TotalMicros)
	}
	if rec.LastCategory != "Middle-Easy" {
		t.Fatalf("LastCategory = %q, want %q (the most recent run)", rec.LastCategory, "Middle-Easy")
	}
}

func TestRecordRunPersistsAcrossStoreReopen(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "c4solver-bench-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })
	dbDir := filepath.Join(tmpDir, "db")

	store, err := Open(dbDir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := store.RecordRun("Begin-Hard", 1, 100, 100); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(dbDir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	rec, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load after reopen: %v", err)
	}
	if rec.PositionsSolved != 1 || rec.TotalNodes != 100 {
		t.Fatalf("record did not survive reopen: %+v", rec)
	}
}

func TestNodesPerSecond(t *testing.T) {
	rec := &Record{TotalNodes: 2_000_000, TotalMicros: 1_000_000}
	if got := rec.NodesPerSecond(); got != 2_000_000 {
		t.Fatalf("NodesPerSecond() = %v, want 2000000", got)
	}
	empty := NewRecord()
	if got := empty.NodesPerSecond(); got != 0 {
		t.Fatalf("NodesPerSecond() on an empty record = %v, want 0", got)
	}
}
