// ABOUTME: Tests for the Store backends.
// ABOUTME: Backends share one contract: missing keys read as nil, no error.
package store

import (
	"bytes"
	"path/filepath"
	"testing"
)

// backendContract exercises the shared Store semantics.
func backendContract(t *testing.T, s Store) {
	t.Helper()

	// Missing key reads as empty state.
	got, err := s.Get("missing")
	if err != nil {
		t.Fatalf("Get(missing): %v", err)
	}
	if got != nil {
		t.Errorf("Get(missing) = %q, want nil", got)
	}

	// Round trip.
	if err := s.Set(LogsKey, []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err = s.Get(LogsKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, []byte(`[{"id":1}]`)) {
		t.Errorf("Get = %q, want the stored value", got)
	}

	// Full rewrite replaces, never appends.
	if err := s.Set(LogsKey, []byte(`[]`)); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, _ = s.Get(LogsKey)
	if !bytes.Equal(got, []byte(`[]`)) {
		t.Errorf("Get after overwrite = %q, want []", got)
	}

	// The two registry keys are independent.
	if err := s.Set(PlansKey, []byte(`{"2024-03-04":45}`)); err != nil {
		t.Fatalf("Set plans: %v", err)
	}
	logsVal, _ := s.Get(LogsKey)
	if !bytes.Equal(logsVal, []byte(`[]`)) {
		t.Error("writing plans must not touch the logs key")
	}
}

func TestMemStore(t *testing.T) {
	backendContract(t, NewMemStore())
}

func TestMemStoreCountsWrites(t *testing.T) {
	s := NewMemStore()
	_ = s.Set(LogsKey, []byte("a"))
	_ = s.Set(LogsKey, []byte("b"))
	if got := s.Writes(); got != 2 {
		t.Errorf("Writes = %d, want 2", got)
	}
}

func TestBadgerStore(t *testing.T) {
	s, err := OpenBadger(filepath.Join(t.TempDir(), "badger"))
	if err != nil {
		t.Fatalf("OpenBadger: %v", err)
	}
	defer s.Close()

	backendContract(t, s)
}

func TestBadgerStorePersistsAcrossReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "badger")

	s, err := OpenBadger(dir)
	if err != nil {
		t.Fatalf("OpenBadger: %v", err)
	}
	if err := s.Set(PlansKey, []byte(`{"2024-03-04":45}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = OpenBadger(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, err := s.Get(PlansKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, []byte(`{"2024-03-04":45}`)) {
		t.Errorf("Get after reopen = %q", got)
	}
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "runlog.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()

	backendContract(t, s)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runlog.db")

	s, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := s.Set(LogsKey, []byte(`[{"id":7}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, err := s.Get(LogsKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, []byte(`[{"id":7}]`)) {
		t.Errorf("Get after reopen = %q", got)
	}
}
