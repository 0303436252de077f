// ABOUTME: Charm KV-backed Store with automatic cloud sync.
// ABOUTME: Data is E2E encrypted with the user's SSH key via Charm Cloud.
package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/charm/kv"
	badger "github.com/dgraph-io/badger/v3"
)

const (
	charmDBName = "runlog"
	charmHost   = "charm.2389.dev"
)

// CharmStore persists keys in Charm KV and syncs after every write.
type CharmStore struct {
	kv *kv.KV
}

// OpenCharm opens the Charm KV database and pulls remote state.
func OpenCharm() (*CharmStore, error) {
	// Set server before opening KV
	if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
		return nil, err
	}

	db, err := kv.OpenWithDefaultsFallback(charmDBName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	// Pull remote data on startup (skip in read-only mode)
	if !db.IsReadOnly() {
		_ = db.Sync()
	}

	return &CharmStore{kv: db}, nil
}

// Get returns the value for key, or nil when the key is absent.
func (s *CharmStore) Get(key string) ([]byte, error) {
	value, err := s.kv.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// Set writes value under key and syncs to Charm Cloud.
func (s *CharmStore) Set(key string, value []byte) error {
	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}
	if err := s.kv.Set([]byte(key), value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	_ = s.kv.Sync()
	return nil
}

// Sync synchronizes local state with Charm Cloud.
func (s *CharmStore) Sync() error {
	if s.kv.IsReadOnly() {
		return nil
	}
	return s.kv.Sync()
}

// Close closes the KV database connection.
func (s *CharmStore) Close() error {
	return s.kv.Close()
}
