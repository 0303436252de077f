// ABOUTME: In-memory Store used as a test double for the persistence port.
// ABOUTME: Also records write counts so tests can assert write-through.
package store

// MemStore keeps values in a map. Zero value is not usable; use NewMemStore.
type MemStore struct {
	values map[string][]byte
	writes int
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string][]byte)}
}

// Get returns the value for key, or nil when the key is absent.
func (s *MemStore) Get(key string) ([]byte, error) {
	return s.values[key], nil
}

// Set writes value under key.
func (s *MemStore) Set(key string, value []byte) error {
	s.values[key] = append([]byte(nil), value...)
	s.writes++
	return nil
}

// Close is a no-op.
func (s *MemStore) Close() error { return nil }

// Writes returns how many Set calls have been made.
func (s *MemStore) Writes() int { return s.writes }
