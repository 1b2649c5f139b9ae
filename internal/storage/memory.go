package storage

// MemoryStore is a map-backed Store for tests and throwaway runs. Nothing
// survives the process.
type MemoryStore struct {
	values map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Get returns the value stored under key.
func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Put stores a copy of value under key.
func (s *MemoryStore) Put(key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[key] = stored
	return nil
}

// Delete removes key, if present.
func (s *MemoryStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
