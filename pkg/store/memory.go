package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore keeps collections as encoded JSON in a map. It exists so
// tests can run the repositories without touching the filesystem, and it
// round-trips through encoding/json the same way FileStore does.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) ReadAll(name string, out interface{}) error {
	s.mu.Lock()
	data, ok := s.data[name]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse collection %s: %w", name, err)
	}
	return nil
}

func (s *MemoryStore) WriteAll(name string, records interface{}) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, err)
	}
	s.mu.Lock()
	s.data[name] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) GenerateID() string {
	return NewID()
}
