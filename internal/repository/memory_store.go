package repository

import (
	"context"
	"sync"
)

// InMemoryStore implements Store with a map. Used in tests and with STORAGE_DRIVER=memory.
type InMemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewInMemoryStore creates an empty in-memory store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		blobs: make(map[string][]byte),
	}
}

// Load returns a copy of the blob stored under key
func (s *InMemoryStore) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, exists := s.blobs[key]
	if !exists {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), data...), nil
}

// Save stores a copy of data under key
func (s *InMemoryStore) Save(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = append([]byte(nil), data...)
	return nil
}
