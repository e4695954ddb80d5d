// Package memory is a volatile key-value store that lives as long as the
// process. The console keeps session-only media state in it.
package memory

import (
	"context"
	"sync"
)

// Store is a mutex-guarded map.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

// New creates an empty Store.
func New() *Store {
	return &Store{data: make(map[string]string)}
}

// Get returns the value for key and whether it was present.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set stores value under key.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Close is a no-op so Store satisfies the same lifecycle as the durable stores.
func (s *Store) Close() error { return nil }
