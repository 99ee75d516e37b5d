package keyvalue

import (
	"context"
	"meditrack-client/internal/app/contracts"
	"meditrack-client/internal/pkg/constvars"
	"sync"
)

type memoryStorage struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryStorage returns a process-local storage. Its content does not
// survive the process.
func NewMemoryStorage() contracts.KeyValueStorage {
	return &memoryStorage{entries: make(map[string]string)}
}

func (s *memoryStorage) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, found := s.entries[key]
	return value, found, nil
}

func (s *memoryStorage) SetMany(ctx context.Context, entries map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range entries {
		s.entries[key] = value
	}
	return nil
}

func (s *memoryStorage) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.entries, key)
	}
	return nil
}

func (s *memoryStorage) Driver() string {
	return constvars.CredentialStoreDriverMemory
}
