package storage

import (
	"context"
	"sort"
	"sync"
)

// MemoryStorage keeps programs in memory for the lifetime of the process
type MemoryStorage struct {
	mu       sync.RWMutex
	programs map[string]string
}

// NewMemoryStorage creates an empty in-memory backend
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{programs: make(map[string]string)}
}

// Load implements Storage
func (s *MemoryStorage) Load(ctx context.Context, name string) (string, error) {
	name, err := checkName("load", name)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	source, ok := s.programs[name]
	if !ok {
		return "", notFound("load", name)
	}
	return source, nil
}

// Save implements Storage
func (s *MemoryStorage) Save(ctx context.Context, name, source string) error {
	name, err := checkName("save", name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.programs[name] = source
	return nil
}

// List implements Storage
func (s *MemoryStorage) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.programs))
	for name := range s.programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close implements Storage
func (s *MemoryStorage) Close() error {
	return nil
}
