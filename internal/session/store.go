package session

import (
	"context"
	"sync"
)

// Store is the key/value backing for session state.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Watcher is implemented by stores that can be changed by other processes.
// onChange is invoked after every external modification until ctx is done.
type Watcher interface {
	Watch(ctx context.Context, onChange func()) error
}

// MemoryStore keeps session state for the lifetime of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Open picks the backing store: a SQL table when driver is set, otherwise the
// JSON file at file. The returned close function is never nil.
func Open(ctx context.Context, driver, dsn, file string) (Store, func() error, error) {
	if driver != "" {
		s, err := OpenSQLStore(ctx, driver, dsn)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}
	s, err := NewFileStore(file)
	if err != nil {
		return nil, nil, err
	}
	return s, func() error { return nil }, nil
}
