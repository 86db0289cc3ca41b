package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/placemarks-app/placemarks/internal/session/domain"
	"github.com/placemarks-app/placemarks/pkg/clock"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

type memoryStore struct {
	mutex   sync.RWMutex
	entries map[string]memoryEntry
	clock   clock.Clock
}

// NewMemoryStore returns a Store keeping entries in process memory.
// Expired entries are invisible to reads and removed lazily.
func NewMemoryStore(clk clock.Clock) domain.Store {
	return &memoryStore{
		entries: make(map[string]memoryEntry),
		clock:   clk,
	}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mutex.RLock()
	entry, ok := s.entries[key]
	s.mutex.RUnlock()
	if !ok || s.expired(entry) {
		return nil, domain.ErrKeyNotFound
	}
	return entry.value, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value []byte, expiresAt time.Time) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.entries[key] = memoryEntry{value: value, expiresAt: expiresAt}
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *memoryStore) Keys(_ context.Context, prefix string) ([]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var keys []string
	for key, entry := range s.entries {
		if strings.HasPrefix(key, prefix) && !s.expired(entry) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (s *memoryStore) DeleteByPrefix(_ context.Context, prefix string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	return nil
}

func (s *memoryStore) DeleteExpired(_ context.Context) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var deleted int
	for key, entry := range s.entries {
		if s.expired(entry) {
			delete(s.entries, key)
			deleted++
		}
	}
	return deleted, nil
}

func (s *memoryStore) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !entry.expiresAt.After(s.clock.Now())
}
