// Package cache implements the build-scoped original-file cache
// service. One Service instance is bound to exactly one resolution.
package cache

import (
	"sync"
	"sync/atomic"

	"go.trai.ch/clasp/internal/core/ports"
	"go.trai.ch/zerr"

	"go.trai.ch/clasp/internal/core/domain"
)

var _ ports.OriginalFileCache = (*Service)(nil)

// Service maps content hashes to original file paths for the lifetime
// of one resolution. Writes happen concurrently from stage executions;
// reads happen afterwards, on the assembling goroutine.
type Service struct {
	id      int64
	mu      sync.RWMutex
	entries map[string]string
}

// ID returns the service's identity. Each resolution context owns a
// service with a distinct id, so unrelated concurrent resolutions never
// share entries.
func (s *Service) ID() int64 {
	return s.id
}

// Put stores the original file under its content hash. Concurrent calls
// with the same hash are safe: equal hashes imply identical content, so
// last write wins.
func (s *Service) Put(hash, originalFile string) {
	s.mu.Lock()
	s.entries[hash] = originalFile
	s.mu.Unlock()
}

// Get returns the original file stored under the hash. A miss means a
// placeholder was emitted whose hash was never stored, which is fatal
// for the resolution.
func (s *Service) Get(hash string) (string, error) {
	s.mu.RLock()
	file, ok := s.entries[hash]
	s.mu.RUnlock()
	if !ok {
		return "", zerr.With(zerr.With(domain.ErrCacheInconsistency, "hash", hash), "cache_id", s.id)
	}
	return file, nil
}

// Clear drops all entries.
func (s *Service) Clear() {
	s.mu.Lock()
	s.entries = make(map[string]string)
	s.mu.Unlock()
}

// Len returns the number of stored entries.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Factory creates cache services with monotonically increasing ids.
type Factory struct {
	nextID atomic.Int64
}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewService creates a fresh, empty cache service with a distinct id.
func (f *Factory) NewService() *Service {
	return &Service{
		id:      f.nextID.Add(1),
		entries: make(map[string]string),
	}
}
