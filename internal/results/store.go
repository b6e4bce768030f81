// Package results keeps recently generated resumes in memory so the page can offer a download link.
// Nothing is written to disk; a restart forgets every entry.
package results

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resumeforge/internal/types"
)

// ErrNotFound is returned for unknown or expired result IDs.
var ErrNotFound = errors.New("result not found")

// Defaults used when Config leaves a field zero.
const (
	DefaultTTL             = time.Hour
	DefaultMaxEntries      = 1024
	DefaultCleanupInterval = 5 * time.Minute
)

// Config controls retention.
type Config struct {
	TTL             time.Duration
	MaxEntries      int
	CleanupInterval time.Duration
}

type entry struct {
	result  types.ResumeResult
	expires time.Time
}

// Store is a bounded, expiring map of results keyed by ID.
type Store struct {
	mu      sync.Mutex
	entries map[uuid.UUID]entry
	order   []uuid.UUID // insertion order, oldest first
	ttl     time.Duration
	max     int
	now     func() time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
	stopOnce      sync.Once
}

// NewStore creates a store and starts its cleanup goroutine. Call Stop when done.
func NewStore(cfg Config) *Store {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = DefaultCleanupInterval
	}

	s := &Store{
		entries:       make(map[uuid.UUID]entry),
		ttl:           cfg.TTL,
		max:           cfg.MaxEntries,
		now:           time.Now,
		cleanupTicker: time.NewTicker(cfg.CleanupInterval),
		cleanupStop:   make(chan struct{}),
	}
	go s.cleanup()
	return s
}

// Put stores a copy of result under result.ID, evicting the oldest entries past capacity.
func (s *Store) Put(result types.ResumeResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[result.ID]; !exists {
		s.order = append(s.order, result.ID)
	}
	s.entries[result.ID] = entry{result: result, expires: s.now().Add(s.ttl)}

	for len(s.entries) > s.max && len(s.order) > 0 {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.entries, oldest)
	}
}

// Get returns the result for id, or ErrNotFound when it is unknown or expired.
func (s *Store) Get(id uuid.UUID) (types.ResumeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || !s.now().Before(e.expires) {
		return types.ResumeResult{}, ErrNotFound
	}
	return e.result, nil
}

// Len returns the number of entries, including expired ones not yet swept.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (s *Store) Stop() {
	s.stopOnce.Do(func() {
		s.cleanupTicker.Stop()
		close(s.cleanupStop)
	})
}

func (s *Store) cleanup() {
	for {
		select {
		case <-s.cleanupTicker.C:
			s.sweep()
		case <-s.cleanupStop:
			return
		}
	}
}

func (s *Store) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	kept := s.order[:0]
	for _, id := range s.order {
		e, ok := s.entries[id]
		if !ok {
			continue
		}
		if !now.Before(e.expires) {
			delete(s.entries, id)
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
}
