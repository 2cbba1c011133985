package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/shopdash/internal/domain/errors"
	"github.com/polkiloo/shopdash/internal/orderview"
)

// Gauge receives the number of live sessions.
type Gauge interface {
	Set(float64)
}

type noopGauge struct{}

func (noopGauge) Set(float64) {}

// Options configure a Store.
type Options struct {
	MaxSessions int
	TTL         time.Duration
	Gauge       Gauge
	Logger      *slog.Logger
	Now         func() time.Time
	NewID       func() string
}

type entry struct {
	mu         sync.Mutex
	controller *orderview.Controller
	lastAccess time.Time
}

// Store keeps one order view controller per session. A controller is only
// touched while its entry mutex is held.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry

	maxSessions int
	ttl         time.Duration
	gauge       Gauge
	logger      *slog.Logger
	now         func() time.Time
	newID       func() string
}

// NewStore creates an empty store.
func NewStore(opts Options) *Store {
	s := &Store{
		sessions:    make(map[string]*entry),
		maxSessions: opts.MaxSessions,
		ttl:         opts.TTL,
		gauge:       opts.Gauge,
		logger:      opts.Logger,
		now:         opts.Now,
		newID:       opts.NewID,
	}
	if s.gauge == nil {
		s.gauge = noopGauge{}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

// Create registers controller under a fresh identifier. When the store is full
// idle sessions are evicted first.
func (s *Store) Create(controller *orderview.Controller) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		s.evictLocked()
		if len(s.sessions) >= s.maxSessions {
			return "", domainErrors.ErrTooManySessions
		}
	}

	id := s.newID()
	s.sessions[id] = &entry{controller: controller, lastAccess: s.now()}
	s.gauge.Set(float64(len(s.sessions)))
	return id, nil
}

// With runs fn against the controller of session id while holding its lock.
func (s *Store) With(id string, fn func(*orderview.Controller) error) error {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return domainErrors.ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastAccess = s.now()
	return fn(e.controller)
}

// Delete removes session id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return domainErrors.ErrSessionNotFound
	}
	delete(s.sessions, id)
	s.gauge.Set(float64(len(s.sessions)))
	return nil
}

// Len returns number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// EvictIdle drops sessions not accessed within the TTL and returns how many
// were removed.
func (s *Store) EvictIdle() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictLocked()
}

func (s *Store) evictLocked() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, e := range s.sessions {
		e.mu.Lock()
		idle := e.lastAccess.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Debug("evicted idle view sessions", slog.Int("count", removed))
	}
	s.gauge.Set(float64(len(s.sessions)))
	return removed
}
