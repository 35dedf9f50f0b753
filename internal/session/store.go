package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps sessions in memory, keyed by id.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	loader   Loader
	idle     time.Duration
	now      func() time.Time
}

// NewStore creates a store whose sessions load data through loader and are
// evicted after idle without use.
func NewStore(loader Loader, idle time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		loader:   loader,
		idle:     idle,
		now:      time.Now,
	}
}

// Get returns the session for id and marks it used.
func (st *Store) Get(id string) (*Session, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}

	st.mu.Lock()
	s, ok := st.sessions[id]
	st.mu.Unlock()
	if !ok {
		return nil, false
	}
	s.touch(st.now())
	return s, true
}

// Create starts a new session. Nothing is loaded until the session is used;
// see Session.Prefetch.
func (st *Store) Create() *Session {
	s := newSession(uuid.NewString(), st.loader, st.now())

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// GetOrCreate returns the session for id, or a new one when id is unknown.
func (st *Store) GetOrCreate(id string) (s *Session, created bool) {
	if s, ok := st.Get(id); ok {
		return s, false
	}
	return st.Create(), true
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep removes sessions idle longer than the idle timeout and returns how
// many were removed.
func (st *Store) Sweep() int {
	cutoff := st.now().Add(-st.idle)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (st *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.Sweep(); n > 0 {
				slog.Debug("idle sessions evicted", "count", n, "remaining", st.Len())
			}
		}
	}
}
