// Package session holds per-visitor state: the active view, the Explore
// filter selection, and one lazily loaded cache per dataset.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/JonMunkholm/weddingweek/internal/core"
	"github.com/JonMunkholm/weddingweek/internal/logging"
)

// Loader provides the three datasets. source.Loader satisfies it.
type Loader interface {
	Itinerary(ctx context.Context) ([]core.DayGroup, error)
	Places(ctx context.Context) ([]core.Place, error)
	Contacts(ctx context.Context) ([]core.ContactRecord, error)
}

// Session is the state of one visitor.
type Session struct {
	ID      string
	Created time.Time

	mu       sync.Mutex
	lastSeen time.Time
	router   *Router
	filters  core.FilterState

	prefetch  sync.Once
	itinerary *lazy[[]core.DayGroup]
	places    *lazy[[]core.Place]
	contacts  *lazy[[]core.ContactRecord]
}

func newSession(id string, loader Loader, now time.Time) *Session {
	return &Session{
		ID:        id,
		Created:   now,
		lastSeen:  now,
		router:    NewRouter(),
		filters:   core.NewFilterState(),
		itinerary: newLazy(loader.Itinerary),
		places:    newLazy(loader.Places),
		contacts:  newLazy(loader.Contacts),
	}
}

// Prefetch starts the itinerary load in the background. Only the first call
// on a session has any effect.
func (s *Session) Prefetch(ctx context.Context) {
	s.prefetch.Do(func() {
		ctx = logging.WithSessionID(context.WithoutCancel(ctx), s.ID)
		go func() {
			if _, err := s.itinerary.Get(ctx); err != nil {
				logging.FromContext(ctx).Warn("itinerary prefetch failed", "error", err)
			}
		}()
	})
}

// Navigate makes v the active view. The first entry to Explore or Contacts
// starts that dataset's load so it is under way before the page asks for it.
func (s *Session) Navigate(ctx context.Context, v View) Transition {
	s.mu.Lock()
	t := s.router.Navigate(v)
	s.mu.Unlock()

	if !t.FirstEntry {
		return t
	}

	ctx = logging.WithSessionID(context.WithoutCancel(ctx), s.ID)
	switch t.To {
	case ViewExplore:
		go func() { _, _ = s.places.Get(ctx) }()
	case ViewContacts:
		go func() { _, _ = s.contacts.Get(ctx) }()
	}
	return t
}

// Itinerary returns the grouped itinerary, loading it if needed.
func (s *Session) Itinerary(ctx context.Context) ([]core.DayGroup, error) {
	return s.itinerary.Get(ctx)
}

// Places returns the explore places, loading them if needed.
func (s *Session) Places(ctx context.Context) ([]core.Place, error) {
	return s.places.Get(ctx)
}

// Contacts returns the contact records, loading them if needed.
func (s *Session) Contacts(ctx context.Context) ([]core.ContactRecord, error) {
	return s.contacts.Get(ctx)
}

// Filters returns a copy of the Explore filter selection.
func (s *Session) Filters() core.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters.Clone()
}

// UpdateFilters applies fn to the filter selection under the session lock.
func (s *Session) UpdateFilters(fn func(*core.FilterState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.filters)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// LastSeen returns when the session was last used.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
