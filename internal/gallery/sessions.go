package gallery

import (
	"container/list"
	"sync"
	"time"

	"github.com/vaporis/vaporis-site/internal/metrics"
)

// DefaultSessionTTL is how long an idle visitor gallery is kept
const DefaultSessionTTL = 30 * time.Minute

// DefaultMaxSessions caps the registry when no limit is configured
const DefaultMaxSessions = 10000

type sessionEntry struct {
	id       string
	gallery  *Gallery
	lastSeen time.Time
}

// Sessions maps visitor session ids to their galleries.
// Entries are kept in least-recently-used order: idle ones expire from the
// back on access and the oldest is dropped once max is reached.
type Sessions struct {
	mu         sync.Mutex
	ttl        time.Duration
	max        int
	now        func() time.Time
	newGallery func() *Gallery
	entries    map[string]*list.Element
	order      *list.List
}

// NewSessions creates a registry that builds galleries with newGallery
func NewSessions(ttl time.Duration, limit int, newGallery func() *Gallery) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if limit <= 0 {
		limit = DefaultMaxSessions
	}
	return &Sessions{
		ttl:        ttl,
		max:        limit,
		now:        time.Now,
		newGallery: newGallery,
		entries:    make(map[string]*list.Element),
		order:      list.New(),
	}
}

// Get returns the gallery for id, creating it on first use.
// The second return value is false when the gallery was just created.
func (s *Sessions) Get(id string) (*Gallery, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.expireLocked(now)

	if el, ok := s.entries[id]; ok {
		entry := el.Value.(*sessionEntry)
		entry.lastSeen = now
		s.order.MoveToFront(el)
		return entry.gallery, true
	}

	for s.order.Len() >= s.max {
		s.removeLocked(s.order.Back())
	}
	entry := &sessionEntry{id: id, gallery: s.newGallery(), lastSeen: now}
	s.entries[id] = s.order.PushFront(entry)

	metrics.SetGallerySessions(len(s.entries))
	return entry.gallery, false
}

// expireLocked drops idle entries; only the stale tail is visited
func (s *Sessions) expireLocked(now time.Time) {
	for el := s.order.Back(); el != nil; el = s.order.Back() {
		if now.Sub(el.Value.(*sessionEntry).lastSeen) <= s.ttl {
			break
		}
		s.removeLocked(el)
	}
	metrics.SetGallerySessions(len(s.entries))
}

func (s *Sessions) removeLocked(el *list.Element) {
	entry := s.order.Remove(el).(*sessionEntry)
	delete(s.entries, entry.id)
}
