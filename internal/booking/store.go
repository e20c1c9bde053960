package booking

import (
	"sync"
	"time"

	"tourism/internal/domain"
	"tourism/internal/domain/models"
)

// Store keeps active drafts in memory keyed by token. Drafts are never
// persisted; abandoned ones are swept after the TTL. All mutations go
// through Update so a session's draft is modified by one request at a time.
type Store struct {
	mu     sync.Mutex
	drafts map[string]*Draft
	ttl    time.Duration
	stop   chan struct{}
	once   sync.Once
}

const sweepInterval = time.Minute

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 45 * time.Minute
	}
	s := &Store{
		drafts: make(map[string]*Draft),
		ttl:    ttl,
		stop:   make(chan struct{}),
	}
	go s.janitor()
	return s
}

// Create opens a new draft for the given user and destination.
func (s *Store) Create(userID int64, dest models.Destination) *Draft {
	d := NewDraft(userID, dest)
	s.mu.Lock()
	s.drafts[d.Token] = d
	s.mu.Unlock()
	return d
}

// Get returns a copy of the draft for read-only use.
func (s *Store) Get(token string, userID int64) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[token]
	if !ok || d.UserID != userID {
		return Draft{}, domain.NotFoundError{Resource: "draft"}
	}
	return *d, nil
}

// Update runs fn on the draft under the store lock. fn errors are passed
// through; the draft keeps whatever state fn left it in, which matches the
// correct-and-retry flow of step validation.
func (s *Store) Update(token string, userID int64, fn func(*Draft) error) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[token]
	if !ok || d.UserID != userID {
		return Draft{}, domain.NotFoundError{Resource: "draft"}
	}
	err := fn(d)
	return *d, err
}

// Delete discards a draft.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	delete(s.drafts, token)
	s.mu.Unlock()
}

// Stop terminates the sweep goroutine.
func (s *Store) Stop() {
	s.once.Do(func() { close(s.stop) })
}

func (s *Store) janitor() {
	t := time.NewTicker(sweepInterval)
	defer t.Stop()
	for {
		select {
		case <-s.stop:
			return
		case now := <-t.C:
			s.sweep(now)
		}
	}
}

func (s *Store) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, d := range s.drafts {
		// Submitted drafts stay around for the TTL so a retried submit
		// still resolves to the original booking id.
		if now.Sub(d.UpdatedAt) > s.ttl {
			delete(s.drafts, token)
		}
	}
}
