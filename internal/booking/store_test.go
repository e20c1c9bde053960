package booking

import (
	"testing"
	"time"

	"tourism/internal/domain"
)

func TestStoreCreateAndGet(t *testing.T) {
	s := NewStore(time.Hour)
	defer s.Stop()

	d := s.Create(1, testDestination())
	got, err := s.Get(d.Token, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.DestinationID != 7 {
		t.Fatalf("wrong draft returned: %+v", got)
	}
}

func TestStoreScopedToOwner(t *testing.T) {
	s := NewStore(time.Hour)
	defer s.Stop()

	d := s.Create(1, testDestination())
	if _, err := s.Get(d.Token, 2); !domain.IsNotFound(err) {
		t.Fatalf("another user's draft must look like not found, got %v", err)
	}
	if _, err := s.Update(d.Token, 2, func(*Draft) error { return nil }); !domain.IsNotFound(err) {
		t.Fatalf("another user must not update the draft, got %v", err)
	}
}

func TestStoreUpdateAppliesMutation(t *testing.T) {
	s := NewStore(time.Hour)
	defer s.Stop()

	d := s.Create(1, testDestination())
	updated, err := s.Update(d.Token, 1, func(d *Draft) error {
		return d.AdjustGuests(1, 0)
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Adults != 2 {
		t.Fatalf("mutation not applied, adults=%d", updated.Adults)
	}

	got, _ := s.Get(d.Token, 1)
	if got.Adults != 2 {
		t.Fatalf("mutation not persisted in store, adults=%d", got.Adults)
	}
}

func TestStoreSweepDropsStaleDrafts(t *testing.T) {
	s := NewStore(time.Hour)
	defer s.Stop()

	d := s.Create(1, testDestination())
	s.sweep(time.Now().Add(2 * time.Hour))

	if _, err := s.Get(d.Token, 1); !domain.IsNotFound(err) {
		t.Fatalf("stale draft should be swept, got %v", err)
	}
}

func TestStoreSweepKeepsFreshDrafts(t *testing.T) {
	s := NewStore(time.Hour)
	defer s.Stop()

	d := s.Create(1, testDestination())
	s.sweep(time.Now().Add(10 * time.Minute))

	if _, err := s.Get(d.Token, 1); err != nil {
		t.Fatalf("fresh draft must survive the sweep: %v", err)
	}
}
