package store

import (
	"context"
	"sync"
	"time"

	"wcg/internal/registration/models"
	"wcg/internal/sentinel"
	id "wcg/pkg/domain"
	psync "wcg/pkg/platform/sync"
)

// Error Contract:
// - Insert returns sentinel.ErrAlreadyExists when the ID is already registered
// - Delete returns sentinel.ErrNotFound when the ID is not registered
// - Get never fails for a missing ID; it reports models.StatusUnregistered

// InMemoryStore keeps registered citizens in memory. Only registered IDs are
// stored; absence means unregistered.
type InMemoryStore struct {
	locks    *psync.ShardedMutex
	citizens sync.Map // id.CitizenID -> models.Registration
}

// New constructs an empty in-memory citizen store.
func New() *InMemoryStore {
	return &InMemoryStore{locks: psync.NewShardedMutex()}
}

func (s *InMemoryStore) Get(_ context.Context, citizenID id.CitizenID) (models.Registration, error) {
	v, ok := s.citizens.Load(citizenID)
	if !ok {
		return models.Unregistered(), nil
	}
	return v.(models.Registration), nil
}

// Insert moves an unregistered ID to registered.
func (s *InMemoryStore) Insert(_ context.Context, c models.Citizen, at time.Time) error {
	key := c.ID.String()
	return s.locks.With(key, func() error {
		if _, exists := s.citizens.Load(c.ID); exists {
			return sentinel.ErrAlreadyExists
		}
		s.citizens.Store(c.ID, models.Registered(c, at))
		return nil
	})
}

// Delete moves a registered ID back to unregistered.
func (s *InMemoryStore) Delete(_ context.Context, citizenID id.CitizenID) error {
	return s.locks.With(citizenID.String(), func() error {
		if _, existed := s.citizens.LoadAndDelete(citizenID); !existed {
			return sentinel.ErrNotFound
		}
		return nil
	})
}

// Count returns the number of registered citizens.
func (s *InMemoryStore) Count(_ context.Context) (int, error) {
	n := 0
	s.citizens.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n, nil
}
