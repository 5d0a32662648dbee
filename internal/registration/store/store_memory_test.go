package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"wcg/internal/registration/models"
	"wcg/internal/sentinel"
	id "wcg/pkg/domain"
	"wcg/pkg/testutil"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
	now   time.Time
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
	s.now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
}

func (s *InMemoryStoreSuite) citizen(citizenID string) models.Citizen {
	return models.Citizen{ID: id.CitizenID(citizenID), Name: "Tester", Surname: "Test"}
}

func (s *InMemoryStoreSuite) TestGet_UnknownIDIsUnregistered() {
	reg, err := s.store.Get(s.ctx, "1101101101101")
	s.Require().NoError(err)
	s.Equal(models.StatusUnregistered, reg.Status)
}

func (s *InMemoryStoreSuite) TestInsert_Transitions() {
	s.Require().NoError(s.store.Insert(s.ctx, s.citizen("1101101101101"), s.now))

	reg, err := s.store.Get(s.ctx, "1101101101101")
	s.Require().NoError(err)
	s.True(reg.IsRegistered())
	s.Equal("Tester", reg.Citizen.Name)
	s.Equal(s.now, reg.RegisteredAt)
}

func (s *InMemoryStoreSuite) TestInsert_DuplicateKeepsFirstRecord() {
	s.Require().NoError(s.store.Insert(s.ctx, s.citizen("1101101101101"), s.now))

	second := s.citizen("1101101101101")
	second.Name = "Impostor"
	err := s.store.Insert(s.ctx, second, s.now.Add(time.Hour))
	s.ErrorIs(err, sentinel.ErrAlreadyExists)

	reg, _ := s.store.Get(s.ctx, "1101101101101")
	s.Equal("Tester", reg.Citizen.Name)
}

func (s *InMemoryStoreSuite) TestDelete() {
	s.Run("unknown ID", func() {
		s.ErrorIs(s.store.Delete(s.ctx, "9999999999999"), sentinel.ErrNotFound)
	})

	s.Run("registered ID returns to unregistered", func() {
		s.Require().NoError(s.store.Insert(s.ctx, s.citizen("1101101101101"), s.now))
		s.Require().NoError(s.store.Delete(s.ctx, "1101101101101"))

		reg, _ := s.store.Get(s.ctx, "1101101101101")
		s.False(reg.IsRegistered())
		s.Require().NoError(s.store.Insert(s.ctx, s.citizen("1101101101101"), s.now))
	})
}

func (s *InMemoryStoreSuite) TestCount() {
	for i := range 3 {
		s.Require().NoError(s.store.Insert(s.ctx, s.citizen(fmt.Sprintf("110110110110%d", i)), s.now))
	}
	n, err := s.store.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, n)
}

func (s *InMemoryStoreSuite) TestInsert_ConcurrentDuplicatesAdmitOne() {
	res := testutil.RunConcurrent(50, func(int) error {
		return s.store.Insert(s.ctx, s.citizen("1101101101101"), s.now)
	})

	s.Equal(int32(1), res.Successes)
	s.Equal(int32(49), res.Conflicts)
}

func (s *InMemoryStoreSuite) TestDelete_ConcurrentRemovesOnce() {
	s.Require().NoError(s.store.Insert(s.ctx, s.citizen("1101101101101"), s.now))

	res := testutil.RunConcurrent(20, func(int) error {
		return s.store.Delete(s.ctx, "1101101101101")
	})

	s.Equal(int32(1), res.Successes)
	s.Equal(int32(19), res.NotFounds)
}
