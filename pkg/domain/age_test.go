package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// AgeSuite tests age calculation functions.
//
// The invariant "the 13th birthday itself meets the minimum" must be preserved.
type AgeSuite struct {
	suite.Suite
}

func TestAgeSuite(t *testing.T) {
	suite.Run(t, new(AgeSuite))
}

func (s *AgeSuite) TestMeetsMinimumAge_BirthdayBoundaries() {
	birthDate := time.Date(2010, 4, 12, 0, 0, 0, 0, time.UTC)

	s.Run("exactly 13th birthday returns true", func() {
		now := time.Date(2023, 4, 12, 0, 0, 0, 0, time.UTC)
		s.True(MeetsMinimumAge(birthDate, now, MinimumAge))
	})

	s.Run("day before 13th birthday returns false", func() {
		now := time.Date(2023, 4, 11, 23, 59, 59, 0, time.UTC)
		s.False(MeetsMinimumAge(birthDate, now, MinimumAge))
	})

	s.Run("day after 13th birthday returns true", func() {
		now := time.Date(2023, 4, 13, 0, 0, 0, 0, time.UTC)
		s.True(MeetsMinimumAge(birthDate, now, MinimumAge))
	})
}

func (s *AgeSuite) TestMeetsMinimumAge_LeapYear() {
	birthDate := time.Date(2008, 2, 29, 0, 0, 0, 0, time.UTC)

	s.Run("Feb 28 of a non-leap 13th year is not yet 13", func() {
		now := time.Date(2021, 2, 28, 0, 0, 0, 0, time.UTC)
		s.False(MeetsMinimumAge(birthDate, now, MinimumAge))
	})

	s.Run("Mar 1 of a non-leap 13th year is 13", func() {
		now := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
		s.True(MeetsMinimumAge(birthDate, now, MinimumAge))
	})
}

func (s *AgeSuite) TestMeetsMinimumAge_TimezoneHandling() {
	s.Run("different timezones are normalized to UTC", func() {
		ict := time.FixedZone("ICT", 7*60*60)
		birthDate := time.Date(2010, 4, 12, 7, 0, 0, 0, ict)
		now := time.Date(2023, 4, 12, 0, 0, 0, 0, time.UTC)
		s.True(MeetsMinimumAge(birthDate, now, MinimumAge))
	})
}

func (s *AgeSuite) TestMeetsMinimumAge_KnownFixtures() {
	s.Run("12-04-2014 is under 13 before 2027", func() {
		birthDate := time.Date(2014, 4, 12, 0, 0, 0, 0, time.UTC)
		now := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
		s.False(MeetsMinimumAge(birthDate, now, MinimumAge))
	})

	s.Run("15 Jan 1990 is an adult", func() {
		birthDate := time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC)
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		s.True(MeetsMinimumAge(birthDate, now, MinimumAge))
	})
}
