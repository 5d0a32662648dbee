package domain

import "time"

// MinimumAge is the youngest age, in whole years, accepted for registration.
const MinimumAge = 13

// MeetsMinimumAge returns true if the person with the given birth date is at least
// years old at the specified reference time. Uses calendar arithmetic (AddDate) so
// the birthday itself counts as reaching the age.
//
// Example:
//
//	birthDate := time.Date(2010, 4, 12, 0, 0, 0, 0, time.UTC)
//	now := time.Date(2023, 4, 12, 0, 0, 0, 0, time.UTC) // 13th birthday
//	MeetsMinimumAge(birthDate, now, 13) // returns true
func MeetsMinimumAge(birthDate, now time.Time, years int) bool {
	reachedAt := birthDate.UTC().AddDate(years, 0, 0)
	return !now.UTC().Before(reachedAt)
}
