package models

import (
	"time"

	id "wcg/pkg/domain"
)

// Status is the registration state of one citizen ID.
type Status string

const (
	StatusUnregistered Status = "unregistered"
	StatusRegistered   Status = "registered"
)

// Citizen is a registration that passed validation.
type Citizen struct {
	ID         id.CitizenID
	Name       string
	Surname    string
	BirthDate  time.Time
	Occupation string
	Address    string
}

// Registration is the state of a citizen ID. Citizen and RegisteredAt are set
// only when Status is StatusRegistered.
type Registration struct {
	Status       Status
	Citizen      *Citizen
	RegisteredAt time.Time
}

// Unregistered is the state of every ID that has not been registered.
func Unregistered() Registration {
	return Registration{Status: StatusUnregistered}
}

// Registered builds the state of a successfully registered citizen.
func Registered(c Citizen, at time.Time) Registration {
	return Registration{Status: StatusRegistered, Citizen: &c, RegisteredAt: at}
}

func (r Registration) IsRegistered() bool {
	return r.Status == StatusRegistered
}
