package testutil

import "wcg/pkg/citizen"

// The fixed test identity every conformance scenario resets before it runs.
const (
	DefaultCitizenID  = "1101101101101"
	DefaultName       = "Tester"
	DefaultSurname    = "Test"
	DefaultBirthDate  = "15 Jan 1990"
	DefaultOccupation = "Office worker"
	DefaultAddress    = "123/123 Test, Demo, Bangkok 10230"
)

// DefaultCitizen returns the well-formed fixed test identity.
func DefaultCitizen() citizen.Record {
	return citizen.New(DefaultCitizenID, DefaultName, DefaultSurname, DefaultBirthDate, DefaultOccupation, DefaultAddress)
}

// CitizenBuilder provides a fluent interface for building test records.
// It starts from DefaultCitizen so each test only states what it changes.
type CitizenBuilder struct {
	record citizen.Record
}

// NewCitizenBuilder creates a builder seeded with the default identity.
func NewCitizenBuilder() *CitizenBuilder {
	return &CitizenBuilder{record: DefaultCitizen()}
}

func (b *CitizenBuilder) WithCitizenID(v string) *CitizenBuilder {
	b.record.CitizenID = v
	return b
}

func (b *CitizenBuilder) WithName(v string) *CitizenBuilder {
	b.record.Name = v
	return b
}

func (b *CitizenBuilder) WithSurname(v string) *CitizenBuilder {
	b.record.Surname = v
	return b
}

func (b *CitizenBuilder) WithBirthDate(v string) *CitizenBuilder {
	b.record.BirthDate = v
	return b
}

func (b *CitizenBuilder) WithOccupation(v string) *CitizenBuilder {
	b.record.Occupation = v
	return b
}

func (b *CitizenBuilder) WithAddress(v string) *CitizenBuilder {
	b.record.Address = v
	return b
}

// Without blanks the named form field. Unknown names are ignored.
func (b *CitizenBuilder) Without(field string) *CitizenBuilder {
	switch field {
	case citizen.FieldCitizenID:
		b.record.CitizenID = ""
	case citizen.FieldName:
		b.record.Name = ""
	case citizen.FieldSurname:
		b.record.Surname = ""
	case citizen.FieldBirthDate:
		b.record.BirthDate = ""
	case citizen.FieldOccupation:
		b.record.Occupation = ""
	case citizen.FieldAddress:
		b.record.Address = ""
	}
	return b
}

func (b *CitizenBuilder) Build() citizen.Record {
	return b.record
}
