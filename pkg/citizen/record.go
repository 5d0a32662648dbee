// Package citizen builds the flat citizen records submitted to the registration API.
package citizen

import "net/url"

// Form field names, in the order a record lists them.
const (
	FieldCitizenID  = "citizen_id"
	FieldName       = "name"
	FieldSurname    = "surname"
	FieldBirthDate  = "birth_date"
	FieldOccupation = "occupation"
	FieldAddress    = "address"
)

// FieldNames lists every record field in documented order.
var FieldNames = []string{
	FieldCitizenID,
	FieldName,
	FieldSurname,
	FieldBirthDate,
	FieldOccupation,
	FieldAddress,
}

// Record is one citizen as submitted over the wire. Values are carried verbatim;
// empty strings and malformed dates are allowed so callers can exercise server-side
// validation.
type Record struct {
	CitizenID  string
	Name       string
	Surname    string
	BirthDate  string
	Occupation string
	Address    string
}

// Field is a single name/value pair of a record.
type Field struct {
	Name  string
	Value string
}

// New assigns the six positional values to their named fields. It never fails.
func New(citizenID, name, surname, birthDate, occupation, address string) Record {
	return Record{
		CitizenID:  citizenID,
		Name:       name,
		Surname:    surname,
		BirthDate:  birthDate,
		Occupation: occupation,
		Address:    address,
	}
}

// Fields returns the record's pairs in FieldNames order.
func (r Record) Fields() []Field {
	return []Field{
		{Name: FieldCitizenID, Value: r.CitizenID},
		{Name: FieldName, Value: r.Name},
		{Name: FieldSurname, Value: r.Surname},
		{Name: FieldBirthDate, Value: r.BirthDate},
		{Name: FieldOccupation, Value: r.Occupation},
		{Name: FieldAddress, Value: r.Address},
	}
}

// Form returns the form encoding of the record. Empty values are kept so the
// server sees the field as present but blank.
func (r Record) Form() url.Values {
	form := make(url.Values, len(FieldNames))
	for _, f := range r.Fields() {
		form.Set(f.Name, f.Value)
	}
	return form
}

// FromForm reads a record back from form values. Absent fields become empty strings.
func FromForm(form url.Values) Record {
	return New(
		form.Get(FieldCitizenID),
		form.Get(FieldName),
		form.Get(FieldSurname),
		form.Get(FieldBirthDate),
		form.Get(FieldOccupation),
		form.Get(FieldAddress),
	)
}

// MissingFields returns the names of fields whose value is empty.
func (r Record) MissingFields() []string {
	var missing []string
	for _, f := range r.Fields() {
		if f.Value == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}
