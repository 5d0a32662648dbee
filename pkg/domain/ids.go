// Package domain holds the registration rules applied at trust boundaries.
package domain

import (
	"wcg/pkg/citizen"
	dErrors "wcg/pkg/domain-errors"
)

// CitizenIDLength is the number of digits in a national citizen ID.
const CitizenIDLength = 13

// CitizenID is a validated 13-digit national identifier.
type CitizenID string

// ParseCitizenID accepts exactly CitizenIDLength ASCII digits.
func ParseCitizenID(s string) (CitizenID, error) {
	if len(s) != CitizenIDLength {
		return "", dErrors.New(dErrors.CodeInvalidCitizenID, citizen.FeedbackInvalidCitizenID)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", dErrors.New(dErrors.CodeInvalidCitizenID, citizen.FeedbackInvalidCitizenID)
		}
	}
	return CitizenID(s), nil
}

func (id CitizenID) String() string { return string(id) }
