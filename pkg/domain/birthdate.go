package domain

import (
	"strings"
	"time"

	"wcg/pkg/citizen"
	dErrors "wcg/pkg/domain-errors"
)

// birthDateLayouts are the accepted day-month-year spellings, tried in order.
var birthDateLayouts = []string{
	"2 Jan 2006",
	"2 January 2006",
	"02-01-2006",
	"2-1-2006",
	"02/01/2006",
	"2/1/2006",
}

// ParseBirthDate parses a day-month-year birth date such as "15 Jan 1990" or
// "12-04-2014". The result is midnight UTC on that day.
func ParseBirthDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range birthDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, dErrors.Wrap(lastErr, dErrors.CodeInvalidBirthDate, citizen.FeedbackInvalidBirthDate)
}
