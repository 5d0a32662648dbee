package sentinel

import "errors"

// Sentinel dependency errors. Stores return these (optionally wrapped) so the
// registration service translates them into domain errors exactly once.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)
