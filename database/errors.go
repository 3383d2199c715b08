package database

import "errors"

// Sentinel errors shared by the repositories. Callers match them with errors.Is.
var (
	ErrNotFound = errors.New("document not found")
	ErrConflict = errors.New("conditional write did not match")
)
