package repository

import "errors"

// Store failure taxonomy. Concrete repositories wrap these with %w so
// handlers can translate with errors.Is without knowing the driver.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("already exists")
	ErrUnavailable = errors.New("store unavailable")
)
