package model

import "errors"

// Common errors used across the application. Engine-level guards (blocked
// moves, exhausted wall kicks, wrong game status) are boolean no-ops, not
// errors; these cover the serving surface only.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidIntent   = errors.New("invalid intent")
)
