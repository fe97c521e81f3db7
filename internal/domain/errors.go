package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and controllers.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError reports why a candidate record was rejected. Field names
// the offending attribute (or the first of an out-of-order date pair).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// PersistenceError wraps a failure of one persistence tier. Loads recover
// from it by falling through to the next tier; it only surfaces on save.
type PersistenceError struct {
	Tier Source
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence tier %s: %v", e.Tier, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
