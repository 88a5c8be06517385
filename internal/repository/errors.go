package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that no record carries the requested identity.
var ErrNotFound = errors.New("record not found")

// PersistenceError wraps a backend failure (I/O, network, constraint, timeout).
type PersistenceError struct {
	Collection string
	Op         string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func persistenceError(collection, op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Collection: collection, Op: op, Err: err}
}

// IsPersistence reports whether err carries a backend failure.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
