package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by a Backend when the slot holds no data.
var ErrNotFound = errors.New("storage slot is empty")

// WriteError wraps a failure to encode or write a snapshot. The in-memory
// state is still correct; it is just not durable yet.
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("persist snapshot %q: %v", e.Key, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// ReadError wraps a failure to read or decode a snapshot. Callers treat it
// as "no prior state".
type ReadError struct {
	Key string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("load snapshot %q: %v", e.Key, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
