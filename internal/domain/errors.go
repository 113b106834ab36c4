package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing import source, program or episode.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals that a direct mutation would violate a uniqueness
	// invariant, e.g. duplicating an episode number within a program.
	ErrConflict = errors.New("conflict")

	// ErrNoAdapter signals that no adapter is registered for a source type.
	// This is a configuration problem and is never retried.
	ErrNoAdapter = errors.New("no adapter registered")
)

// AdapterError wraps a failure while fetching from an external source. The
// sync that hit it aborts without committing anything; the job layer may
// retry the whole sync later.
type AdapterError struct {
	SourceType SourceType
	Err        error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("adapter %s: %v", e.SourceType, e.Err)
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}
