package core

import (
	"errors"
	"fmt"
)

// ErrCodeRequired is returned when a submission contains no code after
// trimming whitespace. It maps to HTTP 400.
var ErrCodeRequired = errors.New("code is required in request body")

// UpstreamError wraps a failure from the model provider.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("model provider: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a failure from the review store.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("review store: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
