package repository

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse is returned when the backend answers with a body
// that cannot be decoded into the expected shape.
var ErrMalformedResponse = errors.New("malformed backend response")

// ErrNotFound is returned when the backend has no data for the request.
var ErrNotFound = errors.New("not found")

// StatusError is returned when the backend answers with a non-OK status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("received non-OK response from backend: %d - %s", e.StatusCode, e.Body)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == 404
}
