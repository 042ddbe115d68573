package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable     = errors.New("backend unavailable")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrConflict        = errors.New("already exists")
	ErrInvalidResponse = errors.New("invalid response")
)

// StatusError is returned for non-2xx statuses without a sentinel.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}
