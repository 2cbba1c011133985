package errors

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrSessionNotFound   = errors.New("view session not found")
	ErrTooManySessions   = errors.New("too many view sessions")
	ErrSourceUnavailable = errors.New("order source unavailable")
	ErrInvalidPage       = errors.New("invalid page")
	ErrInvalidDirection  = errors.New("invalid sort direction")
)
