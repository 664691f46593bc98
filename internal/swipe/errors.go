package swipe

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable reports a failed or cancelled store read/write.
	// Callers may retry; the engine never does.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrInvalidState reports a decision for a profile that is not the
	// current queue head.
	ErrInvalidState = errors.New("invalid state")

	// ErrNotFound reports a profile id absent from the store.
	ErrNotFound = errors.New("not found")
)

// ErrorKind classifies an error for the presentation layer.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindStoreUnavailable
	KindInvalidState
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindStoreUnavailable:
		return "store_unavailable"
	case KindInvalidState:
		return "invalid_state"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// KindOf maps err onto the error taxonomy. Context cancellation and
// deadlines count as store unavailability.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidState):
		return KindInvalidState
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrStoreUnavailable),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return KindStoreUnavailable
	default:
		return KindUnknown
	}
}

// Unavailable wraps a store failure so errors.Is(err, ErrStoreUnavailable)
// holds while the cause stays inspectable.
func Unavailable(op string, cause error) error {
	if cause == nil {
		return nil
	}
	if errors.Is(cause, ErrStoreUnavailable) || errors.Is(cause, ErrNotFound) {
		return cause
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, cause)
}
