package battlenet

import (
	"errors"
	"fmt"
)

// Kind classifies a failed upstream call.
type Kind int

const (
	// KindFatal aborts the current run.
	KindFatal Kind = iota
	// KindTransient is retried by the client.
	KindTransient
	// KindNotFound lets callers skip a single unknown entity.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindTransient:
		return "transient"
	case KindNotFound:
		return "not_found"
	default:
		return "fatal"
	}
}

// Error is returned by every Client call that fails.
type Error struct {
	Kind     Kind
	Endpoint string
	// Status is the HTTP status, zero when no response was received.
	Status int
	// Body holds the beginning of the response body for diagnostics.
	Body string
	Err  error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("battlenet %s error on %s", e.Kind, e.Endpoint)
	if e.Status != 0 {
		msg += fmt.Sprintf(": status %d", e.Status)
	}
	if e.Body != "" {
		msg += " - " + e.Body
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the outermost *Error in err's chain.
// Errors that did not come from the client are fatal.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindFatal
}

// IsNotFound reports whether err is a NotFound error.
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

// IsTransient reports whether err is a Transient error.
func IsTransient(err error) bool {
	return err != nil && KindOf(err) == KindTransient
}
