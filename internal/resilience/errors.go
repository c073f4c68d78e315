package resilience

import (
	"errors"
	"fmt"

	"github.com/rotisserie/eris"
)

// ErrUpstreamExhausted matches any *UpstreamExhaustedError via errors.Is.
var ErrUpstreamExhausted = eris.New("upstream exhausted")

// UpstreamExhaustedError reports that every allowed attempt failed.
type UpstreamExhaustedError struct {
	Op       string
	Attempts int
	Err      error
}

func (e *UpstreamExhaustedError) Error() string {
	return fmt.Sprintf("%s: upstream exhausted after %d attempts: %v", e.Op, e.Attempts, e.Err)
}

func (e *UpstreamExhaustedError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrUpstreamExhausted) match.
func (e *UpstreamExhaustedError) Is(target error) bool {
	return target == ErrUpstreamExhausted
}

// permanentError marks a failure that retrying cannot fix, such as a
// rejected API key.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not retryable. A nil err stays nil.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err or any error it wraps was marked
// Permanent.
func IsPermanent(err error) bool {
	var pe *permanentError
	return errors.As(err, &pe)
}

// IsTransientHTTPStatus returns true if the HTTP status code indicates a
// server-side or throttling issue that is safe to retry.
func IsTransientHTTPStatus(statusCode int) bool {
	switch statusCode {
	case 408, // Request Timeout
		429, // Too Many Requests
		500, // Internal Server Error
		502, // Bad Gateway
		503, // Service Unavailable
		504, // Gateway Timeout
		529: // Overloaded
		return true
	default:
		return false
	}
}
