package api

import (
	"errors"
	"fmt"
)

// ErrNoResponse means the request never produced an HTTP response: dial
// failure, timeout, cancellation or an unusable URL
var ErrNoResponse = errors.New("no response from server")

// ErrReadContent means the local content could not be read, no request was sent
var ErrReadContent = errors.New("failed to read upload content")

// StatusError is returned when the server answered with a non-2xx status
type StatusError struct {
	StatusCode int
	Message    string // "message" field of the JSON body
	HasMessage bool   // false if the body was not JSON or had no message
}

func (e *StatusError) Error() string {
	if !e.HasMessage {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

// MessageOr returns the server message, or fallback when there is none
func (e *StatusError) MessageOr(fallback string) string {
	if e.HasMessage && e.Message != "" {
		return e.Message
	}
	return fallback
}

// AsStatusError unwraps err into a *StatusError
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
