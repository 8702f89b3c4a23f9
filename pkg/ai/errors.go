package ai

import "errors"

// ErrEmptyResponse is returned when the reply carries no choices.
var ErrEmptyResponse = errors.New("no response received")

// APIRequestError wraps a transport, HTTP status or decoding failure of the
// chat-completion call.
type APIRequestError struct {
	StatusCode int // 0 when no HTTP response was received
	Cause      error
}

func (e *APIRequestError) Error() string {
	if e.Cause == nil {
		return "api request failed"
	}
	return "api request failed: " + e.Cause.Error()
}

func (e *APIRequestError) Unwrap() error {
	return e.Cause
}
