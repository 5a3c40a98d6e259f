package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSession is returned when a call needs an e-mail and none is signed in
	ErrNoSession = errors.New("no signed-in user")

	// ErrCouldNotRetrieve is returned for any non-success weather response
	ErrCouldNotRetrieve = errors.New("could not retrieve weather data")

	// ErrMalformedResponse is returned when the body lacks expected fields
	ErrMalformedResponse = errors.New("malformed weather response")
)

// APIError carries a non-success status and the server's {"error": ...} text
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Message)
}
