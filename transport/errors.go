package transport

import "fmt"

// Error reports a transport-level failure: the request never produced
// an HTTP response. It is returned in place of a Response, never
// panicked or raised past the adapter boundary.
type Error struct {
	Method   string
	Endpoint string
	Err      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("transport: %s %s: %v", e.Method, e.Endpoint, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}
