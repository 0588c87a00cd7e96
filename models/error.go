package models

import "fmt"

// APIError represents an unsuccessful API interaction. StatusCode is
// the HTTP status of the error response, or 0 for failures synthesized
// on the client side (poll timeout, sandbox reached failed status)
// where no HTTP response exists.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("d2c api error (status %d): %s", e.StatusCode, e.Detail)
}

// ClientSide reports whether the error was synthesized locally rather
// than received from the API.
func (e *APIError) ClientSide() bool {
	return e.StatusCode == 0
}
