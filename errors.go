package d2c

import (
	"errors"

	"github.com/dev2cloud/d2c-go/models"
)

// APIError is the structured error returned for unsuccessful API
// interactions. It is an alias for models.APIError so callers can
// match errors without importing the models package.
type APIError = models.APIError

// AsAPIError unwraps err as an *APIError. It matches both server
// error responses and client-synthesized failures (status code 0).
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
