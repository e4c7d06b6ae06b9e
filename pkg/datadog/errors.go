package datadog

import (
	"errors"
	"fmt"
)

var errRateLimited = errors.New("vendor client rate limiter rejected request")

// APIError is a non-2xx vendor response, carrying the status code and
// the raw response body.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("datadog API error: status %d: %s", e.Status, e.Body)
}

// IsNotFound reports whether err is a vendor 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 404
}

// StatusCode extracts the vendor HTTP status from err, or 0 when err
// is not an APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}

	return 0
}
