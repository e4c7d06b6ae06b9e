package llm

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx LLM API response.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("LLM API error: status %d: %s", e.Status, e.Body)
}

// StatusCode extracts the HTTP status from err, or 0 when err is not
// an APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}

	return 0
}
