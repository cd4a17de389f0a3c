package api

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError reports a non-2xx response from the scheduling service.
// Detail carries the service's "detail" field when present.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("service returned %d", e.Status)
	}
	return fmt.Sprintf("service returned %d: %s", e.Status, e.Detail)
}

// Validation reports whether the response was a semantic-validation
// rejection. The provisioning protocol retries creation exactly once when
// this is true.
func (e *StatusError) Validation() bool {
	return e.Status == http.StatusUnprocessableEntity
}

// IsValidation reports whether err wraps a 422 rejection.
func IsValidation(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Validation()
}
