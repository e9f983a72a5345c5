package errors

import "net/http"

// HTTPError is a domain error annotated with the HTTP status it maps to.
// Delivery layers construct these in mapError; pkg/response reads the
// status when rendering the envelope.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ErrInternalServerError is the generic 500 returned for unmapped failures.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
