package errors

import "net/http"

// HTTPError is a delivery-layer error carrying the status to respond with.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, msg string) *HTTPError {
	return &HTTPError{StatusCode: code, Message: msg}
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
	ErrRequestTooLarge     = NewHTTPError(http.StatusRequestEntityTooLarge, "Request body too large")
	ErrBadGateway          = NewHTTPError(http.StatusBadGateway, "Upstream unavailable")
)

// NewBadRequest wraps a binding/parsing failure as a 400.
func NewBadRequest(msg string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, msg)
}
