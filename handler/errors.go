package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse indicates a handler returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError carries a status code and a client-safe message.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Code)
}

// NewHTTPError returns an HTTPError with the status text as default message.
func NewHTTPError(code int, message string) HTTPError {
	if message == "" {
		message = http.StatusText(code)
	}
	return HTTPError{Code: code, Message: message}
}

var (
	ErrMethodNotAllowed = NewHTTPError(http.StatusMethodNotAllowed, "Method not allowed")
	ErrNotFound         = NewHTTPError(http.StatusNotFound, "Not found")
)
