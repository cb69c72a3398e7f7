// Package apierror defines the error type returned by the birdlog HTTP API
// and constructors for the error instances the API can produce.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an error carried to the HTTP boundary. It knows the status code
// it should be rendered with and a stable machine-readable code.
type Error interface {
	error

	HTTPCode() int
	Code() string
	ShortMessage() string
	LongMessage() string
	Cause() error
}

type apiError struct {
	httpCode     int
	code         string
	shortMessage string
	longMessage  string
	cause        error
}

func (e *apiError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.shortMessage, e.cause)
	}
	return e.shortMessage
}

func (e *apiError) HTTPCode() int        { return e.httpCode }
func (e *apiError) Code() string         { return e.code }
func (e *apiError) ShortMessage() string { return e.shortMessage }
func (e *apiError) LongMessage() string  { return e.longMessage }
func (e *apiError) Cause() error         { return e.cause }

func (e *apiError) Unwrap() error { return e.cause }

// New creates an Error with the given HTTP status, code and messages.
func New(httpCode int, code, shortMessage, longMessage string) Error {
	return &apiError{
		httpCode:     httpCode,
		code:         code,
		shortMessage: shortMessage,
		longMessage:  longMessage,
	}
}

// As unwraps err into an Error, reporting whether it is one.
func As(err error) (Error, bool) {
	var apiErr *apiError
	if ok := errors.As(err, &apiErr); ok {
		return apiErr, true
	}
	return nil, false
}

// IsInternal reports whether the error renders as a 5xx response.
func IsInternal(err Error) bool {
	if err == nil {
		return false
	}
	return err.HTTPCode() >= http.StatusInternalServerError
}

// Unexpected wraps an unclassified failure into a 500 response. The cause
// is kept for logging but never rendered to the client.
func Unexpected(cause error) Error {
	return &apiError{
		httpCode:     http.StatusInternalServerError,
		code:         "internal_error",
		shortMessage: "Internal error",
		longMessage:  "An internal error occurred. Please try again later.",
		cause:        cause,
	}
}
