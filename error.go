package scrapedocs

import (
	"errors"
	"fmt"
	"net/http"
)

// Application error codes.
const (
	ECLIENT      = "client"
	EINTERNAL    = "internal"
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EUNAVAILABLE = "unavailable"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("scrapedocs error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// StatusError is returned when a server answers with a non-200 status.
// A 4xx status indicates a caller-side mistake (bad package name or URL)
// and is the only failure surfaced as a hard error by the scraper.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// IsClientError reports whether the status is in the 4xx range.
func (e *StatusError) IsClientError() bool {
	return e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError
}

// IsClientError reports whether err wraps a *StatusError with a 4xx status.
func IsClientError(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.IsClientError()
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL, except status errors
// which map to ECLIENT for 4xx and EUNAVAILABLE otherwise.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var se *StatusError
	if errors.As(err, &se) {
		if se.IsClientError() {
			return ECLIENT
		}
		return EUNAVAILABLE
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.", except status
// errors which return their own text.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Error()
	}
	return "Internal error."
}
