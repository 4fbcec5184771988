// Package apperr provides the standardized error taxonomy used across
// services and handlers.
package apperr

import (
	"errors"
	"net/http"
)

// Code classifies an application error.
type Code string

const (
	CodeValidation       Code = "VALIDATION_FAILED"
	CodeNotAuthenticated Code = "NOT_AUTHENTICATED"
	CodeNotAuthorized    Code = "NOT_AUTHORIZED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeConflict         Code = "CONFLICT"
	CodeInternal         Code = "INTERNAL"
)

// Error is a coded application error with a caller-facing message.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Cause.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// HTTPStatus maps the error code onto the response status. Business-rule
// conflicts surface as 400, matching the public API contract.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeValidation, CodeConflict:
		return http.StatusBadRequest
	case CodeNotAuthenticated:
		return http.StatusUnauthorized
	case CodeNotAuthorized:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

func NotAuthenticated(msg string) *Error {
	return &Error{Code: CodeNotAuthenticated, Message: msg}
}

func NotAuthorized(msg string) *Error {
	return &Error{Code: CodeNotAuthorized, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Code: CodeConflict, Message: msg}
}

func Internal(msg string, cause error) *Error {
	return &Error{Code: CodeInternal, Message: msg, Cause: cause}
}

// As extracts an *Error from err, or wraps err as an internal error.
func As(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal("internal server error", err)
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == code
}
