package service

import (
	"fmt"
	"net/http"
)

// Error standardizes domain errors handlers can map to a response.
type Error struct {
	Status  int
	Code    string
	Message string
	// Fields carries every violated field message for validation errors,
	// not just the first.
	Fields []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newValidationError(fields []string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: "validation_error", Message: "Validation failed", Fields: fields}
}

func newUnauthorizedError(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: "unauthorized", Message: message}
}

func newNotFoundError(message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: "not_found", Message: message}
}

func newConflictError(message string) *Error {
	return &Error{Status: http.StatusConflict, Code: "conflict", Message: message}
}

func newBadRequestError(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: "bad_request", Message: message}
}

func newUpstreamError(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: "upstream_failure", Message: message}
}
