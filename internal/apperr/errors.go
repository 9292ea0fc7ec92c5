package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRecordNotFound is returned by repositories when a row does not exist
// for the requesting user.
var ErrRecordNotFound = errors.New("record not found")

// ErrDuplicate is returned by repositories when a unique constraint rejects
// a write.
var ErrDuplicate = errors.New("record already exists")

// Code identifies the kind of failure independent of the transport.
type Code string

const (
	CodeValidation            Code = "VALIDATION"             // 400
	CodeUnauthorized          Code = "UNAUTHORIZED"           // 401
	CodeNotFound              Code = "NOT_FOUND"              // 404
	CodeConflict              Code = "CONFLICT"               // 409
	CodePersistence           Code = "PERSISTENCE"            // 500
	CodeGenerationUnavailable Code = "GENERATION_UNAVAILABLE" // 503
)

// Error is a structured error carrying a code, the status a transport should
// answer with and an optional cause.
type Error struct {
	Code    Code
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NewValidation reports input the caller has to fix.
func NewValidation(msg string) *Error {
	return &Error{Code: CodeValidation, Status: http.StatusBadRequest, Message: msg}
}

func NewUnauthorized(msg string) *Error {
	return &Error{Code: CodeUnauthorized, Status: http.StatusUnauthorized, Message: msg}
}

// NewNotFound reports a missing record. The message never distinguishes
// "absent" from "owned by someone else".
func NewNotFound(what string) *Error {
	return &Error{Code: CodeNotFound, Status: http.StatusNotFound, Message: what + " not found"}
}

func NewConflict(msg string) *Error {
	return &Error{Code: CodeConflict, Status: http.StatusConflict, Message: msg}
}

// NewPersistence wraps a store failure. These are surfaced as-is and never
// retried silently.
func NewPersistence(err error) *Error {
	return &Error{Code: CodePersistence, Status: http.StatusInternalServerError, Message: "storage failure", Err: err}
}

// NewGenerationUnavailable reports that the generation service could not
// produce a usable result. Clients may retry later.
func NewGenerationUnavailable(msg string) *Error {
	return &Error{Code: CodeGenerationUnavailable, Status: http.StatusServiceUnavailable, Message: msg}
}

// NewCanceled reports a request whose context ended before generation
// finished. It unwraps to the context error.
func NewCanceled(err error) *Error {
	return &Error{
		Code:    CodeGenerationUnavailable,
		Status:  http.StatusServiceUnavailable,
		Message: "request canceled before generation finished",
		Err:     err,
	}
}

// Is reports whether err (or anything it wraps) is an *Error with the given code.
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// StatusOf returns the transport status for err, 500 for unknown errors.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns a message safe to show to end users.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		if appErr.Code == CodePersistence {
			return "internal error"
		}
		return appErr.Message
	}
	return "internal error"
}

// CodeOf returns the code of err, CodePersistence for unknown errors.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodePersistence
}
