package figdoc

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECONFLICT     = "conflict"
	EDECODE       = "decode"
	EINTERNAL     = "internal"
	EINVALID      = "invalid"
	ENOTFOUND     = "not_found"
	ERATELIMIT    = "rate_limit"
	EUNAUTHORIZED = "unauthorized"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("figdoc error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Decode failures report EDECODE. Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return EDECODE
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr.Error()
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// DecodeError reports a field that is present in the source JSON but has
// the wrong shape. Path is the JSON path of the offending field, e.g.
// "document.children[0].absoluteBoundingBox".
type DecodeError struct {
	Path  string
	Cause string
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Path == "" {
		return "failed to decode figma file: " + e.Cause
	}
	return fmt.Sprintf("failed to decode figma file at path '%s': %s", e.Path, e.Cause)
}
