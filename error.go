package cjkdoc

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"

	// EPATHESCAPE means an archive member would be extracted outside the
	// working tree.
	EPATHESCAPE = "path_escape"

	// EUNSUPPORTED means the format tag is unknown or its profile selected
	// no members.
	EUNSUPPORTED = "unsupported_format"

	// ENOFRAGMENTS means none of the selected members existed in the archive.
	ENOFRAGMENTS = "no_fragments"

	// EMISSINGMIMETYPE means an EPUB working tree has no top-level mimetype.
	EMISSINGMIMETYPE = "missing_mimetype"

	// EARCHIVEWRITE means the output archive could not be written.
	EARCHIVEWRITE = "archive_write"

	// ECLEANUP means a working tree could not be fully removed. It is only
	// ever reported as a warning.
	ECLEANUP = "cleanup"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("cjkdoc error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return the underlying error text.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
