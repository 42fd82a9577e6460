package errdef

import (
	"errors"
	"fmt"
)

// Code tags an error with the stage of the run that produced it.
type Code string

const (
	CodeUnknown          Code = "unknown"
	CodeUserInput        Code = "user-input"
	CodeArtifactConflict Code = "artifact-conflict"
	CodeIO               Code = "io"
	CodeInvariant        Code = "invariant"
	CodeConfig           Code = "config"
)

// ErrArtifactExists is wrapped by every artifact-conflict error.
var ErrArtifactExists = errors.New("already exists")

type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case e.Message != "":
		return e.Message
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a formatted error with the supplied code.
func New(code Code, format string, args ...any) error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Code: ensureCode(code), Message: msg}
}

// Wrap annotates err with a code and optional message, returning nil when err is nil.
func Wrap(code Code, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Code: ensureCode(code), Message: msg, Err: err}
}

// Exists reports a pre-existing core artifact at path.
func Exists(path string) error {
	return &Error{Code: CodeArtifactConflict, Message: path, Err: ErrArtifactExists}
}

// CodeOf extracts the outermost code from err.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// Is reports whether err carries code.
func Is(err error, code Code) bool {
	if err == nil {
		return false
	}
	return CodeOf(err) == code
}

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case Is(err, CodeUserInput):
		return 2
	default:
		return 1
	}
}

func ensureCode(code Code) Code {
	if code == "" {
		return CodeUnknown
	}
	return code
}
