// Package errors classifies fatal report-generation failures and maps them to exit codes.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Exit codes returned by the cukereport binary.
const (
	ExitSuccess     = 0
	ExitIOError     = 1
	ExitConfigError = 2
	ExitParseError  = 3
)

// Kind identifies the class of a fatal failure.
type Kind int

const (
	KindIO Kind = iota
	KindConfig
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindParse:
		return "parse"
	default:
		return "io"
	}
}

// Error is a fatal failure carrying the offending path when one is known.
type Error struct {
	Kind    Kind
	Message string
	Path    string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Path)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ExitCode returns the process exit code for this error.
func (e *Error) ExitCode() int {
	switch e.Kind {
	case KindConfig:
		return ExitConfigError
	case KindParse:
		return ExitParseError
	default:
		return ExitIOError
	}
}

// Config creates a configuration error naming path.
func Config(message, path string) *Error {
	return &Error{Kind: KindConfig, Message: message, Path: path}
}

// Configf creates a configuration error without a path.
func Configf(format string, args ...any) *Error {
	return &Error{Kind: KindConfig, Message: fmt.Sprintf(format, args...)}
}

// Parse wraps a decode or schema failure for path.
func Parse(path string, cause error) *Error {
	return &Error{Kind: KindParse, Message: "parse source", Path: path, Cause: cause}
}

// IO wraps a read or write failure for path.
func IO(message, path string, cause error) *Error {
	return &Error{Kind: KindIO, Message: message, Path: path, Cause: cause}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ExitCode returns the exit code for any error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.ExitCode()
	}
	return ExitIOError
}
