package core

import (
	"errors"
	"fmt"
)

// Code categorizes a failure so scripts can react to it without parsing messages.
type Code string

const (
	CodeToolNotFound     Code = "tool_not_found"
	CodeManifestNotFound Code = "manifest_not_found"
	CodeManifestParse    Code = "manifest_parse"
	CodeNotPinned        Code = "not_pinned"
	CodeNotDeclared      Code = "not_declared"
	CodeWrongTool        Code = "wrong_tool"
	CodeVersionMismatch  Code = "version_mismatch"
	CodeMalformedVersion Code = "malformed_version"
	CodeAlreadyCurrent   Code = "already_current"
	CodePersist          Code = "persist"
	CodeDrift            Code = "drift"
	CodeAborted          Code = "aborted"
	CodeConfig           Code = "config"
)

// exitCodes maps each Code to the process exit status. 1 is left for
// errors that carry no Code (flag parsing, unexpected failures).
var exitCodes = map[Code]int{
	CodeToolNotFound:     10,
	CodeManifestNotFound: 11,
	CodeManifestParse:    12,
	CodeNotPinned:        13,
	CodeNotDeclared:      14,
	CodeWrongTool:        15,
	CodeVersionMismatch:  16,
	CodeMalformedVersion: 17,
	CodeAlreadyCurrent:   18,
	CodePersist:          19,
	CodeDrift:            20,
	CodeAborted:          21,
	CodeConfig:           22,
}

// ExitCode returns the exit status for c.
func (c Code) ExitCode() int {
	if n, ok := exitCodes[c]; ok {
		return n
	}
	return 1
}

// Error is a coded pnpmsync failure.
type Error struct {
	Code    Code
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	switch {
	case msg == "" && e.Err != nil:
		msg = e.Err.Error()
	case msg != "" && e.Err != nil:
		msg = msg + ": " + e.Err.Error()
	case msg == "":
		msg = string(e.Code)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s (%s)", msg, e.Path)
	}
	return msg
}

// Unwrap exposes the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same Code.
// This lets callers write errors.Is(err, core.ErrNotPinned).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && t.Path == "" && t.Message == "" && t.Err == nil
}

// NewError builds a coded error with a formatted message.
func NewError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapError attaches a code and message to err.
func WrapError(code Code, err error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// WithPath returns a copy of e that names the file it concerns.
func (e *Error) WithPath(path string) *Error {
	c := *e
	c.Path = path
	return &c
}

// Sentinels for errors.Is comparisons.
var (
	ErrToolNotFound     = &Error{Code: CodeToolNotFound}
	ErrManifestNotFound = &Error{Code: CodeManifestNotFound}
	ErrManifestParse    = &Error{Code: CodeManifestParse}
	ErrNotPinned        = &Error{Code: CodeNotPinned}
	ErrNotDeclared      = &Error{Code: CodeNotDeclared}
	ErrWrongTool        = &Error{Code: CodeWrongTool}
	ErrVersionMismatch  = &Error{Code: CodeVersionMismatch}
	ErrMalformedVersion = &Error{Code: CodeMalformedVersion}
	ErrAlreadyCurrent   = &Error{Code: CodeAlreadyCurrent}
	ErrPersist          = &Error{Code: CodePersist}
	ErrDrift            = &Error{Code: CodeDrift}
	ErrAborted          = &Error{Code: CodeAborted}
	ErrConfig           = &Error{Code: CodeConfig}
)

// CodeOf returns the Code carried by err, or "" when err has none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// ExitCode returns the process exit status for err: 0 for nil, the coded
// status for an *Error and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return CodeOf(err).ExitCode()
}
