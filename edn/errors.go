package edn

import (
	"errors"
	"fmt"

	"xdao.co/edn/parse"
)

// ErrKind is a stable category for programmatic error handling.
//
// Callers should branch on ErrKind rather than matching error strings.
// Error() strings are intentionally human-readable and may evolve; use
// errors.As to extract *Error for structured handling.
type ErrKind string

const (
	ErrParse    ErrKind = "Parse"    // malformed EDN text
	ErrSyntax   ErrKind = "Syntax"   // well-formed text violating a structural rule
	ErrTag      ErrKind = "Tag"      // a registered tag reader failed
	ErrRender   ErrKind = "Render"   // the value has no canonical wire form
	ErrInternal ErrKind = "Internal"
)

// Error is the package's structured error type.
//
// Pos is the source position the error applies to, or the zero Pos when no
// position is meaningful (e.g. rendering failures).
type Error struct {
	Kind    ErrKind
	Pos     parse.Pos
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Pos != (parse.Pos{}) {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind ErrKind, pos parse.Pos, msg string) error {
	return &Error{Kind: kind, Pos: pos, Message: msg}
}

func wrapError(kind ErrKind, pos parse.Pos, msg string, cause error) error {
	if cause == nil {
		return newError(kind, pos, msg)
	}
	return &Error{Kind: kind, Pos: pos, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given kind.
func IsKind(err error, kind ErrKind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
