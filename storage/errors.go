package storage

import "errors"

// Sentinel errors shared by every CAS backend holding canonical EDN
// document bytes. Backends return these directly so callers can branch
// with errors.Is regardless of which backend served the call.
var (
	// ErrNotFound reports that no document is stored under the CID.
	ErrNotFound = errors.New("storage: not found")
	// ErrInvalidCID reports an undefined or malformed CID.
	ErrInvalidCID = errors.New("storage: invalid cid")
	// ErrCIDMismatch reports stored bytes that no longer hash to their CID.
	ErrCIDMismatch = errors.New("storage: cid mismatch")
	// ErrImmutable reports an attempt to overwrite a stored document with
	// different bytes under the same CID.
	ErrImmutable = errors.New("storage: immutable object mismatch")
)

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
