package errors

import (
	stderr "errors"
	"fmt"
)

// StorageWriteError indicates that the durable settings medium could not be written.
type StorageWriteError struct {
	Collection string
	Err        error
}

// Error is an implementation of the error interface.
func (s *StorageWriteError) Error() string {
	return fmt.Sprintf("writing collection %q: %v", s.Collection, s.Err)
}

// Unwrap returns the underlying filesystem error.
func (s *StorageWriteError) Unwrap() error {
	return s.Err
}

// IsStorageWrite reports whether a StorageWriteError is part of the error chain.
func IsStorageWrite(e error) bool {
	var se *StorageWriteError
	return stderr.As(e, &se)
}

// UnknownCollectionError indicates a lookup against a collection key that is
// not one of the fixed, known identifiers. This is a programming error on the
// caller's side, not a runtime input.
type UnknownCollectionError struct {
	Collection string
}

// Error is an implementation of the error interface.
func (u *UnknownCollectionError) Error() string {
	return fmt.Sprintf("unknown settings collection %q", u.Collection)
}
