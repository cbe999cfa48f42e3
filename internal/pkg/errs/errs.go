// Package errs is the error construction surface for the module. It wraps
// cockroachdb/errors so call sites get stack capture and sentinel marking
// without importing the library directly.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

// New returns a stack-annotated error with the given message.
func New(msg string) error {
	return cr.New(msg)
}

// Wrap annotates err with msg, preserving its chain. Returns nil for nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches sentinel to err so errors.Is(err, sentinel) holds while the
// original cause stays readable. A nil err yields the sentinel itself.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(err, sentinel)
}
