package vlist

import (
	"errors"
	"fmt"
)

// All errors are synchronous, non-retryable contract violations raised to
// the immediate caller; a failed operation leaves the list in its previous
// valid state. Match with errors.Is.
var (
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrInvalidValue     = errors.New("invalid value")
	ErrUnknownName      = errors.New("unknown named value")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrDuplicateName    = errors.New("duplicate name")
)

// IndexError reports an index argument outside the valid range for the
// current count. It unwraps to ErrIndexOutOfBounds.
type IndexError struct {
	Index int
	Count int
}

func indexErr(index, count int) error {
	return &IndexError{index, count}
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of bounds for %d values", e.Index, e.Count)
}

// NameError wraps a name-related failure (duplicate name, unknown value,
// or kind mismatch) with the name and requested kind.
type NameError struct {
	Name string
	Kind Kind
	Err  error
}

func nameErr(name string, kind Kind, err error) error {
	return &NameError{name, kind, err}
}

func (e *NameError) Unwrap() error {
	return e.Err
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%q (%v): %v", e.Name, e.Kind, e.Err)
}
