package gymspace

import (
	"errors"
	"fmt"
)

// ErrInvalidSpace is returned, wrapped in a *SpaceError, by every space
// constructor when the declared bounds or shape are inconsistent:
// inverted bounds, zero-sized domains, or an upper bound that
// overflows the element type.
var ErrInvalidSpace = errors.New("invalid space")

// SpaceError describes why a space could not be constructed
type SpaceError struct {
	// Op is the constructor that failed, e.g. "newDiscrete"
	Op string

	// Index is the flat index of the offending element, or -1 when
	// the error does not concern a single element
	Index int

	Msg string
}

func newSpaceError(op string, index int, msg string) *SpaceError {
	return &SpaceError{Op: op, Index: index, Msg: msg}
}

func (e *SpaceError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%v: %v: %v (at index %v)", e.Op, ErrInvalidSpace,
			e.Msg, e.Index)
	}
	return fmt.Sprintf("%v: %v: %v", e.Op, ErrInvalidSpace, e.Msg)
}

// Unwrap allows errors.Is(err, ErrInvalidSpace)
func (e *SpaceError) Unwrap() error {
	return ErrInvalidSpace
}
