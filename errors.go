package gst

import (
	"errors"
	"fmt"
)

// Sentinel error kinds, checked with errors.Is against the values Put
// returns.
var (
	// ErrOutOfOrderID is wrapped by OutOfOrderError. Recoverable: the
	// rejected Put leaves the tree unchanged.
	ErrOutOfOrderID = errors.New("gst: id out of order")

	// ErrInvariantViolation is wrapped by InvariantViolationError. Fatal:
	// it indicates a bug in the construction algorithm, not a caller
	// mistake.
	ErrInvariantViolation = errors.New("gst: invariant violation")
)

// OutOfOrderError reports that Put was called with an id lower than the
// highest id previously accepted by the tree.
type OutOfOrderError struct {
	Key             string
	Got             int
	HighestAccepted int
}

func (e *OutOfOrderError) Error() string {
	return fmt.Sprintf("gst: put(%q, %d) rejected: highest accepted id is %d", e.Key, e.Got, e.HighestAccepted)
}

func (e *OutOfOrderError) Unwrap() error { return ErrOutOfOrderID }

// InvariantViolationError reports that an internal assertion of the
// construction algorithm failed. Its presence always indicates a bug,
// never caller misuse.
type InvariantViolationError struct {
	Op     string
	Detail string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("gst: invariant violation in %s: %s", e.Op, e.Detail)
}

func (e *InvariantViolationError) Unwrap() error { return ErrInvariantViolation }

// violate raises an InvariantViolationError through a panic. Put recovers
// this panic at its outermost frame so the violation reaches callers as a
// regular error instead of crashing the process.
func violate(op, detail string) {
	panic(&InvariantViolationError{Op: op, Detail: detail})
}
