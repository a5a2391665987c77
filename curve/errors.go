package curve

import (
	"errors"
	"fmt"
)

// Kind is a stable category for programmatic error handling.
//
// Callers should branch on Kind rather than matching error strings;
// Error() strings are human-readable and may evolve.
type Kind string

const (
	KindNonPositiveSegmentLength Kind = "NonPositiveSegmentLength"
	KindSegmentOverflow          Kind = "SegmentOverflow"
	KindNonIncreasingBound       Kind = "NonIncreasingBound"
)

// Error is a structured curve-encoding violation.
//
// Cursor is the flat-array index the walk was at when the violation was
// detected (the segment start for length/overflow failures, the end-bound
// index for ordering failures).
type Error struct {
	Kind    Kind
	Cursor  int64
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "curve: " + e.Message
}

func newError(kind Kind, cursor int64, format string, args ...any) error {
	return &Error{Kind: kind, Cursor: cursor, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
