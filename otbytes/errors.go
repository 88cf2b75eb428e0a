package otbytes

import "fmt"

// ErrorKind partitions decode failures into the two classes callers may
// encounter. A bounds failure means a read would have crossed the buffer
// boundary; a validation failure means the bytes were readable but their
// bits match no recognized variant of the target type.
type ErrorKind int

const (
	// KindBounds indicates a read outside the buffer.
	KindBounds ErrorKind = iota
	// KindValidation indicates readable bytes with unrecognized content.
	KindValidation
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindBounds:
		return "BOUNDS"
	case KindValidation:
		return "VALIDATION"
	default:
		return "UNKNOWN"
	}
}

// DecodeError represents a failed read from a binary buffer.
// Both failure classes are recoverable; no decode path in this package will
// terminate the process on untrusted input.
type DecodeError struct {
	Kind   ErrorKind // failure class
	What   string    // what was being decoded (type or operation name)
	Issue  string    // human-readable description of the issue
	Offset int       // byte offset within the buffer, -1 if unknown
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("[%s] %s at offset %d: %s", e.Kind, e.What, e.Offset, e.Issue)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Kind, e.What, e.Issue)
}

// IsBounds reports whether err is a boundary violation.
func IsBounds(err error) bool {
	if de, ok := err.(*DecodeError); ok {
		return de.Kind == KindBounds
	}
	return false
}

// IsValidation reports whether err is a content validation failure.
func IsValidation(err error) bool {
	if de, ok := err.(*DecodeError); ok {
		return de.Kind == KindValidation
	}
	return false
}

// boundsError records a read of n bytes at offset against a buffer of size
// have.
func boundsError(offset, n, have int) *DecodeError {
	return &DecodeError{
		Kind:   KindBounds,
		What:   "read",
		Issue:  fmt.Sprintf("%d bytes requested, buffer has %d", n, have),
		Offset: offset,
	}
}

// validationError records unrecognized content for a value of type what.
func validationError(what, issue string) *DecodeError {
	return &DecodeError{
		Kind:   KindValidation,
		What:   what,
		Issue:  issue,
		Offset: -1,
	}
}
