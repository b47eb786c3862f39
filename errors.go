package simdcsv

import (
	"errors"
	"fmt"
)

// Sentinel errors of the package. [FindIndexes] returns ErrUnterminatedQuote
// (wrapped in a [ParseError]); it never returns ErrAllocation.
var (
	// ErrUnterminatedQuote reports a document that ends inside a quoted
	// region.
	ErrUnterminatedQuote = errors.New("unterminated quoted field")

	// ErrAllocation reports that the structural index could not grow.
	ErrAllocation = errors.New("failed to allocate structural index")
)

// ParseError is an error tagged with the byte offset it was detected at.
type ParseError struct {
	Offset int   // Byte offset into the input buffer
	Err    error // Underlying error
}

// Error returns a formatted error message with location information.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

// Unwrap returns the underlying error for use with [errors.Is] and [errors.As].
func (e *ParseError) Unwrap() error {
	return e.Err
}
