package csvloader

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedQuoting is the category of every quoting failure. Use errors.Is to test for it.
	ErrMalformedQuoting = errors.New("csvloader: quoting rules violated")
	// ErrAllocationFailure is returned when the scratch buffer cannot grow to the size a field needs.
	ErrAllocationFailure = errors.New("csvloader: memory allocation failed")

	// ErrBareQuote is returned when a quote appears after the first byte of an unquoted field.
	ErrBareQuote = fmt.Errorf("%w: bare quote in non-quoted field", ErrMalformedQuoting)
	// ErrExtraneousData is returned when bytes follow the closing quote of a quoted field.
	ErrExtraneousData = fmt.Errorf("%w: extraneous data after closing quote", ErrMalformedQuoting)
	// ErrUnterminatedQuote is returned when the input ends inside a quoted field.
	ErrUnterminatedQuote = fmt.Errorf("%w: unterminated quoted field", ErrMalformedQuoting)
)

// ParseError contains location information for loading errors.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

// Error formats the parse error message with the stored line, column, and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("csvloader: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
