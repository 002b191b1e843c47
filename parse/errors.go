package parse

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is the umbrella for every malformed-input condition.
	ErrFormat = errors.New("parse: malformed input")

	// ErrTooFewLines indicates an input with fewer than two lines.
	ErrTooFewLines = fmt.Errorf("%w: input must contain two lines", ErrFormat)

	// ErrUnexpectedChar indicates a character outside the grammar.
	ErrUnexpectedChar = fmt.Errorf("%w: unexpected character", ErrFormat)

	// ErrUnclosedTuple indicates a '(' without a matching ')'.
	ErrUnclosedTuple = fmt.Errorf("%w: unclosed tuple", ErrFormat)

	// ErrEmptyElement indicates "()" or an empty slot such as "(1,,2)".
	ErrEmptyElement = fmt.Errorf("%w: empty tuple element", ErrFormat)

	// ErrBadNumber indicates an element that is not a valid float.
	ErrBadNumber = fmt.Errorf("%w: invalid number", ErrFormat)

	// ErrFileNotFound indicates that the input path does not exist.
	ErrFileNotFound = errors.New("parse: input file not found")
)

// columnErrorf attaches a 1-based column and the offending text to err.
func columnErrorf(col int, text string, err error) error {
	if text == "" {
		return fmt.Errorf("column %d: %w", col, err)
	}
	return fmt.Errorf("column %d: %w %q", col, err, text)
}
