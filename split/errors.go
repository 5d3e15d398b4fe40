package split

import "errors"

var (
	// ErrMissingArrayStart reports that the first non-whitespace byte of the
	// input is not '['.
	ErrMissingArrayStart = errors.New("input does not start with '['")

	// ErrUnexpectedEOF reports that the source was exhausted before the
	// array's closing ']' was seen.
	ErrUnexpectedEOF = errors.New("unexpected end of input before closing ']'")

	// ErrTrailingData reports non-whitespace bytes after the closing ']'.
	ErrTrailingData = errors.New("non-whitespace data after closing ']'")

	// ErrElementTooLarge reports that an element exceeded the limit set with
	// WithMaxElementSize.
	ErrElementTooLarge = errors.New("element exceeds configured size limit")
)
