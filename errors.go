package utfview

import "errors"

var (
	// errNotReversible is returned by Prev on a cursor built over a
	// single-pass (CategoryInput) source.
	errNotReversible = errors.New("utfview: source does not support reverse iteration")
	// errAtBegin is returned by Prev on a cursor already positioned at
	// the first code point of the sequence.
	errAtBegin = errors.New("utfview: cursor is already at the beginning of the sequence")
)
