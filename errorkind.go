package utfview

import "github.com/bemanproject/utf-view/decode"

// ErrorKind classifies why a code point could not be decoded. The zero
// value, ErrNone, means decoding succeeded. It is a re-export of
// decode.ErrorKind so callers never need to import package decode
// directly just to inspect an OrError cursor's errors.
type ErrorKind = decode.ErrorKind

const (
	ErrNone                   = decode.ErrNone
	ErrTruncated              = decode.ErrTruncated
	ErrUnpairedHighSurrogate  = decode.ErrUnpairedHighSurrogate
	ErrUnpairedLowSurrogate   = decode.ErrUnpairedLowSurrogate
	ErrUnexpectedContinuation = decode.ErrUnexpectedContinuation
	ErrOverlong               = decode.ErrOverlong
	ErrEncodedSurrogate       = decode.ErrEncodedSurrogate
	ErrOutOfRange             = decode.ErrOutOfRange
	ErrInvalidLeading         = decode.ErrInvalidLeading
)
