// Package oracle wraps golang.org/x/text's independently-implemented
// UTF-16 codec as a trusted reference for this repository's
// property-based tests to cross-check against. It is not imported by
// any non-test code.
package oracle

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// UTF16ToUTF8 decodes big-endian UTF-16 bytes to UTF-8 using
// golang.org/x/text, for comparison against this repository's own
// ToUTF8-driven transcoding of the same input as a UTF-16 source.
func UTF16ToUTF8(data []byte) ([]byte, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	return out, err
}

// UTF8ToUTF16 encodes UTF-8 bytes to big-endian UTF-16 using
// golang.org/x/text, for comparison against this repository's own
// ToUTF16-driven transcoding of the same input.
func UTF8ToUTF16(data []byte) ([]byte, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	out, _, err := transform.Bytes(enc.NewEncoder(), data)
	return out, err
}
