package utfview

import (
	"io"

	"github.com/bemanproject/utf-view/cursor"
)

// Source wraps an input cursor together with the Unicode encoding form
// its code units are in, the information the six view factories need to
// pick the right forward/reverse decoder.
type Source struct {
	c      cursor.Cursor
	bidi   cursor.Bidi
	isBidi bool
	form   Form
}

// FromUTF8 builds a Source over an in-memory UTF-8 byte slice. If data
// ends in a single zero byte, that trailing terminator is stripped
// first, so a bounded array holding a NUL-terminated string literal
// transcodes the same as the string itself.
func FromUTF8(data []byte) Source {
	data = stripTrailingZero8(data)
	s := cursor.NewByteSlice(data)
	return Source{c: s, bidi: s, isBidi: true, form: Form8}
}

// FromUTF16 builds a Source over an in-memory UTF-16 code-unit slice,
// applying the same trailing-zero stripping rule as FromUTF8.
func FromUTF16(data []uint16) Source {
	data = stripTrailingZero16(data)
	s := cursor.NewUint16Slice(data)
	return Source{c: s, bidi: s, isBidi: true, form: Form16}
}

// FromUTF32 builds a Source over an in-memory UTF-32 code-unit slice,
// applying the same trailing-zero stripping rule as FromUTF8.
func FromUTF32(data []uint32) Source {
	data = stripTrailingZero32(data)
	s := cursor.NewUint32Slice(data)
	return Source{c: s, bidi: s, isBidi: true, form: Form32}
}

// FromUTF8Reader builds a Source over a streamed UTF-8 io.Reader. The
// resulting cursor is single-pass (Category is CategoryInput); Prev
// always fails.
func FromUTF8Reader(r io.Reader) Source {
	return Source{c: cursor.NewByteReader(r), isBidi: false, form: Form8}
}

// FromUTF8NullTerminated builds a Source over an in-memory UTF-8 byte
// slice whose logical end is the first zero byte rather than len(data),
// the Go analogue of transcoding from a pointer-plus-null-sentinel C
// string. The resulting cursor is single-pass.
func FromUTF8NullTerminated(data []byte) Source {
	s := cursor.NewNullTerminated(cursor.NewByteSlice(data))
	return Source{c: s, isBidi: false, form: Form8}
}

func stripTrailingZero8(data []byte) []byte {
	if len(data) > 0 && data[len(data)-1] == 0 {
		return data[:len(data)-1]
	}
	return data
}

func stripTrailingZero16(data []uint16) []uint16 {
	if len(data) > 0 && data[len(data)-1] == 0 {
		return data[:len(data)-1]
	}
	return data
}

func stripTrailingZero32(data []uint32) []uint32 {
	if len(data) > 0 && data[len(data)-1] == 0 {
		return data[:len(data)-1]
	}
	return data
}
