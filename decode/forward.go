package decode

import "github.com/bemanproject/utf-view/cursor"

// UTF8Forward decodes one code point from src, a cursor over UTF-8 code
// units. The caller must not invoke this with src already at its end.
//
// 0xC0 and 0xC1 are reported as ErrInvalidLeading rather than
// ErrOverlong: they can never begin a well-formed sequence at all (the
// shortest sequence they could start would itself be overlong), and the
// reference implementation this decoder is ported from classifies them
// before it ever reaches the overlong-specific range checks.
func UTF8Forward(src cursor.Cursor) Outcome {
	leadRaw, _ := src.Peek()
	src.Advance()
	lead := byte(leadRaw)

	switch {
	case ASCII(lead):
		return Outcome{Scalar: rune(lead), Units: 1}
	case lead < 0xC0:
		return Outcome{Scalar: replacementChar, Units: 1, Err: ErrUnexpectedContinuation}
	case lead < 0xC2 || lead > 0xF4:
		return Outcome{Scalar: replacementChar, Units: 1, Err: ErrInvalidLeading}
	}

	b1raw, ok := src.Peek()
	if !ok {
		return Outcome{Scalar: replacementChar, Units: 1, Err: ErrTruncated}
	}
	b1 := byte(b1raw)

	if lead <= 0xDF {
		if !Continuation(b1) {
			return Outcome{Scalar: replacementChar, Units: 1, Err: ErrTruncated}
		}
		src.Advance()
		c := rune(lead&0x1F)<<6 | rune(b1&0x3F)
		return Outcome{Scalar: c, Units: 2}
	}

	if lead <= 0xEF {
		if lead == 0xE0 && b1 >= 0x80 && b1 <= 0x9F {
			return Outcome{Scalar: replacementChar, Units: 1, Err: ErrOverlong}
		}
		if lead == 0xED && b1 >= 0xA0 && b1 <= 0xBF {
			return Outcome{Scalar: replacementChar, Units: 1, Err: ErrEncodedSurrogate}
		}
		if !Continuation(b1) {
			return Outcome{Scalar: replacementChar, Units: 1, Err: ErrTruncated}
		}
		src.Advance()
		c := rune(lead&0x0F)<<6 | rune(b1&0x3F)

		b2raw, ok := src.Peek()
		if !ok {
			return Outcome{Scalar: replacementChar, Units: 2, Err: ErrTruncated}
		}
		b2 := byte(b2raw)
		if !Continuation(b2) {
			return Outcome{Scalar: replacementChar, Units: 2, Err: ErrTruncated}
		}
		src.Advance()
		c = c<<6 | rune(b2&0x3F)
		return Outcome{Scalar: c, Units: 3}
	}

	// 4-byte sequence, lead in [0xF0, 0xF4].
	if lead == 0xF0 && b1 >= 0x80 && b1 <= 0x8F {
		return Outcome{Scalar: replacementChar, Units: 1, Err: ErrOverlong}
	}
	if lead == 0xF4 && b1 >= 0x90 && b1 <= 0xBF {
		return Outcome{Scalar: replacementChar, Units: 1, Err: ErrOutOfRange}
	}
	if !Continuation(b1) {
		return Outcome{Scalar: replacementChar, Units: 1, Err: ErrTruncated}
	}
	src.Advance()
	c := rune(lead&0x07)<<6 | rune(b1&0x3F)

	b2raw, ok := src.Peek()
	if !ok {
		return Outcome{Scalar: replacementChar, Units: 2, Err: ErrTruncated}
	}
	b2 := byte(b2raw)
	if !Continuation(b2) {
		return Outcome{Scalar: replacementChar, Units: 2, Err: ErrTruncated}
	}
	src.Advance()
	c = c<<6 | rune(b2&0x3F)

	b3raw, ok := src.Peek()
	if !ok {
		return Outcome{Scalar: replacementChar, Units: 3, Err: ErrTruncated}
	}
	b3 := byte(b3raw)
	if !Continuation(b3) {
		return Outcome{Scalar: replacementChar, Units: 3, Err: ErrTruncated}
	}
	src.Advance()
	c = c<<6 | rune(b3&0x3F)
	return Outcome{Scalar: c, Units: 4}
}

// UTF16Forward decodes one code point from src, a cursor over UTF-16
// code units. The caller must not invoke this with src already at its
// end.
func UTF16Forward(src cursor.Cursor) Outcome {
	uRaw, _ := src.Peek()
	src.Advance()
	u := uint16(uRaw)

	if LowSurrogate(u) {
		return Outcome{Scalar: replacementChar, Units: 1, Err: ErrUnpairedLowSurrogate}
	}
	if !HighSurrogate(u) {
		return Outcome{Scalar: rune(u), Units: 1}
	}

	u2Raw, ok := src.Peek()
	if !ok {
		return Outcome{Scalar: replacementChar, Units: 1, Err: ErrUnpairedHighSurrogate}
	}
	u2 := uint16(u2Raw)
	if !LowSurrogate(u2) {
		return Outcome{Scalar: replacementChar, Units: 1, Err: ErrUnpairedHighSurrogate}
	}
	src.Advance()
	c := 0x10000 + (rune(u-0xD800) << 10) + rune(u2-0xDC00)
	return Outcome{Scalar: c, Units: 2}
}

// UTF32Forward decodes one code point from src, a cursor over UTF-32
// code units. The caller must not invoke this with src already at its
// end.
func UTF32Forward(src cursor.Cursor) Outcome {
	cRaw, _ := src.Peek()
	src.Advance()

	if cRaw >= 0xD800 && cRaw <= 0xDFFF {
		return Outcome{Scalar: replacementChar, Units: 1, Err: ErrEncodedSurrogate}
	}
	if cRaw > 0x10FFFF {
		return Outcome{Scalar: replacementChar, Units: 1, Err: ErrOutOfRange}
	}
	return Outcome{Scalar: rune(cRaw), Units: 1}
}
