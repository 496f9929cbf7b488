package decode

import "github.com/bemanproject/utf-view/cursor"

// stepForward advances src n code units via Advance, used to undo
// the backward steps taken while scanning for a sequence's lead unit.
// The caller must not invoke this with src already at its end.
func stepForward(src cursor.Cursor, n int) {
	for i := 0; i < n; i++ {
		src.Advance()
	}
}

// UTF8Reverse decodes the code point immediately preceding src's current
// position from a UTF-8 source, leaving src positioned at the start of
// that code point (so a subsequent forward decode from there reproduces
// it, once any pending skip past its trailing units has been applied).
// The caller must not invoke this with src already at its begin.
func UTF8Reverse(src cursor.Bidi) Outcome {
	reversed := 0
	var cur byte
	for {
		cur = byte(src.StepBack())
		reversed++
		if src.AtBegin() {
			break
		}
		if !Continuation(cur) {
			break
		}
		if reversed >= 4 {
			break
		}
	}
	// src now sits reversed units behind where it started.

	if Continuation(cur) {
		// Ran into AtBegin or the 4-byte cap while every unit scanned
		// was itself a continuation byte: no lead byte to anchor on.
		stepForward(src, reversed-1)
		return Outcome{Scalar: replacementChar, Units: 1, Err: ErrUnexpectedContinuation}
	}

	if ASCII(cur) || LeadByte(cur) {
		expected := ExpectedLen(cur)
		if reversed > expected {
			stepForward(src, reversed-1)
			return Outcome{Scalar: replacementChar, Units: 1, Err: ErrUnexpectedContinuation}
		}
		// src sits at the lead byte; decode forward from here, then
		// undo the consumption so the cursor lands back on the lead.
		o := UTF8Forward(src)
		for i := uint8(0); i < o.Units; i++ {
			src.StepBack()
		}
		if o.OK() || o.Err == ErrTruncated {
			return o
		}
		stepForward(src, reversed-1)
		if reversed == 1 {
			return Outcome{Scalar: replacementChar, Units: 1, Err: o.Err}
		}
		return Outcome{Scalar: replacementChar, Units: 1, Err: ErrUnexpectedContinuation}
	}

	// Invalid leading byte: 0xC0, 0xC1, or 0xF5..0xFF.
	stepForward(src, reversed-1)
	if reversed == 1 {
		return Outcome{Scalar: replacementChar, Units: 1, Err: ErrInvalidLeading}
	}
	return Outcome{Scalar: replacementChar, Units: 1, Err: ErrUnexpectedContinuation}
}

// UTF16Reverse decodes the code point immediately preceding src's
// current position from a UTF-16 source, leaving src positioned at the
// start of that code point. The caller must not invoke this with src
// already at its begin.
func UTF16Reverse(src cursor.Bidi) Outcome {
	u := uint16(src.StepBack())

	if HighSurrogate(u) {
		return Outcome{Scalar: replacementChar, Units: 1, Err: ErrUnpairedHighSurrogate}
	}
	if !LowSurrogate(u) {
		return Outcome{Scalar: rune(u), Units: 1}
	}
	if src.AtBegin() {
		return Outcome{Scalar: replacementChar, Units: 1, Err: ErrUnpairedLowSurrogate}
	}
	u2 := uint16(src.StepBack())
	if !HighSurrogate(u2) {
		src.Advance()
		return Outcome{Scalar: replacementChar, Units: 1, Err: ErrUnpairedLowSurrogate}
	}
	o := UTF16Forward(src)
	for i := uint8(0); i < o.Units; i++ {
		src.StepBack()
	}
	return o
}

// UTF32Reverse decodes the code point immediately preceding src's
// current position from a UTF-32 source, leaving src positioned at the
// start of that code point. The caller must not invoke this with src
// already at its begin.
func UTF32Reverse(src cursor.Bidi) Outcome {
	src.StepBack()
	o := UTF32Forward(src)
	src.StepBack()
	return o
}
