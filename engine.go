package utfview

import (
	"github.com/bemanproject/utf-view/cursor"
	"github.com/bemanproject/utf-view/decode"
	"github.com/bemanproject/utf-view/encode"
)

// engine is the shared machinery behind all six exported cursor types.
// The input form, output form, and error-reporting mode are all fixed
// once at construction in newEngine and never change afterwards; each
// step still picks the concrete decode/encode function with a switch on
// those fixed fields, so no function is resolved ahead of time.
type engine struct {
	src    cursor.Cursor
	bidi   cursor.Bidi
	isBidi bool
	inForm Form

	outForm  Form
	outSlots int
	errMode  bool

	buf      [4]uint32
	bufIndex int
	bufLast  int

	// pendingSkip is the number of source code units still to be
	// skipped forward before the next forward decode may run, set
	// whenever a reverse decode lands the source cursor on the start of
	// a code point rather than past its end.
	pendingSkip int

	outcome       decode.Outcome
	atEnd         bool
	startsAtBegin bool
}

func newEngine(src Source, outForm Form, errMode bool) *engine {
	e := &engine{
		src:     src.c,
		bidi:    src.bidi,
		isBidi:  src.isBidi,
		inForm:  src.form,
		outForm: outForm,
		errMode: errMode,
	}
	switch outForm {
	case Form8:
		e.outSlots = 4
	case Form16:
		e.outSlots = 2
	default:
		e.outSlots = 1
	}
	e.begin()
	return e
}

func (e *engine) begin() {
	if _, ok := e.src.Peek(); !ok {
		e.atEnd = true
		e.startsAtBegin = true
		return
	}
	e.startsAtBegin = true
	e.fill()
}

func (e *engine) decodeForward() decode.Outcome {
	switch e.inForm {
	case Form8:
		return decode.UTF8Forward(e.src)
	case Form16:
		return decode.UTF16Forward(e.src)
	default:
		return decode.UTF32Forward(e.src)
	}
}

func (e *engine) decodeReverse() decode.Outcome {
	switch e.inForm {
	case Form8:
		return decode.UTF8Reverse(e.bidi)
	case Form16:
		return decode.UTF16Reverse(e.bidi)
	default:
		return decode.UTF32Reverse(e.bidi)
	}
}

func (e *engine) encodeInto(scalar rune) {
	switch e.outForm {
	case Form32:
		var b [1]uint32
		n := encode.UTF32(scalar, &b)
		e.buf[0] = b[0]
		e.bufLast = n
	case Form16:
		var b [2]uint16
		n := encode.UTF16(scalar, &b)
		for i := 0; i < n; i++ {
			e.buf[i] = uint32(b[i])
		}
		e.bufLast = n
	default:
		var b [4]byte
		n := encode.UTF8(scalar, &b)
		for i := 0; i < n; i++ {
			e.buf[i] = uint32(b[i])
		}
		e.bufLast = n
	}
	e.bufIndex = 0
}

func (e *engine) fill() {
	e.pendingSkip = 0
	e.outcome = e.decodeForward()
	e.encodeInto(e.outcome.Scalar)
}

func (e *engine) fillReverse() {
	e.outcome = e.decodeReverse()
	e.encodeInto(e.outcome.Scalar)
	e.pendingSkip = int(e.outcome.Units)
	e.bufIndex = e.bufLast - 1
	if e.errMode && !e.outcome.OK() {
		e.bufIndex = 0
	}
	e.startsAtBegin = e.bidi.AtBegin()
}

// advanceOne is the silent-mode step: move to the next buffered output
// unit, refilling from the source once the buffer is drained.
func (e *engine) advanceOne() {
	if e.bufIndex+1 < e.bufLast {
		e.bufIndex++
		return
	}
	if e.pendingSkip > 0 {
		stepForward(e.src, e.pendingSkip)
		e.pendingSkip = 0
	}
	if _, ok := e.src.Peek(); !ok {
		e.bufIndex = 0
		e.bufLast = 0
		e.atEnd = true
		e.startsAtBegin = false
		return
	}
	e.fill()
	e.startsAtBegin = false
}

func stepForward(src cursor.Cursor, n int) {
	for i := 0; i < n; i++ {
		src.Advance()
	}
}

// next is the error-aware step used by the OrError cursors: when the
// currently buffered value is an error and the output form is UTF-8,
// an error occupies one external element representing all three
// replacement-character bytes, so the two extra internal positions are
// skipped before the ordinary step.
func (e *engine) next() {
	if e.errMode && !e.outcome.OK() && e.outForm == Form8 {
		e.advanceOne()
		e.advanceOne()
	}
	e.advanceOne()
}

func (e *engine) retreat() error {
	if !e.isBidi {
		return errNotReversible
	}
	if e.bufIndex > 0 {
		e.bufIndex--
		return nil
	}
	if e.startsAtBegin {
		return errAtBegin
	}
	if !e.atEnd && e.pendingSkip == 0 {
		// A forward decode left the source past the current code point;
		// move back to its start so the reverse decode reads the one before.
		for i := uint8(0); i < e.outcome.Units; i++ {
			e.bidi.StepBack()
		}
	}
	e.fillReverse()
	e.atEnd = false
	return nil
}

func (e *engine) category() Category {
	if e.isBidi {
		return CategoryBidirectional
	}
	return CategoryInput
}
