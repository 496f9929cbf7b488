// Package cursor defines the input-cursor abstraction the decode
// package walks over: every code unit, regardless of its storage width
// (byte, uint16, uint32), is widened to uint32 at this boundary so the
// forward and reverse decoders never need to care what they're reading
// from.
package cursor

// Cursor is a single-pass, read-only position over a sequence of code
// units.
type Cursor interface {
	// Peek reports the code unit at the current position without
	// consuming it. ok is false once the cursor has reached the end of
	// the sequence.
	Peek() (unit uint32, ok bool)
	// Advance consumes the code unit last returned by Peek.
	Advance()
}

// Bidi is a Cursor that can also step backwards through code units it
// has already produced.
type Bidi interface {
	Cursor
	// AtBegin reports whether the cursor sits at the first code unit of
	// the sequence.
	AtBegin() bool
	// StepBack moves the cursor one code unit backwards and returns the
	// code unit now at the current position. The caller must not call
	// StepBack when AtBegin is true.
	StepBack() uint32
}
