package cursor

// NullTerminated adapts a forward-only Cursor so that it reports
// end-of-sequence at the first zero code unit rather than at the
// wrapped cursor's own end, the Go analogue of a pointer-plus-sentinel
// C string.
type NullTerminated struct {
	inner Cursor
	ended bool
}

// NewNullTerminated wraps inner so iteration stops at the first zero
// code unit it produces.
func NewNullTerminated(inner Cursor) *NullTerminated {
	return &NullTerminated{inner: inner}
}

func (c *NullTerminated) Peek() (uint32, bool) {
	if c.ended {
		return 0, false
	}
	u, ok := c.inner.Peek()
	if !ok || u == 0 {
		c.ended = true
		return 0, false
	}
	return u, true
}

func (c *NullTerminated) Advance() { c.inner.Advance() }
