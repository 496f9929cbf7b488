package cursor

// ByteSlice is a Bidi cursor over a []byte, the cursor backing in-memory
// UTF-8 sources.
type ByteSlice struct {
	data []byte
	pos  int
}

// NewByteSlice returns a ByteSlice cursor positioned at the start of data.
func NewByteSlice(data []byte) *ByteSlice { return &ByteSlice{data: data} }

func (c *ByteSlice) Peek() (uint32, bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	return uint32(c.data[c.pos]), true
}

func (c *ByteSlice) Advance() { c.pos++ }

func (c *ByteSlice) AtBegin() bool { return c.pos == 0 }

func (c *ByteSlice) StepBack() uint32 {
	c.pos--
	return uint32(c.data[c.pos])
}

// Uint16Slice is a Bidi cursor over a []uint16, the cursor backing
// in-memory UTF-16 sources.
type Uint16Slice struct {
	data []uint16
	pos  int
}

// NewUint16Slice returns a Uint16Slice cursor positioned at the start of data.
func NewUint16Slice(data []uint16) *Uint16Slice { return &Uint16Slice{data: data} }

func (c *Uint16Slice) Peek() (uint32, bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	return uint32(c.data[c.pos]), true
}

func (c *Uint16Slice) Advance() { c.pos++ }

func (c *Uint16Slice) AtBegin() bool { return c.pos == 0 }

func (c *Uint16Slice) StepBack() uint32 {
	c.pos--
	return uint32(c.data[c.pos])
}

// Uint32Slice is a Bidi cursor over a []uint32, the cursor backing
// in-memory UTF-32 sources.
type Uint32Slice struct {
	data []uint32
	pos  int
}

// NewUint32Slice returns a Uint32Slice cursor positioned at the start of data.
func NewUint32Slice(data []uint32) *Uint32Slice { return &Uint32Slice{data: data} }

func (c *Uint32Slice) Peek() (uint32, bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	return c.data[c.pos], true
}

func (c *Uint32Slice) Advance() { c.pos++ }

func (c *Uint32Slice) AtBegin() bool { return c.pos == 0 }

func (c *Uint32Slice) StepBack() uint32 {
	c.pos--
	return c.data[c.pos]
}
