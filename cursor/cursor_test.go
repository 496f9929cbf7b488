package cursor_test

import (
	"bytes"
	"testing"

	"github.com/bemanproject/utf-view/cursor"
)

func TestByteSlice(t *testing.T) {
	c := cursor.NewByteSlice([]byte{0x10, 0x20, 0x30})
	if !c.AtBegin() {
		t.Fatal("fresh cursor should be at begin")
	}
	u, ok := c.Peek()
	if !ok || u != 0x10 {
		t.Fatalf("Peek() = %#x, %v, want 0x10, true", u, ok)
	}
	c.Advance()
	u, ok = c.Peek()
	if !ok || u != 0x20 {
		t.Fatalf("Peek() = %#x, %v, want 0x20, true", u, ok)
	}
	c.Advance()
	c.Advance()
	if _, ok := c.Peek(); ok {
		t.Fatal("Peek() at end should report ok=false")
	}
	if u := c.StepBack(); u != 0x30 {
		t.Fatalf("StepBack() = %#x, want 0x30", u)
	}
}

func TestByteReader(t *testing.T) {
	r := cursor.NewByteReader(bytes.NewReader([]byte{0x01, 0x02}))
	var got []uint32
	for {
		u, ok := r.Peek()
		if !ok {
			break
		}
		got = append(got, u)
		r.Advance()
	}
	if len(got) != 2 || got[0] != 0x01 || got[1] != 0x02 {
		t.Fatalf("got %v, want [1 2]", got)
	}
	if r.Err() != nil {
		t.Fatalf("unexpected error: %v", r.Err())
	}
}

func TestNullTerminated(t *testing.T) {
	inner := cursor.NewByteSlice([]byte{0x41, 0x42, 0x00, 0x43})
	nt := cursor.NewNullTerminated(inner)
	var got []uint32
	for {
		u, ok := nt.Peek()
		if !ok {
			break
		}
		got = append(got, u)
		nt.Advance()
	}
	if len(got) != 2 || got[0] != 0x41 || got[1] != 0x42 {
		t.Fatalf("got %v, want [0x41 0x42]", got)
	}
}
