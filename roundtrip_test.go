package utfview_test

import (
	"bytes"
	"testing"

	"github.com/bemanproject/utf-view"
)

func TestToUTF8RoundTrip(t *testing.T) {
	want := "hello, 世界 \U0001F600"
	got := utfview.CollectUTF8(utfview.FromUTF8([]byte(want)))
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToUTF16RoundTrip(t *testing.T) {
	src := "hello, 世界 \U0001F600"
	units := utfview.CollectUTF16(utfview.FromUTF8([]byte(src)))
	back := utfview.CollectUTF8(utfview.FromUTF16(units))
	if string(back) != src {
		t.Errorf("got %q, want %q", back, src)
	}
}

func TestToUTF32RoundTrip(t *testing.T) {
	src := "hello, 世界 \U0001F600"
	units := utfview.CollectUTF32(utfview.FromUTF8([]byte(src)))
	back := utfview.CollectUTF8(utfview.FromUTF32(units))
	if string(back) != src {
		t.Errorf("got %q, want %q", back, src)
	}
}

func TestToUTF8OnIllFormedInput(t *testing.T) {
	data := []byte{0x41, 0xC0, 0x42} // 'A', invalid leading byte, 'B'
	got := utfview.CollectUTF8(utfview.FromUTF8(data))
	want := "A�B"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToUTF8OrErrorOnIllFormedInput(t *testing.T) {
	data := []byte{0x41, 0xC0, 0x42}
	c := utfview.ToUTF8OrError(utfview.FromUTF8(data))

	var units []byte
	var errs []utfview.ErrorKind
	for !c.Done() {
		v := c.Value()
		if v.IsError() {
			errs = append(errs, v.Err)
		} else {
			units = append(units, v.Unit)
		}
		c.Next()
	}
	if !bytes.Equal(units, []byte{'A', 'B'}) {
		t.Errorf("units = %v, want [A B]", units)
	}
	if len(errs) != 1 || errs[0] != utfview.ErrInvalidLeading {
		t.Errorf("errs = %v, want one ErrInvalidLeading", errs)
	}
}

func TestUTF8CursorForwardBackwardAgree(t *testing.T) {
	src := []byte("a\xc3\xa9\xe2\x82\xac\xf0\x9f\x98\x80z")

	c := utfview.ToUTF8(utfview.FromUTF8(src))
	var forward []byte
	for !c.Done() {
		forward = append(forward, c.Value())
		c.Next()
	}

	// c is now at Done(); Prev should work its way back to begin.
	var backward []byte
	for {
		if err := c.Prev(); err != nil {
			break
		}
		backward = append(backward, c.Value())
	}
	for i, j := 0, len(backward)-1; i < j; i, j = i+1, j-1 {
		backward[i], backward[j] = backward[j], backward[i]
	}
	if !bytes.Equal(forward, backward) {
		t.Errorf("forward = %x, backward(reversed) = %x", forward, backward)
	}
	if !bytes.Equal(forward, src) {
		t.Errorf("forward = %x, want %x (ascii/valid input should pass through unchanged)", forward, src)
	}
}

func TestPrevOnInputOnlySourceFails(t *testing.T) {
	c := utfview.ToUTF8(utfview.FromUTF8Reader(bytes.NewReader([]byte("ab"))))
	if c.Category() != utfview.CategoryInput {
		t.Fatalf("Category() = %v, want CategoryInput", c.Category())
	}
	if err := c.Prev(); err == nil {
		t.Error("Prev() on a reader-backed cursor should fail")
	}
}

func TestPrevAtBeginFails(t *testing.T) {
	c := utfview.ToUTF8(utfview.FromUTF8([]byte("a")))
	if err := c.Prev(); err == nil {
		t.Error("Prev() at the first code point should fail")
	}
}

func TestEmptySourceIsImmediatelyDone(t *testing.T) {
	c := utfview.ToUTF8(utfview.FromUTF8(nil))
	if !c.Done() {
		t.Error("cursor over an empty source should be immediately Done")
	}
}

func TestTrailingZeroStripped(t *testing.T) {
	got := utfview.CollectUTF8(utfview.FromUTF8([]byte("hi\x00")))
	if string(got) != "hi" {
		t.Errorf("got %q, want %q", got, "hi")
	}
}
