package utfview_test

import (
	"testing"

	"github.com/bemanproject/utf-view"
)

func TestFromUTF8NullTerminated(t *testing.T) {
	// Simulates a buffer that holds a NUL-terminated string followed by
	// unrelated trailing bytes, as a pointer-plus-sentinel C string
	// would be read.
	buf := []byte("hello\x00garbage")
	got := utfview.CollectUTF8(utfview.FromUTF8NullTerminated(buf))
	if string(got) != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}

func TestFromUTF8NullTerminatedMatchesLiteral(t *testing.T) {
	literal := "hello, 世界"
	buf := append([]byte(literal), 0)
	a := utfview.CollectUTF8(utfview.FromUTF8NullTerminated(buf))
	b := utfview.CollectUTF8(utfview.FromUTF8([]byte(literal)))
	if string(a) != string(b) {
		t.Errorf("null-terminated result %q != plain-slice result %q", a, b)
	}
}
