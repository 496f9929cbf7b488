package utfview

// CollectUTF8 drains a UTF8Cursor into a byte slice. It exists for
// tests and callers that genuinely want an eager result; the lazy
// UTF8Cursor itself remains the primary API.
func CollectUTF8(src Source) []byte {
	c := ToUTF8(src)
	var out []byte
	for !c.Done() {
		out = append(out, c.Value())
		c.Next()
	}
	return out
}

// CollectUTF16 drains a UTF16Cursor into a uint16 slice.
func CollectUTF16(src Source) []uint16 {
	c := ToUTF16(src)
	var out []uint16
	for !c.Done() {
		out = append(out, c.Value())
		c.Next()
	}
	return out
}

// CollectUTF32 drains a UTF32Cursor into a uint32 slice.
func CollectUTF32(src Source) []uint32 {
	c := ToUTF32(src)
	var out []uint32
	for !c.Done() {
		out = append(out, c.Value())
		c.Next()
	}
	return out
}
