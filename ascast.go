package utfview

// ascast.go is the identity-cast adaptor: it relabels a slice of Go's
// native signed rune-width integer types as the unsigned UTF-32 code
// units FromUTF32 expects, copying each element into a new slice
// without validating anything - the cast is purely a type-system
// convenience for callers already holding []rune or []int32.

// AsUTF32 copies runes into a new slice of UTF-32 code units, for
// feeding a Go string's decoded rune slice into FromUTF32.
func AsUTF32(runes []rune) []uint32 {
	out := make([]uint32, len(runes))
	for i, r := range runes {
		out[i] = uint32(r)
	}
	return out
}

// AsRunes reinterprets UTF-32 code units as runes, the inverse of
// AsUTF32.
func AsRunes(units []uint32) []rune {
	out := make([]rune, len(units))
	for i, u := range units {
		out[i] = rune(u)
	}
	return out
}
