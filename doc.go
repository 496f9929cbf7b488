// Package utfview implements lazy, pull-based transcoding between
// UTF-8, UTF-16, and UTF-32. Each of the six view factories (ToUTF8,
// ToUTF8OrError, ToUTF16, ToUTF16OrError, ToUTF32, ToUTF32OrError)
// returns a cursor that decodes one source code point at a time, only
// as the caller advances it, and re-encodes it into the target form
// through a fixed four-unit staging buffer — no intermediate buffer
// sized to the whole sequence is ever allocated.
//
// The silent variants (ToUTF8, ToUTF16, ToUTF32) repair ill-formed
// input by substituting the replacement character U+FFFD for the
// longest invalid subpart, per the Unicode standard's maximal-subpart
// rule. The OrError variants instead surface each ill-formed run as an
// explicit decode.ErrorKind alongside the code units they do manage to
// produce.
package utfview
