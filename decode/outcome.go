package decode

// Outcome is the result of decoding one code point. On success, Scalar
// is the decoded value and Err is ErrNone. On failure, Scalar is the
// Unicode replacement character (U+FFFD) and Err names the problem;
// Units still reports how many source code units the decoder consumed
// (or, for reverse decoding, will skip past), per the maximal-subpart
// recovery rule.
type Outcome struct {
	Scalar rune
	Units  uint8
	Err    ErrorKind
}

// OK reports whether decoding succeeded.
func (o Outcome) OK() bool { return o.Err == ErrNone }

// replacementChar is returned as Outcome.Scalar whenever Err != ErrNone.
const replacementChar rune = 0xFFFD
