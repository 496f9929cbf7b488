package utfview

import "encoding/binary"

// byteorder.go is the endian pre/post stage: it reinterprets raw bytes
// as UTF-16/UTF-32 code units (and back) under an explicit byte order,
// exactly as jpeg/standard.Reader.ReadUint16 does for its own 16-bit
// segment-length fields, generalized to both directions and both wider
// forms. The core transcoding engine never observes endianness itself;
// callers compose it with this stage whenever their bytes aren't
// already native-order code units.

// DecodeUTF16 reinterprets data as UTF-16 code units under order. len(data)
// must be even.
func DecodeUTF16(data []byte, order binary.ByteOrder) []uint16 {
	out := make([]uint16, len(data)/2)
	for i := range out {
		out[i] = order.Uint16(data[i*2:])
	}
	return out
}

// EncodeUTF16 reinterprets units as raw bytes under order.
func EncodeUTF16(units []uint16, order binary.ByteOrder) []byte {
	out := make([]byte, len(units)*2)
	for i, u := range units {
		order.PutUint16(out[i*2:], u)
	}
	return out
}

// DecodeUTF32 reinterprets data as UTF-32 code units under order. len(data)
// must be a multiple of 4.
func DecodeUTF32(data []byte, order binary.ByteOrder) []uint32 {
	out := make([]uint32, len(data)/4)
	for i := range out {
		out[i] = order.Uint32(data[i*4:])
	}
	return out
}

// EncodeUTF32 reinterprets units as raw bytes under order.
func EncodeUTF32(units []uint32, order binary.ByteOrder) []byte {
	out := make([]byte, len(units)*4)
	for i, u := range units {
		order.PutUint32(out[i*4:], u)
	}
	return out
}
