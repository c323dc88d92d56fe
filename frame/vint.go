package frame

import (
	"encoding/binary"
	"math/bits"
)

// AppendUnsignedVint appends the varint encoding of v to dst. One byte for
// values under 0x80, up to nine bytes for a full 64-bit value.
func AppendUnsignedVint(dst []byte, v uint64) []byte {
	if v < 0x80 {
		return append(dst, byte(v))
	}
	total := (bits.Len64(v) + 6) / 7
	if total > 8 {
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], v)
		return append(append(dst, 0xff), b[:]...)
	}
	extra := total - 1
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	first := byte(v>>(8*extra)) | byte(0xff)<<(8-extra)
	return append(append(dst, first), b[8-extra:]...)
}

// AppendVint appends the zigzag-encoded signed varint of v to dst
func AppendVint(dst []byte, v int64) []byte {
	return AppendUnsignedVint(dst, zigzagEncode(v))
}

func zigzagEncode(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

func zigzagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
