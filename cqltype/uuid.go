package cqltype

import (
	"encoding/hex"

	"github.com/wippyai/cql-codec/errors"
)

// UUID is a 16-byte universally unique identifier, used by both the uuid
// and timeuuid column types
type UUID [16]byte

// UUIDFromBytes builds a UUID from exactly 16 bytes
func UUIDFromBytes(b []byte) (UUID, error) {
	var u UUID
	if len(b) != 16 {
		return u, errors.New(errors.PhaseParse, errors.KindByteLengthMismatch).
			GoType("cqltype.UUID").
			Lengths(16, len(b)).
			Detail("a UUID requires 16 bytes, got %d", len(b)).
			Build()
	}
	copy(u[:], b)
	return u, nil
}

// Bytes returns the UUID as a fresh 16-byte slice
func (u UUID) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, u[:])
	return b
}

// Version returns the UUID version number
func (u UUID) Version() int {
	return int(u[6] >> 4)
}

// String returns the canonical 8-4-4-4-12 representation
func (u UUID) String() string {
	var buf [36]byte
	hex.Encode(buf[0:8], u[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], u[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], u[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], u[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:36], u[10:16])
	return string(buf[:])
}
