package codec

import (
	"net"

	"github.com/wippyai/cql-codec/cqltype"
	"github.com/wippyai/cql-codec/errors"
	"github.com/wippyai/cql-codec/frame"
)

var (
	UUID UUIDCodec
	Inet InetCodec
)

// UUIDCodec converts uuid and timeuuid columns to cqltype.UUID
type UUIDCodec struct{}

func (UUIDCodec) TypeCheck(typ *cqltype.Type) error {
	return checkKind(typ, "cqltype.UUID", cqltype.KindUUID, cqltype.KindTimeUUID)
}

func (UUIDCodec) Decode(typ *cqltype.Type, cell *frame.Slice) (cqltype.UUID, error) {
	var u cqltype.UUID
	if err := ensureNotNull(cell, "cqltype.UUID", typ); err != nil {
		return u, err
	}
	if err := exactLength(cell, 16, "cqltype.UUID", typ); err != nil {
		return u, err
	}
	copy(u[:], cell.Bytes())
	return u, nil
}

func (UUIDCodec) Encode(typ *cqltype.Type, v cqltype.UUID, w *frame.CellWriter) (frame.WrittenCell, error) {
	return w.WriteCell(v[:]), nil
}

func (UUIDCodec) emptiable() {}

// InetCodec converts inet columns to net.IP. The wire carries either 4
// bytes (IPv4) or 16 bytes (IPv6); the decoded value owns its storage.
type InetCodec struct{}

func (InetCodec) TypeCheck(typ *cqltype.Type) error {
	return checkKind(typ, "net.IP", cqltype.KindInet)
}

func (InetCodec) Decode(typ *cqltype.Type, cell *frame.Slice) (net.IP, error) {
	if err := ensureNotNull(cell, "net.IP", typ); err != nil {
		return nil, err
	}
	n := cell.Len()
	if n != net.IPv4len && n != net.IPv6len {
		return nil, errors.NewDecodeError(errors.New(errors.PhaseDecode, errors.KindByteLengthMismatch).
			GoType("net.IP").
			CqlType(typ.String()).
			Lengths(net.IPv6len, n).
			Detail("an inet value requires 4 or 16 bytes, got %d", n).
			Build())
	}
	return net.IP(append([]byte(nil), cell.Bytes()...)), nil
}

func (InetCodec) Encode(typ *cqltype.Type, v net.IP, w *frame.CellWriter) (frame.WrittenCell, error) {
	if ip4 := v.To4(); ip4 != nil {
		return w.WriteCell(ip4), nil
	}
	if len(v) != net.IPv6len {
		return frame.WrittenCell{}, errors.NewEncodeError(errors.New(errors.PhaseEncode, errors.KindInvalidData).
			GoType("net.IP").
			CqlType(typ.String()).
			Detail("invalid IP length %d", len(v)).
			Build())
	}
	return w.WriteCell(v), nil
}

func (InetCodec) emptiable() {}
