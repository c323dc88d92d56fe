package codec

import (
	"math/big"

	inf "gopkg.in/inf.v0"

	"github.com/wippyai/cql-codec/cqltype"
	"github.com/wippyai/cql-codec/frame"
)

var (
	Varint  VarintCodec
	Decimal DecimalCodec
)

// VarintCodec converts varint columns to *big.Int. The wire format is a
// variable-length two's-complement big-endian integer.
type VarintCodec struct{}

func (VarintCodec) TypeCheck(typ *cqltype.Type) error {
	return checkKind(typ, "*big.Int", cqltype.KindVarint)
}

func (VarintCodec) Decode(typ *cqltype.Type, cell *frame.Slice) (*big.Int, error) {
	if err := ensureNotNull(cell, "*big.Int", typ); err != nil {
		return nil, err
	}
	return bigIntFrom2C(cell.Bytes()), nil
}

func (VarintCodec) Encode(typ *cqltype.Type, v *big.Int, w *frame.CellWriter) (frame.WrittenCell, error) {
	return w.WriteCell(bigIntTo2C(v)), nil
}

func (VarintCodec) emptiable() {}

func bigIntFrom2C(data []byte) *big.Int {
	n := new(big.Int).SetBytes(data)
	if len(data) > 0 && data[0]&0x80 != 0 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(len(data))*8))
	}
	return n
}

func bigIntTo2C(n *big.Int) []byte {
	switch n.Sign() {
	case 1:
		b := n.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0}, b...)
		}
		return b
	case -1:
		length := uint(n.BitLen()/8+1) * 8
		b := new(big.Int).Add(n, new(big.Int).Lsh(big.NewInt(1), length)).Bytes()
		// A negative value whose magnitude sits on a byte boundary picks
		// up a redundant leading sign byte.
		if len(b) >= 2 && b[0] == 0xff && b[1]&0x80 != 0 {
			b = b[1:]
		}
		return b
	default:
		return []byte{0}
	}
}

// DecimalCodec converts decimal columns to *inf.Dec. The wire format is a
// 4-byte signed scale followed by the unscaled value as a varint.
type DecimalCodec struct{}

func (DecimalCodec) TypeCheck(typ *cqltype.Type) error {
	return checkKind(typ, "*inf.Dec", cqltype.KindDecimal)
}

func (DecimalCodec) Decode(typ *cqltype.Type, cell *frame.Slice) (*inf.Dec, error) {
	if err := ensureNotNull(cell, "*inf.Dec", typ); err != nil {
		return nil, err
	}
	if cell.Len() < 4 {
		return nil, exactLength(cell, 4, "*inf.Dec", typ)
	}
	b := cell.Bytes()
	scale := int32(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
	unscaled := bigIntFrom2C(b[4:])
	return inf.NewDecBig(unscaled, inf.Scale(scale)), nil
}

func (DecimalCodec) Encode(typ *cqltype.Type, v *inf.Dec, w *frame.CellWriter) (frame.WrittenCell, error) {
	b := w.Cell()
	b.AppendInt(int32(v.Scale()))
	b.Write(bigIntTo2C(v.UnscaledBig()))
	return b.Finish(), nil
}

func (DecimalCodec) emptiable() {}
