package frame

import (
	"encoding/binary"
)

// WrittenCell certifies that exactly one correctly length-prefixed cell was
// written. Only CellWriter can produce one; composite encoders collect one
// proof per field so a forgotten column fails to compile rather than
// corrupt the row. The zero value is not a valid proof.
type WrittenCell struct {
	writer *CellWriter
	index  int
}

// Index returns the position of the certified cell within its writer
func (p WrittenCell) Index() int {
	return p.index
}

// CellWriter serializes length-prefixed cells into a growable buffer
type CellWriter struct {
	buf   []byte
	cells int
}

// NewCellWriter creates an empty cell writer
func NewCellWriter() *CellWriter {
	return &CellWriter{}
}

// Bytes returns the serialized cells written so far
func (w *CellWriter) Bytes() []byte {
	return w.buf
}

// CellCount returns the number of cells written so far
func (w *CellWriter) CellCount() int {
	return w.cells
}

func (w *CellWriter) proof() WrittenCell {
	w.cells++
	return WrittenCell{writer: w, index: w.cells - 1}
}

// WriteCell writes one cell holding contents
func (w *CellWriter) WriteCell(contents []byte) WrittenCell {
	w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(len(contents)))
	w.buf = append(w.buf, contents...)
	return w.proof()
}

// WriteNull writes the null sentinel cell (length -1, no contents)
func (w *CellWriter) WriteNull() WrittenCell {
	w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(0xffffffff))
	return w.proof()
}

// WriteEmpty writes a present, zero-length cell
func (w *CellWriter) WriteEmpty() WrittenCell {
	w.buf = binary.BigEndian.AppendUint32(w.buf, 0)
	return w.proof()
}

// Cell starts a cell whose contents are built incrementally. The length
// prefix is fixed up when Finish is called; the writer must not be used for
// another cell until then.
func (w *CellWriter) Cell() *CellBuilder {
	at := len(w.buf)
	w.buf = binary.BigEndian.AppendUint32(w.buf, 0)
	return &CellBuilder{w: w, lenAt: at}
}

// CellBuilder accumulates the contents of one in-progress cell
type CellBuilder struct {
	w     *CellWriter
	lenAt int
	done  bool
}

// Write appends raw bytes to the cell contents. Implements io.Writer.
func (b *CellBuilder) Write(p []byte) (int, error) {
	b.w.buf = append(b.w.buf, p...)
	return len(p), nil
}

// AppendVint appends a zigzag-encoded signed varint to the cell contents
func (b *CellBuilder) AppendVint(v int64) {
	b.w.buf = AppendVint(b.w.buf, v)
}

// AppendInt appends a 4-byte signed big-endian integer to the cell contents
func (b *CellBuilder) AppendInt(v int32) {
	b.w.buf = binary.BigEndian.AppendUint32(b.w.buf, uint32(v))
}

// Finish fixes up the length prefix and returns the proof. Calling Finish
// twice certifies only one cell.
func (b *CellBuilder) Finish() WrittenCell {
	if !b.done {
		n := len(b.w.buf) - b.lenAt - 4
		binary.BigEndian.PutUint32(b.w.buf[b.lenAt:], uint32(n))
		b.done = true
		return b.w.proof()
	}
	return WrittenCell{writer: b.w, index: b.w.cells - 1}
}
