package codec

import (
	"github.com/wippyai/cql-codec/cqltype"
	"github.com/wippyai/cql-codec/errors"
	"github.com/wippyai/cql-codec/frame"
)

// ColumnIterator steps through the cells of one row in column order,
// pairing each cell with its column metadata. Cells are yielded lazily so
// a caller that stops after the third column never parses the fourth.
type ColumnIterator struct {
	cur  *frame.Cursor
	cols []cqltype.Column
	i    int
}

// NewColumnIterator creates an iterator over a row positioned at cur
func NewColumnIterator(cur *frame.Cursor, cols []cqltype.Column) *ColumnIterator {
	return &ColumnIterator{cur: cur, cols: cols}
}

// Next returns the next column and its cell, or (nil, nil, nil) after the
// last column. A nil cell with a non-nil column is a null value.
func (it *ColumnIterator) Next() (*cqltype.Column, *frame.Slice, error) {
	if it.i >= len(it.cols) {
		return nil, nil, nil
	}
	col := &it.cols[it.i]
	cell, err := it.cur.ReadCell()
	if err != nil {
		return nil, nil, errors.NewDecodeError(
			errors.ParseFailed(errors.PhaseDecode, "", col.Type.String(), err))
	}
	it.i++
	return col, cell, nil
}

// Remaining returns the number of columns not yet yielded
func (it *ColumnIterator) Remaining() int {
	return len(it.cols) - it.i
}

// RowContext holds per-result column metadata shared by every row: the
// columns in wire order plus a name index. Build it once per result set.
type RowContext struct {
	cols   []cqltype.Column
	byName map[string]int
}

// NewRowContext indexes the given columns. With duplicate names the first
// occurrence wins, matching wire order lookups.
func NewRowContext(cols []cqltype.Column) *RowContext {
	byName := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, ok := byName[c.Name]; !ok {
			byName[c.Name] = i
		}
	}
	return &RowContext{cols: cols, byName: byName}
}

// Columns returns the columns in wire order
func (rc *RowContext) Columns() []cqltype.Column {
	return rc.cols
}

// ColumnCount returns the number of columns per row
func (rc *RowContext) ColumnCount() int {
	return len(rc.cols)
}

// IndexOf returns the wire position of the named column
func (rc *RowContext) IndexOf(name string) (int, bool) {
	i, ok := rc.byName[name]
	return i, ok
}

// ColumnByName returns the named column's metadata
func (rc *RowContext) ColumnByName(name string) (*cqltype.Column, bool) {
	i, ok := rc.byName[name]
	if !ok {
		return nil, false
	}
	return &rc.cols[i], true
}

// Iterate creates a column iterator for one row positioned at cur
func (rc *RowContext) Iterate(cur *frame.Cursor) *ColumnIterator {
	return NewColumnIterator(cur, rc.cols)
}

// CheckFields validates a caller-declared field list against the columns:
// every field must name a column, every column must have a field, and the
// counts must agree. Run it once per result set, before any row.
func (rc *RowContext) CheckFields(fields []string) error {
	if len(fields) != len(rc.cols) {
		return errors.NewTypeCheckError(errors.ColumnCountMismatch(len(fields), len(rc.cols)))
	}
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if _, ok := rc.byName[f]; !ok {
			return errors.NewTypeCheckError(errors.FieldUnknown(f))
		}
		seen[f] = true
	}
	for _, c := range rc.cols {
		if !seen[c.Name] {
			return errors.NewTypeCheckError(errors.FieldMissing(c.Name))
		}
	}
	return nil
}
