package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Row is one raw result row keyed by column name, as returned by the
// driver.
type Row map[string]any

// Value converts column col to kind. Missing columns are an error;
// SQL NULL yields the zero value of kind with valid=false.
func (r Row) Value(col string, kind Kind) (v Value, valid bool, err error) {
	raw, ok := r[col]
	if !ok {
		return Value{}, false, fmt.Errorf("%w: column %q missing from row", ErrInvariantViolation, col)
	}

	v, valid, err = FromColumn(kind, raw)
	if err != nil {
		return Value{}, false, fmt.Errorf("column %q: %w", col, err)
	}

	return v, valid, nil
}

// RowReader reads typed columns out of a Row and keeps the first error,
// so a whole record can be decoded before checking Err once.
type RowReader struct {
	row Row
	err error
}

func NewRowReader(row Row) *RowReader {
	return &RowReader{row: row}
}

func (rr *RowReader) Err() error {
	return rr.err
}

func (rr *RowReader) read(col string, kind Kind) (Value, bool) {
	if rr.err != nil {
		return zeroOf(kind), false
	}

	v, valid, err := rr.row.Value(col, kind)
	if err != nil {
		rr.err = err
		return zeroOf(kind), false
	}

	return v, valid
}

func (rr *RowReader) Identifier(col string) (uuid.UUID, bool) {
	v, valid := rr.read(col, KindIdentifier)
	id, _ := v.AsIdentifier()
	return id, valid
}

func (rr *RowReader) Timestamp(col string) (time.Time, bool) {
	v, valid := rr.read(col, KindTimestamp)
	ts, _ := v.AsTimestamp()
	return ts, valid
}

func (rr *RowReader) Bool(col string) (bool, bool) {
	v, valid := rr.read(col, KindBool)
	b, _ := v.AsBool()
	return b, valid
}

func (rr *RowReader) Text(col string) (string, bool) {
	v, valid := rr.read(col, KindText)
	s, _ := v.AsText()
	return s, valid
}

func (rr *RowReader) Int32(col string) (int32, bool) {
	v, valid := rr.read(col, KindInt32)
	i, _ := v.AsInt32()
	return i, valid
}

func (rr *RowReader) TextArray(col string) ([]string, bool) {
	v, valid := rr.read(col, KindTextArray)
	arr, _ := v.AsTextArray()
	return arr, valid
}
