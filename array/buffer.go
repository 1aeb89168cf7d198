package array

import (
	"fmt"
	"math"
	"time"

	"github.com/xyicheng/adjarray/errs"
	"github.com/xyicheng/adjarray/format"
	"github.com/xyicheng/adjarray/label"
)

// NaT is the int64 sentinel stored for a missing timestamp in a datetime64
// buffer. It converts to and from the zero time.Time.
const NaT int64 = math.MinInt64

// Buffer is a 2-D columnar value grid owned by the engine. It is a closed
// set of variants: NumericBuffer for float64, int64 and datetime64 data, and
// LabelBuffer for dictionary-encoded strings.
//
// Constructors deep-copy caller data; the engine never mutates caller-owned
// memory.
type Buffer interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// Dtype returns the buffer's logical dtype.
	Dtype() format.Dtype

	// clone returns a deep copy for use as a traversal working buffer.
	clone() Buffer

	// applyMask writes the missing value at every position where the
	// row-major mask is false. len(mask) equals Rows()*Cols().
	applyMask(mask []bool)

	// compatible reports whether adj can be applied to this buffer.
	compatible(adj Adjustment) error

	// apply mutates the buffer in place. adj must have passed compatible and
	// span validation; violations panic.
	apply(adj Adjustment)

	// formatData renders the grid for Inspect output.
	formatData() string
}

// Scalar constrains the element types of a NumericBuffer. Datetime64 buffers
// store nanosecond timestamps as int64.
type Scalar interface {
	int64 | float64
}

// NumericBuffer is a fixed-dtype numeric value grid.
type NumericBuffer[T Scalar] struct {
	data    []T // row-major
	rows    int
	cols    int
	dtype   format.Dtype
	missing T
}

// NewFloat64Buffer copies data into a float64 buffer. missing is substituted
// at masked-out positions (math.NaN is the conventional choice).
func NewFloat64Buffer(data [][]float64, missing float64) (*NumericBuffer[float64], error) {
	return newNumericBuffer(data, format.DtypeFloat64, missing)
}

// NewInt64Buffer copies data into an int64 buffer.
func NewInt64Buffer(data [][]int64, missing int64) (*NumericBuffer[int64], error) {
	return newNumericBuffer(data, format.DtypeInt64, missing)
}

// NewDatetime64Buffer copies data into a datetime64 buffer of nanosecond
// timestamps. The zero time.Time, in data or as missing, maps to the NaT
// sentinel.
func NewDatetime64Buffer(data [][]time.Time, missing time.Time) (*NumericBuffer[int64], error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, errs.ErrEmptyBuffer
	}

	rows := len(data)
	cols := len(data[0])
	nanos := make([]int64, rows*cols)
	for r, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", r, len(row), cols, errs.ErrRaggedRows)
		}
		for c, t := range row {
			nanos[r*cols+c] = timeToNanos(t)
		}
	}

	return &NumericBuffer[int64]{
		data:    nanos,
		rows:    rows,
		cols:    cols,
		dtype:   format.DtypeDatetime64,
		missing: timeToNanos(missing),
	}, nil
}

func newNumericBuffer[T Scalar](data [][]T, dtype format.Dtype, missing T) (*NumericBuffer[T], error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, errs.ErrEmptyBuffer
	}

	rows := len(data)
	cols := len(data[0])
	flat := make([]T, rows*cols)
	for r, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", r, len(row), cols, errs.ErrRaggedRows)
		}
		copy(flat[r*cols:(r+1)*cols], row)
	}

	return &NumericBuffer[T]{
		data:    flat,
		rows:    rows,
		cols:    cols,
		dtype:   dtype,
		missing: missing,
	}, nil
}

// Rows returns the number of rows.
func (b *NumericBuffer[T]) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *NumericBuffer[T]) Cols() int {
	return b.cols
}

// Dtype returns the buffer's logical dtype.
func (b *NumericBuffer[T]) Dtype() format.Dtype {
	return b.dtype
}

// MissingValue returns the missing-value sentinel.
func (b *NumericBuffer[T]) MissingValue() T {
	return b.missing
}

func (b *NumericBuffer[T]) at(row, col int) T {
	return b.data[row*b.cols+col]
}

func (b *NumericBuffer[T]) clone() Buffer {
	data := make([]T, len(b.data))
	copy(data, b.data)

	return &NumericBuffer[T]{
		data:    data,
		rows:    b.rows,
		cols:    b.cols,
		dtype:   b.dtype,
		missing: b.missing,
	}
}

func (b *NumericBuffer[T]) applyMask(mask []bool) {
	for i, valid := range mask {
		if !valid {
			b.data[i] = b.missing
		}
	}
}

func (b *NumericBuffer[T]) compatible(adj Adjustment) error {
	if adj.Dtype() != b.dtype {
		return fmt.Errorf("%s adjustment on %s buffer: %w", adj.Dtype(), b.dtype, errs.ErrAdjustmentDtypeMismatch)
	}
	if b.dtype == format.DtypeDatetime64 && adj.Kind() == format.KindMultiply {
		return fmt.Errorf("multiply adjustment on %s buffer: %w", b.dtype, errs.ErrAdjustmentDtypeMismatch)
	}

	return nil
}

func (b *NumericBuffer[T]) apply(adj Adjustment) {
	switch a := adj.(type) {
	case Float64Multiply:
		b.mutateRegion(a.Span(), func(v T) T { return v * T(a.Value()) })
	case Int64Multiply:
		b.mutateRegion(a.Span(), func(v T) T { return v * T(a.Value()) })
	case Float64Overwrite:
		value := T(a.Value())
		b.mutateRegion(a.Span(), func(T) T { return value })
	case Int64Overwrite:
		value := T(a.Value())
		b.mutateRegion(a.Span(), func(T) T { return value })
	case Datetime64Overwrite:
		value := T(timeToNanos(a.Value()))
		b.mutateRegion(a.Span(), func(T) T { return value })
	default:
		panic(fmt.Sprintf("array: %T adjustment on %s buffer", adj, b.dtype))
	}
}

func (b *NumericBuffer[T]) mutateRegion(s Span, fn func(T) T) {
	for r := s.FirstRow; r <= s.LastRow; r++ {
		base := r * b.cols
		for c := s.FirstCol; c <= s.LastCol; c++ {
			b.data[base+c] = fn(b.data[base+c])
		}
	}
}

// LabelBuffer is a dictionary-encoded string grid backed by label.Array.
// Overwrite adjustments re-encode their value through the array's shared
// vocabulary.
type LabelBuffer struct {
	arr *label.Array
}

// NewLabelBuffer wraps a pre-encoded label array.
func NewLabelBuffer(arr *label.Array) (*LabelBuffer, error) {
	if arr == nil {
		return nil, errs.ErrEmptyBuffer
	}

	return &LabelBuffer{arr: arr}, nil
}

// NewLabelBufferFromStrings dictionary-encodes raw with the given missing
// value and wraps the result.
func NewLabelBufferFromStrings(raw [][]string, missing string) (*LabelBuffer, error) {
	arr, err := label.Encode(raw, missing)
	if err != nil {
		return nil, err
	}

	return &LabelBuffer{arr: arr}, nil
}

// Rows returns the number of rows.
func (b *LabelBuffer) Rows() int {
	return b.arr.Rows()
}

// Cols returns the number of columns.
func (b *LabelBuffer) Cols() int {
	return b.arr.Cols()
}

// Dtype returns format.DtypeLabel.
func (b *LabelBuffer) Dtype() format.Dtype {
	return format.DtypeLabel
}

// Labels returns the underlying label array.
func (b *LabelBuffer) Labels() *label.Array {
	return b.arr
}

func (b *LabelBuffer) clone() Buffer {
	return &LabelBuffer{arr: b.arr.Clone()}
}

func (b *LabelBuffer) applyMask(mask []bool) {
	cols := b.arr.Cols()
	for i, valid := range mask {
		if !valid {
			b.arr.SetMissing(i/cols, i%cols)
		}
	}
}

func (b *LabelBuffer) compatible(adj Adjustment) error {
	if _, ok := adj.(LabelOverwrite); !ok {
		return fmt.Errorf("%s adjustment on label buffer: %w", adj.Dtype(), errs.ErrAdjustmentDtypeMismatch)
	}

	return nil
}

func (b *LabelBuffer) apply(adj Adjustment) {
	a, ok := adj.(LabelOverwrite)
	if !ok {
		panic(fmt.Sprintf("array: %T adjustment on label buffer", adj))
	}

	s := a.Span()
	if err := b.arr.SetRegion(s.FirstRow, s.LastRow, s.FirstCol, s.LastCol, a.Value()); err != nil {
		// Spans are validated at engine construction.
		panic(fmt.Sprintf("array: %v", err))
	}
}

func timeToNanos(t time.Time) int64 {
	if t.IsZero() {
		return NaT
	}

	return t.UnixNano()
}

func nanosToTime(nanos int64) time.Time {
	if nanos == NaT {
		return time.Time{}
	}

	return time.Unix(0, nanos).UTC()
}
