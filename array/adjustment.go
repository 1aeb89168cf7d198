package array

import (
	"fmt"
	"time"

	"github.com/xyicheng/adjarray/errs"
	"github.com/xyicheng/adjarray/format"
)

// Span is the inclusive rectangular region an adjustment applies to.
type Span struct {
	FirstRow int
	LastRow  int
	FirstCol int
	LastCol  int
}

// validate checks the span is well-formed and lies inside a rows x cols buffer.
// Out-of-bounds spans are an error, never clipped: silent clipping would
// corrupt the cumulative single-pass application.
func (s Span) validate(rows, cols int) error {
	if s.FirstRow > s.LastRow || s.FirstCol > s.LastCol {
		return fmt.Errorf("span rows [%d, %d] cols [%d, %d]: %w",
			s.FirstRow, s.LastRow, s.FirstCol, s.LastCol, errs.ErrInvalidSpan)
	}
	if s.FirstRow < 0 || s.LastRow >= rows || s.FirstCol < 0 || s.LastCol >= cols {
		return fmt.Errorf("span rows [%d, %d] cols [%d, %d] on %dx%d buffer: %w",
			s.FirstRow, s.LastRow, s.FirstCol, s.LastCol, rows, cols, errs.ErrAdjustmentOutOfBounds)
	}

	return nil
}

func (s Span) fields() string {
	return fmt.Sprintf("first_row=%d, last_row=%d, first_col=%d, last_col=%d",
		s.FirstRow, s.LastRow, s.FirstCol, s.LastCol)
}

// Adjustment is an immutable descriptor of a rectangular region and the
// operation to apply to it. Concrete types pair an operation kind with a
// dtype family: Float64Multiply, Int64Multiply, Float64Overwrite,
// Int64Overwrite, Datetime64Overwrite and LabelOverwrite.
type Adjustment interface {
	// Span returns the inclusive region the adjustment covers.
	Span() Span

	// Kind returns the operation kind (multiply or overwrite).
	Kind() format.AdjustmentKind

	// Dtype returns the buffer dtype family the adjustment applies to.
	Dtype() format.Dtype

	// String renders the adjustment for Inspect output.
	String() string
}

// Float64Multiply scales a region of a float64 buffer by a constant factor.
type Float64Multiply struct {
	span  Span
	value float64
}

// NewFloat64Multiply creates a multiply adjustment over the inclusive region
// [firstRow, lastRow] x [firstCol, lastCol].
func NewFloat64Multiply(firstRow, lastRow, firstCol, lastCol int, value float64) Float64Multiply {
	return Float64Multiply{span: Span{firstRow, lastRow, firstCol, lastCol}, value: value}
}

func (a Float64Multiply) Span() Span                  { return a.span }
func (a Float64Multiply) Kind() format.AdjustmentKind { return format.KindMultiply }
func (a Float64Multiply) Dtype() format.Dtype         { return format.DtypeFloat64 }
func (a Float64Multiply) Value() float64              { return a.value }

func (a Float64Multiply) String() string {
	return fmt.Sprintf("Float64Multiply(%s, value=%f)", a.span.fields(), a.value)
}

// Float64Overwrite replaces a region of a float64 buffer with a constant value.
type Float64Overwrite struct {
	span  Span
	value float64
}

// NewFloat64Overwrite creates an overwrite adjustment over the inclusive
// region [firstRow, lastRow] x [firstCol, lastCol].
func NewFloat64Overwrite(firstRow, lastRow, firstCol, lastCol int, value float64) Float64Overwrite {
	return Float64Overwrite{span: Span{firstRow, lastRow, firstCol, lastCol}, value: value}
}

func (a Float64Overwrite) Span() Span                  { return a.span }
func (a Float64Overwrite) Kind() format.AdjustmentKind { return format.KindOverwrite }
func (a Float64Overwrite) Dtype() format.Dtype         { return format.DtypeFloat64 }
func (a Float64Overwrite) Value() float64              { return a.value }

func (a Float64Overwrite) String() string {
	return fmt.Sprintf("Float64Overwrite(%s, value=%f)", a.span.fields(), a.value)
}

// Int64Multiply scales a region of an int64 buffer by a constant factor.
type Int64Multiply struct {
	span  Span
	value int64
}

// NewInt64Multiply creates a multiply adjustment over the inclusive region
// [firstRow, lastRow] x [firstCol, lastCol].
func NewInt64Multiply(firstRow, lastRow, firstCol, lastCol int, value int64) Int64Multiply {
	return Int64Multiply{span: Span{firstRow, lastRow, firstCol, lastCol}, value: value}
}

func (a Int64Multiply) Span() Span                  { return a.span }
func (a Int64Multiply) Kind() format.AdjustmentKind { return format.KindMultiply }
func (a Int64Multiply) Dtype() format.Dtype         { return format.DtypeInt64 }
func (a Int64Multiply) Value() int64                { return a.value }

func (a Int64Multiply) String() string {
	return fmt.Sprintf("Int64Multiply(%s, value=%d)", a.span.fields(), a.value)
}

// Int64Overwrite replaces a region of an int64 buffer with a constant value.
type Int64Overwrite struct {
	span  Span
	value int64
}

// NewInt64Overwrite creates an overwrite adjustment over the inclusive region
// [firstRow, lastRow] x [firstCol, lastCol].
func NewInt64Overwrite(firstRow, lastRow, firstCol, lastCol int, value int64) Int64Overwrite {
	return Int64Overwrite{span: Span{firstRow, lastRow, firstCol, lastCol}, value: value}
}

func (a Int64Overwrite) Span() Span                  { return a.span }
func (a Int64Overwrite) Kind() format.AdjustmentKind { return format.KindOverwrite }
func (a Int64Overwrite) Dtype() format.Dtype         { return format.DtypeInt64 }
func (a Int64Overwrite) Value() int64                { return a.value }

func (a Int64Overwrite) String() string {
	return fmt.Sprintf("Int64Overwrite(%s, value=%d)", a.span.fields(), a.value)
}

// Datetime64Overwrite replaces a region of a datetime64 buffer with a
// constant timestamp. The zero time.Time writes the NaT sentinel.
type Datetime64Overwrite struct {
	span  Span
	value time.Time
}

// NewDatetime64Overwrite creates an overwrite adjustment over the inclusive
// region [firstRow, lastRow] x [firstCol, lastCol].
func NewDatetime64Overwrite(firstRow, lastRow, firstCol, lastCol int, value time.Time) Datetime64Overwrite {
	return Datetime64Overwrite{span: Span{firstRow, lastRow, firstCol, lastCol}, value: value}
}

func (a Datetime64Overwrite) Span() Span                  { return a.span }
func (a Datetime64Overwrite) Kind() format.AdjustmentKind { return format.KindOverwrite }
func (a Datetime64Overwrite) Dtype() format.Dtype         { return format.DtypeDatetime64 }
func (a Datetime64Overwrite) Value() time.Time            { return a.value }

func (a Datetime64Overwrite) String() string {
	return fmt.Sprintf("Datetime64Overwrite(%s, value=%s)", a.span.fields(), formatDatetime(timeToNanos(a.value)))
}

// LabelOverwrite replaces a region of a label buffer with a string value.
// The value is re-encoded through the buffer's shared vocabulary, registering
// it if unseen.
type LabelOverwrite struct {
	span  Span
	value string
}

// NewLabelOverwrite creates an overwrite adjustment over the inclusive region
// [firstRow, lastRow] x [firstCol, lastCol].
func NewLabelOverwrite(firstRow, lastRow, firstCol, lastCol int, value string) LabelOverwrite {
	return LabelOverwrite{span: Span{firstRow, lastRow, firstCol, lastCol}, value: value}
}

func (a LabelOverwrite) Span() Span                  { return a.span }
func (a LabelOverwrite) Kind() format.AdjustmentKind { return format.KindOverwrite }
func (a LabelOverwrite) Dtype() format.Dtype         { return format.DtypeLabel }
func (a LabelOverwrite) Value() string               { return a.value }

func (a LabelOverwrite) String() string {
	return fmt.Sprintf("LabelOverwrite(%s, value=%q)", a.span.fields(), a.value)
}
