package label

import (
	"fmt"
	"unicode/utf8"

	"github.com/xyicheng/adjarray/errs"
)

// Array is a dictionary-encoded 2-D string array: a grid of int32 codes plus
// a shared Vocabulary. Rows are chronological, columns index independent
// series.
//
// An Array may be a view into another Array's code grid (see View). Views
// narrow the grid with an offset and row stride but share both the backing
// codes and the Vocabulary, so writes through a view are visible to its
// parent and vice versa.
type Array struct {
	vocab  *Vocabulary
	codes  []int32 // backing code grid, row-major
	rows   int
	cols   int
	stride int // backing row stride; equals cols unless this is a column-narrowed view
	offset int // index of cell (0, 0) in codes
}

// Encode dictionary-encodes raw into a new Array.
//
// missing is assigned the reserved code 0 whether or not it occurs in raw;
// any cell equal to missing decodes back to it exactly. Every other distinct
// string is registered in a fresh Vocabulary in first-observation order.
//
// Returns errs.ErrInvalidMissingValue if missing is not valid UTF-8,
// errs.ErrEmptyBuffer for zero rows or columns, and errs.ErrRaggedRows if
// the rows of raw differ in length.
func Encode(raw [][]string, missing string) (*Array, error) {
	if !utf8.ValidString(missing) {
		return nil, fmt.Errorf("missing value %q: %w", missing, errs.ErrInvalidMissingValue)
	}
	if len(raw) == 0 || len(raw[0]) == 0 {
		return nil, errs.ErrEmptyBuffer
	}

	rows := len(raw)
	cols := len(raw[0])
	vocab := newVocabulary(missing)
	codes := make([]int32, rows*cols)

	for r, row := range raw {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", r, len(row), cols, errs.ErrRaggedRows)
		}
		for c, s := range row {
			codes[r*cols+c] = vocab.Intern(s)
		}
	}

	return &Array{
		vocab:  vocab,
		codes:  codes,
		rows:   rows,
		cols:   cols,
		stride: cols,
	}, nil
}

// fromCodes assembles an Array around an existing code grid and vocabulary.
// The caller is responsible for code validity.
func fromCodes(vocab *Vocabulary, codes []int32, rows, cols int) *Array {
	return &Array{
		vocab:  vocab,
		codes:  codes,
		rows:   rows,
		cols:   cols,
		stride: cols,
	}
}

// Rows returns the number of rows.
func (a *Array) Rows() int {
	return a.rows
}

// Cols returns the number of columns.
func (a *Array) Cols() int {
	return a.cols
}

// MissingValue returns the configured missing value string.
func (a *Array) MissingValue() string {
	return a.vocab.MissingValue()
}

// Vocab returns the shared vocabulary backing this array and all its views.
func (a *Array) Vocab() *Vocabulary {
	return a.vocab
}

// CodeAt returns the raw dictionary code at (row, col).
func (a *Array) CodeAt(row, col int) int32 {
	a.checkBounds(row, col)
	return a.codes[a.offset+row*a.stride+col]
}

// At returns the decoded string at (row, col).
func (a *Array) At(row, col int) string {
	return a.vocab.Name(a.CodeAt(row, col))
}

// Set writes value into the cell at (row, col), registering it in the shared
// vocabulary if unseen.
func (a *Array) Set(row, col int, value string) {
	a.checkBounds(row, col)
	a.codes[a.offset+row*a.stride+col] = a.vocab.Intern(value)
}

// SetRegion writes value into every cell of the inclusive rectangle
// [firstRow, lastRow] x [firstCol, lastCol], registering value in the shared
// vocabulary if unseen.
//
// Returns errs.ErrInvalidSpan if first > last on either axis, and
// errs.ErrAdjustmentOutOfBounds if the rectangle exceeds the array.
func (a *Array) SetRegion(firstRow, lastRow, firstCol, lastCol int, value string) error {
	if firstRow > lastRow || firstCol > lastCol {
		return fmt.Errorf("region rows [%d, %d] cols [%d, %d]: %w",
			firstRow, lastRow, firstCol, lastCol, errs.ErrInvalidSpan)
	}
	if firstRow < 0 || lastRow >= a.rows || firstCol < 0 || lastCol >= a.cols {
		return fmt.Errorf("region rows [%d, %d] cols [%d, %d] on %dx%d array: %w",
			firstRow, lastRow, firstCol, lastCol, a.rows, a.cols, errs.ErrAdjustmentOutOfBounds)
	}

	code := a.vocab.Intern(value)
	for r := firstRow; r <= lastRow; r++ {
		base := a.offset + r*a.stride
		for c := firstCol; c <= lastCol; c++ {
			a.codes[base+c] = code
		}
	}

	return nil
}

// SetMissing writes the missing value into the cell at (row, col).
func (a *Array) SetMissing(row, col int) {
	a.checkBounds(row, col)
	a.codes[a.offset+row*a.stride+col] = MissingCode
}

// View returns a sub-array over the inclusive rectangle
// [firstRow, lastRow] x [firstCol, lastCol].
//
// The view shares the backing code grid and the Vocabulary with the receiver:
// no codes are copied and no private vocabulary is created. Writes through
// the view are visible to the receiver and all sibling views.
func (a *Array) View(firstRow, lastRow, firstCol, lastCol int) (*Array, error) {
	if firstRow > lastRow || firstCol > lastCol {
		return nil, fmt.Errorf("view rows [%d, %d] cols [%d, %d]: %w",
			firstRow, lastRow, firstCol, lastCol, errs.ErrInvalidSpan)
	}
	if firstRow < 0 || lastRow >= a.rows || firstCol < 0 || lastCol >= a.cols {
		return nil, fmt.Errorf("view rows [%d, %d] cols [%d, %d] on %dx%d array: %w",
			firstRow, lastRow, firstCol, lastCol, a.rows, a.cols, errs.ErrAdjustmentOutOfBounds)
	}

	return &Array{
		vocab:  a.vocab,
		codes:  a.codes,
		rows:   lastRow - firstRow + 1,
		cols:   lastCol - firstCol + 1,
		stride: a.stride,
		offset: a.offset + firstRow*a.stride + firstCol,
	}, nil
}

// Decode materializes the array back into a 2-D string grid.
// Cells holding MissingCode decode to the configured missing value, so
// Decode(Encode(x)) reproduces x exactly.
func (a *Array) Decode() [][]string {
	out := make([][]string, a.rows)
	for r := 0; r < a.rows; r++ {
		row := make([]string, a.cols)
		base := a.offset + r*a.stride
		for c := 0; c < a.cols; c++ {
			row[c] = a.vocab.Name(a.codes[base+c])
		}
		out[r] = row
	}

	return out
}

// Clone returns a deep copy of the code grid sharing the receiver's
// Vocabulary. The clone is always compact, even when the receiver is a view.
func (a *Array) Clone() *Array {
	codes := make([]int32, a.rows*a.cols)
	for r := 0; r < a.rows; r++ {
		copy(codes[r*a.cols:(r+1)*a.cols], a.codes[a.offset+r*a.stride:a.offset+r*a.stride+a.cols])
	}

	return fromCodes(a.vocab, codes, a.rows, a.cols)
}

// Equal reports whether two arrays hold the same logical strings, cell by
// cell. The arrays may be backed by different vocabularies: equality is by
// decoded value, so two encoders built from differently-encoded inputs
// compare equal when they decode alike.
func (a *Array) Equal(other *Array) bool {
	if other == nil || a.rows != other.rows || a.cols != other.cols {
		return false
	}
	for r := 0; r < a.rows; r++ {
		for c := 0; c < a.cols; c++ {
			if a.At(r, c) != other.At(r, c) {
				return false
			}
		}
	}

	return true
}

func (a *Array) checkBounds(row, col int) {
	if row < 0 || row >= a.rows || col < 0 || col >= a.cols {
		panic(fmt.Sprintf("label: index (%d, %d) out of range for %dx%d array", row, col, a.rows, a.cols))
	}
}
