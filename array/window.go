package array

import (
	"fmt"
	"time"

	"github.com/xyicheng/adjarray/format"
)

// Window is a read-only, fixed-shape view over a traversal's working buffer:
// windowLength consecutive rows, all columns.
//
// A window is a non-owning borrow. It has no mutating methods, and its
// copying getters (Float64s, Int64s, Times, Strings) return freshly allocated
// grids, so consumers cannot write through a window into shared engine state.
//
// Typed accessors check the dtype: calling a mismatched accessor is a
// programming error and panics.
type Window struct {
	buf   Buffer
	start int
	rows  int
}

// Rows returns the window length.
func (w Window) Rows() int {
	return w.rows
}

// Cols returns the number of columns.
func (w Window) Cols() int {
	return w.buf.Cols()
}

// Dtype returns the underlying buffer's logical dtype.
func (w Window) Dtype() format.Dtype {
	return w.buf.Dtype()
}

// Float64At returns the float64 value at (row, col) of the window.
func (w Window) Float64At(row, col int) float64 {
	b, ok := w.buf.(*NumericBuffer[float64])
	if !ok {
		panic(fmt.Sprintf("array: Float64At on %s window", w.buf.Dtype()))
	}
	w.checkCell(row, col)

	return b.at(w.start+row, col)
}

// Int64At returns the int64 value at (row, col) of the window. It serves
// both int64 and datetime64 windows; the latter yields nanosecond
// timestamps (NaT for missing).
func (w Window) Int64At(row, col int) int64 {
	b, ok := w.buf.(*NumericBuffer[int64])
	if !ok {
		panic(fmt.Sprintf("array: Int64At on %s window", w.buf.Dtype()))
	}
	w.checkCell(row, col)

	return b.at(w.start+row, col)
}

// TimeAt returns the timestamp at (row, col) of a datetime64 window.
// The NaT sentinel decodes to the zero time.Time.
func (w Window) TimeAt(row, col int) time.Time {
	if w.buf.Dtype() != format.DtypeDatetime64 {
		panic(fmt.Sprintf("array: TimeAt on %s window", w.buf.Dtype()))
	}

	return nanosToTime(w.Int64At(row, col))
}

// StringAt returns the decoded string at (row, col) of a label window.
func (w Window) StringAt(row, col int) string {
	b, ok := w.buf.(*LabelBuffer)
	if !ok {
		panic(fmt.Sprintf("array: StringAt on %s window", w.buf.Dtype()))
	}
	w.checkCell(row, col)

	return b.arr.At(w.start+row, col)
}

// Float64s copies the window into a freshly allocated 2-D grid.
func (w Window) Float64s() [][]float64 {
	return copyWindow(w, w.Float64At)
}

// Int64s copies the window into a freshly allocated 2-D grid.
func (w Window) Int64s() [][]int64 {
	return copyWindow(w, w.Int64At)
}

// Times copies a datetime64 window into a freshly allocated 2-D grid.
func (w Window) Times() [][]time.Time {
	return copyWindow(w, w.TimeAt)
}

// Strings copies a label window into a freshly allocated 2-D grid of decoded
// strings.
func (w Window) Strings() [][]string {
	return copyWindow(w, w.StringAt)
}

func copyWindow[T any](w Window, at func(row, col int) T) [][]T {
	out := make([][]T, w.rows)
	cols := w.buf.Cols()
	for r := 0; r < w.rows; r++ {
		row := make([]T, cols)
		for c := 0; c < cols; c++ {
			row[c] = at(r, c)
		}
		out[r] = row
	}

	return out
}

func (w Window) checkCell(row, col int) {
	if row < 0 || row >= w.rows || col < 0 || col >= w.buf.Cols() {
		panic(fmt.Sprintf("array: window index (%d, %d) out of range for %dx%d window", row, col, w.rows, w.buf.Cols()))
	}
}
