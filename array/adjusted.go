package array

import (
	"fmt"
	"iter"
	"slices"

	"github.com/xyicheng/adjarray/errs"
	"github.com/xyicheng/adjarray/format"
)

// Schedule maps an effective row index to the ordered adjustments that become
// visible once a traversal emits a window whose last row reaches that index.
// Rows with no entry are no-ops. Keys are applied in increasing order; within
// one key, list order is preserved.
type Schedule map[int][]Adjustment

// AdjustedArray is the adjusted columnar array engine. It holds the masked
// baseline buffer and the adjustment schedule, and produces windowed
// traversals over them.
//
// The baseline is computed once at construction (mask applied to a private
// copy of the buffer) and never mutated afterwards, so one engine can be
// traversed any number of times, concurrently included, with identical
// results.
type AdjustedArray struct {
	baseline Buffer
	schedule Schedule
	keys     []int // effective rows, sorted ascending
}

// New constructs an engine from a buffer, an optional validity mask and an
// adjustment schedule.
//
// mask may be nil for "no mask"; otherwise it must match the buffer shape
// exactly (errs.ErrMaskShapeMismatch). Every adjustment is validated here:
// spans must be well-formed and inside the buffer (errs.ErrInvalidSpan,
// errs.ErrAdjustmentOutOfBounds — out-of-bounds spans are rejected, never
// clipped), and payload types must match the buffer dtype
// (errs.ErrAdjustmentDtypeMismatch). No deferred failures: a constructed
// engine always yields fully well-formed traversals.
//
// The buffer and the schedule lists are copied; later caller mutations do not
// affect the engine.
func New(buf Buffer, mask [][]bool, adjustments Schedule) (*AdjustedArray, error) {
	if buf == nil {
		return nil, errs.ErrEmptyBuffer
	}

	rows := buf.Rows()
	cols := buf.Cols()

	flat, err := flattenMask(mask, rows, cols)
	if err != nil {
		return nil, err
	}

	schedule := make(Schedule, len(adjustments))
	keys := make([]int, 0, len(adjustments))
	for key, list := range adjustments {
		for _, adj := range list {
			if err := adj.Span().validate(rows, cols); err != nil {
				return nil, fmt.Errorf("adjustment %s at row %d: %w", adj, key, err)
			}
			if err := buf.compatible(adj); err != nil {
				return nil, fmt.Errorf("adjustment %s at row %d: %w", adj, key, err)
			}
		}
		schedule[key] = slices.Clone(list)
		keys = append(keys, key)
	}
	slices.Sort(keys)

	baseline := buf.clone()
	if flat != nil {
		baseline.applyMask(flat)
	}

	return &AdjustedArray{
		baseline: baseline,
		schedule: schedule,
		keys:     keys,
	}, nil
}

// flattenMask validates the mask shape against (rows, cols) and flattens it
// row-major. A nil mask means "no mask" and flattens to nil.
func flattenMask(mask [][]bool, rows, cols int) ([]bool, error) {
	if mask == nil {
		return nil, nil
	}

	maskCols := 0
	if len(mask) > 0 {
		maskCols = len(mask[0])
	}
	if len(mask) != rows || maskCols != cols {
		return nil, fmt.Errorf("mask shape (%d, %d) != data shape (%d, %d): %w",
			len(mask), maskCols, rows, cols, errs.ErrMaskShapeMismatch)
	}

	flat := make([]bool, 0, rows*cols)
	for r, row := range mask {
		if len(row) != maskCols {
			return nil, fmt.Errorf("mask row %d has %d values, want %d: %w",
				r, len(row), maskCols, errs.ErrRaggedRows)
		}
		flat = append(flat, row...)
	}

	return flat, nil
}

// Rows returns the number of baseline rows.
func (a *AdjustedArray) Rows() int {
	return a.baseline.Rows()
}

// Cols returns the number of baseline columns.
func (a *AdjustedArray) Cols() int {
	return a.baseline.Cols()
}

// Dtype returns the baseline's logical dtype.
func (a *AdjustedArray) Dtype() format.Dtype {
	return a.baseline.Dtype()
}

// Traverse starts a windowed traversal with windows of windowLength rows and
// all columns.
//
// Length validation happens here, before any window is produced:
// windowLength must be positive (errs.ErrWindowLengthNotPositive) and at most
// Rows() (errs.ErrWindowLengthTooLong).
//
// Each call clones the masked baseline into a fresh working buffer, so
// traversing twice yields identical sequences and concurrent traversals of
// one engine do not interfere.
func (a *AdjustedArray) Traverse(windowLength int) (*Traversal, error) {
	if windowLength <= 0 {
		return nil, fmt.Errorf("window length %d: %w", windowLength, errs.ErrWindowLengthNotPositive)
	}
	if windowLength > a.baseline.Rows() {
		return nil, fmt.Errorf("window length %d on %d buffer rows: %w",
			windowLength, a.baseline.Rows(), errs.ErrWindowLengthTooLong)
	}

	return &Traversal{
		engine:  a,
		working: a.baseline.clone(),
		length:  windowLength,
	}, nil
}

// Traversal is the explicit state machine of one windowed pass: a cursor
// offset plus a pointer into the sorted effective-row keys marking the next
// unapplied adjustment batch.
//
// The traversal owns a private working buffer. Adjustments mutate it
// cumulatively, each applied exactly once, before the first window whose last
// row reaches their effective row is emitted.
type Traversal struct {
	engine  *AdjustedArray
	working Buffer
	length  int
	offset  int // next window start
	nextKey int // index into engine.keys of the next unapplied effective row
}

// NumWindows returns the total number of windows this traversal will emit:
// rows - windowLength + 1.
func (t *Traversal) NumWindows() int {
	return t.working.Rows() - t.length + 1
}

// Next emits the window at the current offset, first applying every
// not-yet-applied adjustment keyed at or before the window's last row, in
// increasing key order and list order within a key.
//
// The returned window remains readable until the next call to Next: later
// windows may overlap it, and adjustments they trigger mutate the shared
// working buffer.
//
// Next returns ok == false once the last legal offset has been emitted.
func (t *Traversal) Next() (Window, bool) {
	if t.offset > t.working.Rows()-t.length {
		return Window{}, false
	}

	last := t.offset + t.length - 1
	for t.nextKey < len(t.engine.keys) && t.engine.keys[t.nextKey] <= last {
		for _, adj := range t.engine.schedule[t.engine.keys[t.nextKey]] {
			t.working.apply(adj)
		}
		t.nextKey++
	}

	window := Window{
		buf:   t.working,
		start: t.offset,
		rows:  t.length,
	}
	t.offset++

	return window, true
}

// All returns an iterator over the remaining windows.
//
// Example:
//
//	trav, err := engine.Traverse(20)
//	if err != nil {
//	    return err
//	}
//	for window := range trav.All() {
//	    // consume window
//	}
func (t *Traversal) All() iter.Seq[Window] {
	return func(yield func(Window) bool) {
		for {
			window, ok := t.Next()
			if !ok {
				return
			}
			if !yield(window) {
				return
			}
		}
	}
}
