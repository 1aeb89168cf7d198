// Package adjarray provides a time-indexed, adjustable columnar array engine:
// a rectangular buffer of per-series values (prices, counts, categorical
// labels) read through sliding windows while point-in-time corrections
// (splits, dividends, restatements) are applied cumulatively, exactly once,
// at the historical row where each takes effect.
//
// # Core Features
//
//   - Single-pass windowed traversal with cumulative, exactly-once adjustment
//     application keyed by effective row
//   - Dtype polymorphism across float64, int64, nanosecond timestamps and
//     dictionary-encoded strings, with no generic object storage
//   - Optional validity masks substituting a dtype-specific missing value
//   - Read-only windows and idempotent re-traversal from an untouched baseline
//   - Compact, compressible blob encoding for label arrays (see the label
//     package)
//
// # Basic Usage
//
// Creating and traversing a float64 engine:
//
//	import "github.com/xyicheng/adjarray"
//
//	engine, _ := adjarray.NewFloat64(
//	    prices, // [][]float64, rows chronological, one column per asset
//	    nil,    // no mask
//	    array.Schedule{
//	        // 2:1 split effective at row 3, column 0
//	        3: {array.NewFloat64Multiply(0, 2, 0, 0, 0.5)},
//	    },
//	    math.NaN(),
//	)
//
//	trav, err := engine.Traverse(20)
//	if err != nil {
//	    return err
//	}
//	for window := range trav.All() {
//	    // window is a read-only 20 x Cols view
//	}
//
// String data is dictionary-encoded transparently:
//
//	engine, _ := adjarray.NewLabels(ratings, nil, array.Schedule{
//	    2: {array.NewLabelOverwrite(0, 1, 4, 4, "AA+")},
//	}, "")
//
// # Package Structure
//
// This package provides convenient top-level constructors around the array
// and label packages. For fine-grained control (pre-encoded label arrays,
// custom buffers, blob encoding), use those packages directly.
package adjarray

import (
	"time"

	"github.com/xyicheng/adjarray/array"
	"github.com/xyicheng/adjarray/label"
)

// NewFloat64 constructs an engine over float64 data.
//
// mask may be nil for "no mask"; otherwise it must match the data shape.
// missing is the value substituted at masked-out positions (math.NaN by
// convention). The data is copied; the engine never mutates caller memory.
func NewFloat64(data [][]float64, mask [][]bool, adjustments array.Schedule, missing float64) (*array.AdjustedArray, error) {
	buf, err := array.NewFloat64Buffer(data, missing)
	if err != nil {
		return nil, err
	}

	return array.New(buf, mask, adjustments)
}

// NewInt64 constructs an engine over int64 data.
func NewInt64(data [][]int64, mask [][]bool, adjustments array.Schedule, missing int64) (*array.AdjustedArray, error) {
	buf, err := array.NewInt64Buffer(data, missing)
	if err != nil {
		return nil, err
	}

	return array.New(buf, mask, adjustments)
}

// NewDatetime64 constructs an engine over timestamp data, stored as
// nanosecond int64 values. The zero time.Time maps to the NaT sentinel, both
// in data and as the missing value.
func NewDatetime64(data [][]time.Time, mask [][]bool, adjustments array.Schedule, missing time.Time) (*array.AdjustedArray, error) {
	buf, err := array.NewDatetime64Buffer(data, missing)
	if err != nil {
		return nil, err
	}

	return array.New(buf, mask, adjustments)
}

// NewLabels constructs an engine over string data, dictionary-encoding it
// with the given missing value.
func NewLabels(data [][]string, mask [][]bool, adjustments array.Schedule, missing string) (*array.AdjustedArray, error) {
	buf, err := array.NewLabelBufferFromStrings(data, missing)
	if err != nil {
		return nil, err
	}

	return array.New(buf, mask, adjustments)
}

// NewFromLabelArray constructs an engine over a pre-encoded label array,
// e.g. one decoded from its blob form with label.DecodeBlob. The array's
// shared vocabulary is reused as-is.
func NewFromLabelArray(arr *label.Array, mask [][]bool, adjustments array.Schedule) (*array.AdjustedArray, error) {
	buf, err := array.NewLabelBuffer(arr)
	if err != nil {
		return nil, err
	}

	return array.New(buf, mask, adjustments)
}
