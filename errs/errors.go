// Package errs defines the sentinel errors returned by the adjarray module.
//
// Callers match these with errors.Is; the messages attached at call sites
// carry the offending values (shapes, lengths, bounds).
package errs

import "errors"

// Engine construction errors.
var (
	// ErrMaskShapeMismatch indicates the validity mask shape differs from the data shape.
	ErrMaskShapeMismatch = errors.New("mask shape does not match data shape")

	// ErrInvalidSpan indicates an adjustment span with first > last on either axis.
	ErrInvalidSpan = errors.New("invalid adjustment span")

	// ErrAdjustmentOutOfBounds indicates an adjustment span referencing rows or
	// columns outside the buffer. Spans are never silently clipped.
	ErrAdjustmentOutOfBounds = errors.New("adjustment span out of buffer bounds")

	// ErrAdjustmentDtypeMismatch indicates an adjustment payload that is not
	// applicable to the buffer's dtype (e.g. multiply on a label buffer).
	ErrAdjustmentDtypeMismatch = errors.New("adjustment dtype does not match buffer dtype")

	// ErrEmptyBuffer indicates a buffer constructed with zero rows or columns.
	ErrEmptyBuffer = errors.New("buffer must have at least one row and one column")

	// ErrRaggedRows indicates 2-D input whose rows have differing lengths.
	ErrRaggedRows = errors.New("input rows have differing lengths")
)

// Traversal errors.
var (
	// ErrWindowLengthNotPositive indicates Traverse was called with length <= 0.
	ErrWindowLengthNotPositive = errors.New("window length is not positive")

	// ErrWindowLengthTooLong indicates Traverse was called with a length
	// exceeding the number of buffer rows.
	ErrWindowLengthTooLong = errors.New("window length exceeds buffer rows")
)

// Label encoding errors.
var (
	// ErrInvalidMissingValue indicates a label missing value that is not valid UTF-8.
	ErrInvalidMissingValue = errors.New("missing value is not valid UTF-8")
)

// Label blob decoding errors.
var (
	ErrInvalidMagicNumber   = errors.New("invalid magic number")
	ErrInvalidHeaderSize    = errors.New("blob data smaller than header")
	ErrInvalidBlobFlag      = errors.New("invalid blob flag")
	ErrInvalidVocabCount    = errors.New("invalid vocabulary count")
	ErrInvalidVocabPayload  = errors.New("invalid vocabulary payload")
	ErrInvalidCodesPayload  = errors.New("invalid codes payload")
	ErrInvalidBlobDimension = errors.New("invalid blob dimensions")
)
