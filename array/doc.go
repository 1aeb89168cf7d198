// Package array implements the adjusted columnar array engine: a rectangular
// buffer of per-series time-indexed values read through sliding windows while
// point-in-time corrections are applied cumulatively, exactly once each, as
// the window cursor advances.
//
// An AdjustedArray owns a masked baseline buffer, never mutated after
// construction, and a schedule mapping effective rows to ordered adjustment
// lists. Traverse clones the baseline into a private working buffer and
// returns a Traversal: an explicit cursor that applies every adjustment keyed
// at or before a window's last row before emitting that window. Because each
// traversal starts from the untouched baseline, traversing the same engine
// twice yields identical sequences.
//
// Buffers come in two families behind one interface: NumericBuffer (float64,
// int64, and nanosecond timestamps) and LabelBuffer (dictionary-encoded
// strings, see the label package). Adjustments are typed per operation and
// dtype: multiplies for numeric buffers, overwrites for all families.
//
// Windows are read-only views: they expose typed accessors and copying
// getters only, so a consumer cannot write through a window into the shared
// working buffer.
package array
