// Package label implements dictionary encoding for 2-D string arrays.
//
// An Array stores a rectangular grid of strings as small integer codes plus a
// shared, growable Vocabulary. Code 0 is reserved for the configured missing
// value, so decoding always round-trips missing cells exactly.
//
// Views created with Array.View narrow the code grid without copying the
// vocabulary: all views derived from one encoder share the same Vocabulary by
// reference, and registering a new string through any view makes its code
// visible to every other view. Previously issued codes are never invalidated
// because the vocabulary only grows.
//
// The package also provides the compact blob form of an Array: BlobEncoder
// serializes the vocabulary and code grid into a self-describing byte blob
// with per-section compression, and DecodeBlob reverses it.
package label
