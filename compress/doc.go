// Package compress provides the compression codecs used by the label blob
// encoding.
//
// A label blob carries two independently compressed sections: the vocabulary
// payload (variable-length strings, highly compressible) and the code payload
// (fixed-width integers with heavy value repetition). Each section is
// compressed with the codec recorded in the blob flag, so decoders pick the
// matching codec without configuration.
//
// Available codecs:
//   - NoOp: pass-through, for already-small arrays or benchmarking
//   - Zstd: best ratio, recommended for vocabulary-heavy arrays
//   - S2: fastest, good for code payloads with long runs
//   - LZ4: balanced speed and ratio
package compress
