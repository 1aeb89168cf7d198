package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
// Vocabulary interning uses it as the primary lookup key.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
