package label

import (
	"sync"

	"github.com/xyicheng/adjarray/internal/hash"
)

// MissingCode is the reserved code for the missing value.
// It is always the first vocabulary entry.
const MissingCode int32 = 0

// Vocabulary maps distinct observed strings to dense integer codes.
//
// Lookups are keyed by xxHash64 of the string. When two distinct strings hash
// to the same value, the later one is interned through a string-keyed overflow
// map, so a collision can never resolve to the wrong code.
//
// A Vocabulary is shared by reference across every Array and view derived
// from one encoder. It only grows; codes are never reassigned or removed.
// All methods are safe for concurrent use.
type Vocabulary struct {
	mu       sync.RWMutex
	byHash   map[uint64]int32 // xxHash64(name) → code of the first name with that hash
	overflow map[string]int32 // names whose hash collided with a different name
	names    []string         // code → name; names[0] is the missing value
}

func newVocabulary(missing string) *Vocabulary {
	v := &Vocabulary{
		byHash: make(map[uint64]int32),
		names:  make([]string, 0, 16),
	}
	v.names = append(v.names, missing)
	v.byHash[hash.ID(missing)] = MissingCode

	return v
}

// MissingValue returns the string decoded for MissingCode.
func (v *Vocabulary) MissingValue() string {
	// names[0] is written once at construction and never reassigned.
	return v.names[0]
}

// Len returns the number of distinct entries, including the missing value.
func (v *Vocabulary) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return len(v.names)
}

// Code returns the code for name, or (MissingCode, false) if name has not
// been interned.
func (v *Vocabulary) Code(name string) (int32, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.lookupLocked(name)
}

// lookupLocked resolves name to its code. Callers must hold at least a read lock.
func (v *Vocabulary) lookupLocked(name string) (int32, bool) {
	if code, ok := v.byHash[hash.ID(name)]; ok {
		if v.names[code] == name {
			return code, true
		}
		// Hash collision with a different name: fall through to the overflow map.
		if code, ok := v.overflow[name]; ok {
			return code, true
		}
	}

	return MissingCode, false
}

// Intern returns the code for name, registering it if unseen.
// Registering never invalidates previously issued codes.
func (v *Vocabulary) Intern(name string) int32 {
	v.mu.Lock()
	defer v.mu.Unlock()

	if code, ok := v.lookupLocked(name); ok {
		return code
	}

	code := int32(len(v.names))
	v.names = append(v.names, name)

	h := hash.ID(name)
	if _, taken := v.byHash[h]; taken {
		if v.overflow == nil {
			v.overflow = make(map[string]int32)
		}
		v.overflow[name] = code
	} else {
		v.byHash[h] = code
	}

	return code
}

// Name returns the string for code. Codes are only ever produced by this
// vocabulary, so an out-of-range code is a programming error and panics.
func (v *Vocabulary) Name(code int32) string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.names[code]
}

// Names returns a snapshot of all entries in code order.
// The slice is newly allocated to prevent external modification.
func (v *Vocabulary) Names() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]string, len(v.names))
	copy(out, v.names)

	return out
}
