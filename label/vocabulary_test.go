package label

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xyicheng/adjarray/internal/hash"
)

func TestVocabulary_Intern(t *testing.T) {
	v := newVocabulary("")
	require.Equal(t, 1, v.Len())
	require.Equal(t, "", v.MissingValue())
	require.Equal(t, "", v.Name(MissingCode))

	a := v.Intern("alpha")
	b := v.Intern("beta")
	require.Equal(t, int32(1), a)
	require.Equal(t, int32(2), b)

	// Re-interning returns the original code.
	require.Equal(t, a, v.Intern("alpha"))
	require.Equal(t, 3, v.Len())

	code, ok := v.Code("beta")
	require.True(t, ok)
	require.Equal(t, b, code)

	_, ok = v.Code("gamma")
	require.False(t, ok)

	require.Equal(t, []string{"", "alpha", "beta"}, v.Names())
}

func TestVocabulary_InternMissingValue(t *testing.T) {
	v := newVocabulary("N/A")
	require.Equal(t, MissingCode, v.Intern("N/A"))
	require.Equal(t, 1, v.Len())
}

func TestVocabulary_HashCollision(t *testing.T) {
	v := newVocabulary("")
	a := v.Intern("alpha")

	// Force the collision path: point the hash of an unseen name at alpha's
	// slot, as if both strings hashed identically.
	v.byHash[hash.ID("impostor")] = a

	b := v.Intern("impostor")
	require.Equal(t, int32(2), b)
	require.NotEqual(t, a, b)

	// Both names keep resolving to their own codes.
	code, ok := v.Code("alpha")
	require.True(t, ok)
	require.Equal(t, a, code)

	code, ok = v.Code("impostor")
	require.True(t, ok)
	require.Equal(t, b, code)

	require.Equal(t, "impostor", v.Name(b))
}

func TestVocabulary_NamesSnapshot(t *testing.T) {
	v := newVocabulary("")
	v.Intern("x")

	names := v.Names()
	names[1] = "mutated"

	require.Equal(t, "x", v.Name(1))
}

func TestVocabulary_ConcurrentIntern(t *testing.T) {
	v := newVocabulary("")

	const goroutines = 8
	const perGoroutine = 200

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				// Every goroutine interns the same names; codes must agree.
				name := "label-" + strconv.Itoa(i)
				code := v.Intern(name)
				require.Equal(t, name, v.Name(code))
			}
		}()
	}
	wg.Wait()

	require.Equal(t, perGoroutine+1, v.Len())
}
