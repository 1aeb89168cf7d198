package label

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xyicheng/adjarray/errs"
	"github.com/xyicheng/adjarray/format"
)

func testGrid() [][]string {
	return [][]string{
		{"AAPL", "MSFT", "GOOG", ""},
		{"AAPL", "", "GOOG", "TSLA"},
		{"TSLA", "MSFT", "", "AAPL"},
	}
}

func TestBlob_RoundTrip(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	arr, err := Encode(testGrid(), "")
	require.NoError(t, err)

	for _, compression := range compressions {
		t.Run(compression.String(), func(t *testing.T) {
			enc, err := NewBlobEncoder(WithBlobCompression(compression))
			require.NoError(t, err)

			blob, err := enc.Encode(arr)
			require.NoError(t, err)

			decoded, err := DecodeBlob(blob)
			require.NoError(t, err)
			require.Equal(t, arr.Rows(), decoded.Rows())
			require.Equal(t, arr.Cols(), decoded.Cols())
			require.Equal(t, arr.MissingValue(), decoded.MissingValue())
			require.Equal(t, testGrid(), decoded.Decode())
			require.True(t, arr.Equal(decoded))
		})
	}
}

func TestBlob_RoundTripBigEndian(t *testing.T) {
	arr, err := Encode(testGrid(), "")
	require.NoError(t, err)

	enc, err := NewBlobEncoder(WithBlobBigEndian())
	require.NoError(t, err)

	blob, err := enc.Encode(arr)
	require.NoError(t, err)
	require.NotZero(t, blob[4]&flagBigEndian)

	decoded, err := DecodeBlob(blob)
	require.NoError(t, err)
	require.Equal(t, testGrid(), decoded.Decode())
}

func TestBlob_RoundTripView(t *testing.T) {
	arr, err := Encode(testGrid(), "")
	require.NoError(t, err)
	view, err := arr.View(0, 1, 1, 3)
	require.NoError(t, err)

	enc, err := NewBlobEncoder()
	require.NoError(t, err)

	blob, err := enc.Encode(view)
	require.NoError(t, err)

	decoded, err := DecodeBlob(blob)
	require.NoError(t, err)
	require.Equal(t, view.Decode(), decoded.Decode())
}

func TestBlob_RoundTripNonEmptyMissing(t *testing.T) {
	arr, err := Encode([][]string{{"x", "N/A"}, {"N/A", "y"}}, "N/A")
	require.NoError(t, err)

	enc, err := NewBlobEncoder(WithBlobCompression(format.CompressionZstd))
	require.NoError(t, err)

	blob, err := enc.Encode(arr)
	require.NoError(t, err)

	decoded, err := DecodeBlob(blob)
	require.NoError(t, err)
	require.Equal(t, "N/A", decoded.MissingValue())
	require.Equal(t, MissingCode, decoded.CodeAt(0, 1))
}

func TestNewBlobEncoder_InvalidCompression(t *testing.T) {
	_, err := NewBlobEncoder(WithBlobCompression(format.CompressionType(0x9)))
	require.Error(t, err)
}

func TestDecodeBlob_Errors(t *testing.T) {
	arr, err := Encode(testGrid(), "")
	require.NoError(t, err)
	enc, err := NewBlobEncoder()
	require.NoError(t, err)
	blob, err := enc.Encode(arr)
	require.NoError(t, err)

	tamper := func(mutate func(b []byte)) []byte {
		out := make([]byte, len(blob))
		copy(out, blob)
		mutate(out)
		return out
	}

	t.Run("truncated header", func(t *testing.T) {
		_, err := DecodeBlob(blob[:blobHeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("bad magic", func(t *testing.T) {
		_, err := DecodeBlob(tamper(func(b []byte) { b[0] = 'X' }))
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})

	t.Run("bad version", func(t *testing.T) {
		_, err := DecodeBlob(tamper(func(b []byte) { b[5] = 99 }))
		require.ErrorIs(t, err, errs.ErrInvalidBlobFlag)
	})

	t.Run("bad compression nibble", func(t *testing.T) {
		_, err := DecodeBlob(tamper(func(b []byte) { b[4] = 0x90 }))
		require.ErrorIs(t, err, errs.ErrInvalidBlobFlag)
	})

	t.Run("zero dimensions", func(t *testing.T) {
		_, err := DecodeBlob(tamper(func(b []byte) {
			b[6], b[7], b[8], b[9] = 0, 0, 0, 0 // rows
		}))
		require.ErrorIs(t, err, errs.ErrInvalidBlobDimension)
	})

	t.Run("zero vocabulary count", func(t *testing.T) {
		_, err := DecodeBlob(tamper(func(b []byte) {
			b[14], b[15], b[16], b[17] = 0, 0, 0, 0
		}))
		require.ErrorIs(t, err, errs.ErrInvalidVocabCount)
	})

	t.Run("payload size mismatch", func(t *testing.T) {
		_, err := DecodeBlob(blob[:len(blob)-1])
		require.ErrorIs(t, err, errs.ErrInvalidCodesPayload)
	})

	t.Run("out of range code", func(t *testing.T) {
		// Uncompressed blob: the last 4 header-relative bytes are the final
		// code. Overwrite it with a code past the vocabulary.
		_, err := DecodeBlob(tamper(func(b []byte) {
			b[len(b)-4], b[len(b)-3], b[len(b)-2], b[len(b)-1] = 0xff, 0xff, 0xff, 0x7f
		}))
		require.ErrorIs(t, err, errs.ErrInvalidCodesPayload)
	})

	t.Run("duplicate vocabulary entry", func(t *testing.T) {
		dup, err := Encode([][]string{{"a", "b"}}, "")
		require.NoError(t, err)
		raw, err := enc.Encode(dup)
		require.NoError(t, err)

		// Entries are "", "a", "b", each a uvarint length + bytes. Rewriting
		// "b" to "a" makes the vocabulary payload self-colliding.
		_, err = DecodeBlob(tamper2(raw, func(b []byte) {
			b[blobHeaderSize+4] = 'a'
		}))
		require.ErrorIs(t, err, errs.ErrInvalidVocabPayload)
	})
}

func tamper2(blob []byte, mutate func(b []byte)) []byte {
	out := make([]byte, len(blob))
	copy(out, blob)
	mutate(out)
	return out
}
