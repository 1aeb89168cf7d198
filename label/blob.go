package label

import (
	"encoding/binary"
	"fmt"

	"github.com/xyicheng/adjarray/compress"
	"github.com/xyicheng/adjarray/endian"
	"github.com/xyicheng/adjarray/errs"
	"github.com/xyicheng/adjarray/format"
	"github.com/xyicheng/adjarray/internal/options"
	"github.com/xyicheng/adjarray/internal/pool"
)

// Blob layout:
//
//	bytes 0-3   magic "LBLA"
//	byte  4     flag: low nibble endianness (0 little, 1 big), high nibble compression type
//	byte  5     version (currently 1)
//	bytes 6-9   rows (uint32)
//	bytes 10-13 cols (uint32)
//	bytes 14-17 vocabulary entry count (uint32)
//	bytes 18-21 compressed vocabulary payload length (uint32)
//	bytes 22-25 compressed codes payload length (uint32)
//	...         vocabulary payload: uvarint length + UTF-8 bytes per entry, code order
//	...         codes payload: rows*cols uint32 codes, row-major
//
// The vocabulary and codes payloads are compressed independently with the
// codec recorded in the flag.
const (
	blobVersion    = 1
	blobHeaderSize = 26

	flagBigEndian = 0x01
)

var blobMagic = [4]byte{'L', 'B', 'L', 'A'}

// BlobEncoder serializes an Array into its compact blob form.
//
// Configure it with functional options:
//
//	enc, err := label.NewBlobEncoder(
//	    label.WithBlobCompression(format.CompressionZstd),
//	)
type BlobEncoder struct {
	engine      endian.EndianEngine
	compression format.CompressionType
	codec       compress.Codec
}

// BlobEncoderOption configures a BlobEncoder.
type BlobEncoderOption = options.Option[*BlobEncoder]

// WithBlobCompression selects the compression codec for both payload sections.
func WithBlobCompression(compression format.CompressionType) BlobEncoderOption {
	return options.New(func(e *BlobEncoder) error {
		codec, err := compress.GetCodec(compression)
		if err != nil {
			return err
		}
		e.compression = compression
		e.codec = codec

		return nil
	})
}

// WithBlobLittleEndian encodes multi-byte fields in little-endian byte order.
// This is the default.
func WithBlobLittleEndian() BlobEncoderOption {
	return options.NoError(func(e *BlobEncoder) {
		e.engine = endian.GetLittleEndianEngine()
	})
}

// WithBlobBigEndian encodes multi-byte fields in big-endian byte order.
func WithBlobBigEndian() BlobEncoderOption {
	return options.NoError(func(e *BlobEncoder) {
		e.engine = endian.GetBigEndianEngine()
	})
}

// NewBlobEncoder creates a blob encoder. Defaults: little-endian, no
// compression.
func NewBlobEncoder(opts ...BlobEncoderOption) (*BlobEncoder, error) {
	enc := &BlobEncoder{
		engine:      endian.GetLittleEndianEngine(),
		compression: format.CompressionNone,
		codec:       compress.NewNoOpCompressor(),
	}
	if err := options.Apply(enc, opts...); err != nil {
		return nil, err
	}

	return enc, nil
}

// Encode serializes arr, including views, into a self-describing blob.
// The returned slice is newly allocated and owned by the caller.
func (e *BlobEncoder) Encode(arr *Array) ([]byte, error) {
	rows := arr.Rows()
	cols := arr.Cols()

	// Snapshot codes before the vocabulary so every referenced code is covered
	// by the snapshot even if another goroutine interns concurrently.
	codesRaw := make([]byte, 0, rows*cols*4)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			codesRaw = e.engine.AppendUint32(codesRaw, uint32(arr.CodeAt(r, c)))
		}
	}
	names := arr.Vocab().Names()

	vocabRaw := make([]byte, 0, len(names)*8)
	for _, name := range names {
		vocabRaw = binary.AppendUvarint(vocabRaw, uint64(len(name)))
		vocabRaw = append(vocabRaw, name...)
	}

	vocabPayload, err := e.codec.Compress(vocabRaw)
	if err != nil {
		return nil, fmt.Errorf("compress vocabulary payload: %w", err)
	}
	codesPayload, err := e.codec.Compress(codesRaw)
	if err != nil {
		return nil, fmt.Errorf("compress codes payload: %w", err)
	}

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)
	buf.Grow(blobHeaderSize + len(vocabPayload) + len(codesPayload))

	buf.MustWrite(blobMagic[:])

	flag := byte(e.compression) << 4
	if e.engine == endian.GetBigEndianEngine() {
		flag |= flagBigEndian
	}
	buf.MustWrite([]byte{flag, blobVersion})

	buf.B = e.engine.AppendUint32(buf.B, uint32(rows))
	buf.B = e.engine.AppendUint32(buf.B, uint32(cols))
	buf.B = e.engine.AppendUint32(buf.B, uint32(len(names)))
	buf.B = e.engine.AppendUint32(buf.B, uint32(len(vocabPayload)))
	buf.B = e.engine.AppendUint32(buf.B, uint32(len(codesPayload)))
	buf.MustWrite(vocabPayload)
	buf.MustWrite(codesPayload)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// DecodeBlob reconstructs an Array from its blob form.
//
// The blob records its own byte order and compression, so no configuration
// is needed. The rebuilt Array is compact and owns a fresh Vocabulary.
func DecodeBlob(data []byte) (*Array, error) {
	if len(data) < blobHeaderSize {
		return nil, fmt.Errorf("blob is %d bytes, header needs %d: %w",
			len(data), blobHeaderSize, errs.ErrInvalidHeaderSize)
	}
	if [4]byte(data[:4]) != blobMagic {
		return nil, fmt.Errorf("magic %x: %w", data[:4], errs.ErrInvalidMagicNumber)
	}

	flag := data[4]
	if data[5] != blobVersion {
		return nil, fmt.Errorf("version %d: %w", data[5], errs.ErrInvalidBlobFlag)
	}

	engine := endian.GetLittleEndianEngine()
	if flag&flagBigEndian != 0 {
		engine = endian.GetBigEndianEngine()
	}

	compression := format.CompressionType(flag >> 4)
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err, errs.ErrInvalidBlobFlag)
	}

	rows := int(engine.Uint32(data[6:10]))
	cols := int(engine.Uint32(data[10:14]))
	vocabCount := int(engine.Uint32(data[14:18]))
	vocabLen := int(engine.Uint32(data[18:22]))
	codesLen := int(engine.Uint32(data[22:26]))

	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, errs.ErrInvalidBlobDimension)
	}
	if vocabCount == 0 {
		return nil, errs.ErrInvalidVocabCount
	}
	if blobHeaderSize+vocabLen+codesLen != len(data) {
		return nil, fmt.Errorf("payload sizes %d+%d do not fill %d blob bytes: %w",
			vocabLen, codesLen, len(data), errs.ErrInvalidCodesPayload)
	}

	vocabRaw, err := codec.Decompress(data[blobHeaderSize : blobHeaderSize+vocabLen])
	if err != nil {
		return nil, fmt.Errorf("decompress vocabulary payload: %w", err)
	}
	codesRaw, err := codec.Decompress(data[blobHeaderSize+vocabLen:])
	if err != nil {
		return nil, fmt.Errorf("decompress codes payload: %w", err)
	}

	names, err := decodeVocabPayload(vocabRaw, vocabCount)
	if err != nil {
		return nil, err
	}

	if len(codesRaw) != rows*cols*4 {
		return nil, fmt.Errorf("codes payload is %d bytes, want %d: %w",
			len(codesRaw), rows*cols*4, errs.ErrInvalidCodesPayload)
	}

	vocab := newVocabulary(names[0])
	for i, name := range names[1:] {
		if vocab.Intern(name) != int32(i+1) {
			return nil, fmt.Errorf("duplicate vocabulary entry %q: %w", name, errs.ErrInvalidVocabPayload)
		}
	}

	codes := make([]int32, rows*cols)
	for i := range codes {
		code := engine.Uint32(codesRaw[i*4 : i*4+4])
		if int(code) >= vocabCount {
			return nil, fmt.Errorf("code %d exceeds vocabulary of %d: %w",
				code, vocabCount, errs.ErrInvalidCodesPayload)
		}
		codes[i] = int32(code)
	}

	return fromCodes(vocab, codes, rows, cols), nil
}

func decodeVocabPayload(raw []byte, count int) ([]string, error) {
	names := make([]string, 0, count)
	offset := 0
	for i := 0; i < count; i++ {
		length, n := binary.Uvarint(raw[offset:])
		if n <= 0 {
			return nil, fmt.Errorf("entry %d has no length prefix: %w", i, errs.ErrInvalidVocabPayload)
		}
		offset += n
		if offset+int(length) > len(raw) {
			return nil, fmt.Errorf("entry %d overruns payload: %w", i, errs.ErrInvalidVocabPayload)
		}
		names = append(names, string(raw[offset:offset+int(length)]))
		offset += int(length)
	}
	if offset != len(raw) {
		return nil, fmt.Errorf("%d trailing payload bytes: %w", len(raw)-offset, errs.ErrInvalidVocabPayload)
	}

	return names, nil
}
