package format

type (
	Dtype           uint8
	AdjustmentKind  uint8
	CompressionType uint8
)

const (
	DtypeFloat64    Dtype = 0x1 // DtypeFloat64 represents 64-bit floating point values.
	DtypeInt64      Dtype = 0x2 // DtypeInt64 represents 64-bit signed integer values.
	DtypeDatetime64 Dtype = 0x3 // DtypeDatetime64 represents 64-bit nanosecond timestamps.
	DtypeLabel      Dtype = 0x4 // DtypeLabel represents dictionary-encoded string values.

	KindMultiply  AdjustmentKind = 0x1 // KindMultiply scales a region by a factor.
	KindOverwrite AdjustmentKind = 0x2 // KindOverwrite replaces a region with a value.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (d Dtype) String() string {
	switch d {
	case DtypeFloat64:
		return "float64"
	case DtypeInt64:
		return "int64"
	case DtypeDatetime64:
		return "datetime64[ns]"
	case DtypeLabel:
		return "label"
	default:
		return "Unknown"
	}
}

func (k AdjustmentKind) String() string {
	switch k {
	case KindMultiply:
		return "Multiply"
	case KindOverwrite:
		return "Overwrite"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
