package array

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xyicheng/adjarray/format"
)

// Inspect renders the baseline buffer and the full adjustment schedule as a
// human-readable string. The output is deterministic: rows in order,
// schedule keys sorted ascending.
//
// Example output:
//
//	Adjusted Array (float64):
//
//	Data:
//	[[0 1 2]
//	 [3 4 5]]
//
//	Adjustments:
//	{4: [Float64Multiply(first_row=2, last_row=3, first_col=0, last_col=0, value=4.000000)]}
func (a *AdjustedArray) Inspect() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Adjusted Array (%s):\n\n", a.baseline.Dtype())
	sb.WriteString("Data:\n")
	sb.WriteString(a.baseline.formatData())
	sb.WriteString("\n\nAdjustments:\n")
	sb.WriteString(a.formatSchedule())
	sb.WriteString("\n")

	return sb.String()
}

func (a *AdjustedArray) formatSchedule() string {
	if len(a.keys) == 0 {
		return "{}"
	}

	var sb strings.Builder
	sb.WriteString("{")
	for i, key := range a.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d: [", key)
		for j, adj := range a.schedule[key] {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(adj.String())
		}
		sb.WriteString("]")
	}
	sb.WriteString("}")

	return sb.String()
}

func (b *NumericBuffer[T]) formatData() string {
	return formatGrid(b.rows, b.cols, func(r, c int) string {
		return b.formatValue(b.at(r, c))
	})
}

func (b *NumericBuffer[T]) formatValue(v T) string {
	switch b.dtype {
	case format.DtypeFloat64:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case format.DtypeDatetime64:
		return formatDatetime(int64(v))
	default:
		return strconv.FormatInt(int64(v), 10)
	}
}

func (b *LabelBuffer) formatData() string {
	return formatGrid(b.arr.Rows(), b.arr.Cols(), func(r, c int) string {
		return strconv.Quote(b.arr.At(r, c))
	})
}

func formatGrid(rows, cols int, cell func(r, c int) string) string {
	var sb strings.Builder
	sb.WriteString("[")
	for r := 0; r < rows; r++ {
		if r > 0 {
			sb.WriteString("\n ")
		}
		sb.WriteString("[")
		for c := 0; c < cols; c++ {
			if c > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(cell(r, c))
		}
		sb.WriteString("]")
	}
	sb.WriteString("]")

	return sb.String()
}

func formatDatetime(nanos int64) string {
	if nanos == NaT {
		return "NaT"
	}

	return nanosToTime(nanos).Format("2006-01-02T15:04:05Z")
}
