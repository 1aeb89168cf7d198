package array

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/xyicheng/adjarray/errs"
	"github.com/xyicheng/adjarray/format"
)

func TestSpan_Validate(t *testing.T) {
	tests := []struct {
		name    string
		span    Span
		wantErr error
	}{
		{"full buffer", Span{0, 4, 0, 2}, nil},
		{"single cell", Span{2, 2, 1, 1}, nil},
		{"inverted rows", Span{3, 1, 0, 0}, errs.ErrInvalidSpan},
		{"inverted cols", Span{0, 0, 2, 1}, errs.ErrInvalidSpan},
		{"negative first row", Span{-1, 0, 0, 0}, errs.ErrAdjustmentOutOfBounds},
		{"last row past end", Span{0, 5, 0, 0}, errs.ErrAdjustmentOutOfBounds},
		{"last col past end", Span{0, 0, 0, 3}, errs.ErrAdjustmentOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.span.validate(5, 3)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestAdjustment_Accessors(t *testing.T) {
	mul := NewFloat64Multiply(1, 2, 3, 4, 0.5)
	require.Equal(t, Span{1, 2, 3, 4}, mul.Span())
	require.Equal(t, format.KindMultiply, mul.Kind())
	require.Equal(t, format.DtypeFloat64, mul.Dtype())
	require.Equal(t, 0.5, mul.Value())

	ow := NewLabelOverwrite(0, 0, 0, 0, "AA+")
	require.Equal(t, format.KindOverwrite, ow.Kind())
	require.Equal(t, format.DtypeLabel, ow.Dtype())
	require.Equal(t, "AA+", ow.Value())
}

func TestAdjustment_String(t *testing.T) {
	require.Equal(t,
		"Float64Multiply(first_row=2, last_row=3, first_col=0, last_col=0, value=4.000000)",
		NewFloat64Multiply(2, 3, 0, 0, 4).String())

	require.Equal(t,
		"Float64Overwrite(first_row=0, last_row=1, first_col=1, last_col=1, value=2.500000)",
		NewFloat64Overwrite(0, 1, 1, 1, 2.5).String())

	require.Equal(t,
		"Int64Multiply(first_row=0, last_row=0, first_col=0, last_col=0, value=3)",
		NewInt64Multiply(0, 0, 0, 0, 3).String())

	require.Equal(t,
		"Int64Overwrite(first_row=0, last_row=0, first_col=0, last_col=0, value=-7)",
		NewInt64Overwrite(0, 0, 0, 0, -7).String())

	require.Equal(t,
		"Datetime64Overwrite(first_row=0, last_row=0, first_col=0, last_col=0, value=2021-06-01T00:00:00Z)",
		NewDatetime64Overwrite(0, 0, 0, 0, time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)).String())

	require.Equal(t,
		"Datetime64Overwrite(first_row=0, last_row=0, first_col=0, last_col=0, value=NaT)",
		NewDatetime64Overwrite(0, 0, 0, 0, time.Time{}).String())

	require.Equal(t,
		`LabelOverwrite(first_row=0, last_row=1, first_col=0, last_col=0, value="AA+")`,
		NewLabelOverwrite(0, 1, 0, 0, "AA+").String())
}
