package model

import (
	"math"
	"testing"

	"github.com/arloliu/olsim/errs"
	"github.com/stretchr/testify/require"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"defaults", Params{Intercept: 2, Slope: 3, NoiseStdDev: 1}, false},
		{"zero noise", Params{Intercept: 2, Slope: 3}, false},
		{"negative slope", Params{Slope: -4, NoiseStdDev: 0.5}, false},
		{"negative noise", Params{NoiseStdDev: -1}, true},
		{"nan intercept", Params{Intercept: math.NaN()}, true},
		{"inf slope", Params{Slope: math.Inf(1)}, true},
		{"inf noise", Params{NoiseStdDev: math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrInvalidInput)
			require.ErrorIs(t, err, errs.ErrInvalidParams)
		})
	}
}

func TestParamsLine(t *testing.T) {
	p := Params{Intercept: 2, Slope: 3}
	require.Equal(t, 2.0, p.Line(0))
	require.Equal(t, 17.0, p.Line(5))
}

func TestEstimateFinite(t *testing.T) {
	require.True(t, Estimate{Intercept: 1, Slope: 2}.Finite())
	require.False(t, Estimate{Intercept: math.NaN(), Slope: 2}.Finite())
	require.False(t, Estimate{Intercept: 1, Slope: math.Inf(-1)}.Finite())
}

func TestSampleLen(t *testing.T) {
	require.Equal(t, 3, Sample{X: []float64{1, 2, 3}, Y: []float64{1, 2, 3}}.Len())
	require.Equal(t, 0, Sample{}.Len())
}
