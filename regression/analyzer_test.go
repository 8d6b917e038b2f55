package regression

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/arloliu/olsim/errs"
	"github.com/arloliu/olsim/model"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestFitExactLine(t *testing.T) {
	est, err := Fit(model.Sample{X: []float64{1, 2, 3}, Y: []float64{2, 4, 6}})
	require.NoError(t, err)
	require.InDelta(t, 0.0, est.Intercept, 1e-9)
	require.InDelta(t, 2.0, est.Slope, 1e-9)
}

func TestFitTwoPoints(t *testing.T) {
	est, err := Fit(model.Sample{X: []float64{1, 3}, Y: []float64{5, 9}})
	require.NoError(t, err)
	require.Equal(t, 3.0, est.Intercept)
	require.Equal(t, 2.0, est.Slope)
}

func TestFitMatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	x := make([]float64, 250)
	y := make([]float64, 250)
	for i := range x {
		x[i] = 10 * rng.Float64()
		y[i] = 2 + 3*x[i] + rng.NormFloat64()
	}

	est, err := Fit(model.Sample{X: x, Y: y})
	require.NoError(t, err)

	alpha, beta := stat.LinearRegression(x, y, nil, false)
	require.InDelta(t, alpha, est.Intercept, 1e-9)
	require.InDelta(t, beta, est.Slope, 1e-9)
}

func TestFitDegenerateSample(t *testing.T) {
	est, err := Fit(model.Sample{X: []float64{4, 4, 4}, Y: []float64{1, 2, 3}})
	require.ErrorIs(t, err, errs.ErrComputation)
	require.ErrorIs(t, err, errs.ErrDegenerateSample)
	require.False(t, est.Finite(), "raw quotient is kept for callers that propagate it")
	require.True(t, math.IsNaN(est.Slope))
}

func TestFitRejectsInvalidSamples(t *testing.T) {
	tests := []struct {
		name   string
		sample model.Sample
		target error
	}{
		{"empty", model.Sample{}, errs.ErrInvalidSampleSize},
		{"single point", model.Sample{X: []float64{1}, Y: []float64{2}}, errs.ErrInvalidSampleSize},
		{"length mismatch", model.Sample{X: []float64{1, 2}, Y: []float64{1}}, errs.ErrLengthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fit(tt.sample)
			require.ErrorIs(t, err, errs.ErrInvalidInput)
			require.ErrorIs(t, err, tt.target)
		})
	}
}

func TestAnalyzePerfectFit(t *testing.T) {
	m, err := Analyze(model.Sample{X: []float64{0, 1, 2, 3}, Y: []float64{1, 3, 5, 7}})
	require.NoError(t, err)
	require.Equal(t, 4, m.N)
	require.InDelta(t, 1.0, m.RSquared, 1e-12)
	require.InDelta(t, 0.0, m.RMSE, 1e-12)
	require.Equal(t, "y = 1.0000 + 2.0000 * x", m.Formula)
	require.InDelta(t, 11.0, m.Estimator.Estimate(5), 1e-12)
	require.Contains(t, m.String(), "N: 4")
}

func TestAnalyzeNoisyFit(t *testing.T) {
	m, err := Analyze(model.Sample{
		X: []float64{1, 2, 3, 4, 5},
		Y: []float64{2.1, 3.9, 6.2, 7.8, 10.1},
	})
	require.NoError(t, err)
	require.Greater(t, m.RSquared, 0.99)
	require.Less(t, m.RSquared, 1.0)
	require.Greater(t, m.RMSE, 0.0)
}

func TestAnalyzeDegenerate(t *testing.T) {
	m, err := Analyze(model.Sample{X: []float64{1, 1}, Y: []float64{1, 2}})
	require.ErrorIs(t, err, errs.ErrDegenerateSample)
	require.Nil(t, m)
}

func TestStatisticalFunctions(t *testing.T) {
	require.Equal(t, 0.0, calculateMean(nil))
	require.Equal(t, 2.0, calculateMean([]float64{1, 2, 3}))

	require.Equal(t, 0.0, calculateRSquared(nil, nil))
	require.Equal(t, 0.0, calculateRSquared([]float64{2, 2}, []float64{2, 2}), "constant observations")

	require.Equal(t, 0.0, calculateRMSE(nil, nil))
	require.InDelta(t, 1.0, calculateRMSE([]float64{1, 3}, []float64{2, 2}), 1e-12)
}

func TestLinearEstimator(t *testing.T) {
	e := NewLinearEstimator(2, 3)
	require.Equal(t, 17.0, e.Estimate(5))
	require.Equal(t, []float64{2, 3}, e.Coefficients())

	require.NoError(t, e.SetCoefficients([]float64{-1, 0.5}))
	require.Equal(t, 0.0, e.Estimate(2))

	require.Error(t, e.SetCoefficients([]float64{1}))
	require.Equal(t, []float64{-1, 0.5}, e.Coefficients(), "failed update keeps coefficients")
}
