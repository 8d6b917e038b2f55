package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/olsim/errs"
	"github.com/arloliu/olsim/model"
)

// MinSampleSize is the smallest sample for which a line is identifiable.
const MinSampleSize = 2

// Fit computes the OLS intercept and slope of s.
//
// Returns:
//   - model.Estimate: fitted coefficients; on a degenerate sample this holds the
//     raw NaN/±Inf quotient
//   - error: ErrInvalidInput for short or mismatched samples, ErrComputation
//     (with ErrDegenerateSample) when x has zero variance
func Fit(s model.Sample) (model.Estimate, error) {
	if err := checkSample(s); err != nil {
		return model.Estimate{}, err
	}

	xMean := calculateMean(s.X)
	yMean := calculateMean(s.Y)

	var sxy, sxx float64
	for i, xi := range s.X {
		dx := xi - xMean
		sxy += dx * (s.Y[i] - yMean)
		sxx += dx * dx
	}

	slope := sxy / sxx
	est := model.Estimate{
		Intercept: yMean - slope*xMean,
		Slope:     slope,
	}

	if sxx == 0 {
		return est, fmt.Errorf("%w: %w: all %d x values equal %v",
			errs.ErrComputation, errs.ErrDegenerateSample, len(s.X), xMean)
	}

	return est, nil
}

// Analyze fits s and reports R², RMSE and a predictor for the fitted line.
//
// Errors are the same as Fit; no Model is returned for a degenerate sample.
func Analyze(s model.Sample) (*Model, error) {
	est, err := Fit(s)
	if err != nil {
		return nil, err
	}

	predicted := make([]float64, len(s.X))
	for i, xi := range s.X {
		predicted[i] = est.Intercept + est.Slope*xi
	}

	return &Model{
		Estimate:  est,
		N:         len(s.X),
		RSquared:  calculateRSquared(s.Y, predicted),
		RMSE:      calculateRMSE(s.Y, predicted),
		Formula:   fmt.Sprintf("y = %.4f + %.4f * x", est.Intercept, est.Slope),
		Estimator: NewLinearEstimator(est.Intercept, est.Slope),
	}, nil
}

func checkSample(s model.Sample) error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("%w: %w: %d x vs %d y", errs.ErrInvalidInput, errs.ErrLengthMismatch, len(s.X), len(s.Y))
	}
	if len(s.X) < MinSampleSize {
		return fmt.Errorf("%w: %w: need at least %d points, got %d",
			errs.ErrInvalidInput, errs.ErrInvalidSampleSize, MinSampleSize, len(s.X))
	}

	return nil
}

// calculateRSquared returns 1 - SS_res/SS_tot, or 0 when the observations
// have no variance.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := calculateMean(observed)
	ssTot := 0.0
	ssRes := 0.0
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// calculateRMSE returns √(Σ(observed - predicted)² / n).
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

func calculateMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
