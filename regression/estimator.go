package regression

import "fmt"

// Estimator predicts y for a given x from fitted coefficients.
type Estimator interface {
	// Estimate returns the predicted y at x.
	Estimate(x float64) float64
	// Coefficients returns the model coefficients.
	Coefficients() []float64
	// SetCoefficients replaces the coefficients in place.
	SetCoefficients(coeffs []float64) error
}

// LinearEstimator implements y = a + b*x.
type LinearEstimator struct {
	a, b   float64
	coeffs []float64 // cached to avoid allocating on every Coefficients call
}

var _ Estimator = (*LinearEstimator)(nil)

// NewLinearEstimator creates an estimator with intercept a and slope b.
func NewLinearEstimator(a, b float64) *LinearEstimator {
	return &LinearEstimator{
		a:      a,
		b:      b,
		coeffs: make([]float64, 2),
	}
}

// Estimate calculates a + b*x.
func (l *LinearEstimator) Estimate(x float64) float64 {
	return l.a + l.b*x
}

// Coefficients returns [a, b]. The returned slice is reused by later calls.
func (l *LinearEstimator) Coefficients() []float64 {
	l.coeffs[0] = l.a
	l.coeffs[1] = l.b

	return l.coeffs
}

// SetCoefficients expects exactly [a, b].
func (l *LinearEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("linear model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	l.a = coeffs[0]
	l.b = coeffs[1]

	return nil
}
