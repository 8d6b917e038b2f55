// Package regression fits simple linear regressions by ordinary least squares.
//
// The estimator is the closed-form solution of the univariate normal
// equations. For a sample (x, y) of size n it computes the means, then
//
//	slope     = Σ(x - x̄)(y - ȳ) / Σ(x - x̄)²
//	intercept = ȳ - slope * x̄
//
// There is no iteration and no regularization.
//
// # Usage
//
// Fit returns only the two coefficients and is what the simulation driver
// calls once per trial:
//
//	est, err := regression.Fit(model.Sample{X: x, Y: y})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(est.Intercept, est.Slope)
//
// Analyze additionally reports goodness of fit and returns an Estimator for
// predictions:
//
//	m, err := regression.Analyze(sample)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s (R²=%.4f)\n", m.Formula, m.RSquared)
//	yHat := m.Estimator.Estimate(4.2)
//
// # Degenerate samples
//
// When every x value is identical the denominator is zero and the slope is
// undefined. Fit then returns an error matching both errs.ErrComputation and
// errs.ErrDegenerateSample, together with the raw quotient (NaN or ±Inf) so a
// caller may still choose to keep it.
//
// Samples with fewer than two points or with x and y of different lengths are
// rejected with errs.ErrInvalidInput before any arithmetic.
package regression
