// Package olsim estimates the sampling distribution of ordinary least squares
// coefficients by Monte Carlo simulation.
//
// Each trial draws n points x ~ Uniform[0, 10), builds
// y = intercept + slope*x + e with e ~ Normal(0, noiseStdDev), fits a line
// by least squares and keeps the two estimates. Repeating the trial many
// times shows how the estimates scatter around the true values and how the
// scatter narrows as n grows.
//
// # Basic Usage
//
//	res, err := olsim.Simulate(1000, 100, olsim.DefaultParams(), 42)
//	if err != nil {
//		return err
//	}
//	st, _ := summary.Describe(res.SlopeEstimates, res.Params.Slope)
//	fmt.Println(st)
//
// # Package Structure
//
// This package wraps the most common entry points. The building blocks live
// in their own packages:
//
//   - generator: synthetic samples from the linear model
//   - regression: least squares fit and fit diagnostics
//   - simulation: the trial loop, seeding and degenerate-trial policies
//   - summary: descriptive statistics and histograms of estimates
//   - frame: binary encoding of results for other processes
//   - config: YAML and environment configuration
package olsim

import (
	"github.com/arloliu/olsim/model"
	"github.com/arloliu/olsim/regression"
	"github.com/arloliu/olsim/simulation"
)

// DefaultParams returns the reference model y = 2 + 3x + e, e ~ Normal(0, 1).
func DefaultParams() model.Params {
	return model.Params{Intercept: 2, Slope: 3, NoiseStdDev: 1}
}

// Simulate runs numSimulations trials of n points each from a stream seeded
// with seed. Degenerate trials abort the run.
//
// Equal arguments produce bit-identical results.
func Simulate(numSimulations, n int, p model.Params, seed uint64) (*simulation.Result, error) {
	r, err := simulation.New(simulation.WithSeed(seed))
	if err != nil {
		return nil, err
	}

	return r.Run(numSimulations, n, p)
}

// Fit estimates the least squares line of one sample.
func Fit(x, y []float64) (model.Estimate, error) {
	return regression.Fit(model.Sample{X: x, Y: y})
}
