// Package model defines the values that flow through a simulation run: the
// generative parameters, one synthetic sample and one fitted estimate.
package model

import (
	"fmt"
	"math"

	"github.com/arloliu/olsim/errs"
)

// Params holds the ground-truth parameters of y = Intercept + Slope*x + e,
// with e ~ Normal(0, NoiseStdDev). It is fixed for the duration of a run.
type Params struct {
	Intercept   float64 `json:"intercept" yaml:"intercept"`
	Slope       float64 `json:"slope" yaml:"slope"`
	NoiseStdDev float64 `json:"noise_std_dev" yaml:"noise_std_dev"`
}

// Validate rejects non-finite parameters and a negative noise standard
// deviation. A zero standard deviation is allowed and yields noiseless samples.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"intercept", p.Intercept},
		{"slope", p.Slope},
		{"noise_std_dev", p.NoiseStdDev},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %w: %s is not finite: %v", errs.ErrInvalidInput, errs.ErrInvalidParams, f.name, f.v)
		}
	}
	if p.NoiseStdDev < 0 {
		return fmt.Errorf("%w: %w: noise_std_dev must be >= 0, got %v", errs.ErrInvalidInput, errs.ErrInvalidParams, p.NoiseStdDev)
	}

	return nil
}

// Line evaluates the noiseless model at x.
func (p Params) Line(x float64) float64 {
	return p.Intercept + p.Slope*x
}

func (p Params) String() string {
	return fmt.Sprintf("Params{Intercept: %g, Slope: %g, NoiseStdDev: %g}", p.Intercept, p.Slope, p.NoiseStdDev)
}

// Sample is one synthetic dataset. X and Y always have the same length.
type Sample struct {
	X []float64
	Y []float64
}

// Len returns the number of (x, y) pairs.
func (s Sample) Len() int {
	return len(s.X)
}

// Estimate is the pair of coefficients fitted to one Sample.
type Estimate struct {
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
}

// Finite reports whether both coefficients are finite numbers.
func (e Estimate) Finite() bool {
	return !math.IsNaN(e.Intercept) && !math.IsInf(e.Intercept, 0) &&
		!math.IsNaN(e.Slope) && !math.IsInf(e.Slope, 0)
}

func (e Estimate) String() string {
	return fmt.Sprintf("Estimate{Intercept: %g, Slope: %g}", e.Intercept, e.Slope)
}
