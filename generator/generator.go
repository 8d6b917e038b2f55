// Package generator synthesizes samples from a linear model with Gaussian noise.
//
// Each call to Generate draws n abscissas from Uniform[XMin, XMax) and n noise
// terms from Normal(0, NoiseStdDev), then evaluates
//
//	y[i] = Intercept + Slope*x[i] + noise[i]
//
// All randomness comes from the *rand.Rand handed to New, so two generators
// built from equally seeded sources produce bit-identical samples.
package generator

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/arloliu/olsim/errs"
	"github.com/arloliu/olsim/internal/options"
	"github.com/arloliu/olsim/model"
)

const (
	// XMin is the default inclusive lower bound of the x distribution.
	XMin = 0.0
	// XMax is the default exclusive upper bound of the x distribution.
	XMax = 10.0
)

// Generator draws samples from a shared random source. It is not safe for
// concurrent use because the source is not.
type Generator struct {
	rng  *rand.Rand
	xMin float64
	xMax float64
}

// Option configures a Generator.
type Option = options.Option[*Generator]

// WithXRange sets the support [min, max) of the x distribution.
func WithXRange(minX, maxX float64) Option {
	return options.New(func(g *Generator) error {
		if math.IsNaN(minX) || math.IsNaN(maxX) || math.IsInf(minX, 0) || math.IsInf(maxX, 0) || minX >= maxX {
			return fmt.Errorf("%w: x range [%v, %v) is empty or not finite", errs.ErrInvalidInput, minX, maxX)
		}
		g.xMin = minX
		g.xMax = maxX

		return nil
	})
}

// New creates a Generator drawing from rng.
func New(rng *rand.Rand, opts ...Option) (*Generator, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: random source is nil", errs.ErrInvalidInput)
	}

	g := &Generator{rng: rng, xMin: XMin, xMax: XMax}
	if err := options.Apply(g, opts...); err != nil {
		return nil, err
	}

	return g, nil
}

// Generate draws a fresh sample of size n. All x values are drawn before any
// noise value, so the consumption order of the source is fixed.
func (g *Generator) Generate(n int, p model.Params) (model.Sample, error) {
	if n < 1 {
		return model.Sample{}, fmt.Errorf("%w: %w: n must be >= 1, got %d", errs.ErrInvalidInput, errs.ErrInvalidSampleSize, n)
	}
	if err := p.Validate(); err != nil {
		return model.Sample{}, err
	}

	x := make([]float64, n)
	span := g.xMax - g.xMin
	for i := range x {
		v := g.xMin + span*g.rng.Float64()
		if v >= g.xMax {
			v = math.Nextafter(g.xMax, g.xMin)
		}
		x[i] = v
	}

	return model.Sample{X: x, Y: g.responses(x, p)}, nil
}

// GenerateAt evaluates the model at caller-supplied abscissas, drawing only
// the noise terms. x is copied; the caller keeps ownership of its slice.
func (g *Generator) GenerateAt(x []float64, p model.Params) (model.Sample, error) {
	if len(x) == 0 {
		return model.Sample{}, fmt.Errorf("%w: %w: x is empty", errs.ErrInvalidInput, errs.ErrInvalidSampleSize)
	}
	if err := p.Validate(); err != nil {
		return model.Sample{}, err
	}

	xs := make([]float64, len(x))
	copy(xs, x)

	return model.Sample{X: xs, Y: g.responses(xs, p)}, nil
}

func (g *Generator) responses(x []float64, p model.Params) []float64 {
	y := make([]float64, len(x))
	for i := range y {
		y[i] = g.rng.NormFloat64() * p.NoiseStdDev
	}
	for i, xi := range x {
		y[i] = p.Intercept + p.Slope*xi + y[i]
	}

	return y
}
