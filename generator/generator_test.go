package generator

import (
	"math/rand/v2"
	"testing"

	"github.com/arloliu/olsim/errs"
	"github.com/arloliu/olsim/model"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T, seed uint64, opts ...Option) *Generator {
	t.Helper()
	g, err := New(rand.New(rand.NewPCG(seed, seed+1)), opts...)
	require.NoError(t, err)

	return g
}

func TestGenerateShapeAndRange(t *testing.T) {
	g := newTestGenerator(t, 1)
	s, err := g.Generate(500, model.Params{Intercept: 2, Slope: 3, NoiseStdDev: 1})
	require.NoError(t, err)
	require.Len(t, s.X, 500)
	require.Len(t, s.Y, 500)

	for i, x := range s.X {
		require.GreaterOrEqual(t, x, XMin, "x[%d]", i)
		require.Less(t, x, XMax, "x[%d]", i)
	}
}

func TestGenerateAtFixedX(t *testing.T) {
	g := newTestGenerator(t, 7)
	s, err := g.GenerateAt([]float64{0, 5, 10}, model.Params{Intercept: 2, Slope: 3, NoiseStdDev: 0})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 5, 10}, s.X)
	require.Equal(t, []float64{2, 17, 32}, s.Y)
}

func TestGenerateAtCopiesInput(t *testing.T) {
	g := newTestGenerator(t, 7)
	x := []float64{1, 2}
	s, err := g.GenerateAt(x, model.Params{Slope: 1})
	require.NoError(t, err)

	x[0] = 99
	require.Equal(t, 1.0, s.X[0])
}

func TestGenerateNoiselessLiesOnLine(t *testing.T) {
	g := newTestGenerator(t, 3)
	p := model.Params{Intercept: -1.5, Slope: 0.25}
	s, err := g.Generate(50, p)
	require.NoError(t, err)

	for i := range s.X {
		require.Equal(t, p.Line(s.X[i]), s.Y[i])
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := model.Params{Intercept: 2, Slope: 3, NoiseStdDev: 1}

	a, err := newTestGenerator(t, 42).Generate(100, p)
	require.NoError(t, err)
	b, err := newTestGenerator(t, 42).Generate(100, p)
	require.NoError(t, err)
	c, err := newTestGenerator(t, 43).Generate(100, p)
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.NotEqual(t, a.X, c.X)
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	g := newTestGenerator(t, 1)

	_, err := g.Generate(0, model.Params{NoiseStdDev: 1})
	require.ErrorIs(t, err, errs.ErrInvalidInput)
	require.ErrorIs(t, err, errs.ErrInvalidSampleSize)

	_, err = g.Generate(10, model.Params{NoiseStdDev: -1})
	require.ErrorIs(t, err, errs.ErrInvalidParams)

	_, err = g.GenerateAt(nil, model.Params{})
	require.ErrorIs(t, err, errs.ErrInvalidSampleSize)
}

func TestNewRejectsNilSource(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestWithXRange(t *testing.T) {
	g := newTestGenerator(t, 5, WithXRange(-1, 1))
	s, err := g.Generate(200, model.Params{Slope: 1})
	require.NoError(t, err)
	for _, x := range s.X {
		require.GreaterOrEqual(t, x, -1.0)
		require.Less(t, x, 1.0)
	}

	_, err = New(rand.New(rand.NewPCG(1, 2)), WithXRange(1, 1))
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}
