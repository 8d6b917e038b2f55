package summary

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/olsim/errs"
	"gonum.org/v1/gonum/stat"
)

// Stats describes the empirical distribution of one coefficient's estimates.
type Stats struct {
	Count   int     `json:"count"`
	Dropped int     `json:"dropped"`
	Truth   float64 `json:"truth"`

	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
	StdError float64 `json:"std_error"`
	Bias     float64 `json:"bias"`

	Min    float64 `json:"min"`
	P05    float64 `json:"p05"`
	Median float64 `json:"median"`
	P95    float64 `json:"p95"`
	Max    float64 `json:"max"`
}

// Describe computes Stats of the finite values in values. truth is the true
// parameter the estimates target; Bias is Mean - truth. Variance is the
// unbiased sample variance and is 0 for a single value.
func Describe(values []float64, truth float64) (Stats, error) {
	sorted, dropped := finiteSorted(values)
	if len(sorted) == 0 {
		return Stats{}, fmt.Errorf("%w: no finite values to describe (%d dropped)", errs.ErrInvalidInput, dropped)
	}

	st := Stats{
		Count:   len(sorted),
		Dropped: dropped,
		Truth:   truth,
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
	}

	if len(sorted) == 1 {
		st.Mean = sorted[0]
	} else {
		st.Mean, st.Variance = stat.MeanVariance(sorted, nil)
	}
	st.StdDev = math.Sqrt(st.Variance)
	st.StdError = st.StdDev / math.Sqrt(float64(st.Count))
	st.Bias = st.Mean - truth

	st.P05 = stat.Quantile(0.05, stat.Empirical, sorted, nil)
	st.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	st.P95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)

	return st, nil
}

// WithinStdErrors reports whether the mean lies within k standard errors of
// the true value.
func (s Stats) WithinStdErrors(k float64) bool {
	return math.Abs(s.Bias) <= k*s.StdError
}

func (s Stats) String() string {
	return fmt.Sprintf("Stats{N: %d, Mean: %.6f, SD: %.6f, SE: %.6f, Bias: %+.6f}",
		s.Count, s.Mean, s.StdDev, s.StdError, s.Bias)
}

// finiteSorted returns a sorted copy of the finite values and the number of
// values left out.
func finiteSorted(values []float64) ([]float64, int) {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}
	slices.Sort(out)

	return out, len(values) - len(out)
}
