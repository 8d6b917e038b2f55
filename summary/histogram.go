package summary

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/olsim/errs"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultBins is the bin count used when none is configured.
const DefaultBins = 30

// Histogram holds equal-width bins over the range of the finite values.
//
// Counts[i] is the number of values v with Edges[i] <= v < Edges[i+1]; the
// last edge sits just above the maximum so the maximum falls in the last bin.
type Histogram struct {
	Edges   []float64 `json:"edges"`
	Counts  []float64 `json:"counts"`
	Truth   float64   `json:"truth"`
	Dropped int       `json:"dropped"`
}

// NewHistogram bins the finite values of values into bins equal-width bins.
// When every value is equal the range is widened by 0.5 on each side.
func NewHistogram(values []float64, bins int, truth float64) (*Histogram, error) {
	if bins < 1 {
		return nil, fmt.Errorf("%w: bins must be >= 1, got %d", errs.ErrInvalidInput, bins)
	}

	sorted, dropped := finiteSorted(values)
	if len(sorted) == 0 {
		return nil, fmt.Errorf("%w: no finite values to bin (%d dropped)", errs.ErrInvalidInput, dropped)
	}

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	edges := spanEdges(lo, hi, bins)
	if !slices.IsSorted(edges) {
		return nil, fmt.Errorf("%w: cannot split [%g, %g] into %d bins", errs.ErrInvalidInput, lo, hi, bins)
	}

	return &Histogram{
		Edges:   edges,
		Counts:  stat.Histogram(nil, edges, sorted, nil),
		Truth:   truth,
		Dropped: dropped,
	}, nil
}

// spanEdges returns bins+1 equally spaced edges from lo to just above hi.
// A range wider than math.MaxFloat64 is interpolated without forming hi-lo.
func spanEdges(lo, hi float64, bins int) []float64 {
	edges := make([]float64, bins+1)
	if width := hi - lo; !math.IsInf(width, 0) {
		floats.Span(edges, lo, hi)
	} else {
		for i := range edges {
			t := float64(i) / float64(bins)
			edges[i] = lo*(1-t) + hi*t
		}
		edges[0] = lo
	}
	edges[bins] = math.Nextafter(hi, math.Inf(1))

	return edges
}

// Bins returns the number of bins.
func (h *Histogram) Bins() int {
	return len(h.Counts)
}

// Total returns the number of binned values.
func (h *Histogram) Total() int {
	return int(floats.Sum(h.Counts))
}

// MaxCount returns the largest bin count.
func (h *Histogram) MaxCount() float64 {
	return floats.Max(h.Counts)
}

// BinOf returns the index of the bin containing v, or -1 when v is outside
// the histogram range.
func (h *Histogram) BinOf(v float64) int {
	if len(h.Counts) == 0 || v < h.Edges[0] || v >= h.Edges[len(h.Edges)-1] {
		return -1
	}
	for i := range h.Counts {
		if v < h.Edges[i+1] {
			return i
		}
	}

	return len(h.Counts) - 1
}

// TruthBin returns the bin containing the true value, or -1.
func (h *Histogram) TruthBin() int {
	return h.BinOf(h.Truth)
}
