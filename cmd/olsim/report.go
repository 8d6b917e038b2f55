package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/arloliu/olsim/model"
	"github.com/arloliu/olsim/simulation"
	"github.com/arloliu/olsim/summary"
)

// barWidth is the length of the longest histogram bar.
const barWidth = 40

type report struct {
	Frame       string       `json:"frame,omitempty"`
	Params      model.Params `json:"params"`
	Trials      int          `json:"trials"`
	SampleSize  int          `json:"sample_size"`
	Seed        uint64       `json:"seed"`
	Policy      string       `json:"policy"`
	Stored      int          `json:"stored"`
	Failed      []int        `json:"failed_trials,omitempty"`
	Fingerprint string       `json:"fingerprint"`

	Intercept estimateReport `json:"intercept"`
	Slope     estimateReport `json:"slope"`
}

type estimateReport struct {
	Stats     summary.Stats      `json:"stats"`
	Histogram *summary.Histogram `json:"histogram"`
}

func buildReport(res *simulation.Result, bins int) (*report, error) {
	rep := &report{
		Params:      res.Params,
		Trials:      res.Trials,
		SampleSize:  res.SampleSize,
		Seed:        res.Seed,
		Policy:      res.Policy.String(),
		Stored:      res.Len(),
		Fingerprint: fmt.Sprintf("%016x", res.Fingerprint()),
	}
	for _, f := range res.Failures {
		rep.Failed = append(rep.Failed, f.Trial)
	}

	var err error
	if rep.Intercept, err = describe("intercept", res.InterceptEstimates, res.Params.Intercept, bins); err != nil {
		return nil, err
	}
	if rep.Slope, err = describe("slope", res.SlopeEstimates, res.Params.Slope, bins); err != nil {
		return nil, err
	}

	return rep, nil
}

func describe(name string, values []float64, truth float64, bins int) (estimateReport, error) {
	st, err := summary.Describe(values, truth)
	if err != nil {
		return estimateReport{}, fmt.Errorf("summarizing %s estimates: %w", name, err)
	}
	h, err := summary.NewHistogram(values, bins, truth)
	if err != nil {
		return estimateReport{}, fmt.Errorf("binning %s estimates: %w", name, err)
	}

	return estimateReport{Stats: st, Histogram: h}, nil
}

func writeJSON(w io.Writer, rep *report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}

func writeText(w io.Writer, rep *report) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Monte Carlo OLS: %d trials, n = %d, seed %d, policy %s\n",
		rep.Trials, rep.SampleSize, rep.Seed, rep.Policy)
	fmt.Fprintf(&sb, "True model: y = %g + %g*x + e, e ~ N(0, %g^2)\n",
		rep.Params.Intercept, rep.Params.Slope, rep.Params.NoiseStdDev)
	fmt.Fprintf(&sb, "Stored estimates: %d, failed trials: %d, fingerprint %s\n",
		rep.Stored, len(rep.Failed), rep.Fingerprint)

	writeEstimate(&sb, "Intercept", rep.Intercept)
	writeEstimate(&sb, "Slope", rep.Slope)

	_, err := io.WriteString(w, sb.String())

	return err
}

func writeEstimate(sb *strings.Builder, title string, er estimateReport) {
	st := er.Stats
	fmt.Fprintf(sb, "\n%s estimates (true value %g)\n", title, st.Truth)
	fmt.Fprintf(sb, "  mean %.6f  sd %.6f  se %.6f  bias %+.6f\n", st.Mean, st.StdDev, st.StdError, st.Bias)
	fmt.Fprintf(sb, "  min %.6f  p05 %.6f  median %.6f  p95 %.6f  max %.6f\n", st.Min, st.P05, st.Median, st.P95, st.Max)
	if st.Dropped > 0 {
		fmt.Fprintf(sb, "  %d non-finite estimates left out\n", st.Dropped)
	}
	renderHistogram(sb, er.Histogram)
}

// renderHistogram draws one row per bin and marks the bin holding the true
// value.
func renderHistogram(sb *strings.Builder, h *summary.Histogram) {
	maxCount := h.MaxCount()
	truthBin := h.TruthBin()

	for i, c := range h.Counts {
		bar := 0
		if maxCount > 0 {
			bar = int(math.Round(c / maxCount * barWidth))
		}
		marker := ""
		if i == truthBin {
			marker = "  <- true"
		}
		fmt.Fprintf(sb, "  [%10.4f, %10.4f) %-*s %5d%s\n",
			h.Edges[i], h.Edges[i+1], barWidth, strings.Repeat("#", bar), int(c), marker)
	}
	if truthBin < 0 {
		fmt.Fprintf(sb, "  true value %g is outside the estimate range\n", h.Truth)
	}
}
