package simulation

import (
	"fmt"

	"github.com/arloliu/olsim/internal/hash"
	"github.com/arloliu/olsim/model"
)

// TrialFailure records a trial dropped under PolicySkip.
type TrialFailure struct {
	Trial int
	Err   error
}

func (f TrialFailure) String() string {
	return fmt.Sprintf("trial %d: %v", f.Trial, f.Err)
}

// Result holds the estimates of a completed run in trial order.
//
// InterceptEstimates[i] and SlopeEstimates[i] come from the same trial.
// Both slices have length Trials unless trials were skipped, in which case
// the missing trials are listed in Failures.
type Result struct {
	Params     model.Params
	SampleSize int
	Trials     int
	Seed       uint64
	Policy     Policy

	InterceptEstimates []float64
	SlopeEstimates     []float64
	Failures           []TrialFailure
}

// Len returns the number of stored estimates.
func (r *Result) Len() int {
	return len(r.SlopeEstimates)
}

// At returns the estimate stored at position i.
func (r *Result) At(i int) model.Estimate {
	return model.Estimate{Intercept: r.InterceptEstimates[i], Slope: r.SlopeEstimates[i]}
}

// Fingerprint hashes the bit patterns of both estimate sequences. Two results
// have the same fingerprint when their sequences are bit-identical.
func (r *Result) Fingerprint() uint64 {
	return hash.Float64s(r.InterceptEstimates, r.SlopeEstimates)
}

func (r *Result) String() string {
	return fmt.Sprintf("Result{Trials: %d, Stored: %d, Failed: %d, SampleSize: %d, Seed: %d, %s}",
		r.Trials, r.Len(), len(r.Failures), r.SampleSize, r.Seed, r.Params)
}
