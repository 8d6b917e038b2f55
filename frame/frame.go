package frame

import (
	"fmt"

	"github.com/arloliu/olsim/errs"
	"github.com/arloliu/olsim/model"
	"github.com/arloliu/olsim/simulation"
)

// errSkippedTrial stands in for the error of a skipped trial; frames do not
// carry error text and only degenerate trials are skipped.
var errSkippedTrial = fmt.Errorf("%w: %w", errs.ErrComputation, errs.ErrDegenerateSample)

// Frame is a decoded result frame.
type Frame struct {
	Header   Header
	Params   model.Params
	Checksum uint64

	InterceptEstimates []float64
	SlopeEstimates     []float64
	FailedTrials       []int
}

// Result rebuilds the simulation.Result the frame was encoded from.
// Failure errors match errs.ErrDegenerateSample.
func (f *Frame) Result() *simulation.Result {
	res := &simulation.Result{
		Params:             f.Params,
		SampleSize:         int(f.Header.SampleSize),
		Trials:             int(f.Header.Trials),
		Seed:               f.Header.Seed,
		Policy:             f.Header.Flag.DegeneratePolicy(),
		InterceptEstimates: f.InterceptEstimates,
		SlopeEstimates:     f.SlopeEstimates,
	}
	for _, trial := range f.FailedTrials {
		res.Failures = append(res.Failures, simulation.TrialFailure{Trial: trial, Err: errSkippedTrial})
	}

	return res
}

func (f *Frame) String() string {
	return fmt.Sprintf("Frame{Order: %s, Compression: %s, Policy: %s, Seed: %d, Trials: %d, Stored: %d, Failed: %d, SampleSize: %d, Payload: %dB, Checksum: 0x%016x}",
		f.Header.Flag.ByteOrder(), f.Header.Flag.Compression(), f.Header.Flag.DegeneratePolicy(),
		f.Header.Seed, f.Header.Trials, f.Header.StoredCount, f.Header.FailedCount,
		f.Header.SampleSize, f.Header.PayloadSize, f.Checksum)
}
