// Package errs defines the sentinel errors returned by olsim packages.
//
// Callers match them with errors.Is. Validation failures wrap both
// ErrInvalidInput and the specific sentinel, so either can be matched:
//
//	fmt.Errorf("%w: %w: n=%d", errs.ErrInvalidInput, errs.ErrInvalidSampleSize, n)
package errs

import "errors"

var (
	// ErrInvalidInput reports a parameter that is rejected before any work starts.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidSampleSize reports a sample size below the minimum for a fit.
	ErrInvalidSampleSize = errors.New("invalid sample size")
	// ErrInvalidTrialCount reports a non-positive number of simulations.
	ErrInvalidTrialCount = errors.New("invalid trial count")
	// ErrInvalidParams reports non-finite model parameters or a negative noise standard deviation.
	ErrInvalidParams = errors.New("invalid model parameters")
	// ErrLengthMismatch reports x and y sequences of different lengths.
	ErrLengthMismatch = errors.New("x and y length mismatch")

	// ErrComputation reports a numerical failure inside a single trial.
	ErrComputation = errors.New("computation error")
	// ErrDegenerateSample reports a sample whose x values have zero variance.
	ErrDegenerateSample = errors.New("degenerate sample: x has zero variance")

	// ErrInvalidHeaderSize reports a frame shorter than its fixed header.
	ErrInvalidHeaderSize = errors.New("invalid frame header size")
	// ErrInvalidHeaderFlags reports a bad magic number or unknown flag values.
	ErrInvalidHeaderFlags = errors.New("invalid frame header flags")
	// ErrInvalidPayload reports a frame payload that does not match its header.
	ErrInvalidPayload = errors.New("invalid frame payload")
	// ErrChecksumMismatch reports a frame whose trailer does not match its content.
	ErrChecksumMismatch = errors.New("frame checksum mismatch")
)

