package simulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/arloliu/olsim/errs"
	"github.com/arloliu/olsim/generator"
	"github.com/arloliu/olsim/internal/logging"
	"github.com/arloliu/olsim/internal/options"
	"github.com/arloliu/olsim/model"
	"github.com/arloliu/olsim/regression"
)

// pcgStream is the fixed PCG stream selector; the seed picks the state.
const pcgStream = 0x6f6c73696d

// NewRand returns the random stream a Runner seeded with seed uses. Trial 0
// of a run consumes it first.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, pcgStream))
}

// Sampler produces one sample per trial. *generator.Generator implements it.
type Sampler interface {
	Generate(n int, p model.Params) (model.Sample, error)
}

// Runner repeats trials with a fixed seed and degenerate-trial policy.
// It is not safe for concurrent use.
type Runner struct {
	seed    uint64
	seedSet bool
	sampler Sampler
	policy  Policy
	logger  *slog.Logger
}

// Option configures a Runner.
type Option = options.Option[*Runner]

// WithSeed fixes the seed of the random stream. Without it a seed is drawn
// once from the process-wide source and reported in Result.Seed.
func WithSeed(seed uint64) Option {
	return options.NoError(func(r *Runner) {
		r.seed = seed
		r.seedSet = true
	})
}

// WithSampler replaces the built-in generator. The runner's seed does not
// apply to a custom sampler.
func WithSampler(s Sampler) Option {
	return options.New(func(r *Runner) error {
		if s == nil {
			return fmt.Errorf("%w: sampler is nil", errs.ErrInvalidInput)
		}
		r.sampler = s

		return nil
	})
}

// WithDegeneratePolicy sets how zero-variance trials are handled.
func WithDegeneratePolicy(p Policy) Option {
	return options.New(func(r *Runner) error {
		if !p.Valid() {
			return fmt.Errorf("%w: unknown degenerate policy %d", errs.ErrInvalidInput, p)
		}
		r.policy = p

		return nil
	})
}

// WithLogger sets the logger. Run start and end are logged at Debug, failed
// trials at Warn and every trial at logging.LevelTrace.
func WithLogger(l *slog.Logger) Option {
	return options.NoError(func(r *Runner) {
		r.logger = l
	})
}

// New creates a Runner.
func New(opts ...Option) (*Runner, error) {
	r := &Runner{policy: PolicyAbort}
	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	if !r.seedSet {
		r.seed = rand.Uint64()
		r.seedSet = true
	}
	if r.logger == nil {
		r.logger = logging.Discard()
	}

	return r, nil
}

// Seed returns the seed every Run starts from.
func (r *Runner) Seed() uint64 {
	return r.seed
}

// Run executes numSimulations independent trials of sample size n.
//
// Parameters:
//   - numSimulations: number of trials, must be >= 1
//   - n: points per sample, must be >= 2
//   - p: generative parameters
//
// Returns:
//   - *Result: estimates in trial order
//   - error: ErrInvalidInput before any trial, or the failing trial's error
//     under PolicyAbort; no partial result is returned
func (r *Runner) Run(numSimulations, n int, p model.Params) (*Result, error) {
	if err := validateRun(numSimulations, n, p); err != nil {
		return nil, err
	}

	sampler, err := r.newSampler()
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	traceOn := r.logger.Enabled(ctx, logging.LevelTrace)
	r.logger.Debug("simulation started",
		"trials", numSimulations, "sample_size", n, "seed", r.seed, "policy", r.policy.String(),
		"intercept", p.Intercept, "slope", p.Slope, "noise_std_dev", p.NoiseStdDev)

	res := &Result{
		Params:             p,
		SampleSize:         n,
		Trials:             numSimulations,
		Seed:               r.seed,
		Policy:             r.policy,
		InterceptEstimates: make([]float64, 0, numSimulations),
		SlopeEstimates:     make([]float64, 0, numSimulations),
	}

	for trial := range numSimulations {
		s, err := sampler.Generate(n, p)
		if err != nil {
			return nil, fmt.Errorf("trial %d: generate: %w", trial, err)
		}

		est, err := regression.Fit(s)
		if err != nil {
			if !errors.Is(err, errs.ErrComputation) {
				return nil, fmt.Errorf("trial %d: fit: %w", trial, err)
			}

			r.logger.Warn("degenerate trial", "trial", trial, "policy", r.policy.String(), "error", err)
			switch r.policy {
			case PolicySkip:
				res.Failures = append(res.Failures, TrialFailure{Trial: trial, Err: err})
				continue
			case PolicyPropagate:
			default:
				return nil, fmt.Errorf("trial %d: fit: %w", trial, err)
			}
		}

		res.InterceptEstimates = append(res.InterceptEstimates, est.Intercept)
		res.SlopeEstimates = append(res.SlopeEstimates, est.Slope)

		if traceOn {
			r.logger.Log(ctx, logging.LevelTrace, "trial",
				"trial", trial, "intercept_hat", est.Intercept, "slope_hat", est.Slope)
		}
	}

	r.logger.Debug("simulation finished",
		"stored", res.Len(), "failed", len(res.Failures), "fingerprint", res.Fingerprint())

	return res, nil
}

func (r *Runner) newSampler() (Sampler, error) {
	if r.sampler != nil {
		return r.sampler, nil
	}

	return generator.New(NewRand(r.seed))
}

func validateRun(numSimulations, n int, p model.Params) error {
	if numSimulations < 1 {
		return fmt.Errorf("%w: %w: numSimulations must be >= 1, got %d",
			errs.ErrInvalidInput, errs.ErrInvalidTrialCount, numSimulations)
	}
	if n < regression.MinSampleSize {
		return fmt.Errorf("%w: %w: n must be >= %d, got %d",
			errs.ErrInvalidInput, errs.ErrInvalidSampleSize, regression.MinSampleSize, n)
	}

	return p.Validate()
}
