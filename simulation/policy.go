package simulation

import (
	"fmt"
	"strings"

	"github.com/arloliu/olsim/errs"
)

// Policy selects how a run handles a trial whose fit fails numerically.
type Policy uint8

const (
	// PolicyAbort fails the whole run at the first degenerate trial.
	PolicyAbort Policy = iota
	// PolicySkip drops the trial's estimates and reports it in Result.Failures.
	PolicySkip
	// PolicyPropagate appends the non-finite estimate and continues.
	PolicyPropagate
)

var policyNames = map[Policy]string{
	PolicyAbort:     "abort",
	PolicySkip:      "skip",
	PolicyPropagate: "propagate",
}

// String returns the configuration name of the policy.
func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}

	return "unknown"
}

// Valid reports whether p is a known policy.
func (p Policy) Valid() bool {
	_, ok := policyNames[p]
	return ok
}

// ParsePolicy maps "abort", "skip" or "propagate" (case-insensitive) to a
// Policy. The empty string selects PolicyAbort.
func ParsePolicy(name string) (Policy, error) {
	if name == "" {
		return PolicyAbort, nil
	}
	for p, n := range policyNames {
		if strings.EqualFold(n, name) {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown degenerate policy %q (valid: abort, skip, propagate)", errs.ErrInvalidInput, name)
}
