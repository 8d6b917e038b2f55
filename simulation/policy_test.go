package simulation

import (
	"testing"

	"github.com/arloliu/olsim/errs"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want Policy
	}{
		{"", PolicyAbort},
		{"abort", PolicyAbort},
		{"Skip", PolicySkip},
		{"PROPAGATE", PolicyPropagate},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := ParsePolicy("retry")
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestPolicyString(t *testing.T) {
	require.Equal(t, "abort", PolicyAbort.String())
	require.Equal(t, "skip", PolicySkip.String())
	require.Equal(t, "propagate", PolicyPropagate.String())
	require.Equal(t, "unknown", Policy(9).String())
}
