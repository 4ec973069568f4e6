package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("errors.Is works correctly", func(t *testing.T) {
		require.True(t, errors.Is(ErrInvalidShape, ErrInvalidShape))
		require.False(t, errors.Is(ErrInvalidShape, ErrOverflow))

		wrapped := fmt.Errorf("target has 5 slots, weights have 3: %w", ErrInvalidShape)
		require.True(t, errors.Is(wrapped, ErrInvalidShape))
	})

	t.Run("all errors are distinct", func(t *testing.T) {
		allErrors := []error{
			ErrInvalidShape,
			ErrNonFiniteWeight,
			ErrUnresolvableWeights,
			ErrUnsupportedNumericKind,
			ErrOverflow,
			ErrInvalidConfig,
			ErrUnknownPolicy,
			ErrNoWeightSource,
		}

		for i, err1 := range allErrors {
			for j, err2 := range allErrors {
				if i == j {
					require.True(t, errors.Is(err1, err2), "error should equal itself: %v", err1)
				} else {
					require.False(t, errors.Is(err1, err2), "errors should be distinct: %v vs %v", err1, err2)
				}
			}
		}
	})
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"invalid shape", ErrInvalidShape, "invalid_shape"},
		{"wrapped non-finite", fmt.Errorf("weight[2]=+Inf: %w", ErrNonFiniteWeight), "non_finite_weight"},
		{"unresolvable", ErrUnresolvableWeights, "unresolvable_weights"},
		{"unsupported kind", fmt.Errorf("uint8: %w", ErrUnsupportedNumericKind), "unsupported_numeric_kind"},
		{"overflow", ErrOverflow, "overflow"},
		{"config", ErrInvalidConfig, "invalid_config"},
		{"policy", ErrUnknownPolicy, "unknown_policy"},
		{"source", ErrNoWeightSource, "no_weight_source"},
		{"other", errors.New("boom"), "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ErrorKind(tt.err))
		})
	}
}
