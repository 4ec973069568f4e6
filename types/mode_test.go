package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMode_Validate(t *testing.T) {
	require.NoError(t, ModeExact.Validate())
	require.NoError(t, ModeApproximate.Validate())

	err := Mode("fuzzy").Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Contains(t, err.Error(), "fuzzy")
}

func TestSignProfile_String(t *testing.T) {
	require.Equal(t, "non_negative", SignNonNegative.String())
	require.Equal(t, "non_positive", SignNonPositive.String())
	require.Equal(t, "mixed", SignMixed.String())
	require.Equal(t, "unknown", SignProfile(42).String())
}
