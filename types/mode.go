package types

import "fmt"

// Mode selects how shares are rounded and whether the total is conserved.
type Mode string

const (
	// ModeExact truncates toward zero and corrects the remainder so that the
	// per-call deltas sum exactly to the input value for integral kinds. Field
	// kinds add the rounding discrepancy into one randomly chosen slot.
	ModeExact Mode = "exact"

	// ModeApproximate rounds every share independently. The total is not
	// conserved.
	ModeApproximate Mode = "approximate"
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	return string(m)
}

// Validate reports whether the mode is one of the known modes.
//
// Returns:
//   - error: ErrInvalidConfig wrapped with the offending value, nil if valid
func (m Mode) Validate() error {
	switch m {
	case ModeExact, ModeApproximate:
		return nil
	default:
		return fmt.Errorf("%w: unknown mode %q (want %q or %q)", ErrInvalidConfig, string(m), ModeExact, ModeApproximate)
	}
}

// SignProfile describes the sign composition of a weight vector.
type SignProfile int

const (
	// SignNonNegative means every weight is >= 0 (including the all-zero vector).
	SignNonNegative SignProfile = iota

	// SignNonPositive means every weight is <= 0 and at least one is negative.
	SignNonPositive

	// SignMixed means the vector contains both positive and negative weights.
	SignMixed
)

// String returns the string representation of the sign profile.
func (s SignProfile) String() string {
	switch s {
	case SignNonNegative:
		return "non_negative"
	case SignNonPositive:
		return "non_positive"
	case SignMixed:
		return "mixed"
	default:
		return "unknown"
	}
}
