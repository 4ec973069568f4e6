package types

import (
	"errors"
)

// Sentinel errors for the apportion library.
//
// These errors provide type-safe error checking using errors.Is().
// All components return these sentinels (wrapped with context using
// fmt.Errorf("%s: %w", msg, err)) so callers can pick a recovery strategy:
// retry with different weights or shapes, or abort.
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by component (Engine, Configuration)
//   - Use consistent messages across similar error types

// Engine errors - returned by normalization and allocation.
var (
	// ErrInvalidShape is returned when the target and weight vectors differ in
	// length or are empty. The target is never mutated.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrNonFiniteWeight is returned when an infinite weight reaches normalization.
	ErrNonFiniteWeight = errors.New("non-finite weight")

	// ErrUnresolvableWeights is returned when the resample strategy exhausts its
	// attempt budget without producing a weight vector with a nonzero sum.
	ErrUnresolvableWeights = errors.New("unresolvable weights: sum is zero")

	// ErrUnsupportedNumericKind is returned for numeric kinds without an adapter
	// (unsigned integers, integers narrower than 32 bits).
	ErrUnsupportedNumericKind = errors.New("unsupported numeric kind")

	// ErrOverflow is returned when a computed share or accumulated value does not
	// fit into the target numeric kind.
	ErrOverflow = errors.New("numeric overflow")
)

// Configuration errors - returned while building a Distributor.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownPolicy is returned when a policy name is not registered.
	ErrUnknownPolicy = errors.New("unknown weight policy")

	// ErrNoWeightSource is returned when sampled distribution is requested from a
	// Distributor that has no weight source.
	ErrNoWeightSource = errors.New("no weight source configured")
)

// ErrorKind returns a stable, low-cardinality label for an error.
//
// The label is suitable for metrics and log fields. Unknown errors map to
// "other" and nil maps to "".
//
// Parameters:
//   - err: The error to classify
//
// Returns:
//   - string: Label such as "invalid_shape" or "overflow"
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidShape):
		return "invalid_shape"
	case errors.Is(err, ErrNonFiniteWeight):
		return "non_finite_weight"
	case errors.Is(err, ErrUnresolvableWeights):
		return "unresolvable_weights"
	case errors.Is(err, ErrUnsupportedNumericKind):
		return "unsupported_numeric_kind"
	case errors.Is(err, ErrOverflow):
		return "overflow"
	case errors.Is(err, ErrInvalidConfig):
		return "invalid_config"
	case errors.Is(err, ErrUnknownPolicy):
		return "unknown_policy"
	case errors.Is(err, ErrNoWeightSource):
		return "no_weight_source"
	default:
		return "other"
	}
}
