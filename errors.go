package apportion

import "github.com/arloliu/apportion/types"

// Sentinel errors returned by the Distributor and the stateless helpers.
//
// They alias the sentinels in the types package, so errors.Is works with
// either name.
var (
	// ErrInvalidShape is returned when target and weights differ in length or are empty.
	ErrInvalidShape = types.ErrInvalidShape

	// ErrNonFiniteWeight is returned when an infinite weight reaches normalization.
	ErrNonFiniteWeight = types.ErrNonFiniteWeight

	// ErrUnresolvableWeights is returned when resampling cannot produce a nonzero sum.
	ErrUnresolvableWeights = types.ErrUnresolvableWeights

	// ErrUnsupportedNumericKind is returned for numeric kinds without an adapter.
	ErrUnsupportedNumericKind = types.ErrUnsupportedNumericKind

	// ErrOverflow is returned when a share does not fit the target kind.
	ErrOverflow = types.ErrOverflow

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrUnknownPolicy is returned when a configured policy name is not registered.
	ErrUnknownPolicy = types.ErrUnknownPolicy

	// ErrNoWeightSource is returned by sampled operations without a weight source.
	ErrNoWeightSource = types.ErrNoWeightSource
)
