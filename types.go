package apportion

import "github.com/arloliu/apportion/types"

// Re-export types from the types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual definitions.
//
// This pattern avoids import cycles by allowing subpackages to depend on
// `types` without depending on the root `apportion` package, while still
// providing a convenient `apportion.Mode`, `apportion.Logger`, etc. for users.
type (
	Mode          = types.Mode
	SignProfile   = types.SignProfile
	Normalization = types.Normalization
	ZeroSum       = types.ZeroSum
	Resolution    = types.Resolution
)

// Re-export interfaces from the types package for convenience.
type (
	WeightSource     = types.WeightSource
	WeightPolicy     = types.WeightPolicy
	WeightPolicyFunc = types.WeightPolicyFunc
	ZeroSumStrategy  = types.ZeroSumStrategy
	Rand             = types.Rand
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
)

// Re-export Mode and SignProfile constants from the types package.
const (
	ModeExact       = types.ModeExact
	ModeApproximate = types.ModeApproximate

	SignNonNegative = types.SignNonNegative
	SignNonPositive = types.SignNonPositive
	SignMixed       = types.SignMixed
)
