package strategy

import (
	"github.com/arloliu/apportion/internal/normalize"
	"github.com/arloliu/apportion/types"
)

// NameEpsilon is the configuration name of the Epsilon strategy.
const NameEpsilon = "epsilon"

// Epsilon resolves a cancelling weight vector by dividing by
// max(2.1·ε, 2.1·ε·maxAbs), ε being the smallest positive double.
type Epsilon struct{}

var _ types.ZeroSumStrategy = (*Epsilon)(nil)

// NewEpsilon creates a new epsilon-substitution strategy.
//
// Returns:
//   - *Epsilon: Initialized strategy
//
// Example:
//
//	d, err := apportion.New(cfg, apportion.WithZeroSumStrategy(strategy.NewEpsilon()))
func NewEpsilon() *Epsilon {
	return &Epsilon{}
}

// Name returns "epsilon".
func (e *Epsilon) Name() string {
	return NameEpsilon
}

// Resolve returns the substitute divisor. It never fails and never touches
// the weights.
//
// Parameters:
//   - zs: The cancelling weight vector
//
// Returns:
//   - types.Resolution: Substitute divisor with zero attempts
//   - error: Always nil
func (e *Epsilon) Resolve(zs types.ZeroSum) (types.Resolution, error) {
	return types.Resolution{Sum: normalize.EpsilonDivisor(zs.MaxAbs)}, nil
}
