package strategy

import (
	"fmt"
	"strings"

	"github.com/arloliu/apportion/types"
)

// ByName builds a built-in strategy from its configuration name.
//
// Parameters:
//   - name: "epsilon" or "resample" (case-insensitive; empty means epsilon)
//   - maxAttempts: Resample budget, ignored by epsilon
//
// Returns:
//   - types.ZeroSumStrategy: The strategy
//   - error: ErrUnknownStrategy for any other name
func ByName(name string, maxAttempts int) (types.ZeroSumStrategy, error) {
	switch strings.ToLower(name) {
	case "", NameEpsilon:
		return NewEpsilon(), nil
	case NameResample:
		return NewResample(WithMaxAttempts(maxAttempts)), nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
	}
}
