package apportion

import (
	"github.com/arloliu/apportion/internal/logger"
	"github.com/arloliu/apportion/internal/metrics"
	"github.com/arloliu/apportion/numeric"
	"github.com/arloliu/apportion/strategy"
)

// stateless backs Exact and Approximate. Integral allocation never touches
// its random stream or source, so sharing it between goroutines is safe.
var stateless = &Distributor{
	cfg:     Config{Mode: ModeExact},
	logger:  logger.NewNop(),
	metrics: metrics.NewNop(),
	zeroSum: strategy.NewEpsilon(),
}

// Exact adds value to target in proportion to weights so that the deltas sum
// to exactly value.
//
// It behaves like DistributeExact on a Distributor with the epsilon zero-sum
// strategy and no logging or metrics, and is safe for concurrent use on
// disjoint buffers.
//
// Parameters:
//   - value: Quantity to distribute
//   - target: Accumulation buffer; target[i] += share[i]
//   - weights: Weights, same length as target (normalized in place)
//
// Returns:
//   - error: ErrInvalidShape, ErrNonFiniteWeight or ErrOverflow
//
// Example:
//
//	seats := make([]int, 3)
//	err := apportion.Exact(15, seats, []float64{0, 0, 0}) // seats == [5 5 5]
func Exact[T numeric.Signed](value T, target []T, weights []float64) error {
	return DistributeExact(stateless, value, target, weights)
}

// Approximate adds round(value·w/sum) to every slot independently. The deltas
// may not sum to value.
//
// Like Exact, it uses the epsilon zero-sum strategy and is safe for
// concurrent use on disjoint buffers.
func Approximate[T numeric.Signed](value T, target []T, weights []float64) error {
	return DistributeApproximate(stateless, value, target, weights)
}
