package source

import (
	"github.com/arloliu/apportion/types"
)

// Uniform implements a weight source drawing each weight independently and
// uniformly from [min, max).
type Uniform struct {
	rng types.Rand
	lo  float64
	hi  float64
}

var _ types.WeightSource = (*Uniform)(nil)

// NewUniform creates a new uniform weight source.
//
// Bounds given in the wrong order are swapped. A mixed-sign range can cancel
// to a zero sum; pair it with the resample strategy.
//
// Parameters:
//   - rng: Owned random stream
//   - lo: Inclusive lower bound
//   - hi: Exclusive upper bound
//
// Returns:
//   - *Uniform: Initialized uniform source
//
// Example:
//
//	src := source.NewUniform(rng.Seeded(7), 0, 1)
func NewUniform(rng types.Rand, lo, hi float64) *Uniform {
	if hi < lo {
		lo, hi = hi, lo
	}

	return &Uniform{rng: rng, lo: lo, hi: hi}
}

// Sample fills dst with uniform draws. It never fails.
func (u *Uniform) Sample(dst []float64) error {
	span := u.hi - u.lo
	for i := range dst {
		dst[i] = u.lo + u.rng.Float64()*span
	}

	return nil
}
