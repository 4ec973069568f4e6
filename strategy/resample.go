package strategy

import (
	"fmt"

	"github.com/arloliu/apportion/types"
)

const (
	// NameResample is the configuration name of the Resample strategy.
	NameResample = "resample"

	// DefaultMaxAttempts is the default resample budget.
	DefaultMaxAttempts = 256
)

// Resample resolves a cancelling weight vector by drawing a fresh one.
type Resample struct {
	maxAttempts int
}

var _ types.ZeroSumStrategy = (*Resample)(nil)

// ResampleOption configures a Resample strategy.
type ResampleOption func(*Resample)

// NewResample creates a new bounded-retry strategy.
//
// Parameters:
//   - opts: Optional configuration (WithMaxAttempts)
//
// Returns:
//   - *Resample: Initialized strategy
//
// Example:
//
//	s := strategy.NewResample(strategy.WithMaxAttempts(64))
//	d, err := apportion.New(cfg, apportion.WithZeroSumStrategy(s))
func NewResample(opts ...ResampleOption) *Resample {
	r := &Resample{
		maxAttempts: DefaultMaxAttempts,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithMaxAttempts sets the resample budget.
//
// Values below 1 keep the default (256).
//
// Parameters:
//   - n: Maximum number of redraws
//
// Returns:
//   - ResampleOption: Configuration option
func WithMaxAttempts(n int) ResampleOption {
	return func(r *Resample) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// Name returns "resample".
func (r *Resample) Name() string {
	return NameResample
}

// MaxAttempts returns the resample budget.
func (r *Resample) MaxAttempts() int {
	return r.maxAttempts
}

// Resolve redraws the weights until their sum is nonzero.
//
// Each attempt calls zs.Resample, which refills the weight vector in place and
// normalizes it. Errors from a redraw (for example an infinite weight) abort
// immediately.
//
// Parameters:
//   - zs: The cancelling weight vector and its redraw function
//
// Returns:
//   - types.Resolution: Divisor of the first usable redraw and the attempts used
//   - error: ErrUnresolvableWeights when zs cannot be redrawn or the budget is
//     exhausted
func (r *Resample) Resolve(zs types.ZeroSum) (types.Resolution, error) {
	if zs.Resample == nil {
		return types.Resolution{}, fmt.Errorf("weights cannot be resampled: %w", types.ErrUnresolvableWeights)
	}

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		norm, err := zs.Resample()
		if err != nil {
			return types.Resolution{Attempts: attempt}, err
		}

		if !norm.ZeroSum {
			return types.Resolution{Sum: norm.Sum, Attempts: attempt}, nil
		}
	}

	return types.Resolution{Attempts: r.maxAttempts},
		fmt.Errorf("%d resample attempts: %w", r.maxAttempts, types.ErrUnresolvableWeights)
}
