package source

import (
	"fmt"

	"github.com/arloliu/apportion/types"
)

// Static implements a weight source with a fixed weight vector.
type Static struct {
	weights []float64
}

var _ types.WeightSource = (*Static)(nil)

// NewStatic creates a new static weight source.
//
// The source returns a fixed vector that only changes through Update.
// Useful for testing and for pipelines where the weights are known up front
// but policies should still run.
//
// Parameters:
//   - weights: Fixed weight vector (copied)
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic([]float64{3, 1, 1})
//	d, err := apportion.New(cfg, apportion.WithSource(src))
//	if err != nil { /* handle */ }
func NewStatic(weights []float64) *Static {
	s := &Static{}
	s.Update(weights)

	return s
}

// Sample copies the fixed vector into dst.
//
// Returns:
//   - error: ErrInvalidShape when len(dst) differs from the fixed vector length
func (s *Static) Sample(dst []float64) error {
	if len(dst) != len(s.weights) {
		return fmt.Errorf("static source has %d weights, %d requested: %w", len(s.weights), len(dst), types.ErrInvalidShape)
	}

	copy(dst, s.weights)

	return nil
}

// Update replaces the weight vector.
//
// Parameters:
//   - weights: New weight vector (copied)
//
// Example:
//
//	src := source.NewStatic(initial)
//	// Later: shift load to the last slot
//	src.Update([]float64{1, 1, 4})
func (s *Static) Update(weights []float64) {
	s.weights = make([]float64, len(weights))
	copy(s.weights, weights)
}

// Len returns the length of the fixed vector.
func (s *Static) Len() int {
	return len(s.weights)
}
