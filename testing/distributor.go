package testing

import (
	"sync"
	"testing"

	"github.com/arloliu/apportion"
	"github.com/arloliu/apportion/types"
)

// NewDistributor creates a Distributor from apportion.TestConfig that logs to
// the test log. Options are applied after the test logger, so WithLogger
// overrides it.
//
// The test fails immediately if the Distributor cannot be created.
//
// Parameters:
//   - t: Test handle
//   - opts: Extra options
//
// Returns:
//   - *apportion.Distributor: Seeded distributor
func NewDistributor(t testing.TB, opts ...apportion.Option) *apportion.Distributor {
	t.Helper()

	return NewDistributorWithConfig(t, apportion.TestConfig(), opts...)
}

// NewDistributorWithConfig is NewDistributor with a caller-supplied configuration.
func NewDistributorWithConfig(t testing.TB, cfg apportion.Config, opts ...apportion.Option) *apportion.Distributor {
	t.Helper()

	all := append([]apportion.Option{apportion.WithLogger(NewTestLogger(t))}, opts...)
	d, err := apportion.New(cfg, all...)
	if err != nil {
		t.Fatalf("apportion.New: %v", err)
	}

	return d
}

// Sequence is a weight source that replays fixed vectors in order and then
// keeps returning the last one. It is safe for concurrent use.
type Sequence struct {
	mu      sync.Mutex
	vectors [][]float64
	calls   int
}

var _ types.WeightSource = (*Sequence)(nil)

// NewSequence creates a source replaying vectors. At least one vector is required.
func NewSequence(vectors ...[]float64) *Sequence {
	if len(vectors) == 0 {
		panic("apportion/testing: NewSequence needs at least one vector")
	}

	copied := make([][]float64, len(vectors))
	for i, v := range vectors {
		copied[i] = append([]float64(nil), v...)
	}

	return &Sequence{vectors: copied}
}

// Sample copies the next vector into dst.
//
// Returns:
//   - error: ErrInvalidShape when len(dst) differs from the vector length
func (s *Sequence) Sample(dst []float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.vectors[min(s.calls, len(s.vectors)-1)]
	s.calls++

	if len(dst) != len(v) {
		return types.ErrInvalidShape
	}
	copy(dst, v)

	return nil
}

// Calls returns the number of Sample calls so far.
func (s *Sequence) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls
}
