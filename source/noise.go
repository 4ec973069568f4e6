package source

import (
	"math"
	"strconv"

	"github.com/arloliu/apportion/internal/hash"
	"github.com/arloliu/apportion/types"
)

const (
	defaultFrequency   = 0.1
	defaultOctaves     = 3
	defaultPersistence = 0.5
	maxOctaves         = 16
)

// Noise implements a weight source backed by one-dimensional fractal value
// noise.
//
// Neighbouring slots receive correlated weights, which produces smooth
// "hills and valleys" instead of independent spikes. Lattice values come from
// XXH3 hashes of (octave seed, lattice index), so a given seed always produces
// the same sequence of vectors. Values lie in [-1, 1].
//
// Each Sample call continues where the previous one stopped, so successive
// vectors differ but join seamlessly.
type Noise struct {
	seeds       []uint64
	frequency   float64
	persistence float64
	offset      float64
}

var _ types.WeightSource = (*Noise)(nil)

// NoiseOption configures a Noise source.
type NoiseOption func(*Noise)

// NewNoise creates a new fractal value noise source.
//
// Parameters:
//   - seed: Noise seed
//   - opts: Optional configuration (WithFrequency, WithOctaves, WithPersistence)
//
// Returns:
//   - *Noise: Initialized noise source
//
// Example:
//
//	src := source.NewNoise(42,
//	    source.WithFrequency(0.05),
//	    source.WithOctaves(4),
//	)
func NewNoise(seed uint64, opts ...NoiseOption) *Noise {
	n := &Noise{
		frequency:   defaultFrequency,
		persistence: defaultPersistence,
	}
	n.setOctaves(seed, defaultOctaves)

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// WithFrequency sets the lattice step between neighbouring slots.
//
// Smaller values give smoother vectors. Non-positive values keep the default
// (0.1).
func WithFrequency(f float64) NoiseOption {
	return func(n *Noise) {
		if f > 0 && !math.IsInf(f, 0) {
			n.frequency = f
		}
	}
}

// WithOctaves sets the number of layered noise octaves, each at double the
// frequency of the previous one. Values are clamped to [1, 16] (default: 3).
func WithOctaves(octaves int) NoiseOption {
	return func(n *Noise) {
		n.setOctaves(n.baseSeed(), min(max(octaves, 1), maxOctaves))
	}
}

// WithPersistence sets the amplitude ratio between successive octaves.
//
// Values outside (0, 1] keep the default (0.5).
func WithPersistence(p float64) NoiseOption {
	return func(n *Noise) {
		if p > 0 && p <= 1 {
			n.persistence = p
		}
	}
}

func (n *Noise) baseSeed() uint64 {
	return n.seeds[0]
}

func (n *Noise) setOctaves(seed uint64, octaves int) {
	n.seeds = make([]uint64, octaves)
	n.seeds[0] = seed
	for o := 1; o < octaves; o++ {
		n.seeds[o] = hash.Derive(seed, "octave-"+strconv.Itoa(o))
	}
}

// Sample fills dst with the next len(dst) noise values and advances the
// source. It never fails.
func (n *Noise) Sample(dst []float64) error {
	for i := range dst {
		dst[i] = n.at(n.offset + float64(i)*n.frequency)
	}
	n.offset += float64(len(dst)) * n.frequency

	return nil
}

// Reset rewinds the source to its first sample.
func (n *Noise) Reset() {
	n.offset = 0
}

// at evaluates the fractal noise at x, normalized to [-1, 1].
func (n *Noise) at(x float64) float64 {
	total := 0.0
	norm := 0.0
	amp := 1.0
	freq := 1.0

	for _, seed := range n.seeds {
		total += amp * valueNoise(seed, x*freq)
		norm += amp
		amp *= n.persistence
		freq *= 2
	}

	return total / norm
}

// valueNoise interpolates hashed lattice values with a smoothstep curve.
func valueNoise(seed uint64, x float64) float64 {
	x0 := math.Floor(x)
	t := x - x0
	i := int64(x0)

	a := hash.Signed(hash.Lattice(seed, i))
	b := hash.Signed(hash.Lattice(seed, i+1))
	s := t * t * (3 - 2*t)

	return a + s*(b-a)
}
