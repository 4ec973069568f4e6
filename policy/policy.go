package policy

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/apportion/types"
)

var (
	_ types.WeightPolicy = Remap{}
	_ types.WeightPolicy = Clamp{}
	_ types.WeightPolicy = Bias{}
	_ types.WeightPolicy = Power{}
	_ types.WeightPolicy = Chain{}
)

// Remap linearly maps the vector's observed [min, max] onto [Min, Max].
//
// A constant vector maps to the midpoint of [Min, Max].
type Remap struct {
	Min float64
	Max float64
}

// Apply remaps weights in place.
func (p Remap) Apply(weights []float64) {
	if len(weights) == 0 {
		return
	}

	lo := floats.Min(weights)
	hi := floats.Max(weights)
	if hi == lo {
		mid := p.Min + (p.Max-p.Min)/2
		for i := range weights {
			weights[i] = mid
		}

		return
	}

	floats.AddConst(-lo, weights)
	floats.Scale((p.Max-p.Min)/(hi-lo), weights)
	floats.AddConst(p.Min, weights)
}

// Clamp limits every weight to [Min, Max].
type Clamp struct {
	Min float64
	Max float64
}

// Apply clamps weights in place.
func (p Clamp) Apply(weights []float64) {
	for i, w := range weights {
		weights[i] = math.Min(math.Max(w, p.Min), p.Max)
	}
}

// Shape selects the positional curve of a Bias.
type Shape string

const (
	// ShapeStart favors the first slots.
	ShapeStart Shape = "start"
	// ShapeEnd favors the last slots.
	ShapeEnd Shape = "end"
	// ShapeCenter favors the middle slots.
	ShapeCenter Shape = "center"
	// ShapeEdges favors both ends.
	ShapeEdges Shape = "edges"
)

// Valid reports whether s is a known shape.
func (s Shape) Valid() bool {
	switch s {
	case ShapeStart, ShapeEnd, ShapeCenter, ShapeEdges:
		return true
	default:
		return false
	}
}

// curve returns the shape's factor in [0, 1] at relative position u in [0, 1].
func (s Shape) curve(u float64) float64 {
	switch s {
	case ShapeStart:
		return 1 - u
	case ShapeEnd:
		return u
	case ShapeCenter:
		return 1 - math.Abs(2*u-1)
	case ShapeEdges:
		return math.Abs(2*u - 1)
	default:
		return 1
	}
}

// Bias multiplies weight i by (1-Strength) + Strength·curve(i/(n-1)).
//
// Strength is clamped to [0, 1]; 0 leaves the weights unchanged and 1 applies
// the full curve. A single slot sits at position 0.5.
type Bias struct {
	Shape    Shape
	Strength float64
}

// Apply biases weights in place.
func (p Bias) Apply(weights []float64) {
	s := math.Min(math.Max(p.Strength, 0), 1)
	n := len(weights)

	for i := range weights {
		u := 0.5
		if n > 1 {
			u = float64(i) / float64(n-1)
		}
		weights[i] *= (1 - s) + s*p.Shape.curve(u)
	}
}

// Power maps each weight w to sign(w)·|w|^Exponent. Zero weights stay zero.
type Power struct {
	Exponent float64
}

// Apply raises weights in place.
func (p Power) Apply(weights []float64) {
	for i, w := range weights {
		if w == 0 {
			continue
		}
		weights[i] = math.Copysign(math.Pow(math.Abs(w), p.Exponent), w)
	}
}

// Chain applies its policies left to right.
type Chain []types.WeightPolicy

// Apply runs every policy in order.
func (c Chain) Apply(weights []float64) {
	for _, p := range c {
		p.Apply(weights)
	}
}
