package policy

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/apportion/types"
)

// Spec names a registered policy and its parameters.
type Spec struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params,omitempty"`
}

// Factory builds a policy from its parameters.
type Factory func(params Params) (types.WeightPolicy, error)

// Registry maps policy names to factories. It is safe for concurrent use.
type Registry struct {
	factories *xsync.Map[string, Factory]
}

// Default is the registry holding the built-in policies: remap, clamp, bias
// and power.
var Default = NewRegistry()

// NewRegistry creates a registry pre-populated with the built-in policies.
//
// Returns:
//   - *Registry: Initialized registry
func NewRegistry() *Registry {
	r := &Registry{factories: xsync.NewMap[string, Factory]()}
	r.Register("remap", newRemap)
	r.Register("clamp", newClamp)
	r.Register("bias", newBias)
	r.Register("power", newPower)

	return r
}

// Register adds or replaces the factory for name (case-insensitive).
//
// Parameters:
//   - name: Policy name used in configuration
//   - f: Factory building the policy
//
// Example:
//
//	policy.Default.Register("invert", func(policy.Params) (types.WeightPolicy, error) {
//	    return types.WeightPolicyFunc(func(w []float64) {
//	        for i := range w {
//	            w[i] = -w[i]
//	        }
//	    }), nil
//	})
func (r *Registry) Register(name string, f Factory) {
	r.factories.Store(strings.ToLower(name), f)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.factories.Size())
	r.factories.Range(func(name string, _ Factory) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)

	return names
}

// Build turns specs into a Chain, in order.
//
// Parameters:
//   - specs: Ordered policy specs
//
// Returns:
//   - Chain: The composed policies (empty for no specs)
//   - error: ErrUnknownPolicy for an unregistered name, ErrInvalidConfig for bad parameters
func (r *Registry) Build(specs []Spec) (Chain, error) {
	chain := make(Chain, 0, len(specs))

	for i, spec := range specs {
		f, ok := r.factories.Load(strings.ToLower(spec.Name))
		if !ok {
			return nil, fmt.Errorf("policies[%d] %q: %w", i, spec.Name, types.ErrUnknownPolicy)
		}

		p, err := f(Params(spec.Params))
		if err != nil {
			return nil, fmt.Errorf("policies[%d] %q: %w", i, spec.Name, err)
		}
		chain = append(chain, p)
	}

	return chain, nil
}

// Params are the raw parameters of a Spec, as decoded from YAML.
type Params map[string]any

// Float returns the numeric parameter key, or def when it is absent.
func (p Params) Float(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}

	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("param %s=%q: %w", key, n, types.ErrInvalidConfig)
		}

		return f, nil
	default:
		return 0, fmt.Errorf("param %s has type %T: %w", key, v, types.ErrInvalidConfig)
	}
}

// String returns the string parameter key, or def when it is absent.
func (p Params) String(key, def string) (string, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("param %s has type %T: %w", key, v, types.ErrInvalidConfig)
	}

	return s, nil
}

// only rejects parameters outside allowed.
func (p Params) only(allowed ...string) error {
	for key := range p {
		if !slices.Contains(allowed, key) {
			return fmt.Errorf("unknown param %q: %w", key, types.ErrInvalidConfig)
		}
	}

	return nil
}

func bounds(p Params) (float64, float64, error) {
	if err := p.only("min", "max"); err != nil {
		return 0, 0, err
	}

	lo, err := p.Float("min", 0)
	if err != nil {
		return 0, 0, err
	}
	hi, err := p.Float("max", 1)
	if err != nil {
		return 0, 0, err
	}

	if hi < lo {
		return 0, 0, fmt.Errorf("max %v < min %v: %w", hi, lo, types.ErrInvalidConfig)
	}

	return lo, hi, nil
}

func newRemap(p Params) (types.WeightPolicy, error) {
	lo, hi, err := bounds(p)
	if err != nil {
		return nil, err
	}

	return Remap{Min: lo, Max: hi}, nil
}

func newClamp(p Params) (types.WeightPolicy, error) {
	lo, hi, err := bounds(p)
	if err != nil {
		return nil, err
	}

	return Clamp{Min: lo, Max: hi}, nil
}

func newBias(p Params) (types.WeightPolicy, error) {
	if err := p.only("shape", "strength"); err != nil {
		return nil, err
	}

	shape, err := p.String("shape", string(ShapeCenter))
	if err != nil {
		return nil, err
	}
	if !Shape(shape).Valid() {
		return nil, fmt.Errorf("shape %q: %w", shape, types.ErrInvalidConfig)
	}

	strength, err := p.Float("strength", 1)
	if err != nil {
		return nil, err
	}
	if strength < 0 || strength > 1 {
		return nil, fmt.Errorf("strength %v outside [0, 1]: %w", strength, types.ErrInvalidConfig)
	}

	return Bias{Shape: Shape(shape), Strength: strength}, nil
}

func newPower(p Params) (types.WeightPolicy, error) {
	if err := p.only("exponent"); err != nil {
		return nil, err
	}

	exp, err := p.Float("exponent", 1)
	if err != nil {
		return nil, err
	}
	if exp <= 0 {
		return nil, fmt.Errorf("exponent %v must be positive: %w", exp, types.ErrInvalidConfig)
	}

	return Power{Exponent: exp}, nil
}
