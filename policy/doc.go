// Package policy provides built-in weight policies and a registry for
// building policy chains from configuration.
//
// Policies transform a weight vector in place between sampling and
// normalization. They run left to right:
//
//   - Remap: Linearly maps the observed range onto [Min, Max]
//   - Clamp: Clamps each weight into [Min, Max]
//   - Bias: Scales weights along a positional curve (start, end, center, edges)
//   - Power: Raises magnitudes to an exponent, keeping signs
//
// Chain composes policies. Registry maps names to factories so pipelines can
// be described in YAML:
//
//	policies:
//	  - name: remap
//	    params: {min: 0, max: 1}
//	  - name: bias
//	    params: {shape: center, strength: 0.5}
//
// Custom policies can be implemented by satisfying the types.WeightPolicy
// interface and registered with Registry.Register.
package policy
