// Package source provides built-in weight source implementations.
//
// Weight sources produce the raw weight vector for sampled distribution.
// The package includes:
//
//   - Uniform: Independent uniform draws from an owned random stream
//   - Noise: Seeded one-dimensional fractal value noise, coherent across slots
//   - Static: Fixed weight vector
//
// Sources are stateful and not safe for concurrent use.
//
// Custom sources can be implemented by satisfying the types.WeightSource interface.
package source
