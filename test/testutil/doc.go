// Package testutil provides shared assertions and fixtures for allocation
// tests.
//
// Examples of utilities that belong here:
//   - Invariant assertions (conservation, sign of deltas)
//   - Weight vector generators for property-style tests
package testutil
