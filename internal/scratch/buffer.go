// Package scratch provides per-call scratch buffers that avoid heap
// allocation for small slot counts.
package scratch

// Threshold is the largest slot count served from inline storage.
const Threshold = 256

// Buffer hands out zeroed slices of T. Up to Threshold elements are carved out
// of inline storage, so a Buffer declared as a local variable lets small calls
// run without allocating; larger requests fall back to the heap.
//
// A Buffer is owned by a single call and must not be shared.
type Buffer[T any] struct {
	inline [Threshold]T
	used   int
}

// Take returns a zeroed slice of length n.
//
// Successive calls carve disjoint regions from the inline storage until it is
// exhausted, after which slices come from make.
func (b *Buffer[T]) Take(n int) []T {
	if n <= Threshold-b.used {
		s := b.inline[b.used : b.used+n : b.used+n]
		b.used += n
		clear(s)

		return s
	}

	return make([]T, n)
}

// Reset makes the whole inline storage available again. Slices previously
// returned by Take must no longer be used.
func (b *Buffer[T]) Reset() {
	b.used = 0
}
