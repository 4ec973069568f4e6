// Package remainder implements demand-ranked remainder correction for
// integral apportionment.
//
// After floor allocation every slot holds trunc(value·w/sum). The shortfall
// (or excess) is handed out one unit at a time to the slots that benefit most,
// measured by demand = w / (share + 1). This is the highest-averages (D'Hondt)
// rule applied to the residue only.
package remainder

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/arloliu/apportion/internal/scratch"
	"github.com/arloliu/apportion/types"
)

// Result describes one correction run.
type Result struct {
	// Adjusted is the number of ±1 adjustments applied.
	Adjusted int64

	// Rounds is the number of demand-ranked selection rounds. It is 1 unless the
	// remainder exceeded the slot count.
	Rounds int
}

// Correct applies remainder to shares so that the shares grow (or shrink) by
// exactly remainder in total.
//
// shares and weights must be expressed in a frame where the allocated value
// and the weight sum are both non-negative; the allocator maps signed inputs
// into that frame before calling. When remainder > 0 the slots with the
// highest demand are incremented; when remainder < 0 the slots with the
// lowest demand are decremented. Equal demands resolve by ascending index.
//
// Each round adjusts at most len(shares) distinct slots. A remainder larger
// than the slot count is consumed over several rounds, with demand recomputed
// between rounds.
//
// Parameters:
//   - shares: Floor-allocated shares, mutated in place
//   - weights: Normalized weights, index-aligned with shares
//   - remainder: Units still to distribute (negative to take back)
//
// Returns:
//   - Result: Adjustment count and number of rounds
//   - error: ErrInvalidShape on a length mismatch, ErrOverflow if a share
//     would leave the int64 range
func Correct(shares []int64, weights []float64, remainder int64) (Result, error) {
	var res Result

	if len(shares) != len(weights) || len(shares) == 0 {
		return res, fmt.Errorf("shares=%d weights=%d: %w", len(shares), len(weights), types.ErrInvalidShape)
	}

	var buf scratch.Buffer[candidate]
	n := int64(len(shares))

	for remainder != 0 {
		k := remainder
		step := int64(1)
		if remainder < 0 {
			k = -remainder
			step = -1
		}
		k = min(k, n)

		buf.Reset()
		h := &boundedHeap{items: buf.Take(int(k))[:0], highest: step > 0}
		for i := range shares {
			h.offer(candidate{demand: Demand(weights[i], shares[i]), index: i})
		}

		for _, c := range h.items {
			t := shares[c.index]
			if (step > 0 && t == math.MaxInt64) || (step < 0 && t == math.MinInt64) {
				return res, fmt.Errorf("share[%d] correction: %w", c.index, types.ErrOverflow)
			}
			shares[c.index] = t + step
		}

		remainder -= step * k
		res.Adjusted += k
		res.Rounds++
	}

	return res, nil
}

// Demand returns w / (share + 1), the marginal value of one more unit for a
// slot. An undefined ratio (0/0) is reported as 0.
func Demand(w float64, share int64) float64 {
	d := w / (float64(share) + 1)
	if math.IsNaN(d) {
		return 0
	}

	return d
}

type candidate struct {
	demand float64
	index  int
}

// boundedHeap keeps the best len(items) candidates seen so far with the worst
// kept candidate at the root. "Best" means highest demand when highest is set,
// lowest demand otherwise; ties prefer the lower index.
type boundedHeap struct {
	items   []candidate
	highest bool
}

func (h *boundedHeap) better(a, b candidate) bool {
	if a.demand != b.demand {
		if h.highest {
			return a.demand > b.demand
		}

		return a.demand < b.demand
	}

	return a.index < b.index
}

func (h *boundedHeap) offer(c candidate) {
	if len(h.items) < cap(h.items) {
		heap.Push(h, c)
		return
	}

	if h.better(c, h.items[0]) {
		h.items[0] = c
		heap.Fix(h, 0)
	}
}

func (h *boundedHeap) Len() int           { return len(h.items) }
func (h *boundedHeap) Less(i, j int) bool { return h.better(h.items[j], h.items[i]) }
func (h *boundedHeap) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *boundedHeap) Push(x any) {
	h.items = append(h.items, x.(candidate)) //nolint:forcetypeassert
}

func (h *boundedHeap) Pop() any {
	old := h.items
	n := len(old)
	x := old[n-1]
	h.items = old[:n-1]

	return x
}
