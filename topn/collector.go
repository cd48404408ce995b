package topn

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/tandupscan/record"
)

// Collector is the bounded top-N result container of §4.4: it retains the
// N lowest-cost record.Result values seen across Add calls. Collector is
// not safe for concurrent use; a run owns exactly one Collector (§5).
type Collector struct {
	n int
	h resultHeap
}

// New returns a Collector of capacity n. n<=0 is valid: every Add becomes
// a no-op and Results always returns empty (§4.4, §7 NoError). Negative n
// is the caller's responsibility to reject upstream (engine.RunConfig.
// Validate does so via ErrNegativeNoResults); New itself treats it the
// same as zero rather than panicking.
func New(n int) *Collector {
	return &Collector{n: n}
}

// Add inserts r if the collector has not yet reached capacity, or if r is
// a strict improvement over the currently-held worst result (§4.4). Ties
// with the current worst never displace it: only strict improvements do.
//
// Complexity: O(log N).
func (c *Collector) Add(r record.Result) {
	if c.n <= 0 {
		return
	}
	if len(c.h) < c.n {
		heap.Push(&c.h, r)
		return
	}
	if r.Less(c.h[0]) {
		heap.Pop(&c.h)
		heap.Push(&c.h, r)
	}
}

// Results returns every currently-held result in ascending order (best
// first, per record.Result.Less). The collector itself is left unchanged.
//
// Complexity: O(N log N).
func (c *Collector) Results() []record.Result {
	out := make([]record.Result, len(c.h))
	copy(out, c.h)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Len returns the number of results currently held (<= capacity).
func (c *Collector) Len() int { return len(c.h) }
