package topn

import "github.com/katalvlaran/tandupscan/record"

// resultHeap is a container/heap max-heap over record.Result.Less: its
// root (index 0) is always the single worst result currently held, so
// Collector.Add can test and evict it in O(log N).
type resultHeap []record.Result

func (h resultHeap) Len() int { return len(h) }

// Less inverts record.Result.Less so the heap's root is the worst element
// rather than the best.
func (h resultHeap) Less(i, j int) bool { return h[j].Less(h[i]) }

func (h resultHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *resultHeap) Push(x any) { *h = append(*h, x.(record.Result)) }

func (h *resultHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
