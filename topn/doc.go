// Package topn implements the bounded top-N result collector of §4.4: an
// ordered container of capacity N that retains the N lowest-cost
// record.Result values seen across a run, using container/heap as a
// lazy max-heap over the worst currently-held result.
//
// What:
//
//   - Collector: New(n), Add(r), Results() (ascending, best first), Len().
//
// Why:
//   - A max-heap keyed on record.Result.Less lets Add reject or evict in
//     O(log N) without ever sorting the whole held set: the root is always
//     the single result that would be evicted next.
//   - Results() sorts only once, on read, rather than maintaining a fully
//     sorted structure on every Add — the collector is written far more
//     often than it is read (§4.5: one Add per segment-pair, one Results
//     per run).
//
// Complexity:
//
//   - Add:     O(log N).
//   - Results: O(N log N).
package topn
