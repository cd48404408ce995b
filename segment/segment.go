package segment

import "github.com/katalvlaran/tandupscan/alphabet"

// Lengths returns every admissible segment length k for a sequence of
// length l under p, in ascending order: k = MinLen, MinLen+Step, …,
// clamped above by min(l/2, MaxLen) inclusive. p must already be validated
// (Params.Validate); l is assumed >= 2 (the engine enforces this at run
// start).
//
// Complexity: O(l / p.Step).
func Lengths(l uint64, p Params) []uint64 {
	upper := l / 2
	if p.MaxLen < upper {
		upper = p.MaxLen
	}
	if p.MinLen > upper {
		return nil
	}

	out := make([]uint64, 0, (upper-p.MinLen)/p.Step+1)
	for k := p.MinLen; k <= upper; k += p.Step {
		out = append(out, k)
	}
	return out
}

// Positions returns every admissible start position p for a fixed segment
// length k over a sequence of length l, in ascending order from 0:
// p = 0, 1, …, l−2k. Returns nil if 2k > l.
//
// Complexity: O(l).
func Positions(l, k uint64) []uint64 {
	if 2*k > l {
		return nil
	}

	n := l - 2*k + 1
	out := make([]uint64, n)
	for i := range out {
		out[i] = uint64(i)
	}
	return out
}

// Column returns the 2K-tuple of states at column index j (0 <= j < k) of
// the segment-pair (p,k) over seqs: the left half's states
// (seq[0][p+j], …, seq[K-1][p+j]) followed by the right half's states
// (seq[0][p+k+j], …, seq[K-1][p+k+j]).
//
// Column does not itself validate p, k, j, or the shape of seqs: the
// engine validates a RunConfig once at run start, and every subsequent
// Column call operates within the bounds that validation establishes.
//
// Complexity: O(K).
func Column(seqs [][]alphabet.State, p, k, j uint64) []alphabet.State {
	numSeqs := len(seqs)
	out := make([]alphabet.State, 2*numSeqs)
	left := p + j
	right := p + k + j
	for i, seq := range seqs {
		out[i] = seq[left]
		out[numSeqs+i] = seq[right]
	}
	return out
}
