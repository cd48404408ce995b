package score

import "github.com/katalvlaran/tandupscan/alphabet"

// canonicalPattern computes the "rename by first appearance" canonical
// form of a column (§3 Pattern): the first distinct state seen is renamed
// 0, the second distinct state 1, and so on. [A,C,A,G] and [C,G,C,T] both
// canonicalize to the byte sequence {0,1,0,2}.
//
// The result is returned as a string so it can key a Go map directly;
// columns never exceed 2K states (well under the 256 a byte can encode
// for any realistic K).
func canonicalPattern(column []alphabet.State) string {
	rank := make(map[alphabet.State]byte, len(column))
	key := make([]byte, len(column))
	var next byte
	for i, s := range column {
		r, ok := rank[s]
		if !ok {
			r = next
			rank[s] = r
			next++
		}
		key[i] = r
	}
	return string(key)
}
