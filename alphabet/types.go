package alphabet

// State is a compact tagged identifier for one element of the nucleotide
// alphabet: the five concrete states (gap, A, C, G, T) plus the standard
// IUPAC ambiguity codes. Values are small enough to index a flat array
// (State -> StateInfo) per SMT node instead of a hash map.
type State uint8

// Concrete states. Gap is a concrete state like A/C/G/T, not an ambiguity
// code: a gapped column position never resolves to a base.
const (
	Gap State = iota
	A
	C
	G
	T

	numConcrete // sentinel: number of concrete states, also first ambiguity id
)

// IUPAC ambiguity codes, each denoting a subset of {A, C, G, T}.
const (
	R State = numConcrete + iota // A or G (puRine)
	Y                            // C or T (pYrimidine)
	S                            // G or C (Strong)
	W                            // A or T (Weak)
	K                            // G or T (Keto)
	M                            // A or C (aMino)
	B                            // C, G or T (not A)
	D                            // A, G or T (not C)
	H                            // A, C or T (not G)
	V                            // A, C or G (not T)
	N                            // A, C, G or T (aNy)

	numStates // sentinel: total number of distinct State values
)

// NumStates is the total number of recognized State values (concrete states
// plus ambiguity codes).
const NumStates = int(numStates)

// NumConcreteStates is the size of the flat per-SMT-node StateInfo table:
// ancestral reconstruction only ever assigns a concrete state (gap, A, C,
// G, or T) to an internal node, never an ambiguity code.
const NumConcreteStates = int(numConcrete)

// concreteTable maps every ambiguity code to the concrete states it denotes.
// Concrete states are not listed here; Concrete() special-cases them.
var concreteTable = map[State][]State{
	R: {A, G},
	Y: {C, T},
	S: {G, C},
	W: {A, T},
	K: {G, T},
	M: {A, C},
	B: {C, G, T},
	D: {A, G, T},
	H: {A, C, T},
	V: {A, C, G},
	N: {A, C, G, T},
}

// letterTable maps a State to its single-character textual abbreviation.
var letterTable = [numStates]byte{
	Gap: '-', A: 'A', C: 'C', G: 'G', T: 'T',
	R: 'R', Y: 'Y', S: 'S', W: 'W', K: 'K', M: 'M',
	B: 'B', D: 'D', H: 'H', V: 'V', N: 'N',
}

// letterToState is the reverse of letterTable, built once at init, accepting
// both upper- and lower-case letters.
var letterToState map[byte]State

func init() {
	letterToState = make(map[byte]State, 2*numStates)
	for s, b := range letterTable {
		letterToState[b] = State(s)
		if lo := toLower(b); lo != b {
			letterToState[lo] = State(s)
		}
	}
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// IsAmbiguous reports whether s is an IUPAC ambiguity code rather than one
// of the five concrete states.
func (s State) IsAmbiguous() bool {
	return s >= numConcrete && s < numStates
}

// IsValid reports whether s is a recognized State value.
func (s State) IsValid() bool {
	return s < numStates
}

// Concrete resolves s to the set of concrete states it denotes. A concrete
// state resolves to the single-element set containing itself; an ambiguity
// code resolves to the bases named by the IUPAC table. The returned slice
// is never empty for a valid State and must not be mutated by callers.
func (s State) Concrete() []State {
	if !s.IsAmbiguous() {
		return []State{s}
	}
	return concreteTable[s]
}

// Letter returns the single-character abbreviation for s, or 0 if s is not
// a recognized State.
func (s State) Letter() byte {
	if !s.IsValid() {
		return 0
	}
	return letterTable[s]
}

// ParseLetter converts a single textual letter (case-insensitive) into its
// State, returning ErrUnknownLetter for anything outside the alphabet.
func ParseLetter(b byte) (State, error) {
	if s, ok := letterToState[b]; ok {
		return s, nil
	}
	return 0, ErrUnknownLetter
}

// String implements fmt.Stringer by returning the single-letter abbreviation.
func (s State) String() string {
	if l := s.Letter(); l != 0 {
		return string(l)
	}
	return "?"
}
