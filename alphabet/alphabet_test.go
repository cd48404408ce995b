package alphabet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tandupscan/alphabet"
)

func TestParseLetter_ConcreteAndAmbiguous(t *testing.T) {
	cases := []struct {
		letter byte
		want   alphabet.State
	}{
		{'A', alphabet.A}, {'a', alphabet.A},
		{'C', alphabet.C}, {'G', alphabet.G}, {'T', alphabet.T},
		{'-', alphabet.Gap},
		{'N', alphabet.N}, {'n', alphabet.N},
		{'R', alphabet.R}, {'Y', alphabet.Y},
	}
	for _, c := range cases {
		got, err := alphabet.ParseLetter(c.letter)
		assert.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestParseLetter_Unknown(t *testing.T) {
	_, err := alphabet.ParseLetter('X' + 100) // out of any recognized range
	assert.ErrorIs(t, err, alphabet.ErrUnknownLetter)
}

func TestConcrete_ConcreteStateIsSingleton(t *testing.T) {
	for _, s := range []alphabet.State{alphabet.Gap, alphabet.A, alphabet.C, alphabet.G, alphabet.T} {
		assert.Equal(t, []alphabet.State{s}, s.Concrete())
		assert.False(t, s.IsAmbiguous())
	}
}

func TestConcrete_AmbiguityCodes(t *testing.T) {
	assert.ElementsMatch(t, []alphabet.State{alphabet.A, alphabet.G}, alphabet.R.Concrete())
	assert.ElementsMatch(t, []alphabet.State{alphabet.C, alphabet.T}, alphabet.Y.Concrete())
	assert.ElementsMatch(t, []alphabet.State{alphabet.A, alphabet.C, alphabet.G, alphabet.T}, alphabet.N.Concrete())
	assert.True(t, alphabet.N.IsAmbiguous())
}

func TestLetterRoundTrip(t *testing.T) {
	for s := alphabet.State(0); int(s) < alphabet.NumStates; s++ {
		letter := s.Letter()
		assert.NotZero(t, letter)
		got, err := alphabet.ParseLetter(letter)
		assert.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestDefaultMutationCost(t *testing.T) {
	mc := alphabet.DefaultMutationCost()
	assert.True(t, mc.EqualityOnly)
	assert.Equal(t, 0.0, mc.Fn(alphabet.A, alphabet.A))
	assert.Equal(t, 1.0, mc.Fn(alphabet.A, alphabet.C))
	assert.Equal(t, 1.0, mc.Fn(alphabet.Gap, alphabet.A))
}
