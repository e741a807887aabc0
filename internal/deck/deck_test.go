package deck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDeckHoldsTwoOfEachSymbol(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		d := CreateDeck(DefaultAlphabet, r)
		require.Len(t, d, 2*len(DefaultAlphabet))
		assert.Equal(t, len(DefaultAlphabet), d.Pairs())

		counts := d.Counts()
		require.Len(t, counts, len(DefaultAlphabet))
		for _, s := range DefaultAlphabet {
			assert.Equal(t, 2, counts[s], "symbol %s should appear twice", s)
		}
	}
}

func TestCreateDeckParameterizedAlphabet(t *testing.T) {
	alphabet := []Symbol{"a", "b", "c"}
	d := CreateDeck(alphabet, nil)
	require.Len(t, d, 6)
	for _, s := range alphabet {
		assert.Equal(t, 2, d.Counts()[s])
	}
}

func TestCreateDeckDoesNotMutateAlphabet(t *testing.T) {
	alphabet := []Symbol{"x", "y", "z", "w"}
	before := append([]Symbol(nil), alphabet...)
	CreateDeck(alphabet, rand.New(rand.NewSource(1)))
	assert.Equal(t, before, alphabet)
}

// Every position should see every symbol across many shuffles.
func TestCreateDeckShufflesPositions(t *testing.T) {
	alphabet := []Symbol{"a", "b", "c", "d"}
	r := rand.New(rand.NewSource(7))
	seen := make([]map[Symbol]bool, 8)
	for i := range seen {
		seen[i] = map[Symbol]bool{}
	}
	for n := 0; n < 500; n++ {
		for i, s := range CreateDeck(alphabet, r) {
			seen[i][s] = true
		}
	}
	for i, m := range seen {
		assert.Len(t, m, len(alphabet), "position %d", i)
	}
}

func TestValidateAlphabet(t *testing.T) {
	require.NoError(t, ValidateAlphabet(DefaultAlphabet))
	assert.ErrorIs(t, ValidateAlphabet(nil), ErrEmptyAlphabet)
	assert.ErrorIs(t, ValidateAlphabet([]Symbol{"a", " "}), ErrEmptySymbol)
	assert.ErrorIs(t, ValidateAlphabet([]Symbol{"a", "b", "a"}), ErrDuplicateSymbol)
}

func TestParseAlphabet(t *testing.T) {
	assert.Equal(t, []Symbol{"a", "b", "🐶"}, ParseAlphabet(" a, b,,🐶 "))
	assert.Empty(t, ParseAlphabet(""))
}
