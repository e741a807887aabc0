// internal/deck/deck.go
package deck

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Symbol identifies the face of a card. Two cards match when their symbols are equal.
type Symbol string

// Deck is an ordered sequence of symbols in which every alphabet member appears exactly twice.
type Deck []Symbol

// DefaultAlphabet is the 8-pair alphabet of the classic 16-card grid.
var DefaultAlphabet = []Symbol{"🐶", "🐱", "🐸", "🦊", "🐼", "🦁", "🐧", "🦋"}

var (
	ErrEmptyAlphabet   = errors.New("alphabet has no symbols")
	ErrEmptySymbol     = errors.New("alphabet contains an empty symbol")
	ErrDuplicateSymbol = errors.New("alphabet contains a duplicate symbol")
)

// CreateDeck duplicates every symbol of the alphabet and shuffles the result in place.
// rand.Shuffle is a Fisher-Yates shuffle, so every ordering is equally likely.
func CreateDeck(alphabet []Symbol, r *rand.Rand) Deck {
	d := make(Deck, 0, len(alphabet)*2)
	d = append(d, alphabet...)
	d = append(d, alphabet...)

	if r == nil {
		r = NewRand()
	}
	r.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
	return d
}

// Pairs returns the number of distinct pairs in the deck.
func (d Deck) Pairs() int { return len(d) / 2 }

// Counts tallies how often each symbol appears.
func (d Deck) Counts() map[Symbol]int {
	counts := make(map[Symbol]int, d.Pairs())
	for _, s := range d {
		counts[s]++
	}
	return counts
}

// ValidateAlphabet reports whether the alphabet can build a deck.
func ValidateAlphabet(alphabet []Symbol) error {
	if len(alphabet) == 0 {
		return ErrEmptyAlphabet
	}
	seen := make(map[Symbol]struct{}, len(alphabet))
	for i, s := range alphabet {
		if strings.TrimSpace(string(s)) == "" {
			return fmt.Errorf("symbol %d: %w", i, ErrEmptySymbol)
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("symbol %q: %w", s, ErrDuplicateSymbol)
		}
		seen[s] = struct{}{}
	}
	return nil
}

// ParseAlphabet splits a comma-separated symbol list, trimming blanks around each entry.
func ParseAlphabet(s string) []Symbol {
	var out []Symbol
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, Symbol(part))
	}
	return out
}

// NewRand returns a math/rand source seeded from crypto/rand.
// Falls back to the wall clock if the system entropy source is unavailable.
func NewRand() *rand.Rand {
	var b [8]byte
	seed := time.Now().UnixNano()
	if _, err := crand.Read(b[:]); err == nil {
		seed = int64(binary.LittleEndian.Uint64(b[:]))
	}
	return rand.New(rand.NewSource(seed))
}
