// internal/game/session.go
package game

import (
	"time"

	"github.com/jrc03c/matching-game-demo/internal/clock"
	"github.com/jrc03c/matching-game-demo/internal/deck"
)

// Status is the coarse state of the current session.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusOneFlipped Status = "one_flipped"
	StatusLocked     Status = "locked"
	StatusWon        Status = "won"
)

// Session is the state of one play-through, from a reset until the next reset.
// Every field is guarded by the owning Game's lock.
type Session struct {
	// Generation increments on every reset. Delayed callbacks carry the generation they were
	// scheduled in and do nothing once it has moved on.
	Generation uint64

	Cards     []*Card
	Selection []*Card // 0..2 flipped cards awaiting evaluation

	Moves        int
	MatchedPairs int
	Pairs        int

	InputLocked  bool
	Won          bool
	SummaryShown bool

	Timer *Timer
}

func newSession(owner *Game, generation uint64, d deck.Deck, clk clock.Clock, tick time.Duration) *Session {
	cards := make([]*Card, len(d))
	for i, sym := range d {
		cards[i] = newCard(owner, i, sym, generation)
	}
	return &Session{
		Generation: generation,
		Cards:      cards,
		Selection:  make([]*Card, 0, 2),
		Pairs:      d.Pairs(),
		Timer:      NewTimer(clk, tick),
	}
}

func (s *Session) status() Status {
	switch {
	case s.Won:
		return StatusWon
	case s.InputLocked:
		return StatusLocked
	case len(s.Selection) == 1:
		return StatusOneFlipped
	default:
		return StatusIdle
	}
}

func (s *Session) views() []CardView {
	out := make([]CardView, len(s.Cards))
	for i, c := range s.Cards {
		out[i] = c.view()
	}
	return out
}
