// internal/game/card.go
package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jrc03c/matching-game-demo/internal/deck"
)

// CardState is the visual state of one card.
type CardState int

const (
	CardFaceDown CardState = iota
	CardFlipped
	CardMatched
)

func (s CardState) String() string {
	switch s {
	case CardFaceDown:
		return "face_down"
	case CardFlipped:
		return "flipped"
	case CardMatched:
		return "matched"
	default:
		return fmt.Sprintf("card_state(%d)", int(s))
	}
}

// MarshalText encodes the state as its string name so JSON payloads stay readable.
func (s CardState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *CardState) UnmarshalText(b []byte) error {
	switch string(b) {
	case "face_down":
		*s = CardFaceDown
	case "flipped":
		*s = CardFlipped
	case "matched":
		*s = CardMatched
	default:
		return fmt.Errorf("unknown card state %q", string(b))
	}
	return nil
}

// Card is the handle for one deck position. Its state is only mutated by the Game that
// created it, under the game's lock.
type Card struct {
	ID    uuid.UUID
	Index int

	owner      *Game
	symbol     deck.Symbol
	state      CardState
	generation uint64
}

func newCard(owner *Game, idx int, sym deck.Symbol, generation uint64) *Card {
	return &Card{
		ID:         uuid.New(),
		Index:      idx,
		owner:      owner,
		symbol:     sym,
		state:      CardFaceDown,
		generation: generation,
	}
}

// Symbol never changes after the deal.
func (c *Card) Symbol() deck.Symbol { return c.symbol }

// State takes the owning game's lock. Do not call it from a Presenter.
func (c *Card) State() CardState {
	c.owner.mu.Lock()
	defer c.owner.mu.Unlock()
	return c.state
}

// View is like State but copies every presentable field.
func (c *Card) View() CardView {
	c.owner.mu.Lock()
	defer c.owner.mu.Unlock()
	return c.view()
}

// view assumes the owner's lock is held.
func (c *Card) view() CardView {
	return CardView{
		ID:     c.ID,
		Index:  c.Index,
		Symbol: c.symbol,
		State:  c.state,
	}
}

// CardView is an immutable copy of a card's presentable attributes.
type CardView struct {
	ID     uuid.UUID   `json:"id"`
	Index  int         `json:"idx"`
	Symbol deck.Symbol `json:"symbol,omitempty"`
	State  CardState   `json:"state"`
}
