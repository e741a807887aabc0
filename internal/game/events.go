// internal/game/events.go
package game

import (
	"github.com/google/uuid"
	"github.com/jrc03c/matching-game-demo/internal/deck"
)

// GameEventType is an enum-like type for broadcasting presentation updates.
type GameEventType string

const (
	EventGridRender       GameEventType = "grid_render"
	EventCardState        GameEventType = "card_state"
	EventMovesUpdate      GameEventType = "moves_update"
	EventTimerUpdate      GameEventType = "timer_update"
	EventStarsUpdate      GameEventType = "stars_update"
	EventSummaryShow      GameEventType = "summary_show"
	EventSummaryHide      GameEventType = "summary_hide"
	EventPrivateSyncState GameEventType = "private_sync_state" // sent to one client on connect
)

// EventCard identifies a card inside an event. Symbol is only set once the card is face up.
type EventCard struct {
	ID     uuid.UUID   `json:"id"`
	Idx    int         `json:"idx"`
	Symbol deck.Symbol `json:"symbol,omitempty"`
	State  CardState   `json:"state"`
}

// GameEvent holds one presentation update in the format sent to clients.
type GameEvent struct {
	Type    GameEventType          `json:"type"`
	Card    *EventCard             `json:"card,omitempty"`
	Cards   []EventCard            `json:"cards,omitempty"`
	Payload map[string]interface{} `json:"payload,omitempty"`
	State   *Snapshot              `json:"state,omitempty"`
}

// EventPresenter turns presenter calls into GameEvents and hands them to BroadcastFn.
// Face-down symbols never leave the server.
type EventPresenter struct {
	// BroadcastFn is used to send events to every client. If nil, events are dropped.
	BroadcastFn func(ev GameEvent)
}

func NewEventPresenter(fn func(ev GameEvent)) *EventPresenter {
	return &EventPresenter{BroadcastFn: fn}
}

func (p *EventPresenter) RenderGrid(cards []CardView) {
	evCards := make([]EventCard, len(cards))
	for i, c := range cards {
		evCards[i] = buildEventCard(c)
	}
	p.fire(GameEvent{Type: EventGridRender, Cards: evCards})
}

func (p *EventPresenter) SetCardState(card CardView) {
	ec := buildEventCard(card)
	p.fire(GameEvent{Type: EventCardState, Card: &ec})
}

func (p *EventPresenter) UpdateMoves(count int) {
	p.fire(GameEvent{
		Type:    EventMovesUpdate,
		Payload: map[string]interface{}{"moves": count, "label": MovesLabel(count)},
	})
}

func (p *EventPresenter) UpdateTimer(formatted string) {
	p.fire(GameEvent{
		Type:    EventTimerUpdate,
		Payload: map[string]interface{}{"time": formatted},
	})
}

func (p *EventPresenter) UpdateStars(rating int) {
	p.fire(GameEvent{
		Type:    EventStarsUpdate,
		Payload: map[string]interface{}{"stars": rating},
	})
}

func (p *EventPresenter) ShowSummary(s Summary) {
	p.fire(GameEvent{
		Type: EventSummaryShow,
		Payload: map[string]interface{}{
			"moves":          s.Moves,
			"time":           s.Time,
			"elapsedSeconds": s.ElapsedSeconds,
			"stars":          s.Stars,
		},
	})
}

func (p *EventPresenter) HideSummary() {
	p.fire(GameEvent{Type: EventSummaryHide})
}

func (p *EventPresenter) fire(ev GameEvent) {
	if p == nil || p.BroadcastFn == nil {
		return
	}
	p.BroadcastFn(ev)
}

// buildEventCard hides the symbol of face-down cards.
func buildEventCard(c CardView) EventCard {
	ec := EventCard{ID: c.ID, Idx: c.Index, State: c.State}
	if c.State != CardFaceDown {
		ec.Symbol = c.Symbol
	}
	return ec
}

// SyncStateEvent wraps an obfuscated snapshot for a (re)connecting client.
func SyncStateEvent(s Snapshot) GameEvent {
	obf := s.Obfuscated()
	return GameEvent{Type: EventPrivateSyncState, State: &obf}
}
