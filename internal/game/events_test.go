package game

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/jrc03c/matching-game-demo/internal/clock"
	"github.com/jrc03c/matching-game-demo/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventRecorder struct {
	events []GameEvent
}

func (r *eventRecorder) broadcastFn(ev GameEvent) { r.events = append(r.events, ev) }

func (r *eventRecorder) ofType(t GameEventType) []GameEvent {
	var out []GameEvent
	for _, ev := range r.events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

func TestEventPresenterNeverLeaksFaceDownSymbols(t *testing.T) {
	rec := &eventRecorder{}
	clk := clock.NewFake()
	g := New(Settings{Clock: clk, Rand: rand.New(rand.NewSource(3))},
		NewEventPresenter(rec.broadcastFn), quietLogger())

	grids := rec.ofType(EventGridRender)
	require.Len(t, grids, 1)
	require.Len(t, grids[0].Cards, 16)
	for _, c := range grids[0].Cards {
		assert.Empty(t, c.Symbol)
		assert.Equal(t, CardFaceDown, c.State)
	}

	a, b := findMismatch(t, g)
	g.SelectCard(a)
	g.SelectCard(b)
	clk.Advance(DefaultMismatchDelay)

	states := rec.ofType(EventCardState)
	require.Len(t, states, 4)
	assert.Equal(t, a.Symbol(), states[0].Card.Symbol)
	assert.Equal(t, b.Symbol(), states[1].Card.Symbol)
	assert.Equal(t, CardFaceDown, states[2].Card.State)
	assert.Empty(t, states[2].Card.Symbol)
	assert.Empty(t, states[3].Card.Symbol)
}

func TestEventPresenterPayloads(t *testing.T) {
	rec := &eventRecorder{}
	p := NewEventPresenter(rec.broadcastFn)

	p.UpdateMoves(1)
	p.UpdateTimer("1:05")
	p.UpdateStars(2)
	p.ShowSummary(Summary{Moves: 12, ElapsedSeconds: 65, Time: "1:05", Stars: 2})
	p.HideSummary()

	require.Len(t, rec.events, 5)
	assert.Equal(t, "1 Move", rec.events[0].Payload["label"])
	assert.Equal(t, "1:05", rec.events[1].Payload["time"])
	assert.Equal(t, 2, rec.events[2].Payload["stars"])
	assert.Equal(t, EventSummaryShow, rec.events[3].Type)
	assert.Equal(t, 12, rec.events[3].Payload["moves"])
	assert.Equal(t, EventSummaryHide, rec.events[4].Type)
}

func TestNilBroadcastFnDropsEvents(t *testing.T) {
	var p *EventPresenter
	assert.NotPanics(t, func() { p.HideSummary() })
	assert.NotPanics(t, func() { (&EventPresenter{}).UpdateMoves(3) })
}

func TestSyncStateEventIsObfuscated(t *testing.T) {
	g := New(Settings{Clock: clock.NewFake()}, nil, quietLogger())
	a, b := findPair(t, g)
	g.SelectCard(a)
	g.SelectCard(b)

	ev := SyncStateEvent(g.Snapshot())
	require.NotNil(t, ev.State)
	assert.Equal(t, EventPrivateSyncState, ev.Type)
	for _, c := range ev.State.Cards {
		if c.Index == a.Index || c.Index == b.Index {
			assert.Equal(t, a.Symbol(), c.Symbol)
			assert.Equal(t, CardMatched, c.State)
		} else {
			assert.Empty(t, c.Symbol)
		}
	}

	// The full snapshot keeps every symbol.
	for _, c := range g.Snapshot().Cards {
		assert.NotEmpty(t, c.Symbol)
	}
}

func TestEventBytesUsesStateNames(t *testing.T) {
	ec := EventCard{ID: uuid.New(), Idx: 2, Symbol: deck.Symbol("🐼"), State: CardMatched}
	raw := EventBytes(GameEvent{Type: EventCardState, Card: &ec})

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	card := decoded["card"].(map[string]interface{})
	assert.Equal(t, "card_state", decoded["type"])
	assert.Equal(t, "matched", card["state"])
	assert.Equal(t, "🐼", card["symbol"])
}
