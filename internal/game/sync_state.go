// internal/game/sync_state.go
package game

import (
	"github.com/google/uuid"
)

// Snapshot is a point-in-time copy of a game, used to sync clients that connect mid-game.
type Snapshot struct {
	GameID         uuid.UUID  `json:"game_id"`
	Generation     uint64     `json:"generation"`
	Status         Status     `json:"status"`
	Pairs          int        `json:"pairs"`
	MatchedPairs   int        `json:"matchedPairs"`
	Moves          int        `json:"moves"`
	MovesLabel     string     `json:"movesLabel"`
	Stars          int        `json:"stars"`
	ElapsedSeconds int        `json:"elapsedSeconds"`
	Time           string     `json:"time"`
	TimerRunning   bool       `json:"timerRunning"`
	InputLocked    bool       `json:"inputLocked"`
	SummaryShown   bool       `json:"summaryShown"`
	Summary        *Summary   `json:"summary,omitempty"`
	Cards          []CardView `json:"cards"`
	// Closed is set once the game has been removed.
	Closed bool `json:"closed,omitempty"`
}

// Snapshot copies the current session.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

// Sync calls fn with a snapshot while holding the game lock, so no presenter update can
// slip in between the snapshot and whatever fn registers. fn must not call into the Game.
func (g *Game) Sync(fn func(Snapshot)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.snapshot())
}

// snapshot assumes lock is held.
func (g *Game) snapshot() Snapshot {
	s := g.session
	snap := Snapshot{
		GameID:         g.ID,
		Generation:     s.Generation,
		Status:         s.status(),
		Pairs:          s.Pairs,
		MatchedPairs:   s.MatchedPairs,
		Moves:          s.Moves,
		MovesLabel:     MovesLabel(s.Moves),
		Stars:          StarRating(s.Moves),
		ElapsedSeconds: s.Timer.Elapsed(),
		Time:           FormatTime(s.Timer.Elapsed()),
		TimerRunning:   s.Timer.Running(),
		InputLocked:    s.InputLocked,
		SummaryShown:   s.SummaryShown,
		Cards:          s.views(),
		Closed:         g.closed,
	}
	if s.SummaryShown {
		sum := summaryOf(s)
		snap.Summary = &sum
	}
	return snap
}

// Obfuscated returns a copy with the symbols of face-down cards removed.
func (s Snapshot) Obfuscated() Snapshot {
	cards := make([]CardView, len(s.Cards))
	for i, c := range s.Cards {
		if c.State == CardFaceDown {
			c.Symbol = ""
		}
		cards[i] = c
	}
	s.Cards = cards
	return s
}
