// internal/game/game.go
package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jrc03c/matching-game-demo/internal/cache"
	"github.com/jrc03c/matching-game-demo/internal/clock"
	"github.com/jrc03c/matching-game-demo/internal/deck"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMismatchDelay = 1000 * time.Millisecond
	DefaultSummaryDelay  = 400 * time.Millisecond
	DefaultTickInterval  = time.Second
)

// ErrCardIndexOutOfRange is returned by SelectIndex for an index outside the grid.
var ErrCardIndexOutOfRange = errors.New("card index out of range")

// Settings tunes a Game. Zero values fall back to the defaults.
type Settings struct {
	Alphabet []deck.Symbol

	// MismatchDelay is how long a mismatched pair stays face up while input is locked.
	MismatchDelay time.Duration
	// SummaryDelay lets the final match show before the summary covers it.
	SummaryDelay time.Duration
	TickInterval time.Duration

	Clock clock.Clock
	Rand  *rand.Rand

	// Actions receives an audit record for every accepted action. Nil disables it.
	Actions ActionPublisher
}

// ActionPublisher is where action records go, normally a *cache.ActionLog.
type ActionPublisher interface {
	Publish(ctx context.Context, record cache.ActionRecord) error
}

// DefaultSettings returns the classic 8-pair configuration on the wall clock.
func DefaultSettings() Settings {
	return Settings{
		Alphabet:      deck.DefaultAlphabet,
		MismatchDelay: DefaultMismatchDelay,
		SummaryDelay:  DefaultSummaryDelay,
		TickInterval:  DefaultTickInterval,
		Clock:         clock.Real{},
	}
}

func (s Settings) withDefaults() Settings {
	def := DefaultSettings()
	if len(s.Alphabet) == 0 {
		s.Alphabet = def.Alphabet
	}
	if s.MismatchDelay <= 0 {
		s.MismatchDelay = def.MismatchDelay
	}
	if s.SummaryDelay <= 0 {
		s.SummaryDelay = def.SummaryDelay
	}
	if s.TickInterval <= 0 {
		s.TickInterval = def.TickInterval
	}
	if s.Clock == nil {
		s.Clock = def.Clock
	}
	if s.Rand == nil {
		s.Rand = deck.NewRand()
	}
	return s
}

// Game is the memory-matching state machine. Every exported method and every timed
// callback runs under mu, so transitions never interleave.
type Game struct {
	ID uuid.UUID

	mu         sync.Mutex
	settings   Settings
	presenter  Presenter
	log        *logrus.Entry
	session    *Session
	generation uint64

	actionIndex int
	closed      bool
}

// New builds a game and deals its first session.
func New(settings Settings, presenter Presenter, logger *logrus.Logger) *Game {
	if presenter == nil {
		presenter = NopPresenter{}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	id := uuid.New()
	g := &Game{
		ID:        id,
		settings:  settings.withDefaults(),
		presenter: presenter,
		log:       logger.WithField("game_id", id),
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset()
	return g
}

// Reset discards the current session and deals a fresh shuffled deck.
// Used for both "New Game" and "Play Again".
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.reset()
}

// Close stops the timer. Any later selection, reset or pending callback is ignored.
func (g *Game) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.closed = true
	g.session.Timer.Stop()
	g.log.Debug("game closed")
}

// SelectCard handles a click on a card. It returns false when the click is ignored: the
// game is closed, input is locked, the card is already face up, or the card belongs to a
// previous session.
func (g *Game) SelectCard(c *Card) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selectCard(c)
}

// SelectIndex selects the card at grid position idx.
func (g *Game) SelectIndex(idx int) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if idx < 0 || idx >= len(g.session.Cards) {
		return false, fmt.Errorf("select %d of %d cards: %w", idx, len(g.session.Cards), ErrCardIndexOutOfRange)
	}
	return g.selectCard(g.session.Cards[idx]), nil
}

// reset assumes lock is held.
func (g *Game) reset() {
	if g.session != nil {
		g.session.Timer.Stop()
	}
	g.generation++
	d := deck.CreateDeck(g.settings.Alphabet, g.settings.Rand)
	g.session = newSession(g, g.generation, d, g.settings.Clock, g.settings.TickInterval)

	g.presenter.UpdateTimer(FormatTime(0))
	g.presenter.UpdateMoves(0)
	g.presenter.UpdateStars(StarRating(0))
	g.presenter.HideSummary()
	g.presenter.RenderGrid(g.session.views())

	g.log.WithFields(logrus.Fields{
		"generation": g.generation,
		"pairs":      g.session.Pairs,
	}).Info("new game dealt")
	g.logAction("game_reset", map[string]interface{}{"pairs": g.session.Pairs})
}

// selectCard assumes lock is held.
func (g *Game) selectCard(c *Card) bool {
	s := g.session
	if c == nil || g.closed {
		return false
	}
	if c.owner != g {
		g.log.WithField("card_id", c.ID).Debug("ignoring card from another game")
		return false
	}
	if c.generation != s.Generation {
		g.log.WithField("card_generation", c.generation).Debug("ignoring card from a previous game")
		return false
	}
	if s.InputLocked || c.state != CardFaceDown {
		g.log.WithFields(logrus.Fields{
			"idx":    c.Index,
			"locked": s.InputLocked,
			"state":  c.state,
		}).Debug("ignoring selection")
		return false
	}

	c.state = CardFlipped
	s.Selection = append(s.Selection, c)
	g.presenter.SetCardState(c.view())
	g.logAction("card_flip", map[string]interface{}{"idx": c.Index})

	if !s.Timer.Started() {
		g.startTimer(s)
	}

	if len(s.Selection) < 2 {
		return true
	}
	g.evaluatePair(s)
	return true
}

// evaluatePair resolves the two flipped cards. Assumes lock is held and len(Selection) == 2.
func (g *Game) evaluatePair(s *Session) {
	first, second := s.Selection[0], s.Selection[1]

	s.Moves++
	g.presenter.UpdateMoves(s.Moves)
	g.presenter.UpdateStars(StarRating(s.Moves))

	if first.symbol == second.symbol {
		first.state = CardMatched
		second.state = CardMatched
		g.presenter.SetCardState(first.view())
		g.presenter.SetCardState(second.view())
		s.MatchedPairs++
		s.Selection = s.Selection[:0]
		g.logAction("pair_match", map[string]interface{}{
			"idx1": first.Index, "idx2": second.Index, "moves": s.Moves,
		})

		if s.MatchedPairs == s.Pairs {
			g.win(s)
		}
		return
	}

	s.InputLocked = true
	g.logAction("pair_mismatch", map[string]interface{}{
		"idx1": first.Index, "idx2": second.Index, "moves": s.Moves,
	})
	gen := s.Generation
	g.settings.Clock.AfterFunc(g.settings.MismatchDelay, func() {
		g.revertMismatch(gen, first, second)
	})
}

// revertMismatch flips a mismatched pair back once the lock window is over.
func (g *Game) revertMismatch(gen uint64, first, second *Card) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.session
	if g.closed || s.Generation != gen {
		g.log.WithField("generation", gen).Debug("stale mismatch revert ignored")
		return
	}
	first.state = CardFaceDown
	second.state = CardFaceDown
	g.presenter.SetCardState(first.view())
	g.presenter.SetCardState(second.view())
	s.Selection = s.Selection[:0]
	s.InputLocked = false
}

// win assumes lock is held.
func (g *Game) win(s *Session) {
	s.Timer.Stop()
	s.Won = true

	g.log.WithFields(logrus.Fields{
		"generation": s.Generation,
		"moves":      s.Moves,
		"elapsed":    s.Timer.Elapsed(),
	}).Info("all pairs matched")
	g.logAction("game_won", map[string]interface{}{
		"moves":   s.Moves,
		"elapsed": s.Timer.Elapsed(),
		"stars":   StarRating(s.Moves),
	})

	gen := s.Generation
	g.settings.Clock.AfterFunc(g.settings.SummaryDelay, func() {
		g.showSummary(gen)
	})
}

func (g *Game) showSummary(gen uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.session
	if g.closed || s.Generation != gen {
		g.log.WithField("generation", gen).Debug("stale summary ignored")
		return
	}
	s.SummaryShown = true
	g.presenter.ShowSummary(summaryOf(s))
}

// startTimer assumes lock is held.
func (g *Game) startTimer(s *Session) {
	gen := s.Generation
	s.Timer.Start(func() { g.tick(gen) })
}

func (g *Game) tick(gen uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.session
	if g.closed || s.Generation != gen || !s.Timer.Running() {
		return
	}
	elapsed := s.Timer.Tick()
	g.presenter.UpdateTimer(FormatTime(elapsed))
}

func summaryOf(s *Session) Summary {
	elapsed := s.Timer.Elapsed()
	return Summary{
		Moves:          s.Moves,
		ElapsedSeconds: elapsed,
		Time:           FormatTime(elapsed),
		Stars:          StarRating(s.Moves),
	}
}

// logAction sends the action details to the action log.
// Assumes lock is held by caller.
func (g *Game) logAction(actionType string, payload map[string]interface{}) {
	g.actionIndex++
	if g.settings.Actions == nil {
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}
	record := cache.ActionRecord{
		GameID:        g.ID,
		Generation:    g.generation,
		ActionIndex:   g.actionIndex,
		ActionType:    actionType,
		ActionPayload: payload,
		Timestamp:     g.settings.Clock.Now().UnixMilli(),
	}
	// Publish asynchronously so Redis latency never holds the game lock.
	go func(rec cache.ActionRecord) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := g.settings.Actions.Publish(ctx, rec); err != nil {
			g.log.WithError(err).Warnf("failed to publish action %d (%s)", rec.ActionIndex, rec.ActionType)
		}
	}(record)
}

// Accessors. Each takes the lock.

func (g *Game) Moves() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.Moves
}

func (g *Game) MatchedPairs() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.MatchedPairs
}

func (g *Game) Pairs() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.Pairs
}

func (g *Game) ElapsedSeconds() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.Timer.Elapsed()
}

func (g *Game) TimerRunning() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.Timer.Running()
}

func (g *Game) Locked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.InputLocked
}

func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.status()
}

func (g *Game) Generation() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.Generation
}

func (g *Game) Closed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.closed
}

// Cards returns the handles of the current session's cards in grid order.
// Their State and View methods take the game lock.
func (g *Game) Cards() []*Card {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*Card, len(g.session.Cards))
	copy(out, g.session.Cards)
	return out
}

// Selection returns views of the flipped cards awaiting evaluation.
func (g *Game) Selection() []CardView {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]CardView, len(g.session.Selection))
	for i, c := range g.session.Selection {
		out[i] = c.view()
	}
	return out
}
