package game

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrGameNotFound is returned when a game ID is not in the store.
var ErrGameNotFound = errors.New("game not found")

type GameStore struct {
	mu    sync.Mutex
	games map[uuid.UUID]*Game
}

func NewGameStore() *GameStore {
	return &GameStore{
		games: make(map[uuid.UUID]*Game),
	}
}

func (s *GameStore) AddGame(g *Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.ID] = g
}

func (s *GameStore) GetGame(id uuid.UUID) (*Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, exists := s.games[id]
	return g, exists
}

// DeleteGame removes the game and closes it so pending timers become no-ops.
func (s *GameStore) DeleteGame(id uuid.UUID) error {
	s.mu.Lock()
	g, exists := s.games[id]
	delete(s.games, id)
	s.mu.Unlock()

	if !exists {
		return ErrGameNotFound
	}
	g.Close()
	return nil
}

func (s *GameStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.games)
}
