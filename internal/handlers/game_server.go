// internal/handlers/game_server.go
package handlers

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jrc03c/matching-game-demo/internal/game"
	"github.com/sirupsen/logrus"
)

// GameServer owns the in-memory games and the websocket hub of each one.
type GameServer struct {
	GameStore *game.GameStore

	settings game.Settings
	logger   *logrus.Logger

	mu   sync.Mutex
	hubs map[uuid.UUID]*Hub
}

func NewGameServer(settings game.Settings, logger *logrus.Logger) *GameServer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &GameServer{
		GameStore: game.NewGameStore(),
		settings:  settings,
		logger:    logger,
		hubs:      make(map[uuid.UUID]*Hub),
	}
}

// NewGame deals a new game whose presenter broadcasts to the returned hub.
func (gs *GameServer) NewGame() (*game.Game, *Hub) {
	hub := NewHub(gs.logger.WithField("component", "hub"))
	g := game.New(gs.settings, game.NewEventPresenter(hub.Broadcast), gs.logger)
	hub.logger = hub.logger.WithField("game_id", g.ID)

	gs.mu.Lock()
	gs.hubs[g.ID] = hub
	gs.mu.Unlock()
	gs.GameStore.AddGame(g)

	gs.logger.Infof("created game %s with %d pairs", g.ID, g.Pairs())
	return g, hub
}

// Lookup returns the game and its hub.
func (gs *GameServer) Lookup(id uuid.UUID) (*game.Game, *Hub, bool) {
	g, ok := gs.GameStore.GetGame(id)
	if !ok {
		return nil, nil, false
	}
	gs.mu.Lock()
	hub := gs.hubs[id]
	gs.mu.Unlock()
	if hub == nil {
		return nil, nil, false
	}
	return g, hub, true
}

// RemoveGame closes the game and disconnects its clients.
func (gs *GameServer) RemoveGame(id uuid.UUID) error {
	if err := gs.GameStore.DeleteGame(id); err != nil {
		return err
	}
	gs.mu.Lock()
	hub := gs.hubs[id]
	delete(gs.hubs, id)
	gs.mu.Unlock()

	clients := 0
	if hub != nil {
		clients = hub.Len()
		hub.CloseAll("Game was deleted.")
	}
	gs.logger.Infof("removed game %s, disconnected %d clients", id, clients)
	return nil
}

// Shutdown removes every game. Used on server exit.
func (gs *GameServer) Shutdown() {
	gs.mu.Lock()
	ids := make([]uuid.UUID, 0, len(gs.hubs))
	for id := range gs.hubs {
		ids = append(ids, id)
	}
	gs.mu.Unlock()

	for _, id := range ids {
		if err := gs.RemoveGame(id); err != nil {
			gs.logger.Warnf("shutdown: %v", err)
		}
	}
}
