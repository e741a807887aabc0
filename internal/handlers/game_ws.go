// internal/handlers/game_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/coder/websocket"
	"github.com/jrc03c/matching-game-demo/internal/game"
	"github.com/sirupsen/logrus"
)

// GameMessage is an incoming WebSocket message.
type GameMessage struct {
	Type string `json:"type"`

	// Card carries the grid position for select_card.
	Card *CardRef `json:"card,omitempty"`
}

// CardRef points at a card by grid index.
type CardRef struct {
	Idx *int `json:"idx"`
}

// GameWSHandler upgrades the connection, syncs the client with the current board and then
// reads its actions until it disconnects.
func GameWSHandler(logger *logrus.Logger, gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, err := gameIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid game id")
			return
		}
		g, hub, ok := gs.Lookup(gameID)
		if !ok {
			writeError(w, http.StatusNotFound, game.ErrGameNotFound.Error())
			return
		}

		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"game"},
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			logger.Warnf("WebSocket accept error for game %s: %v", gameID, err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "Internal server error during handler exit.")

		if c.Subprotocol() != "game" {
			logger.Warnf("Client for game %s connected with invalid subprotocol: %q", gameID, c.Subprotocol())
			c.Close(BadSubprotocolError, "Client must use the 'game' subprotocol.")
			return
		}

		entry := logger.WithFields(logrus.Fields{"game_id": gameID, "remote": r.RemoteAddr})
		entry.Info("WebSocket connected")

		cl := newClient(c)
		// The sync state must be the first thing the client sees, followed by every event
		// after it, so queue it and register under the game lock.
		closed := false
		g.Sync(func(s game.Snapshot) {
			if s.Closed {
				closed = true
				return
			}
			cl.enqueue(game.EventBytes(game.SyncStateEvent(s)))
			hub.add(cl)
		})
		if closed {
			entry.Warn("Game was removed before the client could join")
			c.Close(InvalidGameIDError, "Game no longer exists.")
			return
		}
		defer hub.remove(cl)
		go cl.writePump(entry)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()
		readGameMessages(ctx, c, cl, g, entry)

		entry.Info("WebSocket disconnected")
	}
}

// readGameMessages reads client actions until the connection closes or ctx is cancelled.
func readGameMessages(ctx context.Context, c *websocket.Conn, cl *client, g *game.Game, logger *logrus.Entry) {
	for {
		msgType, data, err := c.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			switch {
			case status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway:
				logger.Info("WebSocket closed normally")
			case errors.Is(err, context.Canceled):
				logger.Info("WebSocket context canceled")
			default:
				logger.Debugf("WebSocket read ended: %v (status %d)", err, status)
			}
			return
		}

		if msgType != websocket.MessageText {
			logger.Warnf("Ignoring non-text message type %d", msgType)
			continue
		}

		var msg GameMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Warnf("Invalid JSON received: %v", err)
			sendWsError(cl, "Invalid JSON format.")
			continue
		}
		logger.Debugf("Received action %q", msg.Type)

		switch msg.Type {
		case "select_card":
			if msg.Card == nil || msg.Card.Idx == nil {
				sendWsError(cl, "select_card requires card.idx")
				continue
			}
			accepted, err := g.SelectIndex(*msg.Card.Idx)
			if err != nil {
				sendWsError(cl, err.Error())
				continue
			}
			if !accepted {
				logger.Debugf("Ignored selection of card %d", *msg.Card.Idx)
			}

		case "new_game", "play_again":
			g.Reset()

		case "ping":
			sendWsMessage(cl, map[string]string{"type": "pong"})

		default:
			logger.Warnf("Unknown action type %q", msg.Type)
			sendWsError(cl, fmt.Sprintf("Unknown action type: %s", msg.Type))
		}
	}
}

// sendWsMessage marshals a message and queues it for the client's writer.
func sendWsMessage(cl *client, message interface{}) {
	data, err := json.Marshal(message)
	if err != nil {
		logrus.Warnf("Error marshaling WebSocket message: %v", err)
		return
	}
	if !cl.enqueue(data) {
		logrus.Debug("Dropped WebSocket reply for a stopped client")
	}
}

// sendWsError sends a structured error message to the client.
func sendWsError(cl *client, errorMsg string) {
	sendWsMessage(cl, map[string]interface{}{
		"type":    "error",
		"message": errorMsg,
	})
}
