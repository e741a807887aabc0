// internal/handlers/hub.go
package handlers

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/jrc03c/matching-game-demo/internal/game"
	"github.com/sirupsen/logrus"
)

const (
	clientSendBuffer = 64
	writeTimeout     = 3 * time.Second
)

// client is one websocket connection watching a game. All writes go through send so the
// connection has a single writer and events keep their order.
type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
	done chan struct{}
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		conn: conn,
		send: make(chan []byte, clientSendBuffer),
		done: make(chan struct{}),
	}
}

// enqueue queues a message without blocking. Returns false if the client is too slow or gone.
func (c *client) enqueue(data []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (c *client) stop() {
	c.once.Do(func() { close(c.done) })
}

// writePump drains send until the client stops or a write fails.
func (c *client) writePump(logger *logrus.Entry) {
	for {
		select {
		case <-c.done:
			return
		case data := <-c.send:
			ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
			err := c.conn.Write(ctx, websocket.MessageText, data)
			cancel()
			if err != nil {
				logger.WithError(err).Warn("failed to write to websocket client")
				c.stop()
				return
			}
		}
	}
}

// Hub fans a game's events out to its connected clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	logger  *logrus.Entry
}

func NewHub(logger *logrus.Entry) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
}

// Broadcast is the game's BroadcastFn. It is called with the game lock held, so it only
// marshals and queues.
func (h *Hub) Broadcast(ev game.GameEvent) {
	data := game.EventBytes(ev)

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		if !c.enqueue(data) {
			h.logger.Warnf("dropping slow websocket client on %s", ev.Type)
			c.stop()
			delete(h.clients, c)
			go c.conn.Close(SlowClientError, "Client fell behind.")
		}
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
	c.stop()
}

// Len reports the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// CloseAll disconnects every client, used when the game is deleted.
func (h *Hub) CloseAll(reason string) {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	for _, c := range clients {
		c.stop()
		c.conn.Close(GameClosedError, reason)
	}
}
