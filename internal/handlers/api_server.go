// internal/handlers/api_server.go
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jrc03c/matching-game-demo/internal/middleware"
	"github.com/sirupsen/logrus"
)

// NewRouter wires the HTTP and WebSocket routes of the game server.
func NewRouter(logger *logrus.Logger, gs *GameServer) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.LogMiddleware(logger))
	r.Use(chimw.Recoverer)

	r.Get("/health", HealthHandler)

	r.Route("/game", func(r chi.Router) {
		r.Post("/create", CreateGameHandler(gs))
		r.Get("/ws/{id}", GameWSHandler(logger, gs))
		r.Get("/{id}", GetGameHandler(gs))
		r.Delete("/{id}", DeleteGameHandler(gs))
	})

	return r
}
