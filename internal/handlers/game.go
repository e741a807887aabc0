// internal/handlers/game.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/jrc03c/matching-game-demo/internal/game"
)

// CreateGameHandler deals a new game and returns its ID.
func CreateGameHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, _ := gs.NewGame()
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"id":    g.ID,
			"pairs": g.Pairs(),
		})
	}
}

// GetGameHandler returns the current board with face-down symbols hidden.
func GetGameHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := gameIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid game id")
			return
		}
		g, ok := gs.GameStore.GetGame(id)
		if !ok {
			writeError(w, http.StatusNotFound, game.ErrGameNotFound.Error())
			return
		}
		writeJSON(w, http.StatusOK, g.Snapshot().Obfuscated())
	}
}

// DeleteGameHandler closes the game and disconnects its clients.
func DeleteGameHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := gameIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid game id")
			return
		}
		if err := gs.RemoveGame(id); err != nil {
			if errors.Is(err, game.ErrGameNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HealthHandler reports that the server is up.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
