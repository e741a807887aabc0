// internal/handlers/ws_codes.go
package handlers

import "github.com/coder/websocket"

// Custom WebSocket close codes used by the game handler.
const (
	BadSubprotocolError websocket.StatusCode = 3000 // Client connected without the "game" subprotocol.
	InvalidGameIDError  websocket.StatusCode = 3003 // Game ID in the WS URL does not exist or is malformed.
	GameClosedError     websocket.StatusCode = 3004 // Game was deleted while the client was connected.
	SlowClientError     websocket.StatusCode = 3005 // Client fell too far behind the event stream.
)
