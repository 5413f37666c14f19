package server

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebsocketHandler upgrades the connection and attaches it to the feed hub.
// AuthRequired runs first, so the user ID is already in locals.
func (s *Server) WebsocketHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, ok := conn.Locals("userID").(uint)
		if !ok || userID == 0 {
			_ = conn.WriteMessage(websocket.TextMessage,
				[]byte(`{"type":"error","payload":{"message":"Authorization required"}}`))
			_ = conn.Close()
			return
		}

		client, err := s.hub.Register(userID, conn)
		if err != nil {
			log.Printf("feed register failed for user %d: %v", userID, err)
			_ = conn.WriteMessage(websocket.TextMessage,
				[]byte(`{"type":"error","payload":{"message":"Connection limit reached"}}`))
			_ = conn.Close()
			return
		}

		go client.WritePump()
		// ReadPump blocks until the peer disconnects and unregisters the
		// client on the way out.
		client.ReadPump()
	})
}
