package admin

import (
	"context"
	"log"
	"net/http"

	"sifted_back_end/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// CORS is enforced at the HTTP layer; the upgrade itself is open.
		return true
	},
}

// OrdersFeed streams paid orders to the dashboard as they settle. Each
// connection subscribes to the Redis channel the payment webhook publishes
// on.
//
// GET /api/admin/orders/ws
func (h *Handler) OrdersFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := context.Background()
	pubsub := database.Redis.Subscribe(ctx, "orders:feed")
	defer pubsub.Close()

	conn.WriteJSON(gin.H{
		"type":    "connected",
		"message": "Live order feed aktif",
	})

	// Drain incoming frames so pings and close messages are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ch := pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
