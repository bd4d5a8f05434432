package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/kaizensushi/storefront-backend/internal/events"
	"github.com/kaizensushi/storefront-backend/internal/middleware"
)

type EventsController struct {
	hub      *events.Hub
	upgrader websocket.Upgrader
}

func NewEventsController(hub *events.Hub) *EventsController {
	return &EventsController{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Cross-origin control happens at the CORS layer; the feed
			// carries no sensitive data.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Subscribe upgrades the connection and streams storefront events.
// GET /ws
func (ctrl *EventsController) Subscribe(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	conn, err := ctrl.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn("Failed to upgrade event feed connection", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	client := events.NewClient(ctrl.hub, conn)
	ctrl.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
