// Package events pushes transient storefront events to connected
// presentation clients: toast notifications, cart-changed pings and
// catalog-changed pings. Delivery is best effort; a slow client is
// disconnected rather than allowed to block the rest.
package events

import (
	"encoding/json"
	"sync"

	"github.com/kaizensushi/storefront-backend/pkg/logger"
)

// toastDisplayMillis is how long the presentation layer should keep a toast
// visible before reverting it.
const toastDisplayMillis = 1200

type Event struct {
	Type       string      `json:"type"`
	Message    string      `json:"message,omitempty"`
	DurationMS int         `json:"duration_ms,omitempty"`
	Payload    interface{} `json:"payload,omitempty"`
}

// Hub fans events out to every connected client.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		broadcast:  make(chan []byte, 256),
	}
}

// Run processes registrations and broadcasts. Call it once, in its own
// goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			logger.Info("Event client connected", map[string]interface{}{
				"total_clients": total,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			logger.Info("Event client disconnected", map[string]interface{}{
				"total_clients": total,
			})

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Send buffer full: drop the client asynchronously.
					go h.Unregister(client)
					logger.Warn("Client send buffer full, disconnecting", nil)
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) publish(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal event", err, nil)
		return
	}
	select {
	case h.broadcast <- data:
	default:
		// Events are transient; losing one under pressure is acceptable.
		logger.Warn("Broadcast channel full, event dropped", map[string]interface{}{
			"type": event.Type,
		})
	}
}

// Toast shows a short-lived notification in the presentation layer.
func (h *Hub) Toast(message string) {
	h.publish(Event{
		Type:       "toast",
		Message:    message,
		DurationMS: toastDisplayMillis,
	})
}

// CartChanged tells clients to re-render cart-derived views.
func (h *Hub) CartChanged(lineCount int) {
	h.publish(Event{
		Type:    "cart_changed",
		Payload: map[string]interface{}{"line_count": lineCount},
	})
}

// CatalogChanged tells clients the catalog was (re)loaded.
func (h *Hub) CatalogChanged() {
	h.publish(Event{Type: "catalog_changed"})
}
