package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiveEvent(t *testing.T, client *Client) Event {
	select {
	case data := <-client.send:
		var event Event
		require.NoError(t, json.Unmarshal(data, &event))
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func setupHubTest(t *testing.T) (*Hub, *Client) {
	hub := NewHub()
	go hub.Run()

	client := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.Register(client)
	t.Cleanup(func() { hub.Unregister(client) })

	// Registration runs on the hub goroutine; give it a moment to land
	// before broadcasting.
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return hub.clients[client]
	}, time.Second, 5*time.Millisecond)

	return hub, client
}

func TestHub_Toast(t *testing.T) {
	hub, client := setupHubTest(t)

	hub.Toast("¡Añadido al pedido!")

	event := receiveEvent(t, client)
	assert.Equal(t, "toast", event.Type)
	assert.Equal(t, "¡Añadido al pedido!", event.Message)
	assert.Equal(t, 1200, event.DurationMS)
}

func TestHub_CartChanged(t *testing.T) {
	hub, client := setupHubTest(t)

	hub.CartChanged(3)

	event := receiveEvent(t, client)
	assert.Equal(t, "cart_changed", event.Type)

	payload := event.Payload.(map[string]interface{})
	assert.Equal(t, float64(3), payload["line_count"])
}

func TestHub_CatalogChanged(t *testing.T) {
	hub, client := setupHubTest(t)

	hub.CatalogChanged()

	event := receiveEvent(t, client)
	assert.Equal(t, "catalog_changed", event.Type)
	assert.Empty(t, event.Message)
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub, first := setupHubTest(t)

	second := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.Register(second)
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return hub.clients[second]
	}, time.Second, 5*time.Millisecond)

	hub.Toast("hola")

	assert.Equal(t, "toast", receiveEvent(t, first).Type)
	assert.Equal(t, "toast", receiveEvent(t, second).Type)

	hub.Unregister(second)
}
