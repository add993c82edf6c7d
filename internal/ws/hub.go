// Package ws provides the WebSocket fan-out hub behind meshfreqd's /ws
// endpoint. Handlers publish typed telemetry events through the hub and
// every connected client receives them in real time. A client may narrow
// what it receives with a ?types= query (comma-separated event types); the
// hub also handles ping/pong keepalives so stale connections get cleaned up.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// client pairs a connection with its event-type filter. A nil filter means
// the client wants everything.
type client struct {
	conn  *websocket.Conn
	types map[string]bool
}

type message struct {
	eventType string
	payload   []byte
}

// Hub manages WebSocket client connections and fans out published events to
// all of them. It is safe for concurrent use; register, unregister, and
// publish all go through channels owned by the Run loop.
type Hub struct {
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	publish    chan message
	upgrader   websocket.Upgrader
}

// NewHub allocates a hub with buffered channels.
// Call Run in a goroutine to start the event loop.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]struct{}),
		register:   make(chan *client, 16),
		unregister: make(chan *client, 16),
		publish:    make(chan message, 256),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Run processes registrations, unregistrations, publishes, and keepalive
// pings in a single select loop. It closes all clients when ctx is
// cancelled.
func (h *Hub) Run(ctx context.Context) {
	ping := time.NewTicker(20 * time.Second)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				_ = c.conn.Close()
			}
			return

		case c := <-h.register:
			h.clients[c] = struct{}{}

		case c := <-h.unregister:
			delete(h.clients, c)
			_ = c.conn.Close()

		case msg := <-h.publish:
			for c := range h.clients {
				if c.types != nil && !c.types[msg.eventType] {
					continue
				}
				_ = c.conn.SetWriteDeadline(time.Now().Add(3 * time.Second))
				if err := c.conn.WriteMessage(websocket.TextMessage, msg.payload); err != nil {
					delete(h.clients, c)
					_ = c.conn.Close()
				}
			}

		case <-ping.C:
			for c := range h.clients {
				_ = c.conn.SetWriteDeadline(time.Now().Add(2 * time.Second))
				if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					delete(h.clients, c)
					_ = c.conn.Close()
				}
			}
		}
	}
}

// Handler returns an http.Handler that upgrades incoming requests to
// WebSocket connections and registers them with the hub. The optional
// ?types=resolution,heartbeat query restricts which events the connection
// receives.
func (h *Hub) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			http.Error(w, "websocket upgrade failed", http.StatusBadRequest)
			return
		}

		c := &client{conn: conn, types: parseTypeFilter(r.URL.Query().Get("types"))}
		h.register <- c

		go func() {
			defer func() { h.unregister <- c }()
			_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
			conn.SetPongHandler(func(string) error {
				_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
				return nil
			})

			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	})
}

// Publish marshals an event to JSON and queues it for delivery to every
// connected client whose filter accepts eventType. If the publish channel is
// full the event is silently dropped to avoid blocking the caller.
func (h *Hub) Publish(eventType string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	select {
	case h.publish <- message{eventType: eventType, payload: b}:
	default:
	}
}

// parseTypeFilter turns "a,b,c" into a lookup set; empty input means no
// filtering.
func parseTypeFilter(raw string) map[string]bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	set := make(map[string]bool)
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			set[t] = true
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
