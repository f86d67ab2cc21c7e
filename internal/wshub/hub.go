package wshub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/coder/websocket"
)

// ClientMessage is the JSON structure received from clients.
type ClientMessage struct {
	Type   string `json:"type"`
	Room   string `json:"room,omitempty"`
	Name   string `json:"name,omitempty"`
	Answer string `json:"answer,omitempty"`
}

// ServerMessage is the envelope sent to clients: a wire event name plus
// its JSON payload.
type ServerMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Client represents a single WebSocket connection in the hub.
type Client struct {
	PlayerID string
	Name     string
	Conn     *websocket.Conn
	Send     chan []byte
}

// WritePump reads from the Send channel and writes to the WebSocket
// connection.
func (c *Client) WritePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.Send:
			if !ok {
				return
			}
			if err := c.Conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}
}

// Hub manages one room's WebSocket connections.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.PlayerID] = c
}

// Unregister removes a client and closes its Send channel.
func (h *Hub) Unregister(playerID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[playerID]; ok {
		close(c.Send)
		delete(h.clients, playerID)
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends a message to every client in the room. Non-blocking:
// drops for clients with a full send channel.
func (h *Hub) Broadcast(msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("marshaling server message", "event", msg.Event, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		select {
		case c.Send <- data:
		default:
			// Drop message if channel full
		}
	}
}

// SendTo delivers a message to a single client, if connected.
func (h *Hub) SendTo(playerID string, msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("marshaling server message", "event", msg.Event, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if c, ok := h.clients[playerID]; ok {
		select {
		case c.Send <- data:
		default:
		}
	}
}
