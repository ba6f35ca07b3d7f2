package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WSClient is one websocket session. gorilla connections allow a single
// concurrent writer, so every write goes through mu.
type WSClient struct {
	ID   string
	Conn *websocket.Conn

	mu sync.Mutex
}

func (c *WSClient) WriteJSON(payload any) error {
	msg, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(websocket.TextMessage, msg)
}

func (c *WSClient) Ping(deadline time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteControl(websocket.PingMessage, nil, deadline)
}

// RealtimeHub tracks open calculation sessions.
type RealtimeHub struct {
	mu       sync.RWMutex
	clients  map[string]*WSClient
	onChange func(n int)
}

// NewRealtimeHub returns an empty hub. onChange, if set, is called with the
// session count after every register/unregister.
func NewRealtimeHub(onChange func(n int)) *RealtimeHub {
	return &RealtimeHub{clients: make(map[string]*WSClient), onChange: onChange}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c.ID] = c
	n := len(h.clients)
	h.mu.Unlock()
	h.notify(n)
}

// Unregister removes c and closes its connection. Safe to call twice.
func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	_, ok := h.clients[c.ID]
	delete(h.clients, c.ID)
	n := len(h.clients)
	h.mu.Unlock()
	if !ok {
		return
	}
	_ = c.Conn.Close()
	h.notify(n)
}

func (h *RealtimeHub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// CloseAll sends a going-away close frame to every session and drops them.
func (h *RealtimeHub) CloseAll() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[string]*WSClient)
	h.mu.Unlock()

	deadline := time.Now().Add(time.Second)
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for _, c := range clients {
		c.mu.Lock()
		_ = c.Conn.WriteControl(websocket.CloseMessage, msg, deadline)
		c.mu.Unlock()
		_ = c.Conn.Close()
	}
	h.notify(0)
}

func (h *RealtimeHub) notify(n int) {
	if h.onChange != nil {
		h.onChange(n)
	}
}
