package chat

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 64 * 1024 // 64 KB
)

// DirectMessage is the wire format relayed between users.
type DirectMessage struct {
	From int64  `json:"from"`
	To   int64  `json:"to"`
	Text string `json:"text"`
}

// connection is one WebSocket client of a user. A user may be connected
// from several devices at once.
type connection struct {
	userID int64
	conn   *websocket.Conn
	send   chan []byte
}

// Hub is the in-memory relay: a concurrent-safe map from user identity to
// that user's live connections. It holds no message history.
type Hub struct {
	mu          sync.RWMutex
	connections map[int64]map[*connection]bool
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]map[*connection]bool),
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.connections[c.userID] == nil {
		h.connections[c.userID] = make(map[*connection]bool)
	}
	h.connections[c.userID][c] = true
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.connections[c.userID]
	if !ok || !set[c] {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.connections, c.userID)
	}
}

// SendToUser delivers a message to every live connection of the recipient.
// An offline recipient is silently dropped; persistence is not this relay's
// concern.
func (h *Hub) SendToUser(userID int64, msg *DirectMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.connections[userID] {
		select {
		case c.send <- data:
		default:
			// Slow consumer; drop rather than block the sender.
		}
	}
}

// ConnectedUsers reports how many distinct users are online.
func (h *Hub) ConnectedUsers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}
