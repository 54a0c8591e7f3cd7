// Package ws pushes live completeness scores to a user's open
// connections while they edit their CV.
package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mu.Lock()
			conns, ok := h.clients[client.userID]
			if !ok {
				conns = make(map[*Client]bool)
				h.clients[client.userID] = conns
			}
			conns[client] = true
			total := len(conns)
			h.mu.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS connected | user=%s connections=%d", client.userID, total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mu.Lock()
			if conns, ok := h.clients[client.userID]; ok {
				if conns[client] {
					delete(conns, client)
					close(client.send)
				}
				if len(conns) == 0 {
					delete(h.clients, client.userID)
				}
			}
			h.mu.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS disconnected | user=%s", client.userID)
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Send delivers a payload to every open connection of one user.
// Connections with a full buffer are dropped rather than blocked on.
func (h *Hub) Send(userID uuid.UUID, message []byte) {
	if h == nil {
		return
	}

	h.mu.RLock()
	snapshot := make([]*Client, 0, len(h.clients[userID]))
	for c := range h.clients[userID] {
		snapshot = append(snapshot, c)
	}
	h.mu.RUnlock()

	for _, client := range snapshot {
		select {
		case client.send <- message:
		default:
			h.unregister <- client
		}
	}
}

func (h *Hub) ConnectionCount(userID uuid.UUID) int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}
