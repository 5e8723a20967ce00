// Package realtime pushes album events to connected WebSocket clients.
// Rooms are keyed by albumId so viewers only receive events for the album
// they are watching.
package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Message is the wire envelope for one event.
type Message struct {
	Event     string      `json:"event"`
	AlbumID   string      `json:"albumId"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Hub maintains active clients per album and broadcasts messages.
type Hub struct {
	rooms      map[string]map[*Client]bool // albumId -> clients
	broadcast  chan *Message
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	log        *logrus.Entry
}

func NewHub(log *logrus.Entry) *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		broadcast:  make(chan *Message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// Publish implements Publisher. It never blocks the caller: if the
// broadcast buffer is full the event is dropped.
func (h *Hub) Publish(albumID, event string, payload interface{}) {
	msg := &Message{
		Event:     event,
		AlbumID:   albumID,
		Payload:   payload,
		Timestamp: time.Now(),
	}
	select {
	case h.broadcast <- msg:
	default:
		h.log.WithFields(logrus.Fields{"event": event, "albumId": albumID}).
			Warn("broadcast buffer full, event dropped")
	}
}

// Run processes register/unregister/broadcast until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.AlbumID] == nil {
				h.rooms[client.AlbumID] = make(map[*Client]bool)
			}
			h.rooms[client.AlbumID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.AlbumID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.Send)
					if len(clients) == 0 {
						delete(h.rooms, client.AlbumID)
					}
				}
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			data := mustMarshal(message)

			h.mu.RLock()
			clients := h.rooms[message.AlbumID]
			for client := range clients {
				select {
				case client.Send <- data:
				default:
					// slow consumer, drop it
					go func(c *Client) { h.unregister <- c }(client)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// RoomSize reports the number of clients viewing an album.
func (h *Hub) RoomSize(albumID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[albumID])
}

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		return []byte("{}")
	}
	return b
}
