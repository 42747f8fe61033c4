package ws

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// ErrHubBacklogFull is returned by Broadcast when the hub cannot keep up with publishers.
var ErrHubBacklogFull = errors.New("websocket hub backlog full")

// Event is one message pushed to subscribed clients.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type roomEvent struct {
	restaurantID string
	event        Event
}

// Hub keeps one room of clients per restaurant and fans events out to them.
type Hub struct {
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan roomEvent
	done       chan struct{}

	mu sync.RWMutex
}

// NewHub creates a hub. Run must be started before clients register.
func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan roomEvent, 256),
		done:       make(chan struct{}),
	}
}

// Run processes registrations and broadcasts until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.restaurantID] == nil {
				h.rooms[client.restaurantID] = make(map[*Client]bool)
			}
			h.rooms[client.restaurantID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.removeLocked(client)
			h.mu.Unlock()

		case re := <-h.broadcast:
			message, err := json.Marshal(re.event)
			if err != nil {
				continue
			}
			h.mu.Lock()
			for client := range h.rooms[re.restaurantID] {
				select {
				case client.send <- message:
				default:
					// slow consumer
					h.removeLocked(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// removeLocked drops client from its room and closes its send channel. h.mu must be held.
func (h *Hub) removeLocked(client *Client) {
	clients, ok := h.rooms[client.restaurantID]
	if !ok {
		return
	}
	if _, exists := clients[client]; !exists {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.rooms, client.restaurantID)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, clients := range h.rooms {
		for client := range clients {
			h.removeLocked(client)
		}
	}
}

func (h *Hub) add(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Broadcast queues event for every client of restaurantID. It never blocks on a full queue.
func (h *Hub) Broadcast(ctx context.Context, restaurantID string, event Event) error {
	select {
	case h.broadcast <- roomEvent{restaurantID: restaurantID, event: event}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrHubBacklogFull
	}
}

// ClientCount returns how many clients are subscribed to restaurantID.
func (h *Hub) ClientCount(restaurantID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[restaurantID])
}
