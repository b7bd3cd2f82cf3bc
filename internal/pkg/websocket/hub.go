package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// broadcastBuffer bounds the number of undelivered messages; Publish drops
// messages beyond it rather than block the caller.
const broadcastBuffer = 64

// Hub maintains the set of connected moderators and fans messages out to them
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Outbound messages
	broadcast chan *Message

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Closed once Run has returned
	done chan struct{}

	// Guards clients for ClientsCount
	mu sync.RWMutex

	logger zerolog.Logger
}

// Message is a moderation notice sent over the WebSocket
type Message struct {
	// Type of message, "review" for content awaiting moderation
	Type string `json:"type"`

	// Resource kind: event, post or project
	Resource string `json:"resource"`

	ID    int64  `json:"id"`
	Title string `json:"title"`

	// Full name of the member whose action caused the notice
	By string `json:"by"`

	Timestamp time.Time `json:"timestamp"`
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan *Message, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run handles registrations and broadcasts until ctx is done
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// Register adds client to the hub. It reports false once the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes client; it is a no-op after the hub has stopped.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info().
		Int64("memberID", client.memberID).
		Str("addr", client.conn.RemoteAddr().String()).
		Msg("Moderator connected")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(client)
}

// removeLocked drops a client; h.mu must be held for writing
func (h *Hub) removeLocked(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	h.logger.Info().
		Int64("memberID", client.memberID).
		Str("addr", client.conn.RemoteAddr().String()).
		Msg("Moderator disconnected")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		h.removeLocked(client)
	}
}

// broadcastMessage sends a message to every client. Clients whose send
// buffer is full are dropped.
func (h *Hub) broadcastMessage(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error().Err(err).Str("resource", message.Resource).Msg("Failed to marshal message for broadcast")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			h.removeLocked(client)
		}
	}

	h.logger.Debug().
		Str("resource", message.Resource).
		Int64("id", message.ID).
		Int("clientCount", len(h.clients)).
		Msg("Message broadcasted to moderators")
}

// Publish queues a message for all connected clients without blocking
func (h *Hub) Publish(message *Message) {
	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn().
			Str("resource", message.Resource).
			Int64("id", message.ID).
			Msg("Moderation feed full, message dropped")
	}
}

// ClientsCount returns the number of connected clients
func (h *Hub) ClientsCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}
