package feed

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client represents a connected subscriber
type Client struct {
	ClientID string
	Conn     *websocket.Conn
	Send     chan Event    // Channel to send events to this client
	Done     chan struct{} // Signal to stop reading/writing
}

// ConnectionManager manages all active WebSocket subscriptions
type ConnectionManager struct {
	mu      sync.RWMutex
	clients map[string]*Client // client_id -> Client
}

// NewConnectionManager creates a new connection manager
func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		clients: make(map[string]*Client),
	}
}

// AddClient registers a new subscriber connection
func (cm *ConnectionManager) AddClient(clientID string, conn *websocket.Conn) *Client {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	// Disconnect existing connection for this client if any
	if existing, ok := cm.clients[clientID]; ok {
		close(existing.Done)
		if existing.Conn != nil {
			existing.Conn.Close()
		}
	}

	client := &Client{
		ClientID: clientID,
		Conn:     conn,
		Send:     make(chan Event, 32), // Buffered channel to handle bursts
		Done:     make(chan struct{}),
	}

	cm.clients[clientID] = client
	return client
}

// RemoveClient unregisters a subscriber connection. Removal is by identity,
// not id: a stale connection's cleanup must not tear down a replacement that
// reconnected under the same client id.
func (cm *ConnectionManager) RemoveClient(client *Client) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if current, ok := cm.clients[client.ClientID]; ok && current == client {
		close(client.Done)
		delete(cm.clients, client.ClientID)
	}
}

// SubscriberCount returns the number of connected subscribers
func (cm *ConnectionManager) SubscriberCount() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	return len(cm.clients)
}

// Broadcast fans an event out to every connected subscriber. A subscriber
// whose send buffer is full is skipped rather than blocking the ledger path.
func (cm *ConnectionManager) Broadcast(eventType string, payload any) {
	event := Event{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}

	cm.mu.RLock()
	defer cm.mu.RUnlock()

	for _, client := range cm.clients {
		select {
		case client.Send <- event:
		case <-client.Done:
		default:
			// Slow subscriber; drop the event for this client
		}
	}
}
