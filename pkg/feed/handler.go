package feed

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler wraps the connection manager and provides HTTP handlers
type Handler struct {
	manager *ConnectionManager
	logger  interface {
		Printf(string, ...interface{})
	}
}

// NewHandler creates a new feed handler
func NewHandler(manager *ConnectionManager) *Handler {
	return &Handler{
		manager: manager,
		logger:  log.New(log.Writer(), "[feed] ", log.LstdFlags),
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// In production, validate origin properly
		return true
	},
}

// HandleWebSocketGin validates client_id from query (generated when absent)
// and upgrades to a WebSocket event subscription. The stream is one-way:
// client frames other than control messages are discarded.
func (h *Handler) HandleWebSocketGin(c *gin.Context) {
	clientID := c.Query("client_id")
	if clientID == "" {
		clientID = uuid.NewString()
	} else if _, err := uuid.Parse(clientID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client_id, must be UUID"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Printf("websocket upgrade error: %v", err)
		return
	}

	client := h.manager.AddClient(clientID, conn)
	h.logger.Printf("subscriber %s connected", clientID)

	go h.readLoop(client)
	go h.writeLoop(client)
}

// GetStatusGin reports the current subscriber count
func (h *Handler) GetStatusGin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"subscribers": h.manager.SubscriberCount()})
}

// readLoop drains the connection so pongs and close frames are processed;
// everything else a subscriber sends is ignored
func (h *Handler) readLoop(client *Client) {
	defer func() {
		h.manager.RemoveClient(client)
		client.Conn.Close()
		h.logger.Printf("subscriber %s disconnected", client.ClientID)
	}()

	client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		select {
		case <-client.Done:
			return
		default:
		}

		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Printf("websocket error for subscriber %s: %v", client.ClientID, err)
			}
			return
		}
	}
}

// writeLoop writes events to the WebSocket connection
func (h *Handler) writeLoop(client *Client) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-client.Done:
			return

		case event, ok := <-client.Send:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

			if !ok {
				// Channel closed
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.Conn.WriteJSON(event); err != nil {
				h.logger.Printf("write error for subscriber %s: %v", client.ClientID, err)
				return
			}

		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.logger.Printf("ping error for subscriber %s: %v", client.ClientID, err)
				return
			}
		}
	}
}
