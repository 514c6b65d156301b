package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // the show runs on a trusted local network
	},
}

// Frame is one message pushed to observers.
type Frame struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Client is one connected observer.
type Client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans event-log and roster updates out to connected observers. The
// feed is strictly read-only: observers still have to poll the events
// endpoint to advance the game.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	hello      []byte
	logger     *zap.Logger
}

// NewHub creates a hub that greets every new observer with the given
// session id.
func NewHub(sessionID string, logger *zap.Logger) *Hub {
	hello, _ := json.Marshal(Frame{Type: "hello", Data: map[string]string{"session_id": sessionID}})
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		hello:      hello,
		logger:     logger,
	}
}

// Run processes client registration and broadcasts until the process
// exits. Call in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			client.send <- h.hello
			h.logger.Debug("observer connected", zap.Int("observers", len(h.clients)))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Debug("observer disconnected", zap.Int("observers", len(h.clients)))
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Broadcast pushes a frame to every connected observer. Marshal failures
// are logged and dropped; the feed is best-effort.
func (h *Hub) Broadcast(frameType string, data any) {
	message, err := json.Marshal(Frame{Type: frameType, Data: data})
	if err != nil {
		h.logger.Error("failed to marshal observer frame", zap.String("type", frameType), zap.Error(err))
		return
	}
	h.broadcast <- message
}

// ServeWS upgrades the request to a websocket observer connection.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		conn: conn,
		send: make(chan []byte, 256),
	}
	h.register <- client

	go client.writePump()
	go client.readPump(h)
}

// readPump drains (and ignores) inbound messages so pings and closes are
// processed, then unregisters on disconnect.
func (c *Client) readPump(hub *Hub) {
	defer func() {
		hub.unregister <- c
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
}
