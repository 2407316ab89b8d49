package events

import (
	"sync"
	"time"

	"taskboard-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period
	pingPeriod = (pongWait * 9) / 10

	// Maximum inbound message size; the channel is receive-only for clients
	// so anything beyond a close/pong frame is noise
	maxMessageSize = 512
)

// Hub maintains the set of active client connections keyed by team and
// broadcasts events to them. A client is bound to exactly one team at
// registration time; team scoping is enforced here and at connection
// authentication, never by filtering on the way out.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	teams      map[uuid.UUID]map[*Client]bool
	mu         sync.RWMutex
	log        *logger.Logger
}

// Client represents one websocket connection subscribed to a team's events
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	UserID uuid.UUID
	TeamID uuid.UUID
}

// NewHub creates a hub. Run must be started on its own goroutine.
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		teams:      make(map[uuid.UUID]map[*Client]bool),
		log:        logger.ForComponent("events.hub"),
	}
}

// NewClient wraps an upgraded connection. The caller has already
// authenticated the user; teamID comes from the token claims, not from the
// request, so a client can never subscribe outside its team.
func (h *Hub) NewClient(conn *websocket.Conn, userID, teamID uuid.UUID) *Client {
	return &Client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, 256),
		UserID: userID,
		TeamID: teamID,
	}
}

// Run processes register/unregister requests until the process exits
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.teams[client.TeamID]; !ok {
				h.teams[client.TeamID] = make(map[*Client]bool)
			}
			h.teams[client.TeamID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.teams[client.TeamID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.teams, client.TeamID)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register subscribes a client to its team's events
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Publish implements Publisher. Slow consumers are dropped rather than
// blocking the writer; a dropped client reconciles on reconnect.
func (h *Hub) Publish(teamID uuid.UUID, event Envelope) {
	data, err := event.Encode()
	if err != nil {
		h.log.WithError(err).Error("encode event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.teams[teamID] {
		select {
		case client.send <- data:
		default:
			delete(h.teams[teamID], client)
			close(client.send)
		}
	}
}

// ConnectionCount returns the number of live connections for a team
func (h *Hub) ConnectionCount(teamID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.teams[teamID])
}

// ReadPump drains the connection until it closes. The channel is receive-only
// from the client's perspective; inbound frames beyond pongs are discarded.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

// WritePump pumps events from the hub to the websocket connection
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
