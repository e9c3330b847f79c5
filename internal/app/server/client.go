package server

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// client is one connected clubhouse display. Writes are serialized through
// the mutex since gorilla connections allow only one concurrent writer.
type client struct {
	userId      string
	conn        *websocket.Conn
	connectedAt time.Time

	mu sync.Mutex
}

func newClient(conn *websocket.Conn, userId string) *client {
	return &client{
		userId:      userId,
		conn:        conn,
		connectedAt: time.Now(),
	}
}

func (c *client) writeJson(msg interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}
