package hub

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/pefman/monster-mayhem/internal/models"
)

// Client is one connected player. The write mutex keeps broadcasts from the
// serializer worker and direct replies from interleaving on the wire.
type Client struct {
	ID   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func newClient(id string, conn *websocket.Conn) *Client {
	return &Client{ID: id, conn: conn}
}

// Send writes one envelope to the client. Write errors are returned so the
// caller can log them; the read loop owns connection teardown.
func (c *Client) Send(m models.WsMsg) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(m)
}

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.Close()
}
