package realtime

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Client is one WebSocket connection scoped to a single album room.
type Client struct {
	Hub     *Hub
	Conn    *websocket.Conn
	Send    chan []byte
	AlbumID string
}

func NewClient(hub *Hub, conn *websocket.Conn, albumID string) *Client {
	return &Client{
		Hub:     hub,
		Conn:    conn,
		Send:    make(chan []byte, 64),
		AlbumID: albumID,
	}
}

// Register enters the client into its album room.
func (c *Client) Register() {
	c.Hub.register <- c
}

// ReadPump relays client-emitted events into the album room. Inbound
// messages may not escape the room the connection was authorized for, so
// the albumId is overwritten server-side.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.Hub.log.WithError(err).Debug("websocket read failed")
			}
			break
		}

		msg := Message{}
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		if msg.Event == "" {
			continue
		}
		c.Hub.Publish(c.AlbumID, msg.Event, msg.Payload)
	}
}

// WritePump pumps room broadcasts to the connection and keeps it alive
// with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
