package wsjson

import (
	"errors"
	"log/slog"

	"github.com/gorilla/websocket"
)

// Conn exchanges typed protocol messages over a WebSocket connection.
type Conn struct {
	ws *websocket.Conn
}

// Dial connects to a device's WebSocket endpoint.
func Dial(url string) (*Conn, error) {
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &Conn{ws: ws}, nil
}

// NewConn wraps an already established connection, typically one
// accepted through an Upgrader.
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{ws: ws}
}

// Write sends one message as a JSON text frame.
func (c *Conn) Write(msg Message) error {
	data, err := Marshal(msg)
	if err != nil {
		return err
	}
	if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
		return err
	}
	slog.Debug("Sent WebSocket message", "type", msg.MessageType(), "size", len(data))
	return nil
}

// Read returns the next well-formed message. Frames that are not valid
// JSON or carry an unrecognized type are logged and skipped, so one
// misbehaving peer message does not tear the link down.
func (c *Conn) Read() (Message, error) {
	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			return nil, err
		}
		msg, err := Unmarshal(data)
		if err != nil {
			if errors.Is(err, ErrUnknownType) {
				slog.Warn("Unhandled message type", "error", err)
			} else {
				slog.Warn("Invalid JSON message received", "error", err, "data", string(data))
			}
			continue
		}
		return msg, nil
	}
}

func (c *Conn) Close() error {
	return c.ws.Close()
}
