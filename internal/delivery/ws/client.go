package ws

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ogarmar/Compa/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

// defaultWriteTimeout bounds a single frame write when the caller's context
// carries no deadline.
const defaultWriteTimeout = 10 * time.Second

// client wraps one device socket. Writes are serialized with a mutex because
// the coordinator, the relay and the read loop's replies all push through the
// same connection.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	closed  atomic.Bool
}

func newClient(conn *websocket.Conn) *client {
	return &client{conn: conn}
}

// Push implements service.DeviceChannel.
func (c *client) Push(ctx context.Context, event any) error {
	if c.closed.Load() {
		return service.ErrChannelClosed
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(defaultWriteTimeout)
	}
	_ = c.conn.SetWriteDeadline(deadline)

	if err := c.conn.WriteJSON(event); err != nil {
		// A failed write leaves the frame stream in an unknown state
		c.close()

		return errors.Wrap(service.ErrChannelClosed, err.Error())
	}

	return nil
}

// close marks the channel dead and tears down the socket. Safe to call more
// than once.
func (c *client) close() {
	if c.closed.Swap(true) {
		return
	}
	_ = c.conn.Close()
}
