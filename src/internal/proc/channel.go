package proc

import (
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/maksimkurb/spp-ctl/src/internal/errors"
	"github.com/maksimkurb/spp-ctl/src/internal/log"
)

// recvChunkSize is the read size for replies. A reply ends with the first
// read shorter than this.
const recvChunkSize = 1024

// Channel exchanges commands and replies with one worker over its connection.
// Exchanges are serialized.
type Channel struct {
	mu      sync.Mutex
	conn    net.Conn
	timeout time.Duration
	onBreak func()

	closeOnce sync.Once
	closeErr  error
}

// NewChannel wraps conn. A non-zero timeout bounds every exchange.
func NewChannel(conn net.Conn, timeout time.Duration) *Channel {
	return &Channel{conn: conn, timeout: timeout}
}

// OnBreak sets a callback run once when the connection fails.
func (c *Channel) OnBreak(fn func()) {
	c.mu.Lock()
	c.onBreak = fn
	c.mu.Unlock()
}

// RemoteAddr returns the worker's address.
func (c *Channel) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

// Exchange sends cmd and returns the reply with trailing NUL padding removed.
func (c *Channel) Exchange(cmd string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timeout > 0 {
		_ = c.conn.SetDeadline(time.Now().Add(c.timeout))
		defer c.conn.SetDeadline(time.Time{})
	}

	log.Debugf("Sending command %q to %s", cmd, c.RemoteAddr())

	if _, err := c.conn.Write([]byte(cmd)); err != nil {
		c.broken()
		return "", errors.NewWorkerChannelError("failed to send command", err)
	}

	reply, err := c.read()
	if err != nil {
		c.broken()
		return "", errors.NewWorkerChannelError("failed to receive reply", err)
	}

	reply = strings.TrimRight(reply, "\x00")
	log.Debugf("Received reply %q from %s", reply, c.RemoteAddr())

	return reply, nil
}

func (c *Channel) read() (string, error) {
	var sb strings.Builder
	buf := make([]byte, recvChunkSize)

	for {
		n, err := c.conn.Read(buf)
		sb.Write(buf[:n])

		if err != nil {
			if err == io.EOF && sb.Len() > 0 {
				return sb.String(), nil
			}
			if err == io.EOF {
				return "", io.ErrUnexpectedEOF
			}
			return "", err
		}
		if n < recvChunkSize {
			return sb.String(), nil
		}
	}
}

// broken runs the break callback once. Called with c.mu held.
func (c *Channel) broken() {
	if c.onBreak != nil {
		fn := c.onBreak
		c.onBreak = nil
		go fn()
	}
}

// Discard drops a connection whose last reply could not be interpreted.
// The rest of that reply may still be in flight, so no later exchange on
// the connection can be trusted.
func (c *Channel) Discard() {
	c.mu.Lock()
	c.broken()
	c.mu.Unlock()

	_ = c.Close()
}

// Close closes the connection. Later calls return the first result.
func (c *Channel) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}
