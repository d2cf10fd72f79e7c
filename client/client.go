package client

import (
	"net"
	"strconv"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/luma/skiff/internal/gid"
	"github.com/luma/skiff/protocol"
)

// DefaultPort is the conventional server port.
const DefaultPort = 6379

type Options struct {
	// Host the server is running on. Defaults to localhost.
	Host string

	// Port the server is listening on. Defaults to DefaultPort.
	Port int

	Log *zap.Logger
}

// Client talks to a single server. It is safe for concurrent use: every
// calling goroutine is lazily assigned its own connection, so no two
// goroutines ever share a wire stream. Connections live until Close.
type Client struct {
	addr string
	log  *zap.Logger

	// mu guards the registry maps only. It is never held during socket
	// I/O, including dialing.
	mu    sync.Mutex
	conns map[uint64]*Conn
	all   []*Conn
}

func New(options Options) *Client {
	host := options.Host
	if host == "" {
		host = "localhost"
	}

	port := options.Port
	if port == 0 {
		port = DefaultPort
	}

	log := options.Log
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		addr:  net.JoinHostPort(host, strconv.Itoa(port)),
		log:   log,
		conns: make(map[uint64]*Conn),
	}
}

// conn returns the calling goroutine's connection, dialing and registering
// a new one on first use.
func (c *Client) conn() (*Conn, error) {
	id := gid.Get()

	c.mu.Lock()
	conn, ok := c.conns[id]
	c.mu.Unlock()

	if ok {
		return conn, nil
	}

	conn, err := dial(c.addr, c.log.Named("conn"))
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.conns[id] = conn
	c.all = append(c.all, conn)
	c.mu.Unlock()

	return conn, nil
}

// Close closes every connection this client ever opened, regardless of
// which goroutine was using it. Goroutines blocked on a read see a
// transport failure. Commands issued afterwards dial fresh connections.
func (c *Client) Close() (err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, conn := range c.all {
		err = multierr.Append(err, conn.Close())
	}

	c.all = nil
	c.conns = make(map[uint64]*Conn)

	return err
}

// Do sends an arbitrary command on the calling goroutine's connection and
// returns the raw decoded reply. The typed command methods are thin
// wrappers over this.
func (c *Client) Do(cmd string, args ...string) (*protocol.Reply, error) {
	conn, err := c.conn()
	if err != nil {
		return nil, err
	}

	return conn.Do(cmd, protocol.StringArgs(args...)...)
}
