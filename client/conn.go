package client

import (
	"fmt"
	"net"

	"go.uber.org/zap"

	"github.com/luma/skiff/protocol"
)

// connState is the session overlay on a connection's reply interpretation.
type connState int

const (
	// stateIdle: plain request/response.
	stateIdle connState = iota

	// stateQueuing: inside MULTI, before EXEC or DISCARD. Replies are
	// queuing acknowledgements, not values.
	stateQueuing

	// stateSubscribed: at least one channel or pattern subscription is
	// live; the server pushes notification frames.
	stateSubscribed
)

// Conn owns one socket, one Framer, and the session state. It is owned
// exclusively by one goroutine, so no locking happens around its I/O.
type Conn struct {
	sock   net.Conn
	framer *protocol.Framer

	state connState

	// subs is the number of live channel/pattern subscriptions, as last
	// reported by the server in a subscription acknowledgement.
	subs int

	broken bool

	log *zap.Logger
}

// dial opens the socket. Connection establishment is atomic: it succeeds
// fully or returns an error and no Conn.
func dial(addr string, log *zap.Logger) (*Conn, error) {
	sock, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", addr, err)
	}

	log.Debug("Opened connection", zap.String("addr", addr))

	return &Conn{
		sock:   sock,
		framer: protocol.NewFramer(sock),
		log:    log,
	}, nil
}

// Close closes the socket. Closing from another goroutine is the only way
// to unblock a goroutine stuck in a blocking read; the blocked side sees a
// transport failure.
func (c *Conn) Close() error {
	return c.sock.Close()
}

// Do sends one command and blocks for its reply. There is no pipelining:
// the next command is not sent until this reply has been fully read.
func (c *Conn) Do(cmd string, args ...[]byte) (*protocol.Reply, error) {
	if c.broken {
		return nil, ErrConnBroken
	}

	if err := protocol.WriteCommand(c.framer, cmd, args...); err != nil {
		c.broken = true
		return nil, fmt.Errorf("send %s: %w", cmd, err)
	}

	return c.receive()
}

// receive reads one reply off the wire and interprets it according to the
// session state. A top-level Error frame is raised as a ServerError in
// every state; while Queuing, any other reply is a bare queuing
// acknowledgement and receive returns nil.
func (c *Conn) receive() (*protocol.Reply, error) {
	reply, err := protocol.ReadReply(c.framer)
	if err != nil {
		c.broken = true
		return nil, err
	}

	if err := reply.ErrorOrNil(); err != nil {
		// Application errors leave the connection usable.
		return nil, err
	}

	if c.state == stateQueuing {
		// The real per-command results arrive in the EXEC reply.
		return nil, nil
	}

	return reply, nil
}
