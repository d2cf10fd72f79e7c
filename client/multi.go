package client

import "github.com/luma/skiff/protocol"

// Transaction commands. While a connection is queuing, every command
// method still performs its round trip so the stream stays frame aligned,
// but returns only zero values; the real results arrive as the EXEC reply.

// Multi opens a transaction on the calling goroutine's connection. All
// commands issued until Exec or Discard are queued server-side.
func (c *Client) Multi() error {
	conn, err := c.conn()
	if err != nil {
		return err
	}

	// MULTI's own +OK is read in normal mode; queuing starts after it.
	if _, err := conn.Do("MULTI"); err != nil {
		return err
	}

	conn.state = stateQueuing
	return nil
}

// Discard aborts the transaction. Nothing queued takes effect.
func (c *Client) Discard() error {
	conn, err := c.conn()
	if err != nil {
		return err
	}

	conn.state = stateIdle
	_, err = conn.Do("DISCARD")
	return err
}

// Exec runs the queued commands and returns one reply per command, in the
// order they were issued. A queued command that failed server-side shows
// up as an Error element; it does not affect its siblings. Exec returns
// nil replies without error when a watched key changed and the transaction
// was aborted.
func (c *Client) Exec() ([]*protocol.Reply, error) {
	conn, err := c.conn()
	if err != nil {
		return nil, err
	}

	conn.state = stateIdle

	reply, err := conn.Do("EXEC")
	if err != nil || reply.IsNil() {
		return nil, err
	}

	return reply.Elems, nil
}

// Watch marks keys to be monitored for changes until the next Exec. If any
// of them changed meanwhile, the transaction aborts.
func (c *Client) Watch(keys ...string) error {
	if len(keys) == 0 {
		return ErrNoArguments
	}

	return replyOK(c.Do("WATCH", keys...))
}

// Unwatch flushes all watched keys.
func (c *Client) Unwatch() error {
	return replyOK(c.Do("UNWATCH"))
}
