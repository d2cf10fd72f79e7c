package client

import (
	"fmt"

	"github.com/luma/skiff/protocol"
)

// Pub/sub commands. Subscribing moves the calling goroutine's connection
// into a mode where the server pushes notification frames; NextMessage
// performs the blocking reads. The connection returns to normal
// request/response once the server reports zero remaining subscriptions.

// Message is one server-pushed pub/sub frame.
type Message struct {
	// Kind is "message", "pmessage", or one of the acknowledgement kinds
	// "subscribe", "unsubscribe", "psubscribe", "punsubscribe".
	Kind string

	// Channel the payload was published to.
	Channel string

	// Pattern that matched, for pmessage frames only.
	Pattern string

	// Payload of a message or pmessage frame.
	Payload string

	// Count is the number of remaining subscriptions, on acknowledgement
	// frames only.
	Count int
}

// Subscribe subscribes the calling goroutine's connection to the given
// channels. One acknowledgement frame per channel is consumed before
// Subscribe returns.
func (c *Client) Subscribe(channels ...string) error {
	return c.enterSubscription("SUBSCRIBE", "subscribe", channels)
}

// PSubscribe subscribes to the given glob-style patterns; see Subscribe.
func (c *Client) PSubscribe(patterns ...string) error {
	return c.enterSubscription("PSUBSCRIBE", "psubscribe", patterns)
}

// Unsubscribe unsubscribes from the given channels, or from every channel
// when none are given, consuming the matching acknowledgement frames. When
// no subscriptions remain the connection is back to normal
// request/response.
func (c *Client) Unsubscribe(channels ...string) error {
	return c.leaveSubscription("UNSUBSCRIBE", "unsubscribe", channels)
}

// PUnsubscribe is Unsubscribe for pattern subscriptions.
func (c *Client) PUnsubscribe(patterns ...string) error {
	return c.leaveSubscription("PUNSUBSCRIBE", "punsubscribe", patterns)
}

// Publish publishes message to channel and returns the number of
// subscribers that received it.
func (c *Client) Publish(channel, message string) (int64, error) {
	return replyInt(c.Do("PUBLISH", channel, message))
}

// NextMessage blocks until the server pushes the next notification frame
// on the calling goroutine's connection and classifies it. The block lasts
// until a message arrives or the connection is closed from another
// goroutine; there is no client-side timeout.
func (c *Client) NextMessage() (*Message, error) {
	conn, err := c.conn()
	if err != nil {
		return nil, err
	}

	if conn.state != stateSubscribed {
		return nil, ErrNotSubscribed
	}

	reply, err := conn.receive()
	if err != nil {
		return nil, err
	}

	msg, err := conn.classify(reply)
	if err != nil {
		return nil, err
	}

	switch msg.Kind {
	case "subscribe", "psubscribe", "unsubscribe", "punsubscribe":
		conn.trackSubscriptions(msg)
	}

	return msg, nil
}

func (c *Client) enterSubscription(cmd, ack string, names []string) error {
	if len(names) == 0 {
		return ErrNoArguments
	}

	conn, err := c.conn()
	if err != nil {
		return err
	}

	reply, err := conn.Do(cmd, protocol.StringArgs(names...)...)
	if err != nil {
		return err
	}

	conn.state = stateSubscribed

	// One acknowledgement per requested channel, the first of which was
	// the command's own reply.
	for i := 0; ; i++ {
		msg, err := conn.classify(reply)
		if err != nil {
			return err
		}

		if msg.Kind != ack {
			conn.broken = true
			return fmt.Errorf("expected %s acknowledgement, got %q: %w",
				ack, msg.Kind, protocol.ErrMalformedReply)
		}

		conn.trackSubscriptions(msg)

		if i == len(names)-1 {
			return nil
		}

		if reply, err = conn.receive(); err != nil {
			return err
		}
	}
}

func (c *Client) leaveSubscription(cmd, ack string, names []string) error {
	conn, err := c.conn()
	if err != nil {
		return err
	}

	reply, err := conn.Do(cmd, protocol.StringArgs(names...)...)
	if err != nil {
		return err
	}

	// With explicit names the server acknowledges each one; a bare
	// unsubscribe acknowledges every remaining subscription, so consume
	// until the reported count reaches zero.
	for consumed := 1; ; consumed++ {
		msg, err := conn.classify(reply)
		if err != nil {
			return err
		}

		if msg.Kind != ack {
			conn.broken = true
			return fmt.Errorf("expected %s acknowledgement, got %q: %w",
				ack, msg.Kind, protocol.ErrMalformedReply)
		}

		conn.trackSubscriptions(msg)

		if len(names) == 0 {
			if conn.subs == 0 {
				return nil
			}
		} else if consumed == len(names) {
			return nil
		}

		if reply, err = conn.receive(); err != nil {
			return err
		}
	}
}

// classify validates a pushed frame's shape and splits it into a Message.
// Any unexpected shape desynchronizes the stream and breaks the
// connection.
func (c *Conn) classify(reply *protocol.Reply) (*Message, error) {
	if reply == nil || reply.Kind != protocol.Array || reply.Nil {
		c.broken = true
		return nil, fmt.Errorf("notification is not an array: %w", protocol.ErrMalformedReply)
	}

	elems := reply.Elems
	if len(elems) == 0 {
		c.broken = true
		return nil, fmt.Errorf("empty notification: %w", protocol.ErrMalformedReply)
	}

	kind := elems[0].Text()

	switch kind {
	case "message":
		if len(elems) != 3 {
			break
		}

		return &Message{
			Kind:    kind,
			Channel: elems[1].Text(),
			Payload: elems[2].Text(),
		}, nil

	case "pmessage":
		if len(elems) != 4 {
			break
		}

		return &Message{
			Kind:    kind,
			Pattern: elems[1].Text(),
			Channel: elems[2].Text(),
			Payload: elems[3].Text(),
		}, nil

	case "subscribe", "unsubscribe", "psubscribe", "punsubscribe":
		if len(elems) != 3 {
			break
		}

		return &Message{
			Kind:    kind,
			Channel: elems[1].Text(),
			Count:   int(elems[2].Int),
		}, nil
	}

	c.broken = true
	return nil, fmt.Errorf("unexpected notification shape %q: %w",
		kind, protocol.ErrMalformedReply)
}

// trackSubscriptions applies an acknowledgement's remaining-subscription
// count and drops back to normal request/response at zero.
func (c *Conn) trackSubscriptions(msg *Message) {
	c.subs = msg.Count

	if c.subs == 0 {
		c.state = stateIdle
	} else {
		c.state = stateSubscribed
	}
}
