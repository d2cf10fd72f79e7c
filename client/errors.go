package client

import "errors"

var (
	// ErrNil is returned by typed command methods when the server answered
	// with a nil bulk string or nil array (missing key, empty pop).
	ErrNil = errors.New("nil reply")

	// ErrConnBroken marks a connection that saw a transport or protocol
	// failure. Its stream can no longer be trusted and it refuses further
	// commands.
	ErrConnBroken = errors.New("connection is broken and must not be reused")

	// ErrNoArguments is returned before touching the wire when a variadic
	// command that requires at least one operand is called with none.
	ErrNoArguments = errors.New("at least one argument is required")

	// ErrUnpairedArguments is returned when a field/value style command
	// receives an odd number of arguments.
	ErrUnpairedArguments = errors.New("arguments must come in field/value pairs")

	// ErrNotSubscribed is returned when NextMessage is called on a
	// connection that has no active subscriptions.
	ErrNotSubscribed = errors.New("connection is not subscribed")
)
