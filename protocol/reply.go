package protocol

// ReplyKind enumerates the five reply shapes of the wire protocol.
type ReplyKind int

const (
	SimpleString ReplyKind = iota
	Error
	Integer
	BulkString
	Array
)

func (k ReplyKind) String() string {
	switch k {
	case SimpleString:
		return "simple string"
	case Error:
		return "error"
	case Integer:
		return "integer"
	case BulkString:
		return "bulk string"
	case Array:
		return "array"
	}

	return "unknown"
}

// Reply is one decoded server reply. Only the fields matching Kind are
// meaningful. Nil marks the server's nil bulk string ($-1) or nil array
// (*-1), which is not the same thing as an empty bulk or empty array.
type Reply struct {
	Kind ReplyKind

	// Str carries the text of a SimpleString or Error reply.
	Str string

	// Int carries the value of an Integer reply.
	Int int64

	// Bulk carries the payload of a BulkString reply.
	Bulk []byte

	// Elems carries the elements of an Array reply, themselves replies.
	Elems []*Reply

	Nil bool
}

// IsNil reports whether the reply is the server's nil bulk string or
// nil array.
func (r *Reply) IsNil() bool {
	return r == nil || r.Nil
}

// Text returns the reply's payload as a string. For a nil reply it
// returns "".
func (r *Reply) Text() string {
	if r == nil || r.Nil {
		return ""
	}

	if r.Kind == BulkString {
		return string(r.Bulk)
	}

	return r.Str
}

// ErrorOrNil returns the server's error if the reply is an Error frame.
// Otherwise it returns nil.
func (r *Reply) ErrorOrNil() error {
	if r != nil && r.Kind == Error {
		return ServerError(r.Str)
	}

	return nil
}
