package protocol

import "errors"

var (
	// ErrMalformedReply indicates a reply that does not follow the wire
	// protocol. The stream is desynchronized and the connection that
	// produced it must not be reused.
	ErrMalformedReply = errors.New("malformed reply")
)

// ServerError is an error the server reported in a `-` reply frame, e.g.
// a wrong-type operation. The connection stays usable afterwards.
type ServerError string

func (e ServerError) Error() string {
	return string(e)
}
