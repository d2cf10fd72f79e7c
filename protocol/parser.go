package protocol

import (
	"fmt"
	"strconv"
)

// ReadReply reads exactly one reply from the Framer, recursing into array
// elements. Nested Error frames are preserved as data; deciding whether an
// Error aborts the calling operation is the caller's business.
//
// A malformed frame returns an error wrapping ErrMalformedReply. Transport
// failures are returned as-is. Either way the stream can no longer be
// trusted to be frame-aligned.
func ReadReply(f *Framer) (*Reply, error) {
	line, err := f.ReadLine()
	if err != nil {
		return nil, err
	}

	if len(line) == 0 {
		return nil, fmt.Errorf("empty reply line: %w", ErrMalformedReply)
	}

	switch line[0] {
	case '+':
		return &Reply{Kind: SimpleString, Str: line[1:]}, nil

	case '-':
		return &Reply{Kind: Error, Str: line[1:]}, nil

	case ':':
		n, err := strconv.ParseInt(line[1:], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad integer reply %q: %w", line, ErrMalformedReply)
		}

		return &Reply{Kind: Integer, Int: n}, nil

	case '$':
		n, err := strconv.Atoi(line[1:])
		if err != nil {
			return nil, fmt.Errorf("bad bulk length %q: %w", line, ErrMalformedReply)
		}

		if n < 0 {
			return &Reply{Kind: BulkString, Nil: true}, nil
		}

		data, err := f.ReadExact(n)
		if err != nil {
			return nil, err
		}

		return &Reply{Kind: BulkString, Bulk: data}, nil

	case '*':
		n, err := strconv.Atoi(line[1:])
		if err != nil {
			return nil, fmt.Errorf("bad array length %q: %w", line, ErrMalformedReply)
		}

		if n < 0 {
			return &Reply{Kind: Array, Nil: true}, nil
		}

		elems := make([]*Reply, n)
		for i := range elems {
			elems[i], err = ReadReply(f)
			if err != nil {
				return nil, err
			}
		}

		return &Reply{Kind: Array, Elems: elems}, nil

	default:
		return nil, fmt.Errorf("unknown reply prefix %q: %w", line, ErrMalformedReply)
	}
}
