package protocol

import (
	"bufio"
	"io"
	"strconv"
)

var terminal = []byte("\r\n")

// Framer provides the byte-exact read and write primitives of the wire
// protocol over one buffered stream. It keeps a cursor into the stream, so
// sequential reads consume exactly the bytes of each frame and leave the
// stream positioned at the next one.
//
// A Framer is not safe for concurrent use; each connection owns exactly
// one and is itself owned by exactly one goroutine.
type Framer struct {
	r *bufio.Reader
	w *bufio.Writer
}

func NewFramer(rw io.ReadWriter) *Framer {
	return &Framer{
		r: bufio.NewReader(rw),
		w: bufio.NewWriter(rw),
	}
}

// ReadLine reads bytes until a \r immediately followed by \n and returns
// them without the terminator. A lone \r not followed by \n is ordinary
// data and is preserved.
func (f *Framer) ReadLine() (string, error) {
	line := make([]byte, 0, 64)

	for {
		ch, err := f.r.ReadByte()
		if err != nil {
			return "", readErr(err, len(line) > 0)
		}

		if ch == '\r' {
			next, err := f.r.ReadByte()
			if err != nil {
				return "", readErr(err, true)
			}

			if next == '\n' {
				return string(line), nil
			}

			line = append(line, '\r', next)
			continue
		}

		line = append(line, ch)
	}
}

// ReadExact returns nil immediately if n is negative. Otherwise it blocks
// until exactly n bytes are read and discards the two-byte terminator that
// follows, without validating its content.
func (f *Framer) ReadExact(n int) ([]byte, error) {
	if n < 0 {
		return nil, nil
	}

	data := make([]byte, n)
	if _, err := io.ReadFull(f.r, data); err != nil {
		return nil, readErr(err, true)
	}

	var crlf [2]byte
	if _, err := io.ReadFull(f.r, crlf[:]); err != nil {
		return nil, readErr(err, true)
	}

	return data, nil
}

// WriteBulk writes prefix, the decimal length of data, \r\n, the data
// itself, and a final \r\n.
func (f *Framer) WriteBulk(prefix byte, data []byte) error {
	if err := f.w.WriteByte(prefix); err != nil {
		return err
	}

	if _, err := f.w.WriteString(strconv.Itoa(len(data))); err != nil {
		return err
	}

	if _, err := f.w.Write(terminal); err != nil {
		return err
	}

	if _, err := f.w.Write(data); err != nil {
		return err
	}

	_, err := f.w.Write(terminal)
	return err
}

// WriteArrayHeader writes the multi-bulk header for an array of n frames.
func (f *Framer) WriteArrayHeader(n int) error {
	if err := f.w.WriteByte('*'); err != nil {
		return err
	}

	if _, err := f.w.WriteString(strconv.Itoa(n)); err != nil {
		return err
	}

	_, err := f.w.Write(terminal)
	return err
}

// Flush writes any buffered output to the underlying stream.
func (f *Framer) Flush() error {
	return f.w.Flush()
}

// readErr maps EOF in the middle of a frame to io.ErrUnexpectedEOF so a
// truncated stream never looks like a clean close.
func readErr(err error, midFrame bool) error {
	if err == io.EOF && midFrame {
		return io.ErrUnexpectedEOF
	}

	return err
}
