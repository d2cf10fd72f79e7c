package protocol_test

import (
	"bytes"
	"errors"
	"io"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/luma/skiff/protocol"
)

func decode(data string) (*protocol.Reply, error) {
	return protocol.ReadReply(protocol.NewFramer(bytes.NewBufferString(data)))
}

var _ = Describe("Parsing", func() {
	Describe("ReadReply()", func() {
		It("parses a simple string reply", func() {
			reply, err := decode("+OK\r\n")
			Expect(err).To(Succeed())
			Expect(reply.Kind).To(Equal(protocol.SimpleString))
			Expect(reply.Str).To(Equal("OK"))
		})

		It("parses an error reply without raising it", func() {
			reply, err := decode("-ERR wrong kind\r\n")
			Expect(err).To(Succeed())
			Expect(reply.Kind).To(Equal(protocol.Error))
			Expect(reply.Str).To(Equal("ERR wrong kind"))
			Expect(reply.ErrorOrNil()).To(MatchError("ERR wrong kind"))
		})

		It("parses an integer reply as a 64 bit value", func() {
			reply, err := decode(":9223372036854775807\r\n")
			Expect(err).To(Succeed())
			Expect(reply.Kind).To(Equal(protocol.Integer))
			Expect(reply.Int).To(Equal(int64(9223372036854775807)))
		})

		It("parses a negative integer reply", func() {
			reply, err := decode(":-1\r\n")
			Expect(err).To(Succeed())
			Expect(reply.Int).To(Equal(int64(-1)))
		})

		Describe("bulk strings", func() {
			It("parses a bulk string", func() {
				reply, err := decode("$5\r\nhello\r\n")
				Expect(err).To(Succeed())
				Expect(reply.Kind).To(Equal(protocol.BulkString))
				Expect(reply.Bulk).To(Equal([]byte("hello")))
				Expect(reply.IsNil()).To(BeFalse())
			})

			It("distinguishes an empty bulk string from a nil one", func() {
				reply, err := decode("$0\r\n\r\n")
				Expect(err).To(Succeed())
				Expect(reply.IsNil()).To(BeFalse())
				Expect(reply.Bulk).To(HaveLen(0))
			})

			It("parses $-1 as a nil bulk string", func() {
				reply, err := decode("$-1\r\n")
				Expect(err).To(Succeed())
				Expect(reply.Kind).To(Equal(protocol.BulkString))
				Expect(reply.IsNil()).To(BeTrue())
			})

			It("preserves the declared number of payload bytes exactly", func() {
				reply, err := decode("$7\r\nab\r\ncd\r\n")
				Expect(err).To(Succeed())
				Expect(reply.Bulk).To(Equal([]byte("ab\r\ncd")))
			})
		})

		Describe("arrays", func() {
			It("parses an array of bulk strings", func() {
				reply, err := decode("*2\r\n$1\r\na\r\n$1\r\nb\r\n")
				Expect(err).To(Succeed())
				Expect(reply.Kind).To(Equal(protocol.Array))
				Expect(reply.Elems).To(HaveLen(2))
				Expect(reply.Elems[0].Bulk).To(Equal([]byte("a")))
				Expect(reply.Elems[1].Bulk).To(Equal([]byte("b")))
			})

			It("parses *-1 as a nil array", func() {
				reply, err := decode("*-1\r\n")
				Expect(err).To(Succeed())
				Expect(reply.Kind).To(Equal(protocol.Array))
				Expect(reply.IsNil()).To(BeTrue())
			})

			It("parses nested arrays recursively", func() {
				reply, err := decode("*2\r\n*2\r\n:1\r\n:2\r\n$-1\r\n")
				Expect(err).To(Succeed())
				Expect(reply.Elems).To(HaveLen(2))
				Expect(reply.Elems[0].Kind).To(Equal(protocol.Array))
				Expect(reply.Elems[0].Elems[1].Int).To(Equal(int64(2)))
				Expect(reply.Elems[1].IsNil()).To(BeTrue())
			})

			It("keeps error elements inside arrays as data", func() {
				reply, err := decode("*2\r\n-ERR boom\r\n:5\r\n")
				Expect(err).To(Succeed())
				Expect(reply.Elems[0].Kind).To(Equal(protocol.Error))
				Expect(reply.Elems[0].Str).To(Equal("ERR boom"))
				Expect(reply.Elems[1].Int).To(Equal(int64(5)))
			})
		})

		Describe("malformed input", func() {
			It("rejects an unknown leading byte", func() {
				_, err := decode("!nope\r\n")
				Expect(errors.Is(err, protocol.ErrMalformedReply)).To(BeTrue())
			})

			It("rejects an empty reply line", func() {
				_, err := decode("\r\n")
				Expect(errors.Is(err, protocol.ErrMalformedReply)).To(BeTrue())
			})

			It("rejects a non-numeric bulk length", func() {
				_, err := decode("$abc\r\n")
				Expect(errors.Is(err, protocol.ErrMalformedReply)).To(BeTrue())
			})

			It("rejects a non-numeric integer reply", func() {
				_, err := decode(":one\r\n")
				Expect(errors.Is(err, protocol.ErrMalformedReply)).To(BeTrue())
			})

			It("reports a truncated bulk payload as an unexpected EOF", func() {
				_, err := decode("$10\r\nshort")
				Expect(errors.Is(err, io.ErrUnexpectedEOF)).To(BeTrue())
			})

			It("reports a missing reply as EOF", func() {
				_, err := decode("")
				Expect(errors.Is(err, io.EOF)).To(BeTrue())
			})
		})

		It("consumes exactly one reply per call, leaving the stream aligned", func() {
			framer := protocol.NewFramer(bytes.NewBufferString(
				"$1\r\na\r\n*1\r\n:7\r\n+OK\r\n"))

			first, err := protocol.ReadReply(framer)
			Expect(err).To(Succeed())
			Expect(first.Bulk).To(Equal([]byte("a")))

			second, err := protocol.ReadReply(framer)
			Expect(err).To(Succeed())
			Expect(second.Elems[0].Int).To(Equal(int64(7)))

			third, err := protocol.ReadReply(framer)
			Expect(err).To(Succeed())
			Expect(third.Str).To(Equal("OK"))

			_, err = protocol.ReadReply(framer)
			Expect(errors.Is(err, io.EOF)).To(BeTrue())
		})
	})

	Describe("Framer.ReadLine()", func() {
		It("preserves a lone CR that is not followed by LF", func() {
			reply, err := decode("+ab\rcd\r\n")
			Expect(err).To(Succeed())
			Expect(reply.Str).To(Equal("ab\rcd"))
		})
	})

	Describe("Framer.ReadExact()", func() {
		It("returns nil for a negative length without touching the stream", func() {
			framer := protocol.NewFramer(bytes.NewBufferString("+OK\r\n"))

			data, err := framer.ReadExact(-1)
			Expect(err).To(Succeed())
			Expect(data).To(BeNil())

			reply, err := protocol.ReadReply(framer)
			Expect(err).To(Succeed())
			Expect(reply.Str).To(Equal("OK"))
		})

		It("discards the trailing terminator without validating it", func() {
			framer := protocol.NewFramer(bytes.NewBufferString("abXX+OK\r\n"))

			data, err := framer.ReadExact(2)
			Expect(err).To(Succeed())
			Expect(data).To(Equal([]byte("ab")))

			reply, err := protocol.ReadReply(framer)
			Expect(err).To(Succeed())
			Expect(reply.Str).To(Equal("OK"))
		})
	})
})
