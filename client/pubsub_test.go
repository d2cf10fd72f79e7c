package client_test

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/luma/skiff/client"
	"github.com/luma/skiff/protocol"
)

func subscribeAck(kind, channel, count string) []byte {
	return []byte(fmt.Sprintf("*3\r\n$%d\r\n%s\r\n$%d\r\n%s\r\n:%s\r\n",
		len(kind), kind, len(channel), channel, count))
}

var _ = Describe("PubSub", func() {
	It("consumes one acknowledgement per channel before returning", func() {
		srv, c := startServer(func(cmd string, args []string) []byte {
			switch cmd {
			case "SUBSCRIBE":
				out := subscribeAck("subscribe", "alpha", "1")
				return append(out, subscribeAck("subscribe", "beta", "2")...)
			case "PING":
				return []byte("+PONG\r\n")
			}
			return nil
		})

		defer srv.Close()
		defer c.Close()

		Expect(c.Subscribe("alpha", "beta")).To(Succeed())
	})

	It("classifies a pushed message frame", func() {
		srv, c := startServer(func(cmd string, args []string) []byte {
			out := subscribeAck("subscribe", "alpha", "1")
			out = append(out, []byte("*3\r\n")...)
			out = append(out, bulk("message")...)
			out = append(out, bulk("alpha")...)
			return append(out, bulk("hello")...)
		})

		defer srv.Close()
		defer c.Close()

		Expect(c.Subscribe("alpha")).To(Succeed())

		msg, err := c.NextMessage()
		Expect(err).To(Succeed())
		Expect(msg.Kind).To(Equal("message"))
		Expect(msg.Channel).To(Equal("alpha"))
		Expect(msg.Payload).To(Equal("hello"))
	})

	It("classifies a pushed pmessage frame with its pattern", func() {
		srv, c := startServer(func(cmd string, args []string) []byte {
			out := subscribeAck("psubscribe", "al*", "1")
			out = append(out, []byte("*4\r\n")...)
			out = append(out, bulk("pmessage")...)
			out = append(out, bulk("al*")...)
			out = append(out, bulk("alpha")...)
			return append(out, bulk("hello")...)
		})

		defer srv.Close()
		defer c.Close()

		Expect(c.PSubscribe("al*")).To(Succeed())

		msg, err := c.NextMessage()
		Expect(err).To(Succeed())
		Expect(msg.Kind).To(Equal("pmessage"))
		Expect(msg.Pattern).To(Equal("al*"))
		Expect(msg.Channel).To(Equal("alpha"))
		Expect(msg.Payload).To(Equal("hello"))
	})

	It("returns to request/response once every subscription is gone", func() {
		srv, c := startServer(func(cmd string, args []string) []byte {
			switch cmd {
			case "SUBSCRIBE":
				out := subscribeAck("subscribe", "alpha", "1")
				return append(out, subscribeAck("subscribe", "beta", "2")...)
			case "UNSUBSCRIBE":
				out := subscribeAck("unsubscribe", "alpha", "1")
				return append(out, subscribeAck("unsubscribe", "beta", "0")...)
			case "PING":
				return []byte("+PONG\r\n")
			}
			return nil
		})

		defer srv.Close()
		defer c.Close()

		Expect(c.Subscribe("alpha", "beta")).To(Succeed())
		Expect(c.Unsubscribe("alpha", "beta")).To(Succeed())

		pong, err := c.Ping()
		Expect(err).To(Succeed())
		Expect(pong).To(Equal("PONG"))
	})

	It("consumes every remaining acknowledgement on a bare unsubscribe", func() {
		srv, c := startServer(func(cmd string, args []string) []byte {
			switch cmd {
			case "SUBSCRIBE":
				out := subscribeAck("subscribe", "alpha", "1")
				return append(out, subscribeAck("subscribe", "beta", "2")...)
			case "UNSUBSCRIBE":
				out := subscribeAck("unsubscribe", "beta", "1")
				return append(out, subscribeAck("unsubscribe", "alpha", "0")...)
			case "PING":
				return []byte("+PONG\r\n")
			}
			return nil
		})

		defer srv.Close()
		defer c.Close()

		Expect(c.Subscribe("alpha", "beta")).To(Succeed())
		Expect(c.Unsubscribe()).To(Succeed())

		_, err := c.Ping()
		Expect(err).To(Succeed())
	})

	It("refuses NextMessage without a subscription", func() {
		srv, c := startServer(nil)

		defer srv.Close()
		defer c.Close()

		_, err := c.NextMessage()
		Expect(errors.Is(err, client.ErrNotSubscribed)).To(BeTrue())
	})

	It("treats a notification of the wrong shape as a protocol violation", func() {
		srv, c := startServer(func(cmd string, args []string) []byte {
			out := subscribeAck("subscribe", "alpha", "1")
			out = append(out, []byte("*2\r\n")...)
			out = append(out, bulk("message")...)
			return append(out, bulk("alpha")...)
		})

		defer srv.Close()
		defer c.Close()

		Expect(c.Subscribe("alpha")).To(Succeed())

		_, err := c.NextMessage()
		Expect(errors.Is(err, protocol.ErrMalformedReply)).To(BeTrue())

		_, err = c.Ping()
		Expect(errors.Is(err, client.ErrConnBroken)).To(BeTrue())
	})
})
