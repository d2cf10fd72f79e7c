package client_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/luma/skiff/protocol"
)

var _ = Describe("Transactions", func() {
	It("queues commands and delivers the real results on EXEC, in order", func() {
		srv, c := startServer(func(cmd string, args []string) []byte {
			switch cmd {
			case "MULTI":
				return []byte("+OK\r\n")
			case "INCR", "INCRBY":
				return []byte("+QUEUED\r\n")
			case "EXEC":
				return []byte("*2\r\n:1\r\n:4\r\n")
			}
			return []byte("-ERR unexpected\r\n")
		})

		defer srv.Close()
		defer c.Close()

		Expect(c.Multi()).To(Succeed())

		// Queued commands only acknowledge queuing; the typed methods
		// hand back zero values.
		n, err := c.Incr("k")
		Expect(err).To(Succeed())
		Expect(n).To(Equal(int64(0)))

		n, err = c.IncrBy("k", 3)
		Expect(err).To(Succeed())
		Expect(n).To(Equal(int64(0)))

		results, err := c.Exec()
		Expect(err).To(Succeed())
		Expect(results).To(HaveLen(2))
		Expect(results[0].Int).To(Equal(int64(1)))
		Expect(results[1].Int).To(Equal(int64(4)))
	})

	It("raises an error frame immediately even while queuing", func() {
		srv, c := startServer(func(cmd string, args []string) []byte {
			switch cmd {
			case "MULTI":
				return []byte("+OK\r\n")
			}
			return []byte("-ERR bad command\r\n")
		})

		defer srv.Close()
		defer c.Close()

		Expect(c.Multi()).To(Succeed())

		_, err := c.Incr("k")

		var serverErr protocol.ServerError
		Expect(errors.As(err, &serverErr)).To(BeTrue())
	})

	It("preserves a failed sub-command as data without hurting its siblings", func() {
		srv, c := startServer(func(cmd string, args []string) []byte {
			switch cmd {
			case "MULTI":
				return []byte("+OK\r\n")
			case "EXEC":
				return []byte("*2\r\n-ERR boom\r\n:5\r\n")
			}
			return []byte("+QUEUED\r\n")
		})

		defer srv.Close()
		defer c.Close()

		Expect(c.Multi()).To(Succeed())

		_, err := c.Incr("text")
		Expect(err).To(Succeed())
		_, err = c.Incr("counter")
		Expect(err).To(Succeed())

		results, err := c.Exec()
		Expect(err).To(Succeed())
		Expect(results).To(HaveLen(2))
		Expect(results[0].Kind).To(Equal(protocol.Error))
		Expect(results[0].Str).To(Equal("ERR boom"))
		Expect(results[1].Int).To(Equal(int64(5)))
	})

	It("returns to normal interpretation after DISCARD", func() {
		srv, c := startServer(func(cmd string, args []string) []byte {
			switch cmd {
			case "MULTI", "DISCARD":
				return []byte("+OK\r\n")
			case "GET":
				return bulk("value")
			}
			return []byte("+QUEUED\r\n")
		})

		defer srv.Close()
		defer c.Close()

		Expect(c.Multi()).To(Succeed())

		value, err := c.Get("k")
		Expect(err).To(Succeed())
		Expect(value).To(Equal(""))

		Expect(c.Discard()).To(Succeed())

		value, err = c.Get("k")
		Expect(err).To(Succeed())
		Expect(value).To(Equal("value"))
	})

	It("reports a watch-aborted transaction as no results", func() {
		srv, c := startServer(func(cmd string, args []string) []byte {
			switch cmd {
			case "WATCH", "MULTI":
				return []byte("+OK\r\n")
			case "EXEC":
				return []byte("*-1\r\n")
			}
			return []byte("+QUEUED\r\n")
		})

		defer srv.Close()
		defer c.Close()

		Expect(c.Watch("k")).To(Succeed())
		Expect(c.Multi()).To(Succeed())

		_, err := c.Incr("k")
		Expect(err).To(Succeed())

		results, err := c.Exec()
		Expect(err).To(Succeed())
		Expect(results).To(BeNil())
	})
})
