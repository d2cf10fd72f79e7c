package redtest

import (
	"errors"
	"net"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/luma/skiff/protocol"
)

// Handler produces the raw reply bytes the server writes back for one
// received command. Returning more than one frame is allowed and is how
// scripted pushes (pub/sub notifications, multiple acknowledgements) are
// injected into the stream. Returning nil writes nothing.
type Handler func(cmd string, args []string) []byte

// Server is a scripted protocol server for tests. It accepts real TCP
// connections, decodes each incoming multi-bulk request with the protocol
// package, and answers with whatever the Handler scripts.
type Server struct {
	lis     net.Listener
	handler Handler
	log     *zap.Logger

	mu       sync.Mutex
	conns    map[net.Conn]struct{}
	accepted int

	acceptWaiter sync.WaitGroup
}

func NewServer(handler Handler, log *zap.Logger) (*Server, error) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}

	s := &Server{
		lis:     lis,
		handler: handler,
		log:     log,
		conns:   make(map[net.Conn]struct{}),
	}

	s.acceptWaiter.Add(1)
	go s.listen()

	return s, nil
}

// Host returns the loopback address the server is listening on.
func (s *Server) Host() string {
	host, _, _ := net.SplitHostPort(s.lis.Addr().String())
	return host
}

// Port returns the ephemeral port the server is listening on.
func (s *Server) Port() int {
	_, port, _ := net.SplitHostPort(s.lis.Addr().String())
	n, _ := strconv.Atoi(port)
	return n
}

// Accepted returns how many connections the server has accepted so far.
func (s *Server) Accepted() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.accepted
}

// Close stops accepting and closes every active connection.
func (s *Server) Close() error {
	err := s.lis.Close()

	s.mu.Lock()
	for conn := range s.conns {
		conn.Close()
		delete(s.conns, conn)
	}
	s.mu.Unlock()

	s.acceptWaiter.Wait()
	return err
}

func (s *Server) listen() {
	defer s.acceptWaiter.Done()

	for {
		conn, err := s.lis.Accept()
		if err != nil {
			netOpError := new(net.OpError)
			if !errors.As(err, &netOpError) {
				s.log.Warn("Accept failed", zap.Error(err))
			}

			return
		}

		s.addConn(conn)
		go s.serve(conn)
	}
}

func (s *Server) serve(conn net.Conn) {
	defer func() {
		conn.Close()
		s.removeConn(conn)
	}()

	framer := protocol.NewFramer(conn)

	for {
		// Requests are multi-bulk arrays of bulk strings, so the reply
		// decoder doubles as the request decoder.
		req, err := protocol.ReadReply(framer)
		if err != nil {
			return
		}

		cmd, args, err := splitRequest(req)
		if err != nil {
			s.log.Warn("Malformed request", zap.Error(err))
			return
		}

		out := s.handler(cmd, args)
		if out == nil {
			continue
		}

		if _, err := conn.Write(out); err != nil {
			s.log.Warn("Failed to write scripted reply",
				zap.String("cmd", cmd),
				zap.Error(err))
			return
		}
	}
}

func (s *Server) addConn(conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conns[conn] = struct{}{}
	s.accepted++
}

func (s *Server) removeConn(conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.conns, conn)
}

func splitRequest(req *protocol.Reply) (string, []string, error) {
	if req.Kind != protocol.Array || len(req.Elems) == 0 {
		return "", nil, errors.New("request is not a multi-bulk frame")
	}

	args := make([]string, len(req.Elems)-1)
	for i, elem := range req.Elems[1:] {
		args[i] = elem.Text()
	}

	return req.Elems[0].Text(), args, nil
}
