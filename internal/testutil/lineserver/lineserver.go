// Package lineserver is an in-process fake control server for tests. It
// accepts connections on loopback, records every received line and lets a
// test push event lines back to the most recent connection.
package lineserver

import (
	"bufio"
	"net"
	"strconv"
	"sync"
	"testing"
	"time"
)

const waitTimeout = 5 * time.Second

type Server struct {
	ln    net.Listener
	lines chan string
	conns chan net.Conn
	quit  chan struct{}
	once  sync.Once

	mu   sync.Mutex
	last net.Conn
	all  []net.Conn
	wg   sync.WaitGroup
}

// Start listens on 127.0.0.1 with an ephemeral port and stops on test cleanup.
func Start(t testing.TB) *Server {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("lineserver listen: %v", err)
	}
	s := &Server{
		ln:    ln,
		lines: make(chan string, 4096),
		conns: make(chan net.Conn, 64),
		quit:  make(chan struct{}),
	}
	s.wg.Add(1)
	go s.acceptLoop()
	t.Cleanup(s.Close)
	return s
}

func (s *Server) Host() string { return "127.0.0.1" }

func (s *Server) Port() uint16 {
	_, port, _ := net.SplitHostPort(s.ln.Addr().String())
	p, _ := strconv.Atoi(port)
	return uint16(p)
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.mu.Lock()
		s.last = conn
		s.all = append(s.all, conn)
		s.mu.Unlock()
		select {
		case s.conns <- conn:
		default:
		}

		s.wg.Add(1)
		go s.readLoop(conn)
	}
}

func (s *Server) readLoop(conn net.Conn) {
	defer s.wg.Done()
	sc := bufio.NewScanner(conn)
	for sc.Scan() {
		select {
		case s.lines <- sc.Text():
		case <-s.quit:
			return
		}
	}
}

// WaitConn blocks until the next connection is accepted.
func (s *Server) WaitConn(t testing.TB) net.Conn {
	t.Helper()
	select {
	case conn := <-s.conns:
		return conn
	case <-time.After(waitTimeout):
		t.Fatalf("lineserver: no connection within %v", waitTimeout)
		return nil
	}
}

// NextLine returns the next line received on any connection.
func (s *Server) NextLine(t testing.TB) string {
	t.Helper()
	select {
	case line := <-s.lines:
		return line
	case <-time.After(waitTimeout):
		t.Fatalf("lineserver: no line within %v", waitTimeout)
		return ""
	}
}

// Lines collects exactly n received lines.
func (s *Server) Lines(t testing.TB, n int) []string {
	t.Helper()
	out := make([]string, 0, n)
	for len(out) < n {
		out = append(out, s.NextLine(t))
	}
	return out
}

// Push writes each line, newline-terminated, to the latest connection.
func (s *Server) Push(t testing.TB, lines ...string) {
	t.Helper()
	s.mu.Lock()
	conn := s.last
	s.mu.Unlock()
	if conn == nil {
		t.Fatalf("lineserver: push without a connection")
	}
	for _, line := range lines {
		if _, err := conn.Write([]byte(line + "\n")); err != nil {
			t.Fatalf("lineserver: push %q: %v", line, err)
		}
	}
}

// Hangup closes every accepted connection from the server side.
func (s *Server) Hangup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, conn := range s.all {
		_ = conn.Close()
	}
	s.all = nil
	s.last = nil
}

func (s *Server) Close() {
	s.once.Do(func() { close(s.quit) })
	_ = s.ln.Close()
	s.Hangup()
	s.wg.Wait()
}
