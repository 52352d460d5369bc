// Package singleinstance keeps one overlay per user session. The resident
// overlay listens on a loopback TCP port; a second launch asks it to show its
// window and exits.
package singleinstance

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strconv"
	"sync"
	"time"
)

const (
	residentHost = "127.0.0.1"
	pingRequest  = "PING\n"
	pongResponse = "PONG\n"
	showRequest  = "SHOW\n"
	okResponse   = "OK\n"
)

// ErrAlreadyRunning is returned by Listen when another resident owns the port.
var ErrAlreadyRunning = errors.New("another instance is already running")

// Server is the resident side.
type Server struct {
	lis         net.Listener
	port        int
	activations chan struct{}
	closeOnce   sync.Once
}

// Listen binds ONLY the start port of the configured range; if it is taken,
// another resident exists.
func Listen(ctx context.Context) (*Server, error) {
	start, _ := getPortRange()
	addr := net.JoinHostPort(residentHost, strconv.Itoa(start))
	var lc net.ListenConfig
	lis, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		log.Printf("singleinstance: failed to bind %s: %v", addr, err)
		return nil, fmt.Errorf("%w: %v", ErrAlreadyRunning, err)
	}
	s := &Server{lis: lis, port: start, activations: make(chan struct{}, 4)}
	log.Printf("singleinstance: listening on %s", addr)
	go s.acceptLoop()
	return s, nil
}

// Port returns the bound port.
func (s *Server) Port() int { return s.port }

// Activations delivers one value per SHOW request from a second instance.
func (s *Server) Activations() <-chan struct{} { return s.activations }

// Close stops accepting clients.
func (s *Server) Close() error {
	var err error
	s.closeOnce.Do(func() { err = s.lis.Close() })
	return err
}

func (s *Server) acceptLoop() {
	for {
		c, err := s.lis.Accept()
		if err != nil {
			return
		}
		s.serve(c)
	}
}

func (s *Server) serve(c net.Conn) {
	defer c.Close()
	_ = c.SetDeadline(time.Now().Add(3 * time.Second))
	line, _ := bufio.NewReader(c).ReadString('\n')

	switch line {
	case pingRequest:
		_, _ = c.Write([]byte(pongResponse))
	case showRequest:
		log.Printf("singleinstance: activation from %s", c.RemoteAddr())
		select {
		case s.activations <- struct{}{}:
		default:
			// a pending activation already covers this one
		}
		_, _ = c.Write([]byte(okResponse))
	default:
		log.Printf("singleinstance: ignoring request %q from %s", line, c.RemoteAddr())
	}
}

// Activate looks for a resident in the port range and asks it to show its
// window. It returns false, nil when no resident answers.
func Activate(ctx context.Context) (bool, error) {
	timeout := 500 * time.Millisecond
	if dl, ok := ctx.Deadline(); ok {
		if d := time.Until(dl); d > 0 {
			timeout = d
		}
	}
	start, end := getPortRange()
	for port := start; port <= end; port++ {
		addr := net.JoinHostPort(residentHost, strconv.Itoa(port))
		if resp, err := roundTrip(addr, pingRequest, timeout); err != nil || resp != pongResponse {
			continue
		}
		resp, err := roundTrip(addr, showRequest, timeout)
		if err != nil {
			return true, err
		}
		if resp != okResponse {
			return true, fmt.Errorf("singleinstance: unexpected reply %q", resp)
		}
		return true, nil
	}
	return false, nil
}

func roundTrip(addr, request string, timeout time.Duration) (string, error) {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return "", err
	}
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(timeout))
	if _, err := conn.Write([]byte(request)); err != nil {
		return "", err
	}
	return bufio.NewReader(conn).ReadString('\n')
}
