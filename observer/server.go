// Package observer streams simulation frames to websocket clients.
package observer

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/game"
)

const writeTimeout = 5 * time.Second

type client struct {
	conn *websocket.Conn
	out  chan []byte
}

// Server broadcasts one frame in every N to each connected client. Redraw
// never blocks: a client whose queue is full misses the frame.
type Server struct {
	every  int
	buffer int

	upgrader websocket.Upgrader
	nextID   atomic.Uint64
	dropped  atomic.Uint64

	mu      sync.Mutex
	clients map[uint64]*client
	frames  int

	httpServer *http.Server
	listener   net.Listener
}

// NewServer creates a server from the observer config.
func NewServer(cfg config.ObserverConfig) *Server {
	every := cfg.Every
	if every < 1 {
		every = 1
	}
	buffer := cfg.ClientBuffer
	if buffer < 1 {
		buffer = 1
	}
	return &Server{
		every:  every,
		buffer: buffer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[uint64]*client),
	}
}

// Start listens on addr and serves the websocket endpoint at /ws.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/ws", s.Handler())

	s.listener = ln
	s.httpServer = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("observer server stopped", "error", err)
		}
	}()
	slog.Info("observer listening", "addr", ln.Addr().String())
	return nil
}

// Addr returns the listening address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Close stops the listener and disconnects every client.
func (s *Server) Close() error {
	var err error
	if s.httpServer != nil {
		err = s.httpServer.Close()
	}
	s.mu.Lock()
	for _, c := range s.clients {
		_ = c.conn.Close()
	}
	s.mu.Unlock()
	return err
}

// Clients returns the number of connected clients.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Dropped returns how many client deliveries were skipped on full queues.
func (s *Server) Dropped() uint64 {
	return s.dropped.Load()
}

// Redraw queues the frame for every client if it falls on the broadcast
// interval.
func (s *Server) Redraw(frame game.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frames++
	if (s.frames-1)%s.every != 0 || len(s.clients) == 0 {
		return
	}

	msg, err := json.Marshal(frame)
	if err != nil {
		slog.Error("encoding frame", "tick", frame.Tick, "error", err)
		return
	}
	for _, c := range s.clients {
		select {
		case c.out <- msg:
		default:
			s.dropped.Add(1)
		}
	}
}

// Handler upgrades the request and streams frames until the client leaves.
func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		id := s.nextID.Add(1)
		c := &client{conn: conn, out: make(chan []byte, s.buffer)}
		s.mu.Lock()
		s.clients[id] = c
		s.mu.Unlock()
		slog.Debug("observer joined", "client", id, "remote", r.RemoteAddr)

		done := make(chan struct{})
		writerDone := make(chan struct{})
		go func() {
			defer close(writerDone)
			for {
				select {
				case <-done:
					return
				case msg := <-c.out:
					_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
					if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
						_ = conn.Close()
						return
					}
				}
			}
		}()

		// Clients only listen; reading drives ping/close handling.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}

		s.mu.Lock()
		delete(s.clients, id)
		s.mu.Unlock()
		close(done)

		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"),
			time.Now().Add(time.Second))

		select {
		case <-writerDone:
		case <-time.After(500 * time.Millisecond):
		}
		slog.Debug("observer left", "client", id)
	}
}
