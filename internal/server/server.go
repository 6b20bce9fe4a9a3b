// Package server exposes the draw-and-classify loop over websockets so a
// browser or other front end can render hands.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/pokerhand/internal/table"
)

// TableFactory creates the table a new connection plays on.
type TableFactory func() *table.Table

// Server represents the WebSocket server
type Server struct {
	addr        string
	upgrader    websocket.Upgrader
	newTable    TableFactory
	logger      *log.Logger
	clock       quartz.Clock
	mu          sync.RWMutex
	connections map[*Connection]struct{}
}

// NewServer creates a new WebSocket server
func NewServer(addr string, newTable TableFactory, logger *log.Logger, clock quartz.Clock) *Server {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			// Front ends are served from anywhere during development
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		newTable:    newTable,
		logger:      logger.WithPrefix("server"),
		clock:       clock,
		connections: make(map[*Connection]struct{}),
	}
}

// Handler returns the HTTP handler serving /ws and /health.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting WebSocket server", "addr", s.addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down")
	s.closeAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// ConnectionCount returns the number of open connections.
func (s *Server) ConnectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}

func (s *Server) closeAll() {
	s.mu.Lock()
	conns := make([]*Connection, 0, len(s.connections))
	for c := range s.connections {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		_ = c.Close()
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	client := NewConnection(conn, s.newTable(), s.logger, s.clock)

	s.mu.Lock()
	s.connections[client] = struct{}{}
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("Client connected", "total", total)

	client.Start()

	go func() {
		<-client.Done()
		s.mu.Lock()
		delete(s.connections, client)
		total := len(s.connections)
		s.mu.Unlock()
		s.logger.Info("Client disconnected", "total", total)
	}()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}
