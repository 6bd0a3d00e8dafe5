package session

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"colorsync/internal/ui"
)

// Server wraps the HTTP server for the session API and metrics
type Server struct {
	server *http.Server
	ln     net.Listener
}

// NewServer creates a new API server
func NewServer(addr string, handler http.Handler) *Server {
	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start binds the listener and begins serving (non-blocking)
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ui.LogStatus("error", "API server error: "+err.Error())
		}
	}()
	return nil
}

// Addr returns the bound address, useful with port 0
func (s *Server) Addr() string {
	if s.ln == nil {
		return s.server.Addr
	}
	return s.ln.Addr().String()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
