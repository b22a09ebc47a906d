package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/intercepted16/promptkit/internal/logger"
)

// Server wraps an http.Server and its listen address.
//
// It is intentionally small/simple because this project is a test/mock tool,
// not a production service framework.
type Server struct {
	addr       string
	httpServer *http.Server
}

// NewServer creates a server for the given handler. Example addr: ":8787".
func NewServer(addr string, handler http.Handler) *Server {
	return &Server{
		addr: addr,
		httpServer: &http.Server{
			Addr:    addr,
			Handler: handler,
		},
	}
}

// Run starts listening on the configured address. This call blocks until the
// server stops or returns an error.
func (s *Server) Run() error {
	logger.Log.Infow("[http] starting server", "addr", s.addr)

	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		logger.Log.Info("[http] server stopped gracefully")
		return nil
	}
	if err != nil {
		logger.Log.Errorw("[http] server stopped with error", "err", err)
	}
	return err
}

// GracefulStop drains in-flight requests, bounded by a shutdown timeout.
func (s *Server) GracefulStop() {
	logger.Log.Infow("[http] graceful stop", "addr", s.addr)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		logger.Log.Warnw("[http] shutdown", "err", err)
	}
}
