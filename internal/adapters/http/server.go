// Package http provides the HTTP adapter layer using Gin: the server, its
// middleware chain, and the route table for the quote API and front-end.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/platform/config"
)

// Server owns the Gin engine and the listener it is served on.
type Server struct {
	cfg    *config.ServerConfig
	logger *slog.Logger
	engine *gin.Engine
	srv    *http.Server

	mu sync.Mutex
	ln net.Listener
}

// New builds a server in release mode. Routes are added through Engine
// before Start.
func New(cfg *config.ServerConfig, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	// Oversized bodies fail JSON binding and come back as 400.
	engine.Use(maxBodySize(cfg.MaxRequestSize))

	return &Server{
		cfg:    cfg,
		logger: logger,
		engine: engine,
		srv: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:      engine,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Engine returns the Gin engine for route registration.
func (s *Server) Engine() *gin.Engine { return s.engine }

// Config returns the server section the server was built from.
func (s *Server) Config() *config.ServerConfig { return s.cfg }

// Start binds synchronously, then serves in the background. A bind failure
// is already on the returned channel when Start returns. The channel is
// closed once serving stops.
func (s *Server) Start() <-chan error {
	errCh := make(chan error, 1)

	ln, err := s.listen()
	if err != nil {
		errCh <- err
		close(errCh)

		return errCh
	}

	go func() {
		defer close(errCh)

		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	return errCh
}

func (s *Server) listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}

	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	port := s.cfg.Port
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}

	s.logger.Info("quote server listening",
		slog.String("addr", ln.Addr().String()),
		slog.String("url", "http://localhost:"+strconv.Itoa(port)),
	)

	return ln, nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	s.logger.Info("HTTP server stopped")

	return nil
}

// Addr is the bound address once Start has succeeded and the configured
// one before. With port 0 only the former is dialable.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln != nil {
		return s.ln.Addr().String()
	}

	return s.srv.Addr
}

func maxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
