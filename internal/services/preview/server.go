// Package preview serves an HTML gallery of icon badges so palette and icon
// changes can be checked in a browser.
package preview

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/badgekit/internal/platform/theme"
	"github.com/louisbranch/badgekit/internal/platform/timeouts"
)

// Config defines the inputs for the preview server.
type Config struct {
	HTTPAddr string
	// Theme resolves badge classes; nil uses the default palette.
	Theme theme.Resolver
}

// Server hosts the preview HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewServer builds a preview server bound to cfg.HTTPAddr.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           NewHandler(cfg.Theme),
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("preview server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("preview listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
