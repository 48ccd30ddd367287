package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPServer wraps the echo instance with the lifecycle the application
// expects: blocking Start and context-bounded Stop.
type HTTPServer struct {
	echo *echo.Echo
	addr string
}

// NewHTTPServer creates a new HTTPServer for the given address.
func NewHTTPServer(e *echo.Echo, addr string) *HTTPServer {
	return &HTTPServer{
		echo: e,
		addr: addr,
	}
}

// Address returns the address the server listens on.
func (s *HTTPServer) Address() string {
	return s.addr
}

// Start runs the server and blocks until it stops. A graceful shutdown is
// not reported as an error.
func (s *HTTPServer) Start() error {
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start http server: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully within the context deadline.
func (s *HTTPServer) Stop(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to stop http server: %w", err)
	}
	return nil
}
