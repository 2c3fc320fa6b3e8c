package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/keypad-cli/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

const instructions = `One pocket calculator session shared by every client.
"press" types keys as on the keypad: digits, + - * / %, ".", "r" for square
root, "enter" to evaluate, "esc" to clear, "backspace". "evaluate" clears the
session, types an expression and returns the display. "clear" resets to 0.
Read keypad://state for the current display.`

// Server is the MCP server for a keypad session.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "keypad",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, &mcp.ServerOptions{Instructions: instructions}),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run serves the session over stdio until ctx is cancelled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	logger.Info("mcp: serving session %s on stdio", s.ports.Calculator.ID())
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP handler for the session.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)
}

// RunHTTP serves the session over HTTP on addr until ctx is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	logger.Info("mcp: serving session %s on %s", s.ports.Calculator.ID(), ln.Addr())

	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	if err := httpServer.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
