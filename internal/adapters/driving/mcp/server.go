package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is the MCP server version.
const Version = "0.1.0"

// shutdownTimeout bounds the graceful HTTP shutdown.
const shutdownTimeout = 5 * time.Second

// Server exposes the note assistant over the Model Context Protocol.
type Server struct {
	ports   *Ports
	server  *mcp.Server
	handler *mcp.StreamableHTTPHandler
}

// NewServer creates a server with the ask, extract_facts and list_notes
// tools and the notes:// resources.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "sercha-notes",
		Version: Version,
	}, &mcp.ServerOptions{})

	s := &Server{
		ports:  ports,
		server: server,
	}
	s.registerTools()
	s.registerResources()

	// Every request carries its own context, so no session state is kept.
	s.handler = mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{Stateless: true})

	return s, nil
}

// Handler returns the streamable HTTP handler, for mounting under an
// existing HTTP server.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	log.Info("serving over stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves streamable HTTP on addr until ctx is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutting down %s: %v", addr, err)
		}
	}()

	log.Info("serving HTTP on %s", addr)
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving %s: %w", addr, err)
	}
	return nil
}
