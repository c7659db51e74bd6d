package mcp

import (
	"context"
	"errors"
	"io"
	"sync"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/linkedin-mcp/internal/config"
	"github.com/honeycarbs/linkedin-mcp/pkg/logging"
)

const (
	serverName    = "linkedin_profile_scraper"
	serverVersion = "0.1.0"
)

// Server wraps an MCP SDK server served over stdio
type Server struct {
	logger *logging.Logger
	config config.Config
	mcp    *sdkmcp.Server
	tools  []string

	mu     sync.Mutex
	cancel context.CancelFunc // set once Run starts
	done   chan struct{}
}

// NewServer constructs the MCP server and registers every tool backed by res
func NewServer(log *logging.Logger, cfg config.Config, res *Resources) *Server {
	impl := &sdkmcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}

	mcpServer := sdkmcp.NewServer(impl, nil)
	registered := NewToolRegistry(log).RegisterAll(mcpServer, res)

	return &Server{
		logger: log,
		config: cfg,
		mcp:    mcpServer,
		tools:  registered,
		done:   make(chan struct{}),
	}
}

// Tools returns the names of the registered tools
func (s *Server) Tools() []string {
	return s.tools
}

// Run serves over stdin/stdout and blocks until the client disconnects or ctx ends
func (s *Server) Run(ctx context.Context) error {
	return s.RunTransport(ctx, &sdkmcp.StdioTransport{})
}

// RunTransport serves a single session over t
func (s *Server) RunTransport(ctx context.Context, t sdkmcp.Transport) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	defer close(s.done)
	defer cancel()

	s.logger.Info("MCP server serving", "name", serverName, "tools", s.tools)

	// a client hanging up surfaces as EOF
	if err := s.mcp.Run(ctx, t); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Shutdown stops a running session and waits for Run to return
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for MCP server")
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-s.done:
		s.logger.Info("MCP server shutdown complete")
		return nil
	case <-ctx.Done():
		s.logger.Warn("MCP server shutdown with error", "err", ctx.Err())
		return ctx.Err()
	}
}
