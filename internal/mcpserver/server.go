package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"chroma/internal/config"
	"chroma/internal/palette"
	"chroma/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

const serverName = "chroma"

// PaletteServer serves PaletteTools over the configured transport.
type PaletteServer struct {
	config  config.MCPConfig
	version string
	tools   *PaletteTools
	server  *server.MCPServer

	mu        sync.Mutex
	sseServer *server.SSEServer
}

// NewPaletteServer creates a server whose tools draw colours from gen.
func NewPaletteServer(cfg config.MCPConfig, version string, gen *palette.Generator) *PaletteServer {
	if cfg.Transport == "" {
		cfg.Transport = config.MCPTransportStdio
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if version == "" {
		version = "dev"
	}

	tools := NewPaletteTools(gen)
	mcpServer := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(true),
	)
	mcpServer.AddTools(tools.ServerTools()...)

	return &PaletteServer{
		config:  cfg,
		version: version,
		tools:   tools,
		server:  mcpServer,
	}
}

// MCPServer returns the underlying mcp-go server.
func (ps *PaletteServer) MCPServer() *server.MCPServer {
	return ps.server
}

// Addr is the listen address used by the SSE transport.
func (ps *PaletteServer) Addr() string {
	return fmt.Sprintf("%s:%d", ps.config.Host, ps.config.Port)
}

// Serve blocks until ctx is cancelled or the transport fails. in and out are
// only used by the stdio transport.
func (ps *PaletteServer) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	switch ps.config.Transport {
	case config.MCPTransportStdio:
		return ps.serveStdio(ctx, in, out)
	case config.MCPTransportSSE:
		return ps.serveSSE(ctx)
	default:
		return fmt.Errorf("unsupported MCP transport %q", ps.config.Transport)
	}
}

func (ps *PaletteServer) serveStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	logging.Info("MCP", "Serving %d palette tools on stdio", len(ps.tools.GetTools()))

	stdio := server.NewStdioServer(ps.server)
	err := stdio.Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio transport: %w", err)
	}
	return nil
}

func (ps *PaletteServer) serveSSE(ctx context.Context) error {
	baseURL := fmt.Sprintf("http://%s", ps.Addr())
	sse := server.NewSSEServer(
		ps.server,
		server.WithBaseURL(baseURL),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)

	ps.mu.Lock()
	ps.sseServer = sse
	ps.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		logging.Info("MCP", "Serving palette tools on %s/sse", baseURL)
		if err := sse.Start(ps.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			return fmt.Errorf("sse transport: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ps.Stop(context.Background())
	}
}

// Stop shuts down a running SSE transport. It is a no-op for stdio.
func (ps *PaletteServer) Stop(ctx context.Context) error {
	ps.mu.Lock()
	sse := ps.sseServer
	ps.sseServer = nil
	ps.mu.Unlock()

	if sse == nil {
		return nil
	}

	logging.Info("MCP", "Stopping palette tool server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := sse.Shutdown(shutdownCtx); err != nil {
		logging.Error("MCP", err, "Error shutting down SSE server")
		return fmt.Errorf("shutting down sse server: %w", err)
	}
	return nil
}
