package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// CLIClient provides a simplified MCP client for CLI commands
type CLIClient struct {
	endpoint string
	client   *client.Client
	started  bool
	timeout  time.Duration
}

// NewCLIClient creates a client for the SSE endpoint of a running
// `chroma mcp serve --transport sse`.
func NewCLIClient(endpoint string) *CLIClient {
	return &CLIClient{
		endpoint: endpoint,
		timeout:  30 * time.Second,
	}
}

// NewCLIClientFromMCP wraps an existing mcp-go client, such as an
// in-process one.
func NewCLIClientFromMCP(c *client.Client) *CLIClient {
	return &CLIClient{
		endpoint: "in-process",
		client:   c,
		timeout:  30 * time.Second,
	}
}

// Endpoint returns the server address the client talks to.
func (c *CLIClient) Endpoint() string {
	return c.endpoint
}

// Connect starts the transport and performs the MCP handshake.
func (c *CLIClient) Connect(ctx context.Context) error {
	if c.client == nil {
		sseClient, err := client.NewSSEMCPClient(c.endpoint)
		if err != nil {
			return fmt.Errorf("failed to create sse client: %w", err)
		}
		c.client = sseClient
	}

	if !c.started {
		if err := c.client.Start(ctx); err != nil {
			return fmt.Errorf("failed to start transport for %s: %w", c.endpoint, err)
		}
		c.started = true
	}

	if err := c.initialize(ctx); err != nil {
		c.Close()
		return fmt.Errorf("initialization failed: %w", err)
	}
	return nil
}

// ListTools returns the tools the server offers.
func (c *CLIClient) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	if c.client == nil {
		return nil, fmt.Errorf("client not connected")
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.ListTools(timeoutCtx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, fmt.Errorf("list tools failed: %w", err)
	}
	return result.Tools, nil
}

// CallTool executes a tool and returns the result
func (c *CLIClient) CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, error) {
	if c.client == nil {
		return nil, fmt.Errorf("client not connected")
	}

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.CallTool(timeoutCtx, req)
	if err != nil {
		return nil, fmt.Errorf("tool call failed: %w", err)
	}
	return result, nil
}

// CallToolSimple executes a tool and returns the text content as a string
func (c *CLIClient) CallToolSimple(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	result, err := c.CallTool(ctx, name, args)
	if err != nil {
		return "", err
	}

	texts := textContents(result)
	if result.IsError {
		return "", fmt.Errorf("tool error: %v", texts)
	}
	if len(texts) == 0 {
		return "", nil
	}
	return texts[0], nil
}

// Close closes the connection
func (c *CLIClient) Close() error {
	if c.client != nil {
		c.client.Close()
		c.client = nil
		c.started = false
	}
	return nil
}

func (c *CLIClient) initialize(ctx context.Context) error {
	req := mcp.InitializeRequest{
		Params: struct {
			ProtocolVersion string                 `json:"protocolVersion"`
			Capabilities    mcp.ClientCapabilities `json:"capabilities"`
			ClientInfo      mcp.Implementation     `json:"clientInfo"`
		}{
			ProtocolVersion: "2024-11-05",
			ClientInfo: mcp.Implementation{
				Name:    "chroma-cli",
				Version: "1.0.0",
			},
			Capabilities: mcp.ClientCapabilities{},
		},
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.client.Initialize(timeoutCtx, req)
	return err
}

func textContents(result *mcp.CallToolResult) []string {
	var out []string
	for _, content := range result.Content {
		if textContent, ok := mcp.AsTextContent(content); ok {
			out = append(out, textContent.Text)
		}
	}
	return out
}
