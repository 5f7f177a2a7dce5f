package mcpserver

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"chroma/internal/config"
	"chroma/internal/palette"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaletteServerDefaults(t *testing.T) {
	ps := NewPaletteServer(config.MCPConfig{Port: 9000}, "", palette.NewSeededGenerator(1))
	require.NotNil(t, ps.MCPServer())
	assert.Equal(t, config.MCPTransportStdio, ps.config.Transport)
	assert.Equal(t, "dev", ps.version)
	assert.Equal(t, "localhost:9000", ps.Addr())
}

func TestServeRejectsUnknownTransport(t *testing.T) {
	ps := NewPaletteServer(config.MCPConfig{Transport: "carrier-pigeon"}, "1.0.0", palette.NewSeededGenerator(1))
	err := ps.Serve(context.Background(), strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}

func TestStopWithoutSSEIsNoop(t *testing.T) {
	ps := NewPaletteServer(config.MCPConfig{}, "1.0.0", palette.NewSeededGenerator(1))
	assert.NoError(t, ps.Stop(context.Background()))
}
