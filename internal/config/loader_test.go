package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"chroma/internal/harmony"
	"chroma/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withFakeEnv points the loader at temporary home and working directories
// and a fixed environment.
func withFakeEnv(t *testing.T, env map[string]string) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()

	origHome, origWd, origGetenv := osUserHomeDir, osGetwd, osGetenv
	osUserHomeDir = func() (string, error) { return home, nil }
	osGetwd = func() (string, error) { return wd, nil }
	osGetenv = func(k string) string { return env[k] }
	t.Cleanup(func() {
		osUserHomeDir, osGetwd, osGetenv = origHome, origWd, origGetenv
	})
	return home, wd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfigDefaults(t *testing.T) {
	withFakeEnv(t, nil)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), cfg)
	assert.Equal(t, harmony.SchemeRandom, cfg.Scheme())
	assert.Equal(t, logging.LevelInfo, cfg.LogLevel())
	assert.True(t, cfg.UI.IsDark())
	assert.Equal(t, 2*time.Second, cfg.UI.StatusTimeout)
}

func TestLoadConfigLayers(t *testing.T) {
	home, wd := withFakeEnv(t, nil)

	writeFile(t, filepath.Join(home, userConfigDir, configFileName), `
palette:
  scheme: triadic
  seed: 7
ui:
  darkMode: false
  statusTimeout: 5s
logging:
  level: debug
`)
	writeFile(t, filepath.Join(wd, projectConfigDir, configFileName), `
palette:
  scheme: complementary
mcp:
  transport: sse
  port: 9000
`)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, harmony.SchemeComplementary, cfg.Scheme())
	assert.Equal(t, int64(7), cfg.Palette.Seed)
	assert.False(t, cfg.UI.IsDark())
	assert.Equal(t, 5*time.Second, cfg.UI.StatusTimeout)
	assert.Equal(t, logging.LevelDebug, cfg.LogLevel())
	assert.Equal(t, MCPTransportSSE, cfg.MCP.Transport)
	assert.Equal(t, 9000, cfg.MCP.Port)
	assert.Equal(t, "localhost", cfg.MCP.Host)
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	withFakeEnv(t, map[string]string{
		"CHROMA_SCHEME":        "monochromatic",
		"CHROMA_SEED":          "99",
		"CHROMA_LOG_LEVEL":     "warn",
		"CHROMA_MCP_TRANSPORT": "sse",
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, harmony.SchemeMonochromatic, cfg.Scheme())
	assert.Equal(t, int64(99), cfg.Palette.Seed)
	assert.Equal(t, logging.LevelWarn, cfg.LogLevel())
	assert.Equal(t, MCPTransportSSE, cfg.MCP.Transport)
}

func TestLoadConfigDotEnv(t *testing.T) {
	_, wd := withFakeEnv(t, nil)
	osGetenv = os.Getenv

	t.Setenv("CHROMA_SCHEME", "placeholder")
	require.NoError(t, os.Unsetenv("CHROMA_SCHEME"))

	writeFile(t, filepath.Join(wd, dotEnvFileName), "CHROMA_SCHEME=analogous\n")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, harmony.SchemeAnalogous, cfg.Scheme())
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("bad seed", func(t *testing.T) {
		withFakeEnv(t, map[string]string{"CHROMA_SEED": "lots"})
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "CHROMA_SEED")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, wd := withFakeEnv(t, nil)
		writeFile(t, filepath.Join(wd, projectConfigDir, configFileName), "palette: [oops")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "project config")
	})

	t.Run("unknown scheme", func(t *testing.T) {
		withFakeEnv(t, map[string]string{"CHROMA_SCHEME": "pastel"})
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "palette.scheme")
	})
}

func TestLoadConfigFromPath(t *testing.T) {
	withFakeEnv(t, nil)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "palette:\n  scheme: split-complementary\n")

	cfg, err := LoadConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, harmony.SchemeSplitComplementary, cfg.Scheme())
	assert.Equal(t, 8095, cfg.MCP.Port)

	_, err = LoadConfigFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ChromaConfig)
		wantErr string
	}{
		{"defaults are valid", func(*ChromaConfig) {}, ""},
		{"bad level", func(c *ChromaConfig) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad transport", func(c *ChromaConfig) { c.MCP.Transport = "carrier-pigeon" }, "mcp.transport"},
		{"bad port", func(c *ChromaConfig) { c.MCP.Port = 70000 }, "mcp.port"},
		{"negative timeout", func(c *ChromaConfig) { c.UI.StatusTimeout = -time.Second }, "ui.statusTimeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestMergeConfigsKeepsBaseForZeroOverlay(t *testing.T) {
	base := GetDefaultConfig()
	assert.Equal(t, base, mergeConfigs(base, ChromaConfig{}))
}

func TestGetUserConfigDir(t *testing.T) {
	home, _ := withFakeEnv(t, nil)
	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "chroma"), dir)
}
