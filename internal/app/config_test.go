package app

import (
	"testing"

	"chroma/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(true, false, "/tmp/chroma.yaml")

	assert.True(t, cfg.NoTUI)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "/tmp/chroma.yaml", cfg.ConfigPath)
	assert.Nil(t, cfg.ChromaConfig)
}

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		wantScheme string
		wantSeed   int64
		wantLevel  string
	}{
		{
			name:       "no flags keep file values",
			cfg:        Config{},
			wantScheme: "triadic",
			wantSeed:   7,
			wantLevel:  "info",
		},
		{
			name:       "flags win",
			cfg:        Config{Scheme: "analogous", Seed: 42, Debug: true},
			wantScheme: "analogous",
			wantSeed:   42,
			wantLevel:  "debug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chromaCfg := config.GetDefaultConfig()
			chromaCfg.Palette.Scheme = "triadic"
			chromaCfg.Palette.Seed = 7
			cfg := tt.cfg
			cfg.ChromaConfig = &chromaCfg

			cfg.applyOverrides()

			assert.Equal(t, tt.wantScheme, chromaCfg.Palette.Scheme)
			assert.Equal(t, tt.wantSeed, chromaCfg.Palette.Seed)
			assert.Equal(t, tt.wantLevel, chromaCfg.Logging.Level)
		})
	}
}

func TestApplyOverridesWithoutConfig(t *testing.T) {
	cfg := &Config{Scheme: "triadic"}
	assert.NotPanics(t, cfg.applyOverrides)
}
