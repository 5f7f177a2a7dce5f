package app

import (
	"chroma/internal/palette"
)

// Services holds the shared runtime objects
type Services struct {
	Generator *palette.Generator
}

// InitializeServices creates the palette generator from the loaded
// configuration. A zero seed seeds from the clock.
func InitializeServices(cfg *Config) (*Services, error) {
	var seed int64
	if cfg.ChromaConfig != nil {
		seed = cfg.ChromaConfig.Palette.Seed
	}
	return &Services{
		Generator: palette.NewSeededGenerator(seed),
	}, nil
}
