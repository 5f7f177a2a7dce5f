// Package config provides configuration management for chroma.
//
// Configuration is layered. Later sources override earlier ones:
//
//  1. Defaults compiled into the binary (see GetDefaultConfig).
//  2. User configuration: ~/.config/chroma/config.yaml
//  3. Project configuration: ./.chroma/config.yaml
//  4. Environment: a ./.env file (loaded with godotenv, never overriding
//     variables already set) and the CHROMA_* variables below.
//
// LoadConfigFromPath replaces steps 2 and 3 with a single explicit file.
//
// # File format
//
//	palette:
//	  scheme: triadic       # random, analogous, monochromatic, triadic,
//	                        # complementary, split-complementary
//	  seed: 42              # 0 seeds from the clock
//	ui:
//	  darkMode: true
//	  statusTimeout: 2s
//	  showHelp: false
//	logging:
//	  level: info           # debug, info, warn, error
//	mcp:
//	  transport: stdio      # stdio or sse
//	  host: localhost
//	  port: 8095
//
// # Environment Variables
//
//   - CHROMA_SCHEME: palette.scheme
//   - CHROMA_SEED: palette.seed
//   - CHROMA_LOG_LEVEL: logging.level
//   - CHROMA_MCP_TRANSPORT: mcp.transport
package config
