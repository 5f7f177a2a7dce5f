package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"chroma/internal/harmony"
	"chroma/pkg/logging"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var osGetenv = os.Getenv

const (
	userConfigDir    = ".config/chroma"
	projectConfigDir = ".chroma"
	configFileName   = "config.yaml"
	dotEnvFileName   = ".env"
)

// LoadConfig loads the chroma configuration by layering default, user,
// project and environment settings.
func LoadConfig() (ChromaConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional.
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else if config, err = overlayFile(config, userConfigPath); err != nil {
		return ChromaConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else if config, err = overlayFile(config, projectConfigPath); err != nil {
		return ChromaConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	return finish(config)
}

// LoadConfigFromPath loads defaults overlaid with a single config file.
// Unlike the layered files, an explicit path must exist.
func LoadConfigFromPath(path string) (ChromaConfig, error) {
	fileConfig, err := loadConfigFromFile(path)
	if err != nil {
		return ChromaConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return finish(mergeConfigs(GetDefaultConfig(), fileConfig))
}

func finish(config ChromaConfig) (ChromaConfig, error) {
	config, err := applyEnv(config)
	if err != nil {
		return ChromaConfig{}, err
	}
	if err := config.Validate(); err != nil {
		return ChromaConfig{}, err
	}
	return config, nil
}

// overlayFile merges the file at path into base if it exists.
func overlayFile(base ChromaConfig, path string) (ChromaConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	logging.Debug("Config", "Loaded configuration layer %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a ChromaConfig from a YAML file.
func loadConfigFromFile(filePath string) (ChromaConfig, error) {
	var config ChromaConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return ChromaConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return ChromaConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// overlay leave base untouched.
func mergeConfigs(base, overlay ChromaConfig) ChromaConfig {
	merged := base

	if overlay.Palette.Scheme != "" {
		merged.Palette.Scheme = overlay.Palette.Scheme
	}
	if overlay.Palette.Seed != 0 {
		merged.Palette.Seed = overlay.Palette.Seed
	}

	if overlay.UI.DarkMode != nil {
		dark := *overlay.UI.DarkMode
		merged.UI.DarkMode = &dark
	}
	if overlay.UI.StatusTimeout != 0 {
		merged.UI.StatusTimeout = overlay.UI.StatusTimeout
	}
	if overlay.UI.ShowHelp {
		merged.UI.ShowHelp = true
	}

	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}

	if overlay.MCP.Transport != "" {
		merged.MCP.Transport = overlay.MCP.Transport
	}
	if overlay.MCP.Host != "" {
		merged.MCP.Host = overlay.MCP.Host
	}
	if overlay.MCP.Port != 0 {
		merged.MCP.Port = overlay.MCP.Port
	}

	return merged
}

// applyEnv loads ./.env, if present, and applies CHROMA_* overrides.
func applyEnv(config ChromaConfig) (ChromaConfig, error) {
	if wd, err := osGetwd(); err == nil {
		envPath := filepath.Join(wd, dotEnvFileName)
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return ChromaConfig{}, fmt.Errorf("error loading %s: %w", envPath, err)
		}
	}

	if v := osGetenv("CHROMA_SCHEME"); v != "" {
		config.Palette.Scheme = v
	}
	if v := osGetenv("CHROMA_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return ChromaConfig{}, fmt.Errorf("invalid CHROMA_SEED %q: %w", v, err)
		}
		config.Palette.Seed = seed
	}
	if v := osGetenv("CHROMA_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := osGetenv("CHROMA_MCP_TRANSPORT"); v != "" {
		config.MCP.Transport = v
	}
	return config, nil
}

// Validate reports the first invalid setting.
func (c ChromaConfig) Validate() error {
	if _, err := harmony.ParseScheme(c.Palette.Scheme); err != nil {
		return fmt.Errorf("palette.scheme: %w", err)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if c.UI.StatusTimeout < 0 {
		return fmt.Errorf("ui.statusTimeout must not be negative, got %s", c.UI.StatusTimeout)
	}
	switch c.MCP.Transport {
	case MCPTransportStdio, MCPTransportSSE:
	default:
		return fmt.Errorf("mcp.transport: unknown transport %q (want %s or %s)", c.MCP.Transport, MCPTransportStdio, MCPTransportSSE)
	}
	if c.MCP.Port <= 0 || c.MCP.Port > 65535 {
		return fmt.Errorf("mcp.port: %d is out of range", c.MCP.Port)
	}
	return nil
}

// Scheme returns the configured scheme, falling back to random.
func (c ChromaConfig) Scheme() harmony.Scheme {
	s, err := harmony.ParseScheme(c.Palette.Scheme)
	if err != nil {
		return harmony.SchemeRandom
	}
	return s
}

// LogLevel returns the configured log level, falling back to info.
func (c ChromaConfig) LogLevel() logging.LogLevel {
	l, _ := logging.ParseLevel(c.Logging.Level)
	return l
}

// GetUserConfigDir returns the user configuration directory path.
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
