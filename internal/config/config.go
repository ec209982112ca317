// Package config provides configuration types, loading, and validation for
// the idnakit conversion service.
//
// Configuration is a JSON file resolved from the -config flag or the
// IDNAKIT_CONFIG environment variable; an empty path yields the built-in
// defaults. The conversion engine itself takes its policy as an explicit
// flag set, so this package only decides which preset the service hands it.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Preset names accepted by IDNAConfig.Preset.
const (
	PresetDefault = "default"
	PresetStrict  = "strict"
	PresetLax     = "lax"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		IDNA: IDNAConfig{
			Preset: PresetDefault,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "idnakit.db",
		},
		Logging: LoggingConfig{
			Level:            "INFO",
			StructuredFormat: "json",
		},
	}
}

// Load reads the configuration from path, or returns the defaults when path
// is empty. The result has already been validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := json.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolveConfigPath returns the config path from the flag value, falling
// back to the IDNAKIT_CONFIG environment variable.
func ResolveConfigPath(flagValue string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv("IDNAKIT_CONFIG"))
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return errors.New("server.port must be 1..65535")
	}

	// Normalize the IDNA preset
	cfg.IDNA.Preset = strings.ToLower(strings.TrimSpace(cfg.IDNA.Preset))
	switch cfg.IDNA.Preset {
	case "":
		cfg.IDNA.Preset = PresetDefault
	case PresetDefault, PresetStrict, PresetLax:
	default:
		return fmt.Errorf("idna.preset must be %q, %q or %q", PresetDefault, PresetStrict, PresetLax)
	}

	// Normalize history
	if cfg.History.Enabled && cfg.History.Path == "" {
		cfg.History.Path = "idnakit.db"
	}

	// Normalize logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	return nil
}
