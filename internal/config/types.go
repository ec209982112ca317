package config

import (
	"github.com/jroosing/idnakit/internal/idna"
)

// ServerConfig contains HTTP server settings for the conversion API.
//
// Note: APIKey is intentionally treated as a secret and should not be
// returned by API endpoints.
type ServerConfig struct {
	Host   string `json:"host"`
	Port   int    `json:"port"`
	APIKey string `json:"api_key,omitempty"`
}

// IDNAConfig selects the default conversion policy applied to API requests
// that do not override individual flags.
type IDNAConfig struct {
	// Preset is one of "default", "strict", or "lax".
	Preset string `json:"preset"`
}

// Flags resolves the preset to an engine flag set.
func (c IDNAConfig) Flags() idna.Flags {
	switch c.Preset {
	case PresetStrict:
		return idna.MostStrict()
	case PresetLax:
		return idna.MostLax()
	default:
		return idna.DefaultFlags()
	}
}

// HistoryConfig controls the SQLite conversion-history store.
type HistoryConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `json:"level"`
	Structured       bool              `json:"structured"`
	StructuredFormat string            `json:"structured_format"`
	IncludePID       bool              `json:"include_pid"`
	ExtraFields      map[string]string `json:"extra_fields,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `json:"server"`
	IDNA    IDNAConfig    `json:"idna"`
	History HistoryConfig `json:"history"`
	Logging LoggingConfig `json:"logging"`
}
