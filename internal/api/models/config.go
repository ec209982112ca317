package models

// ServerConfigResponse mirrors the server section of the configuration.
// The API key is deliberately absent.
type ServerConfigResponse struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// IDNAConfigResponse mirrors the conversion-policy section, with the preset
// resolved to its individual flags.
type IDNAConfigResponse struct {
	Preset                string `json:"preset"`
	CheckHyphens          bool   `json:"check_hyphens"`
	UseSTD3ASCIIRules     bool   `json:"use_std3_ascii_rules"`
	VerifyDNSLength       bool   `json:"verify_dns_length"`
	IgnoreInvalidPunycode bool   `json:"ignore_invalid_punycode"`
}

// HistoryConfigResponse mirrors the history-store section.
type HistoryConfigResponse struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// LoggingConfigResponse mirrors the logging section.
type LoggingConfigResponse struct {
	Level            string `json:"level"`
	Structured       bool   `json:"structured"`
	StructuredFormat string `json:"structured_format"`
}

// ConfigResponse is the full configuration as exposed by the API.
type ConfigResponse struct {
	Server  ServerConfigResponse  `json:"server"`
	IDNA    IDNAConfigResponse    `json:"idna"`
	History HistoryConfigResponse `json:"history"`
	Logging LoggingConfigResponse `json:"logging"`
}
