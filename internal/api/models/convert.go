package models

// ConvertRequest is the body of a conversion request.
//
// Preset selects a named flag set ("default", "strict", "lax"); when empty
// the server's configured preset applies. The individual flag fields are
// optional overrides layered on top of the preset.
type ConvertRequest struct {
	Domain string `json:"domain" binding:"required"`
	Preset string `json:"preset,omitempty"`

	CheckHyphens          *bool `json:"check_hyphens,omitempty"`
	UseSTD3ASCIIRules     *bool `json:"use_std3_ascii_rules,omitempty"`
	VerifyDNSLength       *bool `json:"verify_dns_length,omitempty"`
	IgnoreInvalidPunycode *bool `json:"ignore_invalid_punycode,omitempty"`
}

// ViolationResponse describes one recorded conversion violation.
type ViolationResponse struct {
	Kind    string `json:"kind"`
	Label   string `json:"label,omitempty"`
	Rune    string `json:"rune,omitempty"`
	Length  int    `json:"length,omitempty"`
	Message string `json:"message"`
}

// ConvertResponse is the result of a conversion request. When OK is false
// the output echoes the input unchanged and Violations lists every problem
// found, in discovery order.
type ConvertResponse struct {
	Input      string              `json:"input"`
	Output     string              `json:"output"`
	OK         bool                `json:"ok"`
	Violations []ViolationResponse `json:"violations,omitempty"`
	DurationUS int64               `json:"duration_us"`
}
