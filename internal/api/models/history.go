package models

import "time"

// HistoryEntryResponse is one recorded conversion.
type HistoryEntryResponse struct {
	ID         int64     `json:"id"`
	Direction  string    `json:"direction"`
	Input      string    `json:"input"`
	Output     string    `json:"output"`
	OK         bool      `json:"ok"`
	Violations int       `json:"violations"`
	DurationUS int64     `json:"duration_us"`
	CreatedAt  time.Time `json:"created_at"`
}

// HistoryResponse lists recent conversions, newest first.
type HistoryResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
	Count   int                    `json:"count"`
}
