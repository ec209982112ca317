package models

import "time"

// ServerStatsResponse contains server runtime statistics.
type ServerStatsResponse struct {
	Uptime        string                  `json:"uptime"`
	UptimeSeconds int64                   `json:"uptime_seconds"`
	StartTime     time.Time               `json:"start_time"`
	GoRoutines    int                     `json:"goroutines"`
	MemoryAllocMB float64                 `json:"memory_alloc_mb"`
	NumCPU        int                     `json:"num_cpu"`
	Process       *ProcessStatsResponse   `json:"process,omitempty"`
	Conversions   ConversionStatsResponse `json:"conversions"`
	History       *HistoryTotalsResponse  `json:"history,omitempty"`
}

// ProcessStatsResponse contains OS-level process statistics.
type ProcessStatsResponse struct {
	RSSMB      float64 `json:"rss_mb"`
	CPUPercent float64 `json:"cpu_percent"`
}

// ConversionStatsResponse contains in-process conversion counters since start.
type ConversionStatsResponse struct {
	ToASCIITotal   uint64 `json:"to_ascii_total"`
	ToUnicodeTotal uint64 `json:"to_unicode_total"`
	Failures       uint64 `json:"failures"`
	AvgLatencyUS   int64  `json:"avg_latency_us"`
}

// HistoryTotalsResponse contains aggregate counters from the history store.
type HistoryTotalsResponse struct {
	Conversions int64 `json:"conversions"`
	Failures    int64 `json:"failures"`
}
