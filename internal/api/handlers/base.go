// Package handlers implements the REST API endpoint handlers for idnakit.
//
// REST API Endpoints:
//
// Conversion:
//   - POST /api/v1/convert/ascii - Convert a domain to its ASCII (ACE) form
//   - POST /api/v1/convert/unicode - Convert a domain to its Unicode form
//
// System:
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats - Runtime statistics (uptime, memory, conversion counters)
//   - GET /api/v1/config - Current configuration (sensitive values redacted)
//   - GET /api/v1/history - Recent conversions from the history store
//
// Authentication:
//
// All endpoints except /health support optional API key authentication via
// the X-API-Key header. When a key is configured it is required for every
// other endpoint.
//
// @title idnakit Conversion API
// @version 1.0
// @description REST API for internationalized domain name conversion.
//
// @contact.name idnakit Support
// @contact.url https://github.com/jroosing/idnakit
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8080
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jroosing/idnakit/internal/config"
	"github.com/jroosing/idnakit/internal/database"
)

// ConvertStats counts conversions handled since the server started.
// All fields are updated atomically, so a snapshot may be mildly
// inconsistent across fields; that is fine for monitoring.
type ConvertStats struct {
	toASCII   atomic.Uint64
	toUnicode atomic.Uint64
	failures  atomic.Uint64
	totalUS   atomic.Int64
}

func (s *ConvertStats) observe(direction string, ok bool, elapsed time.Duration) {
	if direction == database.DirectionToASCII {
		s.toASCII.Add(1)
	} else {
		s.toUnicode.Add(1)
	}
	if !ok {
		s.failures.Add(1)
	}
	s.totalUS.Add(elapsed.Microseconds())
}

// Snapshot returns the current counters plus the average latency over all
// conversions so far.
func (s *ConvertStats) Snapshot() (toASCII, toUnicode, failures uint64, avgLatencyUS int64) {
	toASCII = s.toASCII.Load()
	toUnicode = s.toUnicode.Load()
	failures = s.failures.Load()
	if total := toASCII + toUnicode; total > 0 {
		avgLatencyUS = s.totalUS.Load() / int64(total)
	}
	return toASCII, toUnicode, failures, avgLatencyUS
}

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	db        *database.DB
	logger    *slog.Logger
	startTime time.Time
	stats     ConvertStats
}

// New creates a new Handler with the given configuration and history store.
// db may be nil when history is disabled.
func New(cfg *config.Config, db *database.DB, logger *slog.Logger) *Handler {
	return &Handler{
		cfg:       cfg,
		db:        db,
		logger:    logger,
		startTime: time.Now(),
	}
}

// DB returns the history store for handlers that need it.
func (h *Handler) DB() *database.DB {
	return h.db
}
