package handlers

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/idnakit/internal/api/models"
	"github.com/shirou/gopsutil/v3/process"
)

// Stats godoc
// @Summary Server statistics
// @Description Returns runtime statistics including memory, goroutines, and conversion counters
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)
	toASCII, toUnicode, failures, avgLatencyUS := h.stats.Snapshot()

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		NumCPU:        runtime.NumCPU(),
		Process:       processStats(),
		Conversions: models.ConversionStatsResponse{
			ToASCIITotal:   toASCII,
			ToUnicodeTotal: toUnicode,
			Failures:       failures,
			AvgLatencyUS:   avgLatencyUS,
		},
	}

	if h.db != nil {
		if totals, err := h.db.HistoryTotals(); err == nil {
			resp.History = &models.HistoryTotalsResponse{
				Conversions: totals.Conversions,
				Failures:    totals.Failures,
			}
		} else if h.logger != nil {
			h.logger.Warn("failed to read history totals", "error", err)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// processStats reads OS-level stats for the current process. Returns nil on
// platforms or sandboxes where the information is unavailable.
func processStats() *models.ProcessStatsResponse {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil
	}

	mem, err := p.MemoryInfo()
	if err != nil {
		return nil
	}

	stats := &models.ProcessStatsResponse{
		RSSMB: float64(mem.RSS) / 1024 / 1024,
	}
	if cpu, err := p.CPUPercent(); err == nil {
		stats.CPUPercent = cpu
	}

	return stats
}
