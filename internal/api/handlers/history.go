package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/idnakit/internal/api/models"
	"github.com/jroosing/idnakit/internal/helpers"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// History godoc
// @Summary Recent conversions
// @Description Returns the most recent conversions from the history store, newest first
// @Tags system
// @Produce json
// @Param limit query int false "Maximum number of entries (1-500, default 50)"
// @Success 200 {object} models.HistoryResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /history [get]
func (h *Handler) History(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "history is disabled"})
		return
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid limit: " + raw})
			return
		}
		limit = helpers.ClampInt(n, 1, maxHistoryLimit)
	}

	records, err := h.db.RecentConversions(limit)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to query history", "error", err)
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to query history"})
		return
	}

	resp := models.HistoryResponse{Entries: make([]models.HistoryEntryResponse, 0, len(records))}
	for _, r := range records {
		resp.Entries = append(resp.Entries, models.HistoryEntryResponse{
			ID:         r.ID,
			Direction:  r.Direction,
			Input:      r.Input,
			Output:     r.Output,
			OK:         r.OK,
			Violations: r.Violations,
			DurationUS: r.DurationUS,
			CreatedAt:  r.CreatedAt,
		})
	}
	resp.Count = len(resp.Entries)

	c.JSON(http.StatusOK, resp)
}
