package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/idnakit/internal/api/models"
)

// Health godoc
// @Summary Health check
// @Description Returns server health status, including the history store when enabled
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "history store unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}
