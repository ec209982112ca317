package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/idnakit/internal/api/models"
)

// GetConfig godoc
// @Summary Get current configuration
// @Description Returns the current server configuration (sensitive fields redacted)
// @Tags config
// @Produce json
// @Success 200 {object} models.ConfigResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /config [get]
func (h *Handler) GetConfig(c *gin.Context) {
	if h.cfg == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "config unavailable"})
		return
	}

	flags := h.cfg.IDNA.Flags()

	resp := models.ConfigResponse{
		Server: models.ServerConfigResponse{
			Host: h.cfg.Server.Host,
			Port: h.cfg.Server.Port,
		},
		IDNA: models.IDNAConfigResponse{
			Preset:                h.cfg.IDNA.Preset,
			CheckHyphens:          flags.CheckHyphens,
			UseSTD3ASCIIRules:     flags.UseSTD3ASCIIRules,
			VerifyDNSLength:       flags.VerifyDNSLength,
			IgnoreInvalidPunycode: flags.IgnoreInvalidPunycode,
		},
		History: models.HistoryConfigResponse{
			Enabled: h.cfg.History.Enabled,
			Path:    h.cfg.History.Path,
		},
		Logging: models.LoggingConfigResponse{
			Level:            h.cfg.Logging.Level,
			Structured:       h.cfg.Logging.Structured,
			StructuredFormat: h.cfg.Logging.StructuredFormat,
		},
	}

	c.JSON(http.StatusOK, resp)
}
