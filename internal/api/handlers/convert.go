package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/idnakit/internal/api/models"
	"github.com/jroosing/idnakit/internal/config"
	"github.com/jroosing/idnakit/internal/database"
	"github.com/jroosing/idnakit/internal/idna"
)

// ConvertASCII godoc
// @Summary Convert a domain to ASCII form
// @Description Maps, normalizes, and validates the domain, then Punycode-encodes non-ASCII labels
// @Tags convert
// @Accept json
// @Produce json
// @Param request body models.ConvertRequest true "Conversion request"
// @Success 200 {object} models.ConvertResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ConvertResponse
// @Security ApiKeyAuth
// @Router /convert/ascii [post]
func (h *Handler) ConvertASCII(c *gin.Context) {
	h.convert(c, database.DirectionToASCII)
}

// ConvertUnicode godoc
// @Summary Convert a domain to Unicode form
// @Description Maps, normalizes, and validates the domain, decoding Punycode labels to Unicode
// @Tags convert
// @Accept json
// @Produce json
// @Param request body models.ConvertRequest true "Conversion request"
// @Success 200 {object} models.ConvertResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ConvertResponse
// @Security ApiKeyAuth
// @Router /convert/unicode [post]
func (h *Handler) ConvertUnicode(c *gin.Context) {
	h.convert(c, database.DirectionToUnicode)
}

func (h *Handler) convert(c *gin.Context, direction string) {
	var req models.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	flags, err := h.resolveFlags(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	start := time.Now()
	var output string
	var convErr error
	if direction == database.DirectionToASCII {
		output, convErr = idna.ToASCII(req.Domain, flags)
	} else {
		output, convErr = idna.ToUnicode(req.Domain, flags)
	}
	elapsed := time.Since(start)

	resp := models.ConvertResponse{
		Input:      req.Domain,
		Output:     output,
		OK:         convErr == nil,
		DurationUS: elapsed.Microseconds(),
	}

	if convErr != nil {
		var mapErr *idna.MappingErrors
		if !errors.As(convErr, &mapErr) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: convErr.Error()})
			return
		}
		resp.Violations = make([]models.ViolationResponse, 0, len(mapErr.Violations))
		for _, v := range mapErr.Violations {
			vr := models.ViolationResponse{
				Kind:    v.Kind.String(),
				Label:   v.Label,
				Length:  v.Length,
				Message: v.Message(),
			}
			if v.Rune != 0 {
				vr.Rune = string(v.Rune)
			}
			resp.Violations = append(resp.Violations, vr)
		}
	}

	h.stats.observe(direction, resp.OK, elapsed)
	h.recordConversion(direction, resp, elapsed)

	status := http.StatusOK
	if !resp.OK {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, resp)
}

// resolveFlags layers the request's per-flag overrides on top of the
// requested preset, falling back to the server's configured preset.
func (h *Handler) resolveFlags(req models.ConvertRequest) (idna.Flags, error) {
	var flags idna.Flags
	switch req.Preset {
	case "":
		flags = h.cfg.IDNA.Flags()
	case config.PresetDefault:
		flags = idna.DefaultFlags()
	case config.PresetStrict:
		flags = idna.MostStrict()
	case config.PresetLax:
		flags = idna.MostLax()
	default:
		return idna.Flags{}, errors.New("unknown preset: " + req.Preset)
	}

	if req.CheckHyphens != nil {
		flags.CheckHyphens = *req.CheckHyphens
	}
	if req.UseSTD3ASCIIRules != nil {
		flags.UseSTD3ASCIIRules = *req.UseSTD3ASCIIRules
	}
	if req.VerifyDNSLength != nil {
		flags.VerifyDNSLength = *req.VerifyDNSLength
	}
	if req.IgnoreInvalidPunycode != nil {
		flags.IgnoreInvalidPunycode = *req.IgnoreInvalidPunycode
	}

	return flags, nil
}

func (h *Handler) recordConversion(direction string, resp models.ConvertResponse, elapsed time.Duration) {
	if h.db == nil {
		return
	}

	err := h.db.RecordConversion(database.ConversionRecord{
		Direction:  direction,
		Input:      resp.Input,
		Output:     resp.Output,
		OK:         resp.OK,
		Violations: len(resp.Violations),
		DurationUS: elapsed.Microseconds(),
	})
	if err != nil && h.logger != nil {
		h.logger.Warn("failed to record conversion", "error", err)
	}
}
