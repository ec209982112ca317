// Package handlers_test provides behavior tests for the API handlers package.
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/idnakit/internal/api/handlers"
	"github.com/jroosing/idnakit/internal/api/models"
	"github.com/jroosing/idnakit/internal/config"
	"github.com/jroosing/idnakit/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func createTestHandler(_ *testing.T) *handlers.Handler {
	cfg := config.Default()
	return handlers.New(cfg, nil, nil)
}

func createTestHandlerWithDB(t *testing.T) (*handlers.Handler, *database.DB) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "handlers_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return handlers.New(config.Default(), db, nil), db
}

func performRequest(r http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ============================================================================
// Health Endpoint Tests
// ============================================================================

func TestHealth_ReturnsOK(t *testing.T) {
	h := createTestHandler(t)
	router := gin.New()
	router.GET("/health", h.Health)

	w := performRequest(router, "GET", "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

// ============================================================================
// Convert Endpoint Tests
// ============================================================================

func TestConvertASCII_EncodesUnicodeDomain(t *testing.T) {
	h := createTestHandler(t)
	router := gin.New()
	router.POST("/convert/ascii", h.ConvertASCII)

	w := performRequest(router, "POST", "/convert/ascii", `{"domain":"bücher.example"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ConvertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "bücher.example", resp.Input)
	assert.Equal(t, "xn--bcher-kva.example", resp.Output)
	assert.Empty(t, resp.Violations)
}

func TestConvertUnicode_DecodesACEDomain(t *testing.T) {
	h := createTestHandler(t)
	router := gin.New()
	router.POST("/convert/unicode", h.ConvertUnicode)

	w := performRequest(router, "POST", "/convert/unicode", `{"domain":"xn--bcher-kva.example"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ConvertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "bücher.example", resp.Output)
}

func TestConvertASCII_ReportsViolations(t *testing.T) {
	h := createTestHandler(t)
	router := gin.New()
	router.POST("/convert/ascii", h.ConvertASCII)

	w := performRequest(router, "POST", "/convert/ascii", `{"domain":"xn--a.example","preset":"strict"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp models.ConvertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, "xn--a.example", resp.Output, "failed conversion echoes the input")
	require.NotEmpty(t, resp.Violations)
	assert.NotEmpty(t, resp.Violations[0].Kind)
	assert.NotEmpty(t, resp.Violations[0].Message)
}

func TestConvertASCII_FlagOverrides(t *testing.T) {
	h := createTestHandler(t)
	router := gin.New()
	router.POST("/convert/ascii", h.ConvertASCII)

	// Underscore is rejected only under STD3 rules.
	w := performRequest(router, "POST", "/convert/ascii", `{"domain":"a_b.example","use_std3_ascii_rules":true}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp models.ConvertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)

	w = performRequest(router, "POST", "/convert/ascii", `{"domain":"a_b.example"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
}

func TestConvertASCII_MissingDomain(t *testing.T) {
	h := createTestHandler(t)
	router := gin.New()
	router.POST("/convert/ascii", h.ConvertASCII)

	w := performRequest(router, "POST", "/convert/ascii", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConvertASCII_UnknownPreset(t *testing.T) {
	h := createTestHandler(t)
	router := gin.New()
	router.POST("/convert/ascii", h.ConvertASCII)

	w := performRequest(router, "POST", "/convert/ascii", `{"domain":"a.example","preset":"paranoid"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "paranoid")
}

func TestConvert_RecordsHistory(t *testing.T) {
	h, db := createTestHandlerWithDB(t)
	router := gin.New()
	router.POST("/convert/ascii", h.ConvertASCII)

	w := performRequest(router, "POST", "/convert/ascii", `{"domain":"bücher.example"}`)
	require.Equal(t, http.StatusOK, w.Code)

	records, err := db.RecentConversions(10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, database.DirectionToASCII, records[0].Direction)
	assert.Equal(t, "xn--bcher-kva.example", records[0].Output)
	assert.True(t, records[0].OK)
}

// ============================================================================
// Stats Endpoint Tests
// ============================================================================

func TestStats_CountsConversions(t *testing.T) {
	h := createTestHandler(t)
	router := gin.New()
	router.POST("/convert/ascii", h.ConvertASCII)
	router.GET("/stats", h.Stats)

	performRequest(router, "POST", "/convert/ascii", `{"domain":"a.example"}`)
	performRequest(router, "POST", "/convert/ascii", `{"domain":"xn--a.example","preset":"strict"}`)

	w := performRequest(router, "GET", "/stats", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ServerStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(2), resp.Conversions.ToASCIITotal)
	assert.Equal(t, uint64(1), resp.Conversions.Failures)
	assert.Positive(t, resp.GoRoutines)
	assert.Positive(t, resp.NumCPU)
}

// ============================================================================
// History Endpoint Tests
// ============================================================================

func TestHistory_DisabledWithoutDB(t *testing.T) {
	h := createTestHandler(t)
	router := gin.New()
	router.GET("/history", h.History)

	w := performRequest(router, "GET", "/history", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHistory_ReturnsRecentEntries(t *testing.T) {
	h, _ := createTestHandlerWithDB(t)
	router := gin.New()
	router.POST("/convert/unicode", h.ConvertUnicode)
	router.GET("/history", h.History)

	performRequest(router, "POST", "/convert/unicode", `{"domain":"xn--fiqs8s"}`)

	w := performRequest(router, "GET", "/history", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, database.DirectionToUnicode, resp.Entries[0].Direction)
	assert.Equal(t, "中国", resp.Entries[0].Output)
}

func TestHistory_RejectsBadLimit(t *testing.T) {
	h, _ := createTestHandlerWithDB(t)
	router := gin.New()
	router.GET("/history", h.History)

	w := performRequest(router, "GET", "/history?limit=lots", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ============================================================================
// Config Endpoint Tests
// ============================================================================

func TestGetConfig_RedactsAPIKey(t *testing.T) {
	cfg := config.Default()
	cfg.Server.APIKey = "super-secret"
	h := handlers.New(cfg, nil, nil)
	router := gin.New()
	router.GET("/config", h.GetConfig)

	w := performRequest(router, "GET", "/config", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "super-secret")

	var resp models.ConfigResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, cfg.Server.Host, resp.Server.Host)
	assert.Equal(t, cfg.IDNA.Preset, resp.IDNA.Preset)
}
