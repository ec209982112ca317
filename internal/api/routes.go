package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jroosing/idnakit/internal/api/handlers"
	"github.com/jroosing/idnakit/internal/api/middleware"
	"github.com/jroosing/idnakit/internal/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jroosing/idnakit/internal/api/docs" // swagger docs
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	api.GET("/health", h.Health)

	// Optional API key protection for everything but /health.
	protected := api.Group("")
	if cfg != nil && cfg.Server.APIKey != "" {
		protected.Use(middleware.RequireAPIKey(cfg.Server.APIKey))
	}

	protected.POST("/convert/ascii", h.ConvertASCII)
	protected.POST("/convert/unicode", h.ConvertUnicode)

	protected.GET("/stats", h.Stats)
	protected.GET("/config", h.GetConfig)
	protected.GET("/history", h.History)
}
