package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")

	// Rewrite routes - streaming is the primary path
	api.POST("/rewrite", h.RewriteStream)
	api.POST("/rewrite/batch", h.Rewrite)

	// Extraction routes
	api.POST("/extract/outcomes", h.ExtractOutcomes)
	api.POST("/extract/unstuck", h.ExtractUnstuck)
	api.POST("/extract/actions", h.ExtractActions)

	// Preset metadata
	api.GET("/presets", h.GetPresets)

	// Health
	api.GET("/health", h.GetHealth)
}
