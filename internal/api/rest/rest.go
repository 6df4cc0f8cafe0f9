package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/flowdesk/wacrm/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// Meta webhook endpoints. No bearer auth: the handshake is token-based
	// and deliveries are authenticated by signature.
	router.GET("/webhooks/meta", handler.VerifyWebhook)
	router.POST("/webhooks/meta", handler.ReceiveWebhook)

	// API v1 routes (tenant-scoped, authenticated)
	v1 := router.Group("/api/v1", middleware.Auth(authCfg))
	{
		v1.POST("/templates", handler.CreateTemplate)
		v1.GET("/templates", handler.ListTemplates)
		v1.GET("/templates/:id", handler.GetTemplate)
		v1.PUT("/templates/:id", handler.UpdateTemplate)
		v1.DELETE("/templates/:id", handler.DeleteTemplate)

		// Lifecycle operations
		v1.POST("/templates/:id/submit", handler.SubmitTemplate)
		v1.POST("/templates/:id/approve", handler.ApproveTemplate)
		v1.POST("/templates/:id/reject", handler.RejectTemplate)
		v1.POST("/templates/:id/refresh-status", handler.RefreshTemplateStatus)
		v1.POST("/templates/sync", handler.SyncTemplates)
		v1.POST("/templates/:id/archive", handler.ArchiveTemplate)
		v1.POST("/templates/:id/restore", handler.RestoreTemplate)

		// Status history
		v1.GET("/templates/:id/history", handler.GetTemplateHistory)
		v1.GET("/status-changes", handler.GetStatusChanges)
		v1.GET("/status-changes/summary", handler.GetStatusSummary)
	}
}
