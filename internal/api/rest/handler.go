package rest

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/flowdesk/wacrm/internal/adapter"
	"github.com/flowdesk/wacrm/internal/api/middleware"
	"github.com/flowdesk/wacrm/internal/domain"
	"github.com/flowdesk/wacrm/internal/lifecycle"
	"github.com/flowdesk/wacrm/internal/logger"
	"github.com/flowdesk/wacrm/internal/webhook"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateTemplate creates a new draft template
	// POST /api/v1/templates
	CreateTemplate(c *gin.Context)

	// GetTemplate retrieves a single template
	// GET /api/v1/templates/:id
	GetTemplate(c *gin.Context)

	// ListTemplates retrieves templates with optional filters
	// GET /api/v1/templates?status=<status>&active_only=<bool>&limit=<limit>&offset=<offset>
	ListTemplates(c *gin.Context)

	// UpdateTemplate edits template content. Approved and disabled templates
	// fork a new draft version instead of mutating in place.
	// PUT /api/v1/templates/:id
	UpdateTemplate(c *gin.Context)

	// SubmitTemplate submits a draft for external review
	// POST /api/v1/templates/:id/submit
	SubmitTemplate(c *gin.Context)

	// ApproveTemplate applies an operator approval override
	// POST /api/v1/templates/:id/approve
	ApproveTemplate(c *gin.Context)

	// RejectTemplate applies an operator rejection override
	// POST /api/v1/templates/:id/reject
	RejectTemplate(c *gin.Context)

	// RefreshTemplateStatus performs a one-shot status check against Meta
	// POST /api/v1/templates/:id/refresh-status
	RefreshTemplateStatus(c *gin.Context)

	// SyncTemplates reconciles the tenant's templates against Meta's full list
	// POST /api/v1/templates/sync
	SyncTemplates(c *gin.Context)

	// ArchiveTemplate archives a template
	// POST /api/v1/templates/:id/archive
	ArchiveTemplate(c *gin.Context)

	// RestoreTemplate reactivates an archived template
	// POST /api/v1/templates/:id/restore
	RestoreTemplate(c *gin.Context)

	// DeleteTemplate hard-deletes a draft or rejected template
	// DELETE /api/v1/templates/:id
	DeleteTemplate(c *gin.Context)

	// GetTemplateHistory replays one template's transitions, oldest first
	// GET /api/v1/templates/:id/history?limit=<limit>&offset=<offset>
	GetTemplateHistory(c *gin.Context)

	// GetStatusChanges returns a tenant-wide transition feed, newest first
	// GET /api/v1/status-changes?to_status=<status>&since=<rfc3339>&limit=<limit>&offset=<offset>
	GetStatusChanges(c *gin.Context)

	// GetStatusSummary aggregates transition counts over a time range
	// GET /api/v1/status-changes/summary?from=<rfc3339>&to=<rfc3339>
	GetStatusSummary(c *gin.Context)

	// VerifyWebhook answers Meta's subscription handshake
	// GET /webhooks/meta?hub.mode=subscribe&hub.verify_token=<token>&hub.challenge=<challenge>
	VerifyWebhook(c *gin.Context)

	// ReceiveWebhook ingests a signed webhook batch
	// POST /webhooks/meta
	ReceiveWebhook(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	manager     lifecycle.Manager
	reconciler  webhook.Reconciler
	clock       adapter.Clock
	verifyToken string
}

// NewHandler creates a new REST API handler
func NewHandler(manager lifecycle.Manager, reconciler webhook.Reconciler, clock adapter.Clock, verifyToken string) Handler {
	return &handler{
		manager:     manager,
		reconciler:  reconciler,
		clock:       clock,
		verifyToken: verifyToken,
	}
}

// CreateTemplate creates a new draft template
func (h *handler) CreateTemplate(c *gin.Context) {
	var req createTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	tmpl, err := h.manager.CreateTemplate(c.Request.Context(), lifecycle.CreateInput{
		TenantID:        middleware.TenantID(c),
		Name:            req.Name,
		Language:        req.Language,
		Category:        domain.TemplateCategory(req.Category),
		Components:      req.Components,
		CreatedByUserID: middleware.UserID(c),
	})
	if err != nil {
		respondDomainError(c, err, "Failed to create template")
		return
	}

	c.JSON(http.StatusCreated, toTemplateResponse(tmpl))
}

// GetTemplate retrieves a single template
func (h *handler) GetTemplate(c *gin.Context) {
	tmpl, err := h.manager.GetTemplate(c.Request.Context(), middleware.TenantID(c), c.Param("id"))
	if err != nil {
		respondDomainError(c, err, "Failed to get template")
		return
	}

	c.JSON(http.StatusOK, toTemplateResponse(tmpl))
}

// ListTemplates retrieves templates with optional filters
func (h *handler) ListTemplates(c *gin.Context) {
	filter, err := ParseListTemplatesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	filter.TenantID = middleware.TenantID(c)

	templates, total, err := h.manager.ListTemplates(c.Request.Context(), *filter)
	if err != nil {
		respondInternalError(c, err, "Failed to list templates")
		return
	}

	response := TemplateListResponse{
		Templates: make([]TemplateResponse, 0, len(templates)),
		Total:     total,
		Limit:     filter.Limit,
		Offset:    filter.Offset,
	}
	for _, tmpl := range templates {
		response.Templates = append(response.Templates, toTemplateResponse(tmpl))
	}

	c.JSON(http.StatusOK, response)
}

// UpdateTemplate edits template content
func (h *handler) UpdateTemplate(c *gin.Context) {
	var req updateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	tmpl, err := h.manager.UpdateContent(c.Request.Context(), middleware.TenantID(c), c.Param("id"), lifecycle.ContentInput{
		Category:        domain.TemplateCategory(req.Category),
		Components:      req.Components,
		UpdatedByUserID: middleware.UserID(c),
	})
	if err != nil {
		respondDomainError(c, err, "Failed to update template")
		return
	}

	c.JSON(http.StatusOK, toTemplateResponse(tmpl))
}

// SubmitTemplate submits a draft for external review
func (h *handler) SubmitTemplate(c *gin.Context) {
	tmpl, err := h.manager.Submit(c.Request.Context(), middleware.TenantID(c), c.Param("id"), middleware.UserID(c))
	if err != nil {
		respondDomainError(c, err, "Failed to submit template")
		return
	}

	c.JSON(http.StatusOK, toTemplateResponse(tmpl))
}

// ApproveTemplate applies an operator approval override
func (h *handler) ApproveTemplate(c *gin.Context) {
	h.applyManualDecision(c, domain.TemplateStatusApproved)
}

// RejectTemplate applies an operator rejection override
func (h *handler) RejectTemplate(c *gin.Context) {
	h.applyManualDecision(c, domain.TemplateStatusRejected)
}

// applyManualDecision routes an operator decision through the same idempotent
// entry point the poller and the webhook use
func (h *handler) applyManualDecision(c *gin.Context, newStatus domain.TemplateStatus) {
	var req reasonRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	tenantID := middleware.TenantID(c)
	templateID := c.Param("id")

	outcome, err := h.manager.UpdateApprovalStatus(c.Request.Context(), lifecycle.StatusUpdate{
		TemplateID:      templateID,
		TenantID:        tenantID,
		NewStatus:       newStatus,
		Reason:          req.Reason,
		Source:          domain.TransitionSourceUser,
		ChangedByUserID: middleware.UserID(c),
	})
	if err != nil {
		respondDomainError(c, err, "Failed to apply decision")
		return
	}

	switch outcome {
	case lifecycle.OutcomeApplied, lifecycle.OutcomeDuplicate:
		tmpl, err := h.manager.GetTemplate(c.Request.Context(), tenantID, templateID)
		if err != nil {
			respondDomainError(c, err, "Failed to get template")
			return
		}
		c.JSON(http.StatusOK, toTemplateResponse(tmpl))
	default:
		respondWithError(c, http.StatusConflict, errCodeConflict,
			"Template status does not permit this decision")
	}
}

// RefreshTemplateStatus performs a one-shot status check against Meta
func (h *handler) RefreshTemplateStatus(c *gin.Context) {
	tmpl, err := h.manager.RefreshStatus(c.Request.Context(), middleware.TenantID(c), c.Param("id"), middleware.UserID(c))
	if err != nil {
		respondDomainError(c, err, "Failed to refresh template status")
		return
	}

	c.JSON(http.StatusOK, toTemplateResponse(tmpl))
}

// SyncTemplates reconciles the tenant's templates against Meta's full list
func (h *handler) SyncTemplates(c *gin.Context) {
	applied, err := h.manager.SyncStatuses(c.Request.Context(), middleware.TenantID(c), middleware.UserID(c))
	if err != nil {
		respondDomainError(c, err, "Failed to sync template statuses")
		return
	}

	c.JSON(http.StatusOK, StatusSyncResponse{Applied: applied})
}

// ArchiveTemplate archives a template
func (h *handler) ArchiveTemplate(c *gin.Context) {
	var req reasonRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.manager.Archive(c.Request.Context(), middleware.TenantID(c), c.Param("id"), req.Reason, middleware.UserID(c)); err != nil {
		respondDomainError(c, err, "Failed to archive template")
		return
	}

	c.Status(http.StatusNoContent)
}

// RestoreTemplate reactivates an archived template
func (h *handler) RestoreTemplate(c *gin.Context) {
	tmpl, err := h.manager.Restore(c.Request.Context(), middleware.TenantID(c), c.Param("id"), middleware.UserID(c))
	if err != nil {
		respondDomainError(c, err, "Failed to restore template")
		return
	}

	c.JSON(http.StatusOK, toTemplateResponse(tmpl))
}

// DeleteTemplate hard-deletes a draft or rejected template
func (h *handler) DeleteTemplate(c *gin.Context) {
	if err := h.manager.Delete(c.Request.Context(), middleware.TenantID(c), c.Param("id"), middleware.UserID(c)); err != nil {
		respondDomainError(c, err, "Failed to delete template")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetTemplateHistory replays one template's transitions, oldest first
func (h *handler) GetTemplateHistory(c *gin.Context) {
	params, err := ParseHistoryQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	entries, total, err := h.manager.StatusHistory(c.Request.Context(), middleware.TenantID(c), c.Param("id"), params.Limit, params.Offset)
	if err != nil {
		respondDomainError(c, err, "Failed to get template history")
		return
	}

	response := StatusHistoryResponse{
		Entries: make([]StatusHistoryEntryResponse, 0, len(entries)),
		Total:   total,
		Limit:   params.Limit,
		Offset:  params.Offset,
	}
	for _, entry := range entries {
		response.Entries = append(response.Entries, toHistoryEntryResponse(entry))
	}

	c.JSON(http.StatusOK, response)
}

// GetStatusChanges returns a tenant-wide transition feed, newest first
func (h *handler) GetStatusChanges(c *gin.Context) {
	filter, err := ParseStatusChangesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	filter.TenantID = middleware.TenantID(c)

	entries, total, err := h.manager.StatusChanges(c.Request.Context(), *filter)
	if err != nil {
		respondInternalError(c, err, "Failed to get status changes")
		return
	}

	response := StatusHistoryResponse{
		Entries: make([]StatusHistoryEntryResponse, 0, len(entries)),
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}
	for _, entry := range entries {
		response.Entries = append(response.Entries, toHistoryEntryResponse(entry))
	}

	c.JSON(http.StatusOK, response)
}

// GetStatusSummary aggregates transition counts over a time range
func (h *handler) GetStatusSummary(c *gin.Context) {
	from, to, err := ParseStatusSummaryQuery(c, h.clock.Now())
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	counts, err := h.manager.StatusCounts(c.Request.Context(), middleware.TenantID(c), from, to)
	if err != nil {
		respondInternalError(c, err, "Failed to get status summary")
		return
	}

	c.JSON(http.StatusOK, StatusSummaryResponse{
		From:   from,
		To:     to,
		Counts: counts,
	})
}

// VerifyWebhook answers Meta's subscription handshake. The token may be the
// platform-wide default or any active channel's account-scoped verify token.
func (h *handler) VerifyWebhook(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token != "" && h.verifyTokenMatches(c.Request.Context(), token) {
		logger.Info("Webhook subscription verified")
		c.String(http.StatusOK, challenge)
		return
	}

	logger.Warn("Webhook verification rejected",
		zap.String("mode", mode),
		zap.String("client_ip", c.ClientIP()),
	)
	c.Status(http.StatusBadRequest)
}

func (h *handler) verifyTokenMatches(ctx context.Context, token string) bool {
	if h.verifyToken != "" && token == h.verifyToken {
		return true
	}
	return h.reconciler.VerifyToken(ctx, token)
}

// ReceiveWebhook ingests a signed webhook batch. After the signature checks
// out the response is always 200 so Meta does not endlessly redeliver a batch
// this service cannot use.
func (h *handler) ReceiveWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondBadRequest(c, "Failed to read request body")
		return
	}

	ctx := c.Request.Context()
	secret := h.reconciler.ResolveAppSecret(ctx, body)
	signature := c.GetHeader(webhook.SignatureHeader)
	if !webhook.VerifySignature(secret, body, signature) {
		logger.Warn("Webhook signature verification failed",
			zap.String("client_ip", c.ClientIP()),
			zap.Bool("signature_present", signature != ""),
		)
		respondWithError(c, http.StatusUnauthorized, errCodeUnauthorized, "Invalid signature")
		return
	}

	if err := h.reconciler.Process(ctx, body); err != nil {
		logger.Error(err, zap.String("client_ip", c.ClientIP()))
	}

	c.Status(http.StatusOK)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
