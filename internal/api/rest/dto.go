package rest

import (
	"encoding/json"
	"time"

	"github.com/flowdesk/wacrm/internal/domain"
	"github.com/flowdesk/wacrm/internal/store/schema"
)

// createTemplateRequest is the body of POST /templates
type createTemplateRequest struct {
	Name       string             `json:"name" binding:"required"`
	Language   string             `json:"language" binding:"required"`
	Category   string             `json:"category" binding:"required"`
	Components []domain.Component `json:"components" binding:"required"`
}

// updateTemplateRequest is the body of PUT /templates/:id
type updateTemplateRequest struct {
	Category   string             `json:"category" binding:"required"`
	Components []domain.Component `json:"components" binding:"required"`
}

// reasonRequest carries an optional operator-supplied reason
type reasonRequest struct {
	Reason *string `json:"reason"`
}

// TemplateResponse is the API representation of one template
type TemplateResponse struct {
	ID                 string                 `json:"id"`
	TenantID           string                 `json:"tenant_id"`
	Name               string                 `json:"name"`
	Language           string                 `json:"language"`
	Category           domain.TemplateCategory `json:"category"`
	Components         []domain.Component     `json:"components"`
	Status             domain.TemplateStatus  `json:"status"`
	ExternalTemplateID *string                `json:"external_template_id,omitempty"`
	RejectionReason    *string                `json:"rejection_reason,omitempty"`
	QualityScore       *string                `json:"quality_score,omitempty"`
	Version            int                    `json:"version"`
	ParentTemplateID   *string                `json:"parent_template_id,omitempty"`
	IsActive           bool                   `json:"is_active"`
	PreArchiveStatus   *domain.TemplateStatus `json:"pre_archive_status,omitempty"`
	ArchiveReason      *string                `json:"archive_reason,omitempty"`
	SubmittedAt        *time.Time             `json:"submitted_at,omitempty"`
	ApprovedAt         *time.Time             `json:"approved_at,omitempty"`
	RejectedAt         *time.Time             `json:"rejected_at,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

// TemplateListResponse wraps a paginated template listing
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
	Total     int64              `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

// StatusHistoryEntryResponse is one transition in a template's timeline
type StatusHistoryEntryResponse struct {
	ID              string                  `json:"id"`
	TemplateID      string                  `json:"template_id"`
	FromStatus      domain.TemplateStatus   `json:"from_status"`
	ToStatus        domain.TemplateStatus   `json:"to_status"`
	Reason          *string                 `json:"reason,omitempty"`
	Source          domain.TransitionSource `json:"source"`
	ChangedByUserID *string                 `json:"changed_by_user_id,omitempty"`
	ChangedAt       time.Time               `json:"changed_at"`
}

// StatusHistoryResponse wraps a paginated transition listing
type StatusHistoryResponse struct {
	Entries []StatusHistoryEntryResponse `json:"entries"`
	Total   int64                        `json:"total"`
	Limit   int                          `json:"limit"`
	Offset  int                          `json:"offset"`
}

// StatusSummaryResponse aggregates transition counts by target status
type StatusSummaryResponse struct {
	From   time.Time                        `json:"from"`
	To     time.Time                        `json:"to"`
	Counts map[domain.TemplateStatus]int64 `json:"counts"`
}

// StatusSyncResponse reports how many transitions a bulk sync applied
type StatusSyncResponse struct {
	Applied int `json:"applied"`
}

// toTemplateResponse maps a template row to its API representation
func toTemplateResponse(tmpl *schema.Template) TemplateResponse {
	var components []domain.Component
	// Components were validated on write; a decode failure here would mean
	// the row was corrupted outside the API.
	_ = json.Unmarshal(tmpl.Components, &components)

	return TemplateResponse{
		ID:                 tmpl.ID,
		TenantID:           tmpl.TenantID,
		Name:               tmpl.Name,
		Language:           tmpl.Language,
		Category:           tmpl.Category,
		Components:         components,
		Status:             tmpl.Status,
		ExternalTemplateID: tmpl.ExternalTemplateID,
		RejectionReason:    tmpl.RejectionReason,
		QualityScore:       tmpl.QualityScore,
		Version:            tmpl.Version,
		ParentTemplateID:   tmpl.ParentTemplateID,
		IsActive:           tmpl.IsActive,
		PreArchiveStatus:   tmpl.PreArchiveStatus,
		ArchiveReason:      tmpl.ArchiveReason,
		SubmittedAt:        tmpl.SubmittedAt,
		ApprovedAt:         tmpl.ApprovedAt,
		RejectedAt:         tmpl.RejectedAt,
		CreatedAt:          tmpl.CreatedAt,
		UpdatedAt:          tmpl.UpdatedAt,
	}
}

// toHistoryEntryResponse maps a ledger row to its API representation
func toHistoryEntryResponse(entry schema.TemplateStatusHistory) StatusHistoryEntryResponse {
	return StatusHistoryEntryResponse{
		ID:              entry.ID,
		TemplateID:      entry.TemplateID,
		FromStatus:      entry.FromStatus,
		ToStatus:        entry.ToStatus,
		Reason:          entry.Reason,
		Source:          entry.Source,
		ChangedByUserID: entry.ChangedByUserID,
		ChangedAt:       entry.ChangedAt,
	}
}
