package store

import (
	"context"
	"time"

	"github.com/flowdesk/wacrm/internal/domain"
	"github.com/flowdesk/wacrm/internal/store/schema"
)

// TransitionInput describes a conditional status transition. The update is
// applied only if the template's current status still equals Expected; the
// returned applied flag is false when another writer got there first.
type TransitionInput struct {
	TemplateID string
	Expected   domain.TemplateStatus
	New        domain.TemplateStatus
	// RejectionReason is stored when New is rejected
	RejectionReason *string
	// Now stamps the derived timestamp field for the new status
	Now time.Time
}

// TemplateFilter narrows template list queries
type TemplateFilter struct {
	TenantID string
	Status   *domain.TemplateStatus
	// ActiveOnly excludes archived/superseded versions
	ActiveOnly bool
	Limit      int
	Offset     int
}

// HistoryFilter narrows status history queries
type HistoryFilter struct {
	TenantID string
	ToStatus *domain.TemplateStatus
	Since    *time.Time
	Limit    int
	Offset   int
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateTemplate inserts a new draft template row
	CreateTemplate(ctx context.Context, tmpl *schema.Template) error
	// GetTemplateByID retrieves a tenant's template by id; returns nil when absent
	GetTemplateByID(ctx context.Context, tenantID, id string) (*schema.Template, error)
	// GetTemplateByExternalID retrieves a template by its Meta template id
	GetTemplateByExternalID(ctx context.Context, externalID string) (*schema.Template, error)
	// GetActiveTemplate retrieves the single active, non-archived row for a
	// tenant's name+language lineage
	GetActiveTemplate(ctx context.Context, tenantID, name, language string) (*schema.Template, error)
	// ListTemplates lists templates matching the filter with a total count
	ListTemplates(ctx context.Context, filter TemplateFilter) ([]*schema.Template, int64, error)
	// ListPendingWithExternalID returns templates awaiting an external decision
	// that have been assigned a Meta template id
	ListPendingWithExternalID(ctx context.Context, limit int) ([]*schema.Template, error)
	// UpdateTemplateContent mutates a template's content in place
	UpdateTemplateContent(ctx context.Context, id string, category domain.TemplateCategory, components []byte) error
	// CreateTemplateVersion deactivates the parent row and inserts the child in
	// one transaction
	CreateTemplateVersion(ctx context.Context, parentID string, child *schema.Template) error
	// MarkTemplateSubmitted moves a draft to pending, recording the Meta
	// template id and submission time. Applied is false if the template was no
	// longer a draft.
	MarkTemplateSubmitted(ctx context.Context, id, externalID string, at time.Time) (bool, error)
	// TransitionTemplateStatus applies a conditional status transition along
	// with its derived timestamp/reason fields
	TransitionTemplateStatus(ctx context.Context, input TransitionInput) (bool, error)
	// ArchiveTemplate archives a template, remembering its pre-archive status.
	// Applied is false when the template is pending or already archived.
	ArchiveTemplate(ctx context.Context, id string, reason *string) (bool, error)
	// RestoreTemplate reactivates an archived template to its pre-archive status
	RestoreTemplate(ctx context.Context, id string) (bool, error)
	// DeleteTemplate hard-deletes a template; only draft and rejected rows match
	DeleteTemplate(ctx context.Context, id string) (bool, error)
	// UpdateTemplateQualityScore stores Meta's quality rating by external id
	UpdateTemplateQualityScore(ctx context.Context, externalID, score string) error

	// CreateStatusHistory appends one immutable transition record
	CreateStatusHistory(ctx context.Context, entry *schema.TemplateStatusHistory) error
	// ListStatusHistory replays a template's transitions, oldest first
	ListStatusHistory(ctx context.Context, templateID string, limit, offset int) ([]schema.TemplateStatusHistory, int64, error)
	// ListStatusChanges returns a tenant-wide feed, newest first
	ListStatusChanges(ctx context.Context, filter HistoryFilter) ([]schema.TemplateStatusHistory, int64, error)
	// CountStatusChanges aggregates transition counts by target status over a range
	CountStatusChanges(ctx context.Context, tenantID string, from, to time.Time) (map[domain.TemplateStatus]int64, error)

	// CreateWebhookEventLog appends one webhook ingestion audit row
	CreateWebhookEventLog(ctx context.Context, entry *schema.WebhookEventLog) error

	// FindActiveCampaignsUsingTemplate returns non-terminal campaigns that
	// reference the template (deletion guard)
	FindActiveCampaignsUsingTemplate(ctx context.Context, templateID string) ([]schema.Campaign, error)

	// GetChannelByTenant retrieves a tenant's WhatsApp channel; nil when absent
	GetChannelByTenant(ctx context.Context, tenantID string) (*schema.Channel, error)
	// GetChannelByWABAID retrieves a channel by WhatsApp Business Account id
	GetChannelByWABAID(ctx context.Context, wabaID string) (*schema.Channel, error)
	// GetChannelByVerifyToken retrieves an active channel by its webhook verify
	// token; nil when no channel uses the token
	GetChannelByVerifyToken(ctx context.Context, token string) (*schema.Channel, error)
}
