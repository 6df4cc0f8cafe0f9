package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/flowdesk/wacrm/internal/domain"
)

// TemplateStatusHistory represents the template_status_history table - the
// append-only ledger of every status transition a template undergoes. Rows
// are created exactly once per applied transition and never mutated or
// deleted; Template.Status is the "latest" projection of this ledger.
type TemplateStatusHistory struct {
	// ID is a ULID, time-sortable for ordered timeline replay
	ID string `gorm:"column:id;primaryKey;type:text"`
	// TemplateID is the template this entry belongs to
	TemplateID string `gorm:"column:template_id;not null;type:uuid;index"`
	// TenantID is denormalized for tenant-scoped feeds without a join
	TenantID string `gorm:"column:tenant_id;not null;type:uuid;index"`
	// FromStatus is the status before the transition
	FromStatus domain.TemplateStatus `gorm:"column:from_status;not null;type:text"`
	// ToStatus is the status after the transition
	ToStatus domain.TemplateStatus `gorm:"column:to_status;not null;type:text;index"`
	// Reason is the optional human-readable reason (e.g., Meta's rejection reason)
	Reason *string `gorm:"column:reason;type:text"`
	// Source identifies the trigger (system, webhook, manual_refresh, user)
	Source domain.TransitionSource `gorm:"column:source;not null;type:text"`
	// ExternalResponse is the opaque raw payload from Meta kept for audit
	ExternalResponse datatypes.JSON `gorm:"column:external_response;type:jsonb"`
	// ChangedByUserID is nil for system-initiated transitions
	ChangedByUserID *string `gorm:"column:changed_by_user_id;type:uuid"`
	// ChangedAt is when the transition was applied
	ChangedAt time.Time `gorm:"column:changed_at;not null;default:now();type:timestamptz;index"`
}

// TableName specifies the table name for the TemplateStatusHistory model
func (TemplateStatusHistory) TableName() string {
	return "template_status_history"
}
