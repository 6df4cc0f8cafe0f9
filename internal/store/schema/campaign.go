package schema

import "time"

// CampaignStatus is the status of a campaign
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusRunning   CampaignStatus = "running"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

// Active reports whether the campaign is in a non-terminal status. Templates
// referenced by an active campaign cannot be hard-deleted.
func (s CampaignStatus) Active() bool {
	switch s {
	case CampaignStatusScheduled, CampaignStatusRunning, CampaignStatusPaused:
		return true
	}
	return false
}

// Campaign represents the campaigns table. The campaign send loop is owned
// elsewhere; the template engine only reads these rows for deletion guards.
type Campaign struct {
	// ID is the campaign identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// TenantID is the owning workspace
	TenantID string `gorm:"column:tenant_id;not null;type:uuid;index"`
	// Name is the display name
	Name string `gorm:"column:name;not null;type:text"`
	// TemplateID is the template the campaign sends with
	TemplateID string `gorm:"column:template_id;not null;type:uuid;index"`
	// Status is the campaign status
	Status CampaignStatus `gorm:"column:status;not null;type:text"`
	// CreatedAt is when the campaign was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is when the campaign was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Campaign model
func (Campaign) TableName() string {
	return "campaigns"
}
