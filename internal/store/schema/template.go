package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/flowdesk/wacrm/internal/domain"
)

// Template represents the templates table - one row per template version.
// A template's (tenant_id, name, language) lineage may span many rows; only
// one of them may be active and non-archived at a time. That uniqueness is
// enforced at write time by the lifecycle manager, not by a database
// constraint, because version forks intentionally create historical rows.
type Template struct {
	// ID is the template identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// TenantID scopes the template to one workspace
	TenantID string `gorm:"column:tenant_id;not null;type:uuid;index:idx_templates_tenant_name_lang,priority:1"`
	// Name is the template name as registered with Meta (lowercase snake case)
	Name string `gorm:"column:name;not null;type:text;index:idx_templates_tenant_name_lang,priority:2"`
	// Language is the BCP-47 language code (e.g., "en_US")
	Language string `gorm:"column:language;not null;type:text;index:idx_templates_tenant_name_lang,priority:3"`
	// Category is the Meta template category (MARKETING, UTILITY, AUTHENTICATION)
	Category domain.TemplateCategory `gorm:"column:category;not null;type:text"`
	// Components is the structured content (header/body/footer/buttons) as JSON
	Components datatypes.JSON `gorm:"column:components;not null;type:jsonb"`
	// Status is the current lifecycle status, a denormalized projection of the
	// status history ledger kept on the row for read performance
	Status domain.TemplateStatus `gorm:"column:status;not null;type:text;index"`
	// ExternalTemplateID is the Meta-assigned template id, set once submitted
	ExternalTemplateID *string `gorm:"column:external_template_id;type:text;index"`
	// RejectionReason is populated only while the template is rejected
	RejectionReason *string `gorm:"column:rejection_reason;type:text"`
	// QualityScore is Meta's quality rating (GREEN/YELLOW/RED); derived, non-authoritative
	QualityScore *string `gorm:"column:quality_score;type:text"`
	// Version increases monotonically along a name+language lineage
	Version int `gorm:"column:version;not null;default:1"`
	// ParentTemplateID back-references the version this one was forked from.
	// Weak reference used only for lookup, never owned.
	ParentTemplateID *string `gorm:"column:parent_template_id;type:uuid"`
	// IsActive distinguishes the current row from archived/superseded versions
	IsActive bool `gorm:"column:is_active;not null;default:true;index"`
	// PreArchiveStatus remembers the status held before archival so a restore
	// can reactivate the template to it
	PreArchiveStatus *domain.TemplateStatus `gorm:"column:pre_archive_status;type:text"`
	// ArchiveReason is the optional reason supplied when archiving
	ArchiveReason *string `gorm:"column:archive_reason;type:text"`
	// UsageCount counts messages sent with this template; mutated by the send
	// path, read here only for archival/deletion guards
	UsageCount int64 `gorm:"column:usage_count;not null;default:0"`
	// LastUsedAt is when the template last produced a message
	LastUsedAt *time.Time `gorm:"column:last_used_at;type:timestamptz"`
	// SubmittedAt is when the template was submitted to Meta
	SubmittedAt *time.Time `gorm:"column:submitted_at;type:timestamptz"`
	// ApprovedAt is set when the template reaches approved; mutually exclusive
	// with RejectionReason being set
	ApprovedAt *time.Time `gorm:"column:approved_at;type:timestamptz"`
	// RejectedAt is set when the template reaches rejected
	RejectedAt *time.Time `gorm:"column:rejected_at;type:timestamptz"`
	// CreatedAt is when this row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is when this row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	StatusHistory []TemplateStatusHistory `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Template model
func (Template) TableName() string {
	return "templates"
}
