package schema

import "time"

// Channel represents the channels table - one WhatsApp Business Account
// connection per tenant, carrying the credentials the Meta client uses.
// Credentials live here rather than in process environment; the config-level
// defaults are only a documented fallback for shared/sandbox setups.
type Channel struct {
	// ID is the channel identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// TenantID is the owning workspace
	TenantID string `gorm:"column:tenant_id;not null;uniqueIndex;type:uuid"`
	// WABAID is the WhatsApp Business Account id used for template endpoints
	WABAID string `gorm:"column:waba_id;not null;type:text;index"`
	// PhoneNumberID is the sending phone number id
	PhoneNumberID string `gorm:"column:phone_number_id;not null;type:text"`
	// AccessToken is the Graph API access token for this account
	AccessToken string `gorm:"column:access_token;not null;type:text"`
	// WebhookVerifyToken is the tenant-scoped hub.verify_token; empty falls
	// back to the platform-wide default
	WebhookVerifyToken string `gorm:"column:webhook_verify_token;type:text"`
	// AppSecret signs inbound webhook payloads (X-Hub-Signature-256)
	AppSecret string `gorm:"column:app_secret;type:text"`
	// IsActive indicates whether the channel is connected
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// CreatedAt is when the channel was connected
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is when the channel was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Channel model
func (Channel) TableName() string {
	return "channels"
}
