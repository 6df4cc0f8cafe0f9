package schema

import (
	"time"

	"gorm.io/datatypes"
)

// WebhookEventOutcome is the processing outcome of one inbound webhook change
type WebhookEventOutcome string

const (
	// WebhookEventOutcomeApplied means the change produced a status transition
	WebhookEventOutcomeApplied WebhookEventOutcome = "applied"
	// WebhookEventOutcomeDuplicate means the template was already in the
	// reported state; the change was absorbed as a no-op
	WebhookEventOutcomeDuplicate WebhookEventOutcome = "duplicate"
	// WebhookEventOutcomeStaleConflict means the change would have regressed a
	// terminal status and was ignored
	WebhookEventOutcomeStaleConflict WebhookEventOutcome = "stale_conflict"
	// WebhookEventOutcomeSkipped means the change referenced an unknown
	// template or carried an unrecognized event and was skipped
	WebhookEventOutcomeSkipped WebhookEventOutcome = "skipped"
	// WebhookEventOutcomeFailed means processing errored internally
	WebhookEventOutcomeFailed WebhookEventOutcome = "failed"
)

// WebhookEventLog represents the webhook_event_log table - delivery/ingestion
// audit of inbound Meta webhook changes. This is distinct from the status
// history ledger: it records what arrived and what happened to it, including
// changes that produced no business-state transition.
type WebhookEventLog struct {
	// ID is a ULID, time-sortable
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Field is the declared change field (e.g., "message_template_status_update")
	Field string `gorm:"column:field;not null;type:text;index"`
	// ExternalTemplateID is the Meta template id the change referenced, if any
	ExternalTemplateID *string `gorm:"column:external_template_id;type:text;index"`
	// TemplateID is the resolved internal template, if resolution succeeded
	TemplateID *string `gorm:"column:template_id;type:uuid"`
	// Outcome is the processing result for this change
	Outcome WebhookEventOutcome `gorm:"column:outcome;not null;type:text"`
	// Payload is the raw change value as received
	Payload datatypes.JSON `gorm:"column:payload;type:jsonb"`
	// ErrorMessage contains error details when Outcome is failed
	ErrorMessage *string `gorm:"column:error_message;type:text"`
	// ReceivedAt is when the change was processed
	ReceivedAt time.Time `gorm:"column:received_at;not null;default:now();type:timestamptz;index"`
}

// TableName specifies the table name for the WebhookEventLog model
func (WebhookEventLog) TableName() string {
	return "webhook_event_log"
}
