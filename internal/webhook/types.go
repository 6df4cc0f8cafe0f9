package webhook

import "encoding/json"

// Change field constants
const (
	// FieldTemplateStatusUpdate carries a template review decision or a
	// pause/unpause of an approved template
	FieldTemplateStatusUpdate = "message_template_status_update"

	// FieldTemplateQualityUpdate carries a quality score change for an
	// approved template
	FieldTemplateQualityUpdate = "message_template_quality_update"
)

// Payload is the envelope Meta POSTs to the webhook endpoint. One request may
// batch changes for multiple business accounts.
type Payload struct {
	// Object is the subscribed object type ("whatsapp_business_account")
	Object string `json:"object"`
	Entry  []Entry `json:"entry"`
}

// Entry groups the changes for one WhatsApp Business Account
type Entry struct {
	// ID is the WhatsApp Business Account id
	ID string `json:"id"`
	// Time is the Unix timestamp Meta generated the entry at
	Time int64 `json:"time"`
	Changes []Change `json:"changes"`
}

// Change is one field update. Value is kept raw and decoded per field.
type Change struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

// TemplateStatusUpdate is the value of a message_template_status_update change
type TemplateStatusUpdate struct {
	// Event is the external status vocabulary (APPROVED, REJECTED, ...)
	Event                   string `json:"event"`
	MessageTemplateID       int64  `json:"message_template_id"`
	MessageTemplateName     string `json:"message_template_name"`
	MessageTemplateLanguage string `json:"message_template_language"`
	// Reason is Meta's rejection reason, when present
	Reason string `json:"reason"`
}

// TemplateQualityUpdate is the value of a message_template_quality_update change
type TemplateQualityUpdate struct {
	PreviousQualityScore    string `json:"previous_quality_score"`
	NewQualityScore         string `json:"new_quality_score"`
	MessageTemplateID       int64  `json:"message_template_id"`
	MessageTemplateName     string `json:"message_template_name"`
	MessageTemplateLanguage string `json:"message_template_language"`
}
