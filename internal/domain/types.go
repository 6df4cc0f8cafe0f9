package domain

import "strings"

// TemplateStatus represents the lifecycle state of a message template
type TemplateStatus string

const (
	// TemplateStatusDraft is the initial state; the template has never been
	// submitted or was reset after a rejection edit
	TemplateStatusDraft TemplateStatus = "draft"
	// TemplateStatusPending is the state after submission, awaiting Meta's decision
	TemplateStatusPending TemplateStatus = "pending"
	// TemplateStatusApproved means Meta approved the template for sending
	TemplateStatusApproved TemplateStatus = "approved"
	// TemplateStatusRejected means Meta rejected the template
	TemplateStatusRejected TemplateStatus = "rejected"
	// TemplateStatusDisabled means Meta paused or disabled a previously approved template
	TemplateStatusDisabled TemplateStatus = "disabled"
	// TemplateStatusArchived means the template was archived by a user or superseded
	TemplateStatusArchived TemplateStatus = "archived"
)

// Terminal reports whether the status is a resolved external decision.
// Terminal statuses must never regress from out-of-order events.
func (s TemplateStatus) Terminal() bool {
	switch s {
	case TemplateStatusApproved, TemplateStatusRejected, TemplateStatusDisabled:
		return true
	}
	return false
}

// Valid reports whether the status is one of the known lifecycle states
func (s TemplateStatus) Valid() bool {
	switch s {
	case TemplateStatusDraft, TemplateStatusPending, TemplateStatusApproved,
		TemplateStatusRejected, TemplateStatusDisabled, TemplateStatusArchived:
		return true
	}
	return false
}

// ExternalStatus is the status vocabulary used by the Meta template API and
// template status webhooks
type ExternalStatus string

const (
	ExternalStatusApproved ExternalStatus = "APPROVED"
	ExternalStatusRejected ExternalStatus = "REJECTED"
	ExternalStatusPending  ExternalStatus = "PENDING"
	ExternalStatusDisabled ExternalStatus = "DISABLED"
	// ExternalStatusInReview is reported by the Graph API for templates still
	// under review; equivalent to PENDING for reconciliation purposes
	ExternalStatusInReview ExternalStatus = "IN_REVIEW"
	// ExternalStatusPaused is reported when Meta temporarily pauses an approved
	// template due to quality degradation; treated as DISABLED
	ExternalStatusPaused ExternalStatus = "PAUSED"
)

// MapExternalStatus maps the external vocabulary onto the internal lifecycle
// status a reconciliation event proposes. The second return value is false for
// statuses that require no reconciliation (still pending) or that are not
// recognized at all; unrecognized values must be logged and ignored by callers.
func MapExternalStatus(raw string) (TemplateStatus, bool) {
	switch ExternalStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case ExternalStatusApproved:
		return TemplateStatusApproved, true
	case ExternalStatusRejected:
		return TemplateStatusRejected, true
	case ExternalStatusDisabled, ExternalStatusPaused:
		return TemplateStatusDisabled, true
	case ExternalStatusPending, ExternalStatusInReview:
		return TemplateStatusPending, false
	}
	return "", false
}

// TransitionSource identifies what triggered a status transition
type TransitionSource string

const (
	// TransitionSourceSystem marks transitions applied by the poller
	TransitionSourceSystem TransitionSource = "system"
	// TransitionSourceWebhook marks transitions applied from a Meta webhook
	TransitionSourceWebhook TransitionSource = "webhook"
	// TransitionSourceManualRefresh marks transitions from a user-triggered refresh
	TransitionSourceManualRefresh TransitionSource = "manual_refresh"
	// TransitionSourceUser marks transitions from direct user actions
	// (submit, edit, archive, restore, manual approve/reject)
	TransitionSourceUser TransitionSource = "user"
)

// TemplateCategory is the Meta template category
type TemplateCategory string

const (
	TemplateCategoryMarketing      TemplateCategory = "MARKETING"
	TemplateCategoryUtility        TemplateCategory = "UTILITY"
	TemplateCategoryAuthentication TemplateCategory = "AUTHENTICATION"
)

// ComponentType is the type of a template component
type ComponentType string

const (
	ComponentTypeHeader  ComponentType = "HEADER"
	ComponentTypeBody    ComponentType = "BODY"
	ComponentTypeFooter  ComponentType = "FOOTER"
	ComponentTypeButtons ComponentType = "BUTTONS"
)

// Component is one structural block of a template (header/body/footer/buttons)
type Component struct {
	Type ComponentType `json:"type"`
	// Format applies to headers only (TEXT, IMAGE, VIDEO, DOCUMENT)
	Format string `json:"format,omitempty"`
	// Text carries the content for text components, with {{n}} placeholders
	Text string `json:"text,omitempty"`
	// Example carries sample values for the declared placeholders, in order
	Example []string `json:"example,omitempty"`
	// Buttons applies to button components only
	Buttons []Button `json:"buttons,omitempty"`
}

// Button is a single call-to-action or quick-reply button
type Button struct {
	Type string `json:"type"`
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
	// PhoneNumber applies to PHONE_NUMBER buttons
	PhoneNumber string `json:"phone_number,omitempty"`
}
