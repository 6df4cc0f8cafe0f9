package messaging

import (
	"context"
	"time"

	"github.com/flowdesk/wacrm/internal/domain"
)

// TemplateStatusChangedEvent is published once per applied status transition
// so downstream consumers (campaign scheduler, notification service) can react
// without polling the templates table.
type TemplateStatusChangedEvent struct {
	TemplateID string                  `json:"templateID"`
	TenantID   string                  `json:"tenantID"`
	Name       string                  `json:"name"`
	Language   string                  `json:"language"`
	FromStatus domain.TemplateStatus   `json:"fromStatus"`
	ToStatus   domain.TemplateStatus   `json:"toStatus"`
	Reason     *string                 `json:"reason,omitempty"`
	Source     domain.TransitionSource `json:"source"`
	OccurredAt time.Time               `json:"occurredAt"`
}

// Publisher defines the interface for publishing template lifecycle events to
// the message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishStatusChanged publishes a status change event. Failures must not
	// abort the transition that produced the event.
	PublishStatusChanged(ctx context.Context, event TemplateStatusChangedEvent) error
	// Close closes the connection
	Close()
}
