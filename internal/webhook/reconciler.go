package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/flowdesk/wacrm/internal/adapter"
	"github.com/flowdesk/wacrm/internal/domain"
	"github.com/flowdesk/wacrm/internal/lifecycle"
	"github.com/flowdesk/wacrm/internal/logger"
	"github.com/flowdesk/wacrm/internal/store"
	"github.com/flowdesk/wacrm/internal/store/schema"
)

// StatusApplier is the slice of the lifecycle manager the reconciler needs
type StatusApplier interface {
	UpdateApprovalStatus(ctx context.Context, update lifecycle.StatusUpdate) (lifecycle.Outcome, error)
	UpdateQualityScore(ctx context.Context, externalID, score string) error
}

// Reconciler applies inbound Meta webhook batches to the template store
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/webhook.go -package=mocks -mock_names=Reconciler=MockReconciler,StatusApplier=MockStatusApplier
type Reconciler interface {
	// ResolveAppSecret returns the secret to verify a payload's signature
	// with, preferring the channel owning the payload's business account
	// over the configured default
	ResolveAppSecret(ctx context.Context, raw []byte) string
	// VerifyToken reports whether token matches any active channel's webhook
	// verify token. The platform-wide default token is the caller's concern.
	VerifyToken(ctx context.Context, token string) bool
	// Process applies every change in a signature-verified batch. Individual
	// change failures are audited and logged, never aborting the batch; an
	// error is returned only when the envelope itself is unreadable.
	Process(ctx context.Context, raw []byte) error
}

type reconciler struct {
	store            store.Store
	applier          StatusApplier
	clock            adapter.Clock
	defaultAppSecret string
}

// NewReconciler creates a webhook reconciler
func NewReconciler(st store.Store, applier StatusApplier, clock adapter.Clock, defaultAppSecret string) Reconciler {
	return &reconciler{
		store:            st,
		applier:          applier,
		clock:            clock,
		defaultAppSecret: defaultAppSecret,
	}
}

func (r *reconciler) ResolveAppSecret(ctx context.Context, raw []byte) string {
	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Entry) == 0 {
		return r.defaultAppSecret
	}

	channel, err := r.store.GetChannelByWABAID(ctx, payload.Entry[0].ID)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to resolve channel for signature check: %w", err))
		return r.defaultAppSecret
	}
	if channel != nil && channel.AppSecret != "" {
		return channel.AppSecret
	}
	return r.defaultAppSecret
}

func (r *reconciler) VerifyToken(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	channel, err := r.store.GetChannelByVerifyToken(ctx, token)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to resolve channel for handshake: %w", err))
		return false
	}
	return channel != nil
}

func (r *reconciler) Process(ctx context.Context, raw []byte) error {
	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		r.audit(ctx, "", nil, nil, schema.WebhookEventOutcomeFailed, raw, err)
		return fmt.Errorf("failed to decode webhook payload: %w", err)
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			switch change.Field {
			case FieldTemplateStatusUpdate:
				r.processStatusUpdate(ctx, entry, change)
			case FieldTemplateQualityUpdate:
				r.processQualityUpdate(ctx, entry, change)
			default:
				logger.InfoCtx(ctx, "Ignoring webhook change for unhandled field",
					zap.String("field", change.Field))
				r.audit(ctx, change.Field, nil, nil, schema.WebhookEventOutcomeSkipped, change.Value, nil)
			}
		}
	}
	return nil
}

// processStatusUpdate applies one template review decision
func (r *reconciler) processStatusUpdate(ctx context.Context, entry Entry, change Change) {
	var value TemplateStatusUpdate
	if err := json.Unmarshal(change.Value, &value); err != nil {
		r.audit(ctx, change.Field, nil, nil, schema.WebhookEventOutcomeFailed, change.Value, err)
		return
	}

	externalID := strconv.FormatInt(value.MessageTemplateID, 10)
	tmpl, err := r.resolveTemplate(ctx, entry, change, externalID)
	if tmpl == nil || err != nil {
		return
	}

	newStatus, resolved := domain.MapExternalStatus(value.Event)
	if !resolved {
		logger.InfoCtx(ctx, "Webhook event requires no reconciliation",
			zap.String("templateID", tmpl.ID),
			zap.String("event", value.Event))
		r.audit(ctx, change.Field, &externalID, &tmpl.ID, schema.WebhookEventOutcomeSkipped, change.Value, nil)
		return
	}

	var reason *string
	if value.Reason != "" {
		reason = &value.Reason
	}

	outcome, err := r.applier.UpdateApprovalStatus(ctx, lifecycle.StatusUpdate{
		TemplateID:       tmpl.ID,
		TenantID:         tmpl.TenantID,
		NewStatus:        newStatus,
		Reason:           reason,
		Source:           domain.TransitionSourceWebhook,
		ExternalResponse: change.Value,
	})
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to apply webhook status update: %w", err),
			zap.String("templateID", tmpl.ID))
		r.audit(ctx, change.Field, &externalID, &tmpl.ID, schema.WebhookEventOutcomeFailed, change.Value, err)
		return
	}

	r.audit(ctx, change.Field, &externalID, &tmpl.ID, mapOutcome(outcome), change.Value, nil)
}

// processQualityUpdate records a quality score change
func (r *reconciler) processQualityUpdate(ctx context.Context, entry Entry, change Change) {
	var value TemplateQualityUpdate
	if err := json.Unmarshal(change.Value, &value); err != nil {
		r.audit(ctx, change.Field, nil, nil, schema.WebhookEventOutcomeFailed, change.Value, err)
		return
	}

	externalID := strconv.FormatInt(value.MessageTemplateID, 10)
	tmpl, err := r.resolveTemplate(ctx, entry, change, externalID)
	if tmpl == nil || err != nil {
		return
	}

	if err := r.applier.UpdateQualityScore(ctx, externalID, value.NewQualityScore); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to apply webhook quality update: %w", err),
			zap.String("templateID", tmpl.ID))
		r.audit(ctx, change.Field, &externalID, &tmpl.ID, schema.WebhookEventOutcomeFailed, change.Value, err)
		return
	}

	logger.InfoCtx(ctx, "Template quality score updated",
		zap.String("templateID", tmpl.ID),
		zap.String("qualityScore", value.NewQualityScore))
	r.audit(ctx, change.Field, &externalID, &tmpl.ID, schema.WebhookEventOutcomeApplied, change.Value, nil)
}

// resolveTemplate finds the internal template a change targets and enforces
// that it belongs to the business account the entry was delivered for. A nil
// template means the change was audited and should be dropped.
func (r *reconciler) resolveTemplate(ctx context.Context, entry Entry, change Change, externalID string) (*schema.Template, error) {
	tmpl, err := r.store.GetTemplateByExternalID(ctx, externalID)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to resolve template by external id: %w", err),
			zap.String("externalTemplateID", externalID))
		r.audit(ctx, change.Field, &externalID, nil, schema.WebhookEventOutcomeFailed, change.Value, err)
		return nil, err
	}
	if tmpl == nil {
		logger.WarnCtx(ctx, "Webhook change references unknown template",
			zap.String("externalTemplateID", externalID),
			zap.String("field", change.Field))
		r.audit(ctx, change.Field, &externalID, nil, schema.WebhookEventOutcomeSkipped, change.Value, nil)
		return nil, nil
	}

	channel, err := r.store.GetChannelByWABAID(ctx, entry.ID)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to resolve channel for entry: %w", err),
			zap.String("wabaID", entry.ID))
		r.audit(ctx, change.Field, &externalID, &tmpl.ID, schema.WebhookEventOutcomeFailed, change.Value, err)
		return nil, err
	}
	if channel != nil && channel.TenantID != tmpl.TenantID {
		logger.WarnCtx(ctx, "Webhook change crosses tenant boundary, skipping",
			zap.String("externalTemplateID", externalID),
			zap.String("wabaID", entry.ID),
			zap.String("templateTenantID", tmpl.TenantID),
			zap.String("channelTenantID", channel.TenantID))
		r.audit(ctx, change.Field, &externalID, &tmpl.ID, schema.WebhookEventOutcomeSkipped, change.Value, nil)
		return nil, nil
	}

	return tmpl, nil
}

// mapOutcome translates a lifecycle outcome into an audit outcome
func mapOutcome(outcome lifecycle.Outcome) schema.WebhookEventOutcome {
	switch outcome {
	case lifecycle.OutcomeApplied:
		return schema.WebhookEventOutcomeApplied
	case lifecycle.OutcomeDuplicate:
		return schema.WebhookEventOutcomeDuplicate
	default:
		return schema.WebhookEventOutcomeStaleConflict
	}
}

// audit appends one ingestion audit row. Best-effort: the ledger must never
// block webhook processing.
func (r *reconciler) audit(ctx context.Context, field string, externalID, templateID *string,
	outcome schema.WebhookEventOutcome, payload []byte, cause error) {
	entry := &schema.WebhookEventLog{
		ID:                 ulid.Make().String(),
		Field:              field,
		ExternalTemplateID: externalID,
		TemplateID:         templateID,
		Outcome:            outcome,
		ReceivedAt:         r.clock.Now(),
	}
	if len(payload) > 0 {
		entry.Payload = payload
	}
	if cause != nil {
		msg := cause.Error()
		entry.ErrorMessage = &msg
	}
	if err := r.store.CreateWebhookEventLog(ctx, entry); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to append webhook event log: %w", err),
			zap.String("field", field))
	}
}
