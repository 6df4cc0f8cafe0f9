package lifecycle

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/flowdesk/wacrm/internal/adapter"
	"github.com/flowdesk/wacrm/internal/domain"
	"github.com/flowdesk/wacrm/internal/logger"
	"github.com/flowdesk/wacrm/internal/messaging"
	"github.com/flowdesk/wacrm/internal/meta"
	"github.com/flowdesk/wacrm/internal/store"
	"github.com/flowdesk/wacrm/internal/store/schema"
)

// maxTransitionAttempts bounds the reload-and-retry loop when a conditional
// status update loses a race against a concurrent writer
const maxTransitionAttempts = 3

// Outcome classifies the result of an idempotent status update
type Outcome string

const (
	// OutcomeApplied means the transition was applied and recorded
	OutcomeApplied Outcome = "applied"
	// OutcomeDuplicate means the template already held the proposed status
	OutcomeDuplicate Outcome = "duplicate"
	// OutcomeStale means the proposed status would regress or skip the
	// lifecycle and was refused
	OutcomeStale Outcome = "stale"
	// OutcomeConflict means concurrent writers kept invalidating the
	// precondition until the retry budget ran out
	OutcomeConflict Outcome = "conflict"
)

// StatusUpdate describes one proposed status change from any source (poller,
// webhook, manual refresh, admin override)
type StatusUpdate struct {
	TemplateID string
	TenantID   string
	NewStatus  domain.TemplateStatus
	// Reason carries Meta's rejection reason or an operator note
	Reason *string
	Source domain.TransitionSource
	// ExternalResponse is the raw provider payload, kept on the history entry
	ExternalResponse []byte
	ChangedByUserID  *string
}

// CreateInput carries the fields for a new draft template
type CreateInput struct {
	TenantID        string
	Name            string
	Language        string
	Category        domain.TemplateCategory
	Components      []domain.Component
	CreatedByUserID *string
}

// ContentInput carries a content edit for an existing template
type ContentInput struct {
	Category        domain.TemplateCategory
	Components      []domain.Component
	UpdatedByUserID *string
}

// Deregistrar cancels background polling for a template once its external
// decision is resolved. The poller implements it; a no-op is fine in
// processes that do not run the poller.
type Deregistrar interface {
	Deregister(templateID string)
}

// Manager defines the template lifecycle operations
//
//go:generate mockgen -source=manager.go -destination=../mocks/lifecycle.go -package=mocks -mock_names=Manager=MockManager
type Manager interface {
	// CreateTemplate validates and inserts a new draft template
	CreateTemplate(ctx context.Context, input CreateInput) (*schema.Template, error)
	// GetTemplate retrieves one template scoped to its tenant
	GetTemplate(ctx context.Context, tenantID, id string) (*schema.Template, error)
	// ListTemplates lists a tenant's templates
	ListTemplates(ctx context.Context, filter store.TemplateFilter) ([]*schema.Template, int64, error)
	// UpdateContent edits template content. Drafts are edited in place,
	// rejected templates are edited and reset to draft, approved and disabled
	// templates fork a new draft version.
	UpdateContent(ctx context.Context, tenantID, id string, input ContentInput) (*schema.Template, error)
	// Submit sends a draft to Meta for review and moves it to pending
	Submit(ctx context.Context, tenantID, id string, userID *string) (*schema.Template, error)
	// UpdateApprovalStatus is the single entry point every status source goes
	// through. It is idempotent and refuses out-of-order transitions.
	UpdateApprovalStatus(ctx context.Context, update StatusUpdate) (Outcome, error)
	// RefreshStatus performs a one-shot status check against Meta
	RefreshStatus(ctx context.Context, tenantID, id string, userID *string) (*schema.Template, error)
	// SyncStatuses reconciles every local template against Meta's full
	// template list in one pass, returning the number of applied transitions
	SyncStatuses(ctx context.Context, tenantID string, userID *string) (int, error)
	// Archive retires a template while preserving it for audit
	Archive(ctx context.Context, tenantID, id string, reason *string, userID *string) error
	// Restore reactivates an archived template to its pre-archive status
	Restore(ctx context.Context, tenantID, id string, userID *string) (*schema.Template, error)
	// Delete hard-deletes a draft or rejected template
	Delete(ctx context.Context, tenantID, id string, userID *string) error
	// UpdateQualityScore records Meta's quality rating for a template
	UpdateQualityScore(ctx context.Context, externalID, score string) error
	// StatusHistory replays one template's transitions, oldest first
	StatusHistory(ctx context.Context, tenantID, id string, limit, offset int) ([]schema.TemplateStatusHistory, int64, error)
	// StatusChanges returns a tenant-wide transition feed, newest first
	StatusChanges(ctx context.Context, filter store.HistoryFilter) ([]schema.TemplateStatusHistory, int64, error)
	// StatusCounts aggregates transition counts by target status over a range
	StatusCounts(ctx context.Context, tenantID string, from, to time.Time) (map[domain.TemplateStatus]int64, error)
	// SetDeregistrar wires the poller in after construction
	SetDeregistrar(d Deregistrar)
}

type manager struct {
	store     store.Store
	metaAPI   meta.TemplateAPI
	publisher messaging.Publisher
	clock     adapter.Clock
	dereg     Deregistrar
}

// NewManager creates the lifecycle manager
func NewManager(st store.Store, metaAPI meta.TemplateAPI, publisher messaging.Publisher, clock adapter.Clock) Manager {
	return &manager{
		store:     st,
		metaAPI:   metaAPI,
		publisher: publisher,
		clock:     clock,
	}
}

func (m *manager) SetDeregistrar(d Deregistrar) {
	m.dereg = d
}

// allowedExternalTransitions enumerates the transitions a resolved external
// decision may apply. Anything else proposed by the poller or a webhook is a
// stale or out-of-order event.
var allowedExternalTransitions = map[domain.TemplateStatus][]domain.TemplateStatus{
	domain.TemplateStatusPending:  {domain.TemplateStatusApproved, domain.TemplateStatusRejected, domain.TemplateStatusDisabled},
	domain.TemplateStatusApproved: {domain.TemplateStatusDisabled},
	domain.TemplateStatusDisabled: {domain.TemplateStatusApproved},
}

func transitionAllowed(from, to domain.TemplateStatus) bool {
	for _, allowed := range allowedExternalTransitions[from] {
		if to == allowed {
			return true
		}
	}
	return false
}

func (m *manager) CreateTemplate(ctx context.Context, input CreateInput) (*schema.Template, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if err := validateComponents(input.Components); err != nil {
		return nil, err
	}

	existing, err := m.store.GetActiveTemplate(ctx, input.TenantID, input.Name, input.Language)
	if err != nil {
		return nil, fmt.Errorf("failed to check name availability: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrTemplateNameTaken
	}

	components, err := json.Marshal(input.Components)
	if err != nil {
		return nil, fmt.Errorf("failed to encode components: %w", err)
	}

	now := m.clock.Now()
	tmpl := &schema.Template{
		ID:         uuid.NewString(),
		TenantID:   input.TenantID,
		Name:       input.Name,
		Language:   input.Language,
		Category:   input.Category,
		Components: components,
		Status:     domain.TemplateStatusDraft,
		Version:    1,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := m.store.CreateTemplate(ctx, tmpl); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	logger.InfoCtx(ctx, "template created",
		zap.String("templateID", tmpl.ID),
		zap.String("tenantID", tmpl.TenantID),
		zap.String("name", tmpl.Name))
	return tmpl, nil
}

func (m *manager) GetTemplate(ctx context.Context, tenantID, id string) (*schema.Template, error) {
	tmpl, err := m.store.GetTemplateByID(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	if tmpl == nil {
		return nil, domain.ErrTemplateNotFound
	}
	return tmpl, nil
}

func (m *manager) ListTemplates(ctx context.Context, filter store.TemplateFilter) ([]*schema.Template, int64, error) {
	return m.store.ListTemplates(ctx, filter)
}

func (m *manager) UpdateContent(ctx context.Context, tenantID, id string, input ContentInput) (*schema.Template, error) {
	if err := validateComponents(input.Components); err != nil {
		return nil, err
	}

	tmpl, err := m.GetTemplate(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	components, err := json.Marshal(input.Components)
	if err != nil {
		return nil, fmt.Errorf("failed to encode components: %w", err)
	}

	switch tmpl.Status {
	case domain.TemplateStatusDraft:
		if err := m.store.UpdateTemplateContent(ctx, tmpl.ID, input.Category, components); err != nil {
			return nil, fmt.Errorf("failed to update template content: %w", err)
		}
		return m.GetTemplate(ctx, tenantID, id)

	case domain.TemplateStatusRejected:
		return m.editRejected(ctx, tmpl, input.Category, components, input.UpdatedByUserID)

	case domain.TemplateStatusApproved, domain.TemplateStatusDisabled:
		return m.forkVersion(ctx, tmpl, input.Category, components)

	case domain.TemplateStatusPending:
		return nil, domain.NewConflictError("edit", tmpl.Status, domain.TemplateStatusDraft)

	default:
		return nil, domain.NewConflictError("edit", tmpl.Status, domain.TemplateStatusDraft)
	}
}

// editRejected applies the content edit and resets the template to draft so
// it can be resubmitted. The rejection fields are cleared by the transition.
func (m *manager) editRejected(ctx context.Context, tmpl *schema.Template, category domain.TemplateCategory, components []byte, userID *string) (*schema.Template, error) {
	if err := m.store.UpdateTemplateContent(ctx, tmpl.ID, category, components); err != nil {
		return nil, fmt.Errorf("failed to update template content: %w", err)
	}

	now := m.clock.Now()
	applied, err := m.store.TransitionTemplateStatus(ctx, store.TransitionInput{
		TemplateID: tmpl.ID,
		Expected:   domain.TemplateStatusRejected,
		New:        domain.TemplateStatusDraft,
		Now:        now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reset rejected template: %w", err)
	}
	if !applied {
		return nil, domain.NewConflictError("edit", tmpl.Status, domain.TemplateStatusRejected)
	}

	m.recordTransition(ctx, tmpl, domain.TemplateStatusRejected, domain.TemplateStatusDraft,
		nil, domain.TransitionSourceUser, nil, userID, now)

	return m.GetTemplate(ctx, tmpl.TenantID, tmpl.ID)
}

// forkVersion creates a new draft version of an immutable template. The
// parent row is deactivated so the lineage keeps a single active row.
func (m *manager) forkVersion(ctx context.Context, parent *schema.Template, category domain.TemplateCategory, components []byte) (*schema.Template, error) {
	now := m.clock.Now()
	child := &schema.Template{
		ID:               uuid.NewString(),
		TenantID:         parent.TenantID,
		Name:             parent.Name,
		Language:         parent.Language,
		Category:         category,
		Components:       components,
		Status:           domain.TemplateStatusDraft,
		Version:          parent.Version + 1,
		ParentTemplateID: &parent.ID,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := m.store.CreateTemplateVersion(ctx, parent.ID, child); err != nil {
		return nil, fmt.Errorf("failed to fork template version: %w", err)
	}

	logger.InfoCtx(ctx, "template version forked",
		zap.String("parentTemplateID", parent.ID),
		zap.String("templateID", child.ID),
		zap.Int("version", child.Version))
	return child, nil
}

func (m *manager) Submit(ctx context.Context, tenantID, id string, userID *string) (*schema.Template, error) {
	tmpl, err := m.GetTemplate(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if tmpl.Status != domain.TemplateStatusDraft {
		return nil, domain.NewConflictError("submit", tmpl.Status, domain.TemplateStatusDraft)
	}

	var components []domain.Component
	if err := json.Unmarshal(tmpl.Components, &components); err != nil {
		return nil, fmt.Errorf("failed to decode stored components: %w", err)
	}
	if err := validateComponents(components); err != nil {
		return nil, err
	}

	externalID, err := m.metaAPI.SubmitTemplate(ctx, tenantID, meta.SubmitRequest{
		Name:       tmpl.Name,
		Language:   tmpl.Language,
		Category:   string(tmpl.Category),
		Components: components,
	})
	if err != nil {
		return nil, fmt.Errorf("submission rejected by provider: %w", err)
	}

	now := m.clock.Now()
	applied, err := m.store.MarkTemplateSubmitted(ctx, tmpl.ID, externalID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to mark template submitted: %w", err)
	}
	if !applied {
		// Submitted remotely but a concurrent writer moved the row first.
		// The poller or a webhook will reconcile the external decision.
		logger.WarnCtx(ctx, "template changed state during submission",
			zap.String("templateID", tmpl.ID),
			zap.String("externalTemplateID", externalID))
		return nil, domain.NewConflictError("submit", tmpl.Status, domain.TemplateStatusDraft)
	}

	m.recordTransition(ctx, tmpl, domain.TemplateStatusDraft, domain.TemplateStatusPending,
		nil, domain.TransitionSourceUser, nil, userID, now)

	logger.InfoCtx(ctx, "template submitted for review",
		zap.String("templateID", tmpl.ID),
		zap.String("externalTemplateID", externalID))
	return m.GetTemplate(ctx, tenantID, id)
}

func (m *manager) UpdateApprovalStatus(ctx context.Context, update StatusUpdate) (Outcome, error) {
	if !update.NewStatus.Valid() {
		return "", fmt.Errorf("invalid target status %q", update.NewStatus)
	}

	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		tmpl, err := m.GetTemplate(ctx, update.TenantID, update.TemplateID)
		if err != nil {
			return "", err
		}

		current := tmpl.Status
		if current == update.NewStatus {
			return OutcomeDuplicate, nil
		}
		if !transitionAllowed(current, update.NewStatus) {
			logger.WarnCtx(ctx, "stale status update refused",
				zap.String("templateID", tmpl.ID),
				zap.String("currentStatus", string(current)),
				zap.String("proposedStatus", string(update.NewStatus)),
				zap.String("source", string(update.Source)))
			return OutcomeStale, nil
		}

		now := m.clock.Now()
		applied, err := m.store.TransitionTemplateStatus(ctx, store.TransitionInput{
			TemplateID:      tmpl.ID,
			Expected:        current,
			New:             update.NewStatus,
			RejectionReason: update.Reason,
			Now:             now,
		})
		if err != nil {
			return "", fmt.Errorf("failed to transition template status: %w", err)
		}
		if !applied {
			// Another writer moved the row between read and update; reload
			// and re-evaluate against the fresh state.
			continue
		}

		m.recordTransition(ctx, tmpl, current, update.NewStatus,
			update.Reason, update.Source, update.ExternalResponse, update.ChangedByUserID, now)

		if update.NewStatus.Terminal() && m.dereg != nil {
			m.dereg.Deregister(tmpl.ID)
		}

		logger.InfoCtx(ctx, "template status updated",
			zap.String("templateID", tmpl.ID),
			zap.String("fromStatus", string(current)),
			zap.String("toStatus", string(update.NewStatus)),
			zap.String("source", string(update.Source)))
		return OutcomeApplied, nil
	}

	return OutcomeConflict, nil
}

func (m *manager) RefreshStatus(ctx context.Context, tenantID, id string, userID *string) (*schema.Template, error) {
	tmpl, err := m.GetTemplate(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if tmpl.ExternalTemplateID == nil {
		return nil, domain.NewConflictError("refresh", tmpl.Status, domain.TemplateStatusPending)
	}

	resp, err := m.metaAPI.GetTemplateStatus(ctx, tenantID, *tmpl.ExternalTemplateID)
	if err != nil {
		return nil, fmt.Errorf("status refresh failed: %w", err)
	}

	if resp.QualityScore != nil && resp.QualityScore.Score != "" {
		if err := m.UpdateQualityScore(ctx, *tmpl.ExternalTemplateID, resp.QualityScore.Score); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("templateID", tmpl.ID))
		}
	}

	newStatus, resolved := domain.MapExternalStatus(resp.Status)
	if !resolved {
		if newStatus == "" {
			logger.WarnCtx(ctx, "unrecognized external status on refresh",
				zap.String("templateID", tmpl.ID),
				zap.String("externalStatus", resp.Status))
		}
		return tmpl, nil
	}

	var reason *string
	if resp.RejectedReason != "" {
		reason = &resp.RejectedReason
	}
	payload, _ := json.Marshal(resp)

	if _, err := m.UpdateApprovalStatus(ctx, StatusUpdate{
		TemplateID:       tmpl.ID,
		TenantID:         tenantID,
		NewStatus:        newStatus,
		Reason:           reason,
		Source:           domain.TransitionSourceManualRefresh,
		ExternalResponse: payload,
		ChangedByUserID:  userID,
	}); err != nil {
		return nil, err
	}

	return m.GetTemplate(ctx, tenantID, id)
}

// SyncStatuses pulls Meta's full template list for the tenant and routes every
// resolvable decision through UpdateApprovalStatus. Unknown templates and
// unresolved statuses are skipped; per-template failures never abort the pass.
func (m *manager) SyncStatuses(ctx context.Context, tenantID string, userID *string) (int, error) {
	remotes, err := m.metaAPI.FetchAllTemplates(ctx, tenantID)
	if err != nil {
		return 0, fmt.Errorf("status sync failed: %w", err)
	}

	applied := 0
	for i := range remotes {
		remote := &remotes[i]
		tmpl, err := m.store.GetTemplateByExternalID(ctx, remote.ID)
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("externalTemplateID", remote.ID))
			continue
		}
		if tmpl == nil || tmpl.TenantID != tenantID {
			continue
		}

		if remote.QualityScore != nil && remote.QualityScore.Score != "" {
			if err := m.UpdateQualityScore(ctx, remote.ID, remote.QualityScore.Score); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("templateID", tmpl.ID))
			}
		}

		newStatus, resolved := domain.MapExternalStatus(remote.Status)
		if !resolved {
			continue
		}

		var reason *string
		if remote.RejectedReason != "" {
			reason = &remote.RejectedReason
		}
		payload, _ := json.Marshal(remote)

		outcome, err := m.UpdateApprovalStatus(ctx, StatusUpdate{
			TemplateID:       tmpl.ID,
			TenantID:         tenantID,
			NewStatus:        newStatus,
			Reason:           reason,
			Source:           domain.TransitionSourceManualRefresh,
			ExternalResponse: payload,
			ChangedByUserID:  userID,
		})
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("templateID", tmpl.ID))
			continue
		}
		if outcome == OutcomeApplied {
			applied++
		}
	}

	logger.InfoCtx(ctx, "template status sync completed",
		zap.String("tenantID", tenantID),
		zap.Int("remote", len(remotes)),
		zap.Int("applied", applied))
	return applied, nil
}

func (m *manager) Archive(ctx context.Context, tenantID, id string, reason *string, userID *string) error {
	tmpl, err := m.GetTemplate(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if tmpl.Status == domain.TemplateStatusArchived {
		// Idempotent
		return nil
	}
	if tmpl.Status == domain.TemplateStatusPending {
		return domain.NewConflictError("archive", tmpl.Status, domain.TemplateStatusApproved)
	}

	applied, err := m.store.ArchiveTemplate(ctx, tmpl.ID, reason)
	if err != nil {
		return fmt.Errorf("failed to archive template: %w", err)
	}
	if !applied {
		return domain.NewConflictError("archive", tmpl.Status, domain.TemplateStatusApproved)
	}

	m.recordTransition(ctx, tmpl, tmpl.Status, domain.TemplateStatusArchived,
		reason, domain.TransitionSourceUser, nil, userID, m.clock.Now())

	if m.dereg != nil {
		m.dereg.Deregister(tmpl.ID)
	}
	return nil
}

func (m *manager) Restore(ctx context.Context, tenantID, id string, userID *string) (*schema.Template, error) {
	tmpl, err := m.GetTemplate(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if tmpl.Status != domain.TemplateStatusArchived {
		return nil, domain.NewConflictError("restore", tmpl.Status, domain.TemplateStatusArchived)
	}

	restoredTo := domain.TemplateStatusDraft
	if tmpl.PreArchiveStatus != nil {
		restoredTo = *tmpl.PreArchiveStatus
	}

	active, err := m.store.GetActiveTemplate(ctx, tenantID, tmpl.Name, tmpl.Language)
	if err != nil {
		return nil, fmt.Errorf("failed to check name availability: %w", err)
	}
	if active != nil && active.ID != tmpl.ID {
		return nil, domain.ErrTemplateNameTaken
	}

	applied, err := m.store.RestoreTemplate(ctx, tmpl.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to restore template: %w", err)
	}
	if !applied {
		return nil, domain.NewConflictError("restore", tmpl.Status, domain.TemplateStatusArchived)
	}

	m.recordTransition(ctx, tmpl, domain.TemplateStatusArchived, restoredTo,
		nil, domain.TransitionSourceUser, nil, userID, m.clock.Now())

	return m.GetTemplate(ctx, tenantID, id)
}

func (m *manager) Delete(ctx context.Context, tenantID, id string, userID *string) error {
	tmpl, err := m.GetTemplate(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if tmpl.Status == domain.TemplateStatusApproved {
		return domain.NewConflictError("delete", tmpl.Status, domain.TemplateStatusDraft)
	}
	if tmpl.Status != domain.TemplateStatusDraft && tmpl.Status != domain.TemplateStatusRejected {
		return domain.NewConflictError("delete", tmpl.Status, domain.TemplateStatusDraft)
	}

	campaigns, err := m.store.FindActiveCampaignsUsingTemplate(ctx, tmpl.ID)
	if err != nil {
		return fmt.Errorf("failed to check campaign usage: %w", err)
	}
	if len(campaigns) > 0 {
		names := make([]string, 0, len(campaigns))
		for _, c := range campaigns {
			names = append(names, c.Name)
		}
		return &domain.TemplateInUseError{Campaigns: names}
	}

	if tmpl.ExternalTemplateID != nil {
		if err := m.metaAPI.DeleteTemplate(ctx, tenantID, tmpl.Name); err != nil {
			// The remote copy is orphaned at worst; Meta garbage-collects
			// rejected templates on its own schedule.
			logger.WarnCtx(ctx, "remote template deletion failed",
				zap.String("templateID", tmpl.ID),
				zap.Error(err))
		}
	}

	applied, err := m.store.DeleteTemplate(ctx, tmpl.ID)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	if !applied {
		return domain.NewConflictError("delete", tmpl.Status, domain.TemplateStatusDraft)
	}

	if m.dereg != nil {
		m.dereg.Deregister(tmpl.ID)
	}

	logger.InfoCtx(ctx, "template deleted",
		zap.String("templateID", tmpl.ID),
		zap.String("tenantID", tenantID),
		zap.Stringp("userID", userID))
	return nil
}

func (m *manager) UpdateQualityScore(ctx context.Context, externalID, score string) error {
	if err := m.store.UpdateTemplateQualityScore(ctx, externalID, score); err != nil {
		return fmt.Errorf("failed to update quality score: %w", err)
	}
	return nil
}

func (m *manager) StatusHistory(ctx context.Context, tenantID, id string, limit, offset int) ([]schema.TemplateStatusHistory, int64, error) {
	if _, err := m.GetTemplate(ctx, tenantID, id); err != nil {
		return nil, 0, err
	}
	return m.store.ListStatusHistory(ctx, id, limit, offset)
}

func (m *manager) StatusChanges(ctx context.Context, filter store.HistoryFilter) ([]schema.TemplateStatusHistory, int64, error) {
	return m.store.ListStatusChanges(ctx, filter)
}

func (m *manager) StatusCounts(ctx context.Context, tenantID string, from, to time.Time) (map[domain.TemplateStatus]int64, error) {
	return m.store.CountStatusChanges(ctx, tenantID, from, to)
}

// recordTransition appends the history entry and publishes the change event.
// Both are best-effort: the row transition already happened and must not be
// rolled back because the ledger or the broker hiccuped.
func (m *manager) recordTransition(ctx context.Context, tmpl *schema.Template, from, to domain.TemplateStatus,
	reason *string, source domain.TransitionSource, externalResponse []byte, userID *string, at time.Time) {
	entry := &schema.TemplateStatusHistory{
		ID:              ulid.Make().String(),
		TemplateID:      tmpl.ID,
		TenantID:        tmpl.TenantID,
		FromStatus:      from,
		ToStatus:        to,
		Reason:          reason,
		Source:          source,
		ChangedByUserID: userID,
		ChangedAt:       at,
	}
	if len(externalResponse) > 0 {
		entry.ExternalResponse = externalResponse
	}
	if err := m.store.CreateStatusHistory(ctx, entry); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to append status history: %w", err),
			zap.String("templateID", tmpl.ID),
			zap.String("toStatus", string(to)))
	}

	if m.publisher == nil {
		return
	}
	if err := m.publisher.PublishStatusChanged(ctx, messaging.TemplateStatusChangedEvent{
		TemplateID: tmpl.ID,
		TenantID:   tmpl.TenantID,
		Name:       tmpl.Name,
		Language:   tmpl.Language,
		FromStatus: from,
		ToStatus:   to,
		Reason:     reason,
		Source:     source,
		OccurredAt: at,
	}); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to publish status change event: %w", err),
			zap.String("templateID", tmpl.ID),
			zap.String("toStatus", string(to)))
	}
}
