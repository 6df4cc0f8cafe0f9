package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/flowdesk/wacrm/internal/domain"
	"github.com/flowdesk/wacrm/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to safe defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// CreateTemplate inserts a new draft template row
func (s *pgStore) CreateTemplate(ctx context.Context, tmpl *schema.Template) error {
	if err := s.db.WithContext(ctx).Create(tmpl).Error; err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}
	return nil
}

// GetTemplateByID retrieves a tenant's template by id
func (s *pgStore) GetTemplateByID(ctx context.Context, tenantID, id string) (*schema.Template, error) {
	var tmpl schema.Template
	err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&tmpl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return &tmpl, nil
}

// GetTemplateByExternalID retrieves a template by its Meta template id
func (s *pgStore) GetTemplateByExternalID(ctx context.Context, externalID string) (*schema.Template, error) {
	var tmpl schema.Template
	err := s.db.WithContext(ctx).
		Where("external_template_id = ?", externalID).
		First(&tmpl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get template by external id: %w", err)
	}
	return &tmpl, nil
}

// GetActiveTemplate retrieves the active, non-archived row for a lineage
func (s *pgStore) GetActiveTemplate(ctx context.Context, tenantID, name, language string) (*schema.Template, error) {
	var tmpl schema.Template
	err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND name = ? AND language = ? AND is_active = ? AND status <> ?",
			tenantID, name, language, true, domain.TemplateStatusArchived).
		First(&tmpl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active template: %w", err)
	}
	return &tmpl, nil
}

// ListTemplates lists templates matching the filter with a total count
func (s *pgStore) ListTemplates(ctx context.Context, filter TemplateFilter) ([]*schema.Template, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Template{}).Where("tenant_id = ?", filter.TenantID)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count templates: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	var templates []*schema.Template
	err := query.Order("created_at DESC").Limit(limit).Offset(filter.Offset).Find(&templates).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, total, nil
}

// ListPendingWithExternalID returns pending templates that Meta knows about
func (s *pgStore) ListPendingWithExternalID(ctx context.Context, limit int) ([]*schema.Template, error) {
	if limit <= 0 {
		limit = 500
	}
	var templates []*schema.Template
	err := s.db.WithContext(ctx).
		Where("status = ? AND external_template_id IS NOT NULL", domain.TemplateStatusPending).
		Order("submitted_at ASC").
		Limit(limit).
		Find(&templates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending templates: %w", err)
	}
	return templates, nil
}

// UpdateTemplateContent mutates a template's content in place
func (s *pgStore) UpdateTemplateContent(ctx context.Context, id string, category domain.TemplateCategory, components []byte) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Template{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"category":   category,
			"components": components,
			"updated_at": gorm.Expr("now()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update template content: %w", err)
	}
	return nil
}

// CreateTemplateVersion deactivates the parent and inserts the child version
// in one transaction so the lineage never holds two active rows
func (s *pgStore) CreateTemplateVersion(ctx context.Context, parentID string, child *schema.Template) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.Template{}).
			Where("id = ? AND is_active = ?", parentID, true).
			Update("is_active", false)
		if result.Error != nil {
			return fmt.Errorf("failed to deactivate parent template: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("parent template %s is not active: %w", parentID, domain.ErrTemplateNotFound)
		}

		if err := tx.Create(child).Error; err != nil {
			return fmt.Errorf("failed to create template version: %w", err)
		}
		return nil
	})
}

// MarkTemplateSubmitted moves a draft to pending with its Meta template id
func (s *pgStore) MarkTemplateSubmitted(ctx context.Context, id, externalID string, at time.Time) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Template{}).
		Where("id = ? AND status = ?", id, domain.TemplateStatusDraft).
		Updates(map[string]interface{}{
			"status":               domain.TemplateStatusPending,
			"external_template_id": externalID,
			"submitted_at":         at,
			"updated_at":           at,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark template submitted: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// TransitionTemplateStatus applies a conditional status transition. The WHERE
// clause on the expected status is the concurrency-safety contract: two
// overlapping writers cannot both apply, and the loser observes applied=false.
func (s *pgStore) TransitionTemplateStatus(ctx context.Context, input TransitionInput) (bool, error) {
	updates := map[string]interface{}{
		"status":     input.New,
		"updated_at": input.Now,
	}

	switch input.New {
	case domain.TemplateStatusApproved:
		updates["approved_at"] = input.Now
		updates["rejected_at"] = nil
		updates["rejection_reason"] = nil
	case domain.TemplateStatusRejected:
		updates["rejected_at"] = input.Now
		updates["approved_at"] = nil
		updates["rejection_reason"] = input.RejectionReason
	case domain.TemplateStatusDraft:
		// Reset after a rejected edit: clear the stale decision fields
		updates["rejected_at"] = nil
		updates["rejection_reason"] = nil
		updates["approved_at"] = nil
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Template{}).
		Where("id = ? AND status = ?", input.TemplateID, input.Expected).
		Updates(updates)
	if result.Error != nil {
		return false, fmt.Errorf("failed to transition template status: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// archiveUpdates is the column set applied when archiving. Clearing is_active
// keeps archived rows out of ActiveOnly listings and name-uniqueness checks.
func archiveUpdates(reason *string) map[string]interface{} {
	return map[string]interface{}{
		"pre_archive_status": gorm.Expr("status"),
		"status":             domain.TemplateStatusArchived,
		"archive_reason":     reason,
		"is_active":          false,
		"updated_at":         gorm.Expr("now()"),
	}
}

// restoreUpdates is the column set applied when restoring an archived template
func restoreUpdates() map[string]interface{} {
	return map[string]interface{}{
		"status":             gorm.Expr("COALESCE(pre_archive_status, ?)", domain.TemplateStatusDraft),
		"pre_archive_status": nil,
		"archive_reason":     nil,
		"is_active":          true,
		"updated_at":         gorm.Expr("now()"),
	}
}

// ArchiveTemplate archives a template, remembering its pre-archive status so a
// restore can reactivate it. Pending templates cannot be archived while an
// external decision is outstanding.
func (s *pgStore) ArchiveTemplate(ctx context.Context, id string, reason *string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Template{}).
		Where("id = ? AND status NOT IN ?", id, []domain.TemplateStatus{
			domain.TemplateStatusArchived, domain.TemplateStatusPending,
		}).
		Updates(archiveUpdates(reason))
	if result.Error != nil {
		return false, fmt.Errorf("failed to archive template: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// RestoreTemplate reactivates an archived template to its pre-archive status
func (s *pgStore) RestoreTemplate(ctx context.Context, id string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Template{}).
		Where("id = ? AND status = ?", id, domain.TemplateStatusArchived).
		Updates(restoreUpdates())
	if result.Error != nil {
		return false, fmt.Errorf("failed to restore template: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// DeleteTemplate hard-deletes a template. The status condition enforces the
// invariant that approved templates can never be hard-deleted.
func (s *pgStore) DeleteTemplate(ctx context.Context, id string) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND status IN ?", id, []domain.TemplateStatus{
			domain.TemplateStatusDraft, domain.TemplateStatusRejected,
		}).
		Delete(&schema.Template{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete template: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// UpdateTemplateQualityScore stores Meta's quality rating by external id
func (s *pgStore) UpdateTemplateQualityScore(ctx context.Context, externalID, score string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Template{}).
		Where("external_template_id = ?", externalID).
		Updates(map[string]interface{}{
			"quality_score": score,
			"updated_at":    gorm.Expr("now()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update quality score: %w", err)
	}
	return nil
}

// CreateStatusHistory appends one immutable transition record
func (s *pgStore) CreateStatusHistory(ctx context.Context, entry *schema.TemplateStatusHistory) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create status history entry: %w", err)
	}
	return nil
}

// ListStatusHistory replays a template's transitions, oldest first
func (s *pgStore) ListStatusHistory(ctx context.Context, templateID string, limit, offset int) ([]schema.TemplateStatusHistory, int64, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.TemplateStatusHistory{}).
		Where("template_id = ?", templateID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count status history: %w", err)
	}

	if limit <= 0 {
		limit = 100
	}

	var entries []schema.TemplateStatusHistory
	err := query.Order("changed_at ASC, id ASC").Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list status history: %w", err)
	}
	return entries, total, nil
}

// ListStatusChanges returns a tenant-wide feed, newest first
func (s *pgStore) ListStatusChanges(ctx context.Context, filter HistoryFilter) ([]schema.TemplateStatusHistory, int64, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.TemplateStatusHistory{}).
		Where("tenant_id = ?", filter.TenantID)
	if filter.ToStatus != nil {
		query = query.Where("to_status = ?", *filter.ToStatus)
	}
	if filter.Since != nil {
		query = query.Where("changed_at >= ?", *filter.Since)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count status changes: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	var entries []schema.TemplateStatusHistory
	err := query.Order("changed_at DESC, id DESC").Limit(limit).Offset(filter.Offset).Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list status changes: %w", err)
	}
	return entries, total, nil
}

// CountStatusChanges aggregates transition counts by target status over a range
func (s *pgStore) CountStatusChanges(ctx context.Context, tenantID string, from, to time.Time) (map[domain.TemplateStatus]int64, error) {
	type row struct {
		ToStatus domain.TemplateStatus
		Count    int64
	}

	var rows []row
	err := s.db.WithContext(ctx).
		Model(&schema.TemplateStatusHistory{}).
		Select("to_status, COUNT(*) as count").
		Where("tenant_id = ? AND changed_at >= ? AND changed_at < ?", tenantID, from, to).
		Group("to_status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count status changes: %w", err)
	}

	counts := make(map[domain.TemplateStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.ToStatus] = r.Count
	}
	return counts, nil
}

// CreateWebhookEventLog appends one webhook ingestion audit row
func (s *pgStore) CreateWebhookEventLog(ctx context.Context, entry *schema.WebhookEventLog) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create webhook event log entry: %w", err)
	}
	return nil
}

// FindActiveCampaignsUsingTemplate returns non-terminal campaigns referencing
// the template
func (s *pgStore) FindActiveCampaignsUsingTemplate(ctx context.Context, templateID string) ([]schema.Campaign, error) {
	var campaigns []schema.Campaign
	err := s.db.WithContext(ctx).
		Where("template_id = ? AND status IN ?", templateID, []schema.CampaignStatus{
			schema.CampaignStatusScheduled, schema.CampaignStatusRunning, schema.CampaignStatusPaused,
		}).
		Find(&campaigns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find campaigns using template: %w", err)
	}
	return campaigns, nil
}

// GetChannelByTenant retrieves a tenant's WhatsApp channel
func (s *pgStore) GetChannelByTenant(ctx context.Context, tenantID string) (*schema.Channel, error) {
	var channel schema.Channel
	err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		First(&channel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}
	return &channel, nil
}

// GetChannelByWABAID retrieves a channel by WhatsApp Business Account id
func (s *pgStore) GetChannelByWABAID(ctx context.Context, wabaID string) (*schema.Channel, error) {
	var channel schema.Channel
	err := s.db.WithContext(ctx).
		Where("waba_id = ? AND is_active = ?", wabaID, true).
		First(&channel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get channel by WABA id: %w", err)
	}
	return &channel, nil
}

// GetChannelByVerifyToken retrieves an active channel by its webhook verify token
func (s *pgStore) GetChannelByVerifyToken(ctx context.Context, token string) (*schema.Channel, error) {
	var channel schema.Channel
	err := s.db.WithContext(ctx).
		Where("webhook_verify_token = ? AND is_active = ?", token, true).
		First(&channel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get channel by verify token: %w", err)
	}
	return &channel, nil
}
