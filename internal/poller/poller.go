package poller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/flowdesk/wacrm/internal/adapter"
	"github.com/flowdesk/wacrm/internal/domain"
	"github.com/flowdesk/wacrm/internal/lifecycle"
	"github.com/flowdesk/wacrm/internal/logger"
	"github.com/flowdesk/wacrm/internal/meta"
	"github.com/flowdesk/wacrm/internal/store"
	"github.com/flowdesk/wacrm/internal/store/schema"
)

// Config holds configuration for the status poller
type Config struct {
	// PollInterval is the delay between consecutive checks of one template
	PollInterval time.Duration
	// MaxAttempts caps completed checks per template before polling gives up
	MaxAttempts int
	// RescanInterval is the delay between repository rescans
	RescanInterval time.Duration
	// RescanBatchSize limits templates picked up per rescan
	RescanBatchSize int
	// WorkerPoolSize bounds concurrent Graph API checks
	WorkerPoolSize int
}

// StatusUpdater is the slice of the lifecycle manager the poller needs
type StatusUpdater interface {
	UpdateApprovalStatus(ctx context.Context, update lifecycle.StatusUpdate) (lifecycle.Outcome, error)
	UpdateQualityScore(ctx context.Context, externalID, score string) error
}

// Poller tracks templates awaiting an external decision and periodically
// checks their status against Meta. The in-memory job registry is a cache;
// the repository is the source of truth, and the rescan loop re-registers
// anything pending that the registry lost (restart, missed submit).
//
//go:generate mockgen -source=poller.go -destination=../mocks/poller.go -package=mocks -mock_names=Poller=MockPoller,StatusUpdater=MockStatusUpdater
type Poller interface {
	// Start begins the rescan loop. Blocking; runs until the context is
	// canceled or Stop is called.
	Start(ctx context.Context) error
	// Stop gracefully stops the poller and waits for in-flight checks
	Stop(ctx context.Context) error
	// Register begins polling a template. Registering a tracked template is
	// a no-op.
	Register(tmpl *schema.Template)
	// Deregister cancels polling for a template
	Deregister(templateID string)
	// Name returns the poller's name for logging
	Name() string
}

// job is one tracked template. Exhausted jobs stay in the registry as
// tombstones so rescans do not restart a lineage that already burned its
// attempt budget; deletion or a terminal decision removes them.
type job struct {
	templateID string
	tenantID   string
	externalID string
	cancel     chan struct{}
	exhausted  bool
}

type statusPoller struct {
	config  Config
	store   store.Store
	metaAPI meta.TemplateAPI
	updater StatusUpdater
	clock   adapter.Clock
	pool    pond.Pool

	mu   sync.Mutex
	jobs map[string]*job
	wg   sync.WaitGroup

	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewPoller creates a template status poller
func NewPoller(config Config, st store.Store, metaAPI meta.TemplateAPI, updater StatusUpdater, clock adapter.Clock) Poller {
	return &statusPoller{
		config:    config,
		store:     st,
		metaAPI:   metaAPI,
		updater:   updater,
		clock:     clock,
		jobs:      make(map[string]*job),
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the poller's name
func (p *statusPoller) Name() string {
	return "template-status-poller"
}

// Start begins the rescan loop
func (p *statusPoller) Start(ctx context.Context) error {
	if !p.running.CompareAndSwap(false, true) {
		return fmt.Errorf("poller already running")
	}
	defer func() {
		p.running.Store(false)
		close(p.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting template status poller",
		zap.Duration("poll_interval", p.config.PollInterval),
		zap.Int("max_attempts", p.config.MaxAttempts),
		zap.Duration("rescan_interval", p.config.RescanInterval),
	)

	p.pool = pond.NewPool(p.config.WorkerPoolSize, pond.WithContext(ctx))

	for {
		if err := p.rescan(ctx); err != nil {
			if !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err)
			}
		}

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Template status poller stopping due to context cancellation", zap.Error(ctx.Err()))
			p.cleanup()
			return nil
		case <-p.stopChan:
			logger.InfoCtx(ctx, "Template status poller stop requested")
			p.cleanup()
			return nil
		case <-p.clock.After(p.config.RescanInterval):
		}
	}
}

// cleanup cancels every tracked job and drains the worker pool
func (p *statusPoller) cleanup() {
	p.mu.Lock()
	for _, j := range p.jobs {
		select {
		case <-j.cancel:
		default:
			close(j.cancel)
		}
	}
	p.mu.Unlock()

	p.wg.Wait()
	if p.pool != nil {
		p.pool.StopAndWait()
	}
}

// Stop gracefully stops the poller with timeout support
func (p *statusPoller) Stop(ctx context.Context) error {
	if !p.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping template status poller")
	close(p.stopChan)

	select {
	case <-p.stoppedCh:
		logger.InfoCtx(ctx, "Template status poller stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Template status poller stop interrupted by context timeout")
		return ctx.Err()
	}
}

// rescan picks up pending templates the registry is not tracking
func (p *statusPoller) rescan(ctx context.Context) error {
	pending, err := p.store.ListPendingWithExternalID(ctx, p.config.RescanBatchSize)
	if err != nil {
		return fmt.Errorf("failed to list pending templates: %w", err)
	}

	registered := 0
	for _, tmpl := range pending {
		if p.register(ctx, tmpl) {
			registered++
		}
	}

	if registered > 0 {
		logger.InfoCtx(ctx, "Rescan registered pending templates",
			zap.Int("registered", registered),
			zap.Int("pending_total", len(pending)),
		)
	}
	return nil
}

// Register begins polling a template
func (p *statusPoller) Register(tmpl *schema.Template) {
	p.register(context.Background(), tmpl)
}

func (p *statusPoller) register(ctx context.Context, tmpl *schema.Template) bool {
	if tmpl.ExternalTemplateID == nil || tmpl.Status != domain.TemplateStatusPending {
		return false
	}

	p.mu.Lock()
	if _, exists := p.jobs[tmpl.ID]; exists {
		p.mu.Unlock()
		return false
	}
	j := &job{
		templateID: tmpl.ID,
		tenantID:   tmpl.TenantID,
		externalID: *tmpl.ExternalTemplateID,
		cancel:     make(chan struct{}),
	}
	p.jobs[tmpl.ID] = j
	p.wg.Add(1)
	p.mu.Unlock()

	go p.pollLoop(ctx, j)

	logger.InfoCtx(ctx, "Template registered for status polling",
		zap.String("templateID", j.templateID),
		zap.String("externalTemplateID", j.externalID),
	)
	return true
}

// Deregister cancels polling for a template
func (p *statusPoller) Deregister(templateID string) {
	p.mu.Lock()
	j, exists := p.jobs[templateID]
	if exists {
		delete(p.jobs, templateID)
	}
	p.mu.Unlock()

	if !exists {
		return
	}
	select {
	case <-j.cancel:
	default:
		close(j.cancel)
	}
	logger.Info("Template deregistered from status polling", zap.String("templateID", templateID))
}

// markExhausted leaves the job in the registry as a tombstone so the next
// rescan does not restart it
func (p *statusPoller) markExhausted(j *job) {
	p.mu.Lock()
	j.exhausted = true
	p.mu.Unlock()
}

// pollLoop checks one template every PollInterval until its status resolves,
// the attempt budget runs out, or the job is canceled
func (p *statusPoller) pollLoop(ctx context.Context, j *job) {
	defer p.wg.Done()

	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopChan:
			return
		case <-j.cancel:
			return
		case <-p.clock.After(p.config.PollInterval):
		}

		var resolved, counted bool
		task := p.pool.Submit(func() {
			resolved, counted = p.checkOnce(ctx, j)
		})
		if err := task.Wait(); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("status check task failed: %w", err),
				zap.String("templateID", j.templateID))
			continue
		}

		if resolved {
			p.Deregister(j.templateID)
			return
		}
		if counted {
			attempts++
		}
		if attempts >= p.config.MaxAttempts {
			p.exhaust(ctx, j, attempts)
			return
		}
	}
}

// checkOnce performs one status check. resolved means polling is done for
// this template; counted means the check completed and consumes one attempt.
// Transport failures are not counted so flaky networks do not burn the
// budget.
func (p *statusPoller) checkOnce(ctx context.Context, j *job) (resolved bool, counted bool) {
	resp, err := p.metaAPI.GetTemplateStatus(ctx, j.tenantID, j.externalID)
	if err != nil {
		logger.WarnCtx(ctx, "Template status check failed",
			zap.String("templateID", j.templateID),
			zap.String("externalTemplateID", j.externalID),
			zap.Error(err),
		)
		return false, false
	}

	if resp.QualityScore != nil && resp.QualityScore.Score != "" {
		if err := p.updater.UpdateQualityScore(ctx, j.externalID, resp.QualityScore.Score); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("templateID", j.templateID))
		}
	}

	newStatus, ok := domain.MapExternalStatus(resp.Status)
	if !ok {
		if newStatus == "" {
			logger.WarnCtx(ctx, "Unrecognized external status, ignoring",
				zap.String("templateID", j.templateID),
				zap.String("externalStatus", resp.Status),
			)
		}
		return false, true
	}

	var reason *string
	if resp.RejectedReason != "" {
		reason = &resp.RejectedReason
	}
	payload, _ := json.Marshal(resp)

	outcome, err := p.updater.UpdateApprovalStatus(ctx, lifecycle.StatusUpdate{
		TemplateID:       j.templateID,
		TenantID:         j.tenantID,
		NewStatus:        newStatus,
		Reason:           reason,
		Source:           domain.TransitionSourceSystem,
		ExternalResponse: payload,
	})
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to apply polled status: %w", err),
			zap.String("templateID", j.templateID))
		return false, true
	}

	// Duplicate and stale mean another source already resolved the template;
	// either way this job is done.
	logger.InfoCtx(ctx, "Polled status applied",
		zap.String("templateID", j.templateID),
		zap.String("externalStatus", resp.Status),
		zap.String("outcome", string(outcome)),
	)
	return outcome != lifecycle.OutcomeConflict, true
}

// exhaust records that polling gave up without a decision. The template stays
// pending; a webhook or a manual refresh can still resolve it.
func (p *statusPoller) exhaust(ctx context.Context, j *job, attempts int) {
	p.markExhausted(j)

	reason := fmt.Sprintf("polling exhausted after %d attempts without an external decision", attempts)
	logger.WarnCtx(ctx, "Template polling exhausted",
		zap.String("templateID", j.templateID),
		zap.String("externalTemplateID", j.externalID),
		zap.Int("attempts", attempts),
	)

	entry := &schema.TemplateStatusHistory{
		ID:         ulid.Make().String(),
		TemplateID: j.templateID,
		TenantID:   j.tenantID,
		FromStatus: domain.TemplateStatusPending,
		ToStatus:   domain.TemplateStatusPending,
		Reason:     &reason,
		Source:     domain.TransitionSourceSystem,
		ChangedAt:  p.clock.Now(),
	}
	if err := p.store.CreateStatusHistory(ctx, entry); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record polling exhaustion: %w", err),
			zap.String("templateID", j.templateID))
	}
}
