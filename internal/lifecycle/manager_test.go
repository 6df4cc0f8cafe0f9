package lifecycle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/flowdesk/wacrm/internal/domain"
	"github.com/flowdesk/wacrm/internal/lifecycle"
	"github.com/flowdesk/wacrm/internal/logger"
	"github.com/flowdesk/wacrm/internal/meta"
	"github.com/flowdesk/wacrm/internal/mocks"
	"github.com/flowdesk/wacrm/internal/store"
	"github.com/flowdesk/wacrm/internal/store/schema"
)

const (
	testTenantID   = "7b3f9a3e-4c2d-4f6a-9c1e-2f8d5b6a7c8d"
	testTemplateID = "c1a2b3c4-d5e6-47f8-9a0b-1c2d3e4f5a6b"
	testExternalID = "1234567890"
)

// testManagerMocks contains all the mocks needed for testing the lifecycle manager
type testManagerMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	metaAPI   *mocks.MockTemplateAPI
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	poller    *mocks.MockPoller
	manager   lifecycle.Manager
}

// setupTestManager creates all the mocks and manager for testing
func setupTestManager(t *testing.T) *testManagerMocks {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testManagerMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		metaAPI:   mocks.NewMockTemplateAPI(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
		poller:    mocks.NewMockPoller(ctrl),
	}

	tm.manager = lifecycle.NewManager(tm.store, tm.metaAPI, tm.publisher, tm.clock)
	tm.manager.SetDeregistrar(tm.poller)

	return tm
}

// tearDownTestManager cleans up the test mocks
func tearDownTestManager(mocks *testManagerMocks) {
	mocks.ctrl.Finish()
}

func validComponents() []domain.Component {
	return []domain.Component{
		{Type: domain.ComponentTypeBody, Text: "Your order {{1}} has shipped", Example: []string{"12345"}},
	}
}

func pendingTemplate() *schema.Template {
	externalID := testExternalID
	return &schema.Template{
		ID:                 testTemplateID,
		TenantID:           testTenantID,
		Name:               "order_shipped",
		Language:           "en_US",
		Category:           domain.TemplateCategoryUtility,
		Components:         datatypes.JSON(`[{"type":"BODY","text":"Your order {{1}} has shipped","example":["12345"]}]`),
		Status:             domain.TemplateStatusPending,
		ExternalTemplateID: &externalID,
		Version:            1,
		IsActive:           true,
	}
}

func TestManager_CreateTemplate(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	now := time.Now()

	tm.store.EXPECT().
		GetActiveTemplate(ctx, testTenantID, "order_shipped", "en_US").
		Return(nil, nil)

	tm.clock.EXPECT().Now().Return(now)

	tm.store.EXPECT().
		CreateTemplate(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tmpl *schema.Template) error {
			assert.NotEmpty(t, tmpl.ID)
			assert.Equal(t, domain.TemplateStatusDraft, tmpl.Status)
			assert.Equal(t, 1, tmpl.Version)
			assert.True(t, tmpl.IsActive)
			return nil
		})

	tmpl, err := tm.manager.CreateTemplate(ctx, lifecycle.CreateInput{
		TenantID:   testTenantID,
		Name:       "order_shipped",
		Language:   "en_US",
		Category:   domain.TemplateCategoryUtility,
		Components: validComponents(),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TemplateStatusDraft, tmpl.Status)
	assert.Equal(t, "order_shipped", tmpl.Name)
}

func TestManager_CreateTemplate_NameTaken(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()

	tm.store.EXPECT().
		GetActiveTemplate(ctx, testTenantID, "order_shipped", "en_US").
		Return(&schema.Template{ID: "existing"}, nil)

	_, err := tm.manager.CreateTemplate(ctx, lifecycle.CreateInput{
		TenantID:   testTenantID,
		Name:       "order_shipped",
		Language:   "en_US",
		Category:   domain.TemplateCategoryUtility,
		Components: validComponents(),
	})
	assert.ErrorIs(t, err, domain.ErrTemplateNameTaken)
}

func TestManager_CreateTemplate_InvalidName(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	_, err := tm.manager.CreateTemplate(context.Background(), lifecycle.CreateInput{
		TenantID:   testTenantID,
		Name:       "Order Shipped",
		Language:   "en_US",
		Category:   domain.TemplateCategoryUtility,
		Components: validComponents(),
	})

	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestManager_Submit(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	now := time.Now()
	draft := pendingTemplate()
	draft.Status = domain.TemplateStatusDraft
	draft.ExternalTemplateID = nil

	submitted := pendingTemplate()

	gomock.InOrder(
		tm.store.EXPECT().
			GetTemplateByID(ctx, testTenantID, testTemplateID).
			Return(draft, nil),
		tm.store.EXPECT().
			GetTemplateByID(ctx, testTenantID, testTemplateID).
			Return(submitted, nil),
	)

	tm.metaAPI.EXPECT().
		SubmitTemplate(ctx, testTenantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req meta.SubmitRequest) (string, error) {
			assert.Equal(t, "order_shipped", req.Name)
			assert.Equal(t, "en_US", req.Language)
			return testExternalID, nil
		})

	tm.clock.EXPECT().Now().Return(now)

	tm.store.EXPECT().
		MarkTemplateSubmitted(ctx, testTemplateID, testExternalID, now).
		Return(true, nil)

	tm.store.EXPECT().
		CreateStatusHistory(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *schema.TemplateStatusHistory) error {
			assert.Equal(t, domain.TemplateStatusDraft, entry.FromStatus)
			assert.Equal(t, domain.TemplateStatusPending, entry.ToStatus)
			assert.Equal(t, domain.TransitionSourceUser, entry.Source)
			return nil
		})

	tm.publisher.EXPECT().
		PublishStatusChanged(ctx, gomock.Any()).
		Return(nil)

	result, err := tm.manager.Submit(ctx, testTenantID, testTemplateID, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.TemplateStatusPending, result.Status)
}

func TestManager_Submit_NotDraft(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(pendingTemplate(), nil)

	_, err := tm.manager.Submit(ctx, testTenantID, testTemplateID, nil)

	var conflictErr *domain.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, domain.TemplateStatusPending, conflictErr.Current)
}

func TestManager_UpdateApprovalStatus_Applied(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	now := time.Now()
	reason := "policy violation"

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(pendingTemplate(), nil)

	tm.clock.EXPECT().Now().Return(now)

	tm.store.EXPECT().
		TransitionTemplateStatus(ctx, store.TransitionInput{
			TemplateID:      testTemplateID,
			Expected:        domain.TemplateStatusPending,
			New:             domain.TemplateStatusRejected,
			RejectionReason: &reason,
			Now:             now,
		}).
		Return(true, nil)

	tm.store.EXPECT().
		CreateStatusHistory(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *schema.TemplateStatusHistory) error {
			assert.Equal(t, domain.TemplateStatusPending, entry.FromStatus)
			assert.Equal(t, domain.TemplateStatusRejected, entry.ToStatus)
			assert.Equal(t, &reason, entry.Reason)
			assert.Equal(t, domain.TransitionSourceWebhook, entry.Source)
			return nil
		})

	tm.publisher.EXPECT().
		PublishStatusChanged(ctx, gomock.Any()).
		Return(nil)

	// Rejected is terminal so the poller must stop tracking the template
	tm.poller.EXPECT().Deregister(testTemplateID)

	outcome, err := tm.manager.UpdateApprovalStatus(ctx, lifecycle.StatusUpdate{
		TemplateID: testTemplateID,
		TenantID:   testTenantID,
		NewStatus:  domain.TemplateStatusRejected,
		Reason:     &reason,
		Source:     domain.TransitionSourceWebhook,
	})
	require.NoError(t, err)
	assert.Equal(t, lifecycle.OutcomeApplied, outcome)
}

func TestManager_UpdateApprovalStatus_Duplicate(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	approved := pendingTemplate()
	approved.Status = domain.TemplateStatusApproved

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(approved, nil)

	outcome, err := tm.manager.UpdateApprovalStatus(ctx, lifecycle.StatusUpdate{
		TemplateID: testTemplateID,
		TenantID:   testTenantID,
		NewStatus:  domain.TemplateStatusApproved,
		Source:     domain.TransitionSourceWebhook,
	})
	require.NoError(t, err)
	assert.Equal(t, lifecycle.OutcomeDuplicate, outcome)
}

func TestManager_UpdateApprovalStatus_StaleRefused(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	approved := pendingTemplate()
	approved.Status = domain.TemplateStatusApproved

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(approved, nil)

	// A late-arriving pending event must not regress a resolved decision
	outcome, err := tm.manager.UpdateApprovalStatus(ctx, lifecycle.StatusUpdate{
		TemplateID: testTemplateID,
		TenantID:   testTenantID,
		NewStatus:  domain.TemplateStatusPending,
		Source:     domain.TransitionSourceWebhook,
	})
	require.NoError(t, err)
	assert.Equal(t, lifecycle.OutcomeStale, outcome)
}

func TestManager_UpdateApprovalStatus_LateRejectionDoesNotRegressApproved(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	reason := "policy violation"
	approved := pendingTemplate()
	approved.Status = domain.TemplateStatusApproved

	// No TransitionTemplateStatus, history or publish expectations: a delayed
	// rejection replay must leave the approved template untouched
	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(approved, nil)

	outcome, err := tm.manager.UpdateApprovalStatus(ctx, lifecycle.StatusUpdate{
		TemplateID: testTemplateID,
		TenantID:   testTenantID,
		NewStatus:  domain.TemplateStatusRejected,
		Reason:     &reason,
		Source:     domain.TransitionSourceWebhook,
	})
	require.NoError(t, err)
	assert.Equal(t, lifecycle.OutcomeStale, outcome)
}

func TestManager_UpdateApprovalStatus_DisabledToApproved(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	now := time.Now()
	disabled := pendingTemplate()
	disabled.Status = domain.TemplateStatusDisabled

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(disabled, nil)

	tm.clock.EXPECT().Now().Return(now)

	tm.store.EXPECT().
		TransitionTemplateStatus(ctx, gomock.Any()).
		Return(true, nil)

	tm.store.EXPECT().CreateStatusHistory(ctx, gomock.Any()).Return(nil)
	tm.publisher.EXPECT().PublishStatusChanged(ctx, gomock.Any()).Return(nil)
	tm.poller.EXPECT().Deregister(testTemplateID)

	outcome, err := tm.manager.UpdateApprovalStatus(ctx, lifecycle.StatusUpdate{
		TemplateID: testTemplateID,
		TenantID:   testTenantID,
		NewStatus:  domain.TemplateStatusApproved,
		Source:     domain.TransitionSourceWebhook,
	})
	require.NoError(t, err)
	assert.Equal(t, lifecycle.OutcomeApplied, outcome)
}

func TestManager_UpdateApprovalStatus_ConflictAfterRetries(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	now := time.Now()

	// Every reload sees pending but the conditional update keeps losing the race
	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(pendingTemplate(), nil).
		Times(3)

	tm.clock.EXPECT().Now().Return(now).Times(3)

	tm.store.EXPECT().
		TransitionTemplateStatus(ctx, gomock.Any()).
		Return(false, nil).
		Times(3)

	outcome, err := tm.manager.UpdateApprovalStatus(ctx, lifecycle.StatusUpdate{
		TemplateID: testTemplateID,
		TenantID:   testTenantID,
		NewStatus:  domain.TemplateStatusApproved,
		Source:     domain.TransitionSourceSystem,
	})
	require.NoError(t, err)
	assert.Equal(t, lifecycle.OutcomeConflict, outcome)
}

func TestManager_UpdateApprovalStatus_RetryResolvesToDuplicate(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	now := time.Now()
	approved := pendingTemplate()
	approved.Status = domain.TemplateStatusApproved

	// First attempt loses the race; the reload shows the other writer already
	// applied the same decision
	gomock.InOrder(
		tm.store.EXPECT().
			GetTemplateByID(ctx, testTenantID, testTemplateID).
			Return(pendingTemplate(), nil),
		tm.store.EXPECT().
			GetTemplateByID(ctx, testTenantID, testTemplateID).
			Return(approved, nil),
	)

	tm.clock.EXPECT().Now().Return(now)

	tm.store.EXPECT().
		TransitionTemplateStatus(ctx, gomock.Any()).
		Return(false, nil)

	outcome, err := tm.manager.UpdateApprovalStatus(ctx, lifecycle.StatusUpdate{
		TemplateID: testTemplateID,
		TenantID:   testTenantID,
		NewStatus:  domain.TemplateStatusApproved,
		Source:     domain.TransitionSourceWebhook,
	})
	require.NoError(t, err)
	assert.Equal(t, lifecycle.OutcomeDuplicate, outcome)
}

func TestManager_UpdateApprovalStatus_InvalidStatus(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	_, err := tm.manager.UpdateApprovalStatus(context.Background(), lifecycle.StatusUpdate{
		TemplateID: testTemplateID,
		TenantID:   testTenantID,
		NewStatus:  domain.TemplateStatus("bogus"),
	})
	assert.Error(t, err)
}

func TestManager_UpdateApprovalStatus_HistoryFailureDoesNotAbort(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	now := time.Now()

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(pendingTemplate(), nil)

	tm.clock.EXPECT().Now().Return(now)

	tm.store.EXPECT().
		TransitionTemplateStatus(ctx, gomock.Any()).
		Return(true, nil)

	tm.store.EXPECT().
		CreateStatusHistory(ctx, gomock.Any()).
		Return(errors.New("ledger unavailable"))

	tm.publisher.EXPECT().
		PublishStatusChanged(ctx, gomock.Any()).
		Return(errors.New("broker unavailable"))

	tm.poller.EXPECT().Deregister(testTemplateID)

	outcome, err := tm.manager.UpdateApprovalStatus(ctx, lifecycle.StatusUpdate{
		TemplateID: testTemplateID,
		TenantID:   testTenantID,
		NewStatus:  domain.TemplateStatusApproved,
		Source:     domain.TransitionSourceSystem,
	})
	require.NoError(t, err)
	assert.Equal(t, lifecycle.OutcomeApplied, outcome)
}

func TestManager_UpdateContent_Draft(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	draft := pendingTemplate()
	draft.Status = domain.TemplateStatusDraft

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(draft, nil).
		Times(2)

	tm.store.EXPECT().
		UpdateTemplateContent(ctx, testTemplateID, domain.TemplateCategoryMarketing, gomock.Any()).
		Return(nil)

	_, err := tm.manager.UpdateContent(ctx, testTenantID, testTemplateID, lifecycle.ContentInput{
		Category:   domain.TemplateCategoryMarketing,
		Components: validComponents(),
	})
	require.NoError(t, err)
}

func TestManager_UpdateContent_RejectedResetsToDraft(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	now := time.Now()
	rejected := pendingTemplate()
	rejected.Status = domain.TemplateStatusRejected

	fresh := pendingTemplate()
	fresh.Status = domain.TemplateStatusDraft

	gomock.InOrder(
		tm.store.EXPECT().
			GetTemplateByID(ctx, testTenantID, testTemplateID).
			Return(rejected, nil),
		tm.store.EXPECT().
			GetTemplateByID(ctx, testTenantID, testTemplateID).
			Return(fresh, nil),
	)

	tm.store.EXPECT().
		UpdateTemplateContent(ctx, testTemplateID, domain.TemplateCategoryUtility, gomock.Any()).
		Return(nil)

	tm.clock.EXPECT().Now().Return(now)

	tm.store.EXPECT().
		TransitionTemplateStatus(ctx, store.TransitionInput{
			TemplateID: testTemplateID,
			Expected:   domain.TemplateStatusRejected,
			New:        domain.TemplateStatusDraft,
			Now:        now,
		}).
		Return(true, nil)

	tm.store.EXPECT().
		CreateStatusHistory(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *schema.TemplateStatusHistory) error {
			assert.Equal(t, domain.TemplateStatusRejected, entry.FromStatus)
			assert.Equal(t, domain.TemplateStatusDraft, entry.ToStatus)
			return nil
		})

	tm.publisher.EXPECT().PublishStatusChanged(ctx, gomock.Any()).Return(nil)

	result, err := tm.manager.UpdateContent(ctx, testTenantID, testTemplateID, lifecycle.ContentInput{
		Category:   domain.TemplateCategoryUtility,
		Components: validComponents(),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TemplateStatusDraft, result.Status)
}

func TestManager_UpdateContent_ApprovedForksNewVersion(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	now := time.Now()
	approved := pendingTemplate()
	approved.Status = domain.TemplateStatusApproved
	approved.Version = 3

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(approved, nil)

	tm.clock.EXPECT().Now().Return(now)

	tm.store.EXPECT().
		CreateTemplateVersion(ctx, testTemplateID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, child *schema.Template) error {
			assert.NotEqual(t, testTemplateID, child.ID)
			assert.Equal(t, 4, child.Version)
			assert.Equal(t, domain.TemplateStatusDraft, child.Status)
			require.NotNil(t, child.ParentTemplateID)
			assert.Equal(t, testTemplateID, *child.ParentTemplateID)
			return nil
		})

	child, err := tm.manager.UpdateContent(ctx, testTenantID, testTemplateID, lifecycle.ContentInput{
		Category:   domain.TemplateCategoryUtility,
		Components: validComponents(),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, child.Version)
	assert.Equal(t, domain.TemplateStatusDraft, child.Status)
}

func TestManager_UpdateContent_PendingRefused(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(pendingTemplate(), nil)

	_, err := tm.manager.UpdateContent(ctx, testTenantID, testTemplateID, lifecycle.ContentInput{
		Category:   domain.TemplateCategoryUtility,
		Components: validComponents(),
	})

	var conflictErr *domain.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
}

func TestManager_Archive(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	now := time.Now()
	reason := "seasonal campaign ended"
	approved := pendingTemplate()
	approved.Status = domain.TemplateStatusApproved

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(approved, nil)

	tm.store.EXPECT().
		ArchiveTemplate(ctx, testTemplateID, &reason).
		Return(true, nil)

	tm.clock.EXPECT().Now().Return(now)

	tm.store.EXPECT().
		CreateStatusHistory(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *schema.TemplateStatusHistory) error {
			assert.Equal(t, domain.TemplateStatusApproved, entry.FromStatus)
			assert.Equal(t, domain.TemplateStatusArchived, entry.ToStatus)
			return nil
		})

	tm.publisher.EXPECT().PublishStatusChanged(ctx, gomock.Any()).Return(nil)
	tm.poller.EXPECT().Deregister(testTemplateID)

	err := tm.manager.Archive(ctx, testTenantID, testTemplateID, &reason, nil)
	require.NoError(t, err)
}

func TestManager_Archive_AlreadyArchivedIsIdempotent(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	archived := pendingTemplate()
	archived.Status = domain.TemplateStatusArchived

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(archived, nil)

	err := tm.manager.Archive(ctx, testTenantID, testTemplateID, nil, nil)
	assert.NoError(t, err)
}

func TestManager_Archive_PendingRefused(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(pendingTemplate(), nil)

	err := tm.manager.Archive(ctx, testTenantID, testTemplateID, nil, nil)

	var conflictErr *domain.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
}

func TestManager_Restore(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	now := time.Now()
	preArchive := domain.TemplateStatusApproved
	archived := pendingTemplate()
	archived.Status = domain.TemplateStatusArchived
	archived.PreArchiveStatus = &preArchive

	restored := pendingTemplate()
	restored.Status = domain.TemplateStatusApproved

	gomock.InOrder(
		tm.store.EXPECT().
			GetTemplateByID(ctx, testTenantID, testTemplateID).
			Return(archived, nil),
		tm.store.EXPECT().
			GetTemplateByID(ctx, testTenantID, testTemplateID).
			Return(restored, nil),
	)

	tm.store.EXPECT().
		GetActiveTemplate(ctx, testTenantID, "order_shipped", "en_US").
		Return(nil, nil)

	tm.store.EXPECT().
		RestoreTemplate(ctx, testTemplateID).
		Return(true, nil)

	tm.clock.EXPECT().Now().Return(now)

	tm.store.EXPECT().
		CreateStatusHistory(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *schema.TemplateStatusHistory) error {
			assert.Equal(t, domain.TemplateStatusArchived, entry.FromStatus)
			assert.Equal(t, domain.TemplateStatusApproved, entry.ToStatus)
			return nil
		})

	tm.publisher.EXPECT().PublishStatusChanged(ctx, gomock.Any()).Return(nil)

	result, err := tm.manager.Restore(ctx, testTenantID, testTemplateID, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.TemplateStatusApproved, result.Status)
}

func TestManager_Restore_NameTakenByNewerVersion(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	archived := pendingTemplate()
	archived.Status = domain.TemplateStatusArchived

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(archived, nil)

	tm.store.EXPECT().
		GetActiveTemplate(ctx, testTenantID, "order_shipped", "en_US").
		Return(&schema.Template{ID: "a-newer-template"}, nil)

	_, err := tm.manager.Restore(ctx, testTenantID, testTemplateID, nil)
	assert.ErrorIs(t, err, domain.ErrTemplateNameTaken)
}

func TestManager_Delete(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	rejected := pendingTemplate()
	rejected.Status = domain.TemplateStatusRejected

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(rejected, nil)

	tm.store.EXPECT().
		FindActiveCampaignsUsingTemplate(ctx, testTemplateID).
		Return(nil, nil)

	tm.metaAPI.EXPECT().
		DeleteTemplate(ctx, testTenantID, "order_shipped").
		Return(nil)

	tm.store.EXPECT().
		DeleteTemplate(ctx, testTemplateID).
		Return(true, nil)

	tm.poller.EXPECT().Deregister(testTemplateID)

	err := tm.manager.Delete(ctx, testTenantID, testTemplateID, nil)
	require.NoError(t, err)
}

func TestManager_Delete_ApprovedRefused(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	approved := pendingTemplate()
	approved.Status = domain.TemplateStatusApproved

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(approved, nil)

	err := tm.manager.Delete(ctx, testTenantID, testTemplateID, nil)

	var conflictErr *domain.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, domain.TemplateStatusApproved, conflictErr.Current)
}

func TestManager_Delete_UsedByActiveCampaigns(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	draft := pendingTemplate()
	draft.Status = domain.TemplateStatusDraft
	draft.ExternalTemplateID = nil

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(draft, nil)

	tm.store.EXPECT().
		FindActiveCampaignsUsingTemplate(ctx, testTemplateID).
		Return([]schema.Campaign{{Name: "spring_sale"}, {Name: "welcome_series"}}, nil)

	err := tm.manager.Delete(ctx, testTenantID, testTemplateID, nil)

	var inUseErr *domain.TemplateInUseError
	require.ErrorAs(t, err, &inUseErr)
	assert.Equal(t, []string{"spring_sale", "welcome_series"}, inUseErr.Campaigns)
}

func TestManager_Delete_RemoteFailureIsNotFatal(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	rejected := pendingTemplate()
	rejected.Status = domain.TemplateStatusRejected

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(rejected, nil)

	tm.store.EXPECT().
		FindActiveCampaignsUsingTemplate(ctx, testTemplateID).
		Return(nil, nil)

	tm.metaAPI.EXPECT().
		DeleteTemplate(ctx, testTenantID, "order_shipped").
		Return(errors.New("graph api unavailable"))

	tm.store.EXPECT().
		DeleteTemplate(ctx, testTemplateID).
		Return(true, nil)

	tm.poller.EXPECT().Deregister(testTemplateID)

	err := tm.manager.Delete(ctx, testTenantID, testTemplateID, nil)
	assert.NoError(t, err)
}

func TestManager_RefreshStatus(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	now := time.Now()

	approved := pendingTemplate()
	approved.Status = domain.TemplateStatusApproved

	gomock.InOrder(
		tm.store.EXPECT().
			GetTemplateByID(ctx, testTenantID, testTemplateID).
			Return(pendingTemplate(), nil),
		tm.store.EXPECT().
			GetTemplateByID(ctx, testTenantID, testTemplateID).
			Return(pendingTemplate(), nil),
		tm.store.EXPECT().
			GetTemplateByID(ctx, testTenantID, testTemplateID).
			Return(approved, nil),
	)

	tm.metaAPI.EXPECT().
		GetTemplateStatus(ctx, testTenantID, testExternalID).
		Return(&meta.TemplateStatusResponse{
			ID:     testExternalID,
			Status: "APPROVED",
			QualityScore: &meta.QualityScore{
				Score: "GREEN",
			},
		}, nil)

	tm.store.EXPECT().
		UpdateTemplateQualityScore(ctx, testExternalID, "GREEN").
		Return(nil)

	tm.clock.EXPECT().Now().Return(now)

	tm.store.EXPECT().
		TransitionTemplateStatus(ctx, gomock.Any()).
		Return(true, nil)

	tm.store.EXPECT().
		CreateStatusHistory(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *schema.TemplateStatusHistory) error {
			assert.Equal(t, domain.TransitionSourceManualRefresh, entry.Source)
			assert.NotEmpty(t, entry.ExternalResponse)
			return nil
		})

	tm.publisher.EXPECT().PublishStatusChanged(ctx, gomock.Any()).Return(nil)
	tm.poller.EXPECT().Deregister(testTemplateID)

	result, err := tm.manager.RefreshStatus(ctx, testTenantID, testTemplateID, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.TemplateStatusApproved, result.Status)
}

func TestManager_RefreshStatus_NeverSubmitted(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	draft := pendingTemplate()
	draft.Status = domain.TemplateStatusDraft
	draft.ExternalTemplateID = nil

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(draft, nil)

	_, err := tm.manager.RefreshStatus(ctx, testTenantID, testTemplateID, nil)

	var conflictErr *domain.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
}

func TestManager_RefreshStatus_StillPending(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(pendingTemplate(), nil)

	tm.metaAPI.EXPECT().
		GetTemplateStatus(ctx, testTenantID, testExternalID).
		Return(&meta.TemplateStatusResponse{
			ID:     testExternalID,
			Status: "IN_REVIEW",
		}, nil)

	result, err := tm.manager.RefreshStatus(ctx, testTenantID, testTemplateID, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.TemplateStatusPending, result.Status)
}

func TestManager_SyncStatuses(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()
	now := time.Now()

	tm.metaAPI.EXPECT().
		FetchAllTemplates(ctx, testTenantID).
		Return([]meta.TemplateStatusResponse{
			{ID: testExternalID, Status: "APPROVED"},
			{ID: "999", Status: "APPROVED"},
			{ID: testExternalID, Status: "IN_REVIEW"},
		}, nil)

	// First remote resolves against a known pending template and applies
	tm.store.EXPECT().
		GetTemplateByExternalID(ctx, testExternalID).
		Return(pendingTemplate(), nil)
	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(pendingTemplate(), nil)
	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().
		TransitionTemplateStatus(ctx, gomock.Any()).
		Return(true, nil)
	tm.store.EXPECT().
		CreateStatusHistory(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *schema.TemplateStatusHistory) error {
			assert.Equal(t, domain.TransitionSourceManualRefresh, entry.Source)
			assert.Equal(t, domain.TemplateStatusApproved, entry.ToStatus)
			return nil
		})
	tm.publisher.EXPECT().PublishStatusChanged(ctx, gomock.Any()).Return(nil)
	tm.poller.EXPECT().Deregister(testTemplateID)

	// Second remote is unknown locally and is skipped
	tm.store.EXPECT().
		GetTemplateByExternalID(ctx, "999").
		Return(nil, nil)

	// Third remote carries no decision yet and is skipped before any update
	tm.store.EXPECT().
		GetTemplateByExternalID(ctx, testExternalID).
		Return(pendingTemplate(), nil)

	applied, err := tm.manager.SyncStatuses(ctx, testTenantID, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
}

func TestManager_SyncStatuses_FetchFailure(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()

	tm.metaAPI.EXPECT().
		FetchAllTemplates(ctx, testTenantID).
		Return(nil, errors.New("graph api unreachable"))

	_, err := tm.manager.SyncStatuses(ctx, testTenantID, nil)
	assert.Error(t, err)
}

func TestManager_GetTemplate_NotFound(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(nil, nil)

	_, err := tm.manager.GetTemplate(ctx, testTenantID, testTemplateID)
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestManager_StatusHistory(t *testing.T) {
	tm := setupTestManager(t)
	defer tearDownTestManager(tm)

	ctx := context.Background()

	tm.store.EXPECT().
		GetTemplateByID(ctx, testTenantID, testTemplateID).
		Return(pendingTemplate(), nil)

	tm.store.EXPECT().
		ListStatusHistory(ctx, testTemplateID, 50, 0).
		Return([]schema.TemplateStatusHistory{
			{TemplateID: testTemplateID, FromStatus: domain.TemplateStatusDraft, ToStatus: domain.TemplateStatusPending},
		}, int64(1), nil)

	entries, total, err := tm.manager.StatusHistory(ctx, testTenantID, testTemplateID, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, entries, 1)
}
