package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowdesk/wacrm/internal/api/middleware"
	"github.com/flowdesk/wacrm/internal/api/rest"
	"github.com/flowdesk/wacrm/internal/domain"
	"github.com/flowdesk/wacrm/internal/lifecycle"
	"github.com/flowdesk/wacrm/internal/logger"
	"github.com/flowdesk/wacrm/internal/mocks"
	"github.com/flowdesk/wacrm/internal/store/schema"
	"github.com/flowdesk/wacrm/internal/webhook"
)

const (
	testTenantID    = "7b3f9a3e-4c2d-4f6a-9c1e-2f8d5b6a7c8d"
	testTemplateID  = "c1a2b3c4-d5e6-47f8-9a0b-1c2d3e4f5a6b"
	testUserID      = "user-42"
	testVerifyToken = "verify-me"
	testAppSecret   = "test-app-secret"
)

// testHandlerMocks contains all the mocks needed for testing the REST handlers
type testHandlerMocks struct {
	ctrl       *gomock.Controller
	manager    *mocks.MockManager
	reconciler *mocks.MockReconciler
	clock      *mocks.MockClock
	router     *gin.Engine
}

// setupTestHandler creates all the mocks and a router wired the way the
// server wires it, with the auth middleware replaced by a stub identity
func setupTestHandler(t *testing.T) *testHandlerMocks {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	tm := &testHandlerMocks{
		ctrl:       ctrl,
		manager:    mocks.NewMockManager(ctrl),
		reconciler: mocks.NewMockReconciler(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}

	h := rest.NewHandler(tm.manager, tm.reconciler, tm.clock, testVerifyToken)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.TENANT_ID_KEY, testTenantID)
		c.Set(middleware.AUTH_SUBJECT_KEY, testUserID)
		c.Next()
	})

	router.POST("/api/v1/templates", h.CreateTemplate)
	router.GET("/api/v1/templates/:id", h.GetTemplate)
	router.PUT("/api/v1/templates/:id", h.UpdateTemplate)
	router.DELETE("/api/v1/templates/:id", h.DeleteTemplate)
	router.POST("/api/v1/templates/sync", h.SyncTemplates)
	router.POST("/api/v1/templates/:id/submit", h.SubmitTemplate)
	router.POST("/api/v1/templates/:id/approve", h.ApproveTemplate)
	router.POST("/api/v1/templates/:id/reject", h.RejectTemplate)
	router.POST("/api/v1/templates/:id/archive", h.ArchiveTemplate)
	router.GET("/api/v1/status-changes/summary", h.GetStatusSummary)
	router.GET("/webhooks/meta", h.VerifyWebhook)
	router.POST("/webhooks/meta", h.ReceiveWebhook)
	router.GET("/health", h.HealthCheck)

	tm.router = router
	return tm
}

// tearDownTestHandler cleans up the test mocks
func tearDownTestHandler(mocks *testHandlerMocks) {
	mocks.ctrl.Finish()
}

func serve(tm *testHandlerMocks, method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, req)
	return w
}

func draftTemplate() *schema.Template {
	return &schema.Template{
		ID:         testTemplateID,
		TenantID:   testTenantID,
		Name:       "order_shipped",
		Language:   "en_US",
		Category:   domain.TemplateCategoryUtility,
		Components: []byte(`[{"type":"BODY","text":"hello"}]`),
		Status:     domain.TemplateStatusDraft,
		Version:    1,
		IsActive:   true,
	}
}

func TestHandler_CreateTemplate(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.manager.EXPECT().
		CreateTemplate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input lifecycle.CreateInput) (*schema.Template, error) {
			assert.Equal(t, testTenantID, input.TenantID)
			assert.Equal(t, "order_shipped", input.Name)
			require.NotNil(t, input.CreatedByUserID)
			assert.Equal(t, testUserID, *input.CreatedByUserID)
			return draftTemplate(), nil
		})

	body := []byte(`{
		"name": "order_shipped",
		"language": "en_US",
		"category": "UTILITY",
		"components": [{"type": "BODY", "text": "hello"}]
	}`)

	w := serve(tm, http.MethodPost, "/api/v1/templates", body, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp rest.TemplateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, testTemplateID, resp.ID)
	assert.Equal(t, domain.TemplateStatusDraft, resp.Status)
}

func TestHandler_CreateTemplate_MissingFields(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	w := serve(tm, http.MethodPost, "/api/v1/templates", []byte(`{"name":"x"}`), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateTemplate_ValidationError(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.manager.EXPECT().
		CreateTemplate(gomock.Any(), gomock.Any()).
		Return(nil, &domain.ValidationError{Reason: "exactly one body component is required"})

	body := []byte(`{
		"name": "order_shipped",
		"language": "en_US",
		"category": "UTILITY",
		"components": [{"type": "FOOTER", "text": "bye"}]
	}`)

	w := serve(tm, http.MethodPost, "/api/v1/templates", body, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "validation_failed")
}

func TestHandler_GetTemplate_NotFound(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.manager.EXPECT().
		GetTemplate(gomock.Any(), testTenantID, testTemplateID).
		Return(nil, domain.ErrTemplateNotFound)

	w := serve(tm, http.MethodGet, "/api/v1/templates/"+testTemplateID, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not_found")
}

func TestHandler_SubmitTemplate_Conflict(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.manager.EXPECT().
		Submit(gomock.Any(), testTenantID, testTemplateID, gomock.Any()).
		Return(nil, domain.NewConflictError("submit", domain.TemplateStatusPending, domain.TemplateStatusDraft))

	w := serve(tm, http.MethodPost, "/api/v1/templates/"+testTemplateID+"/submit", nil, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "conflict")
}

func TestHandler_ApproveTemplate(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	approved := draftTemplate()
	approved.Status = domain.TemplateStatusApproved

	tm.manager.EXPECT().
		UpdateApprovalStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update lifecycle.StatusUpdate) (lifecycle.Outcome, error) {
			assert.Equal(t, domain.TemplateStatusApproved, update.NewStatus)
			assert.Equal(t, domain.TransitionSourceUser, update.Source)
			require.NotNil(t, update.ChangedByUserID)
			assert.Equal(t, testUserID, *update.ChangedByUserID)
			return lifecycle.OutcomeApplied, nil
		})

	tm.manager.EXPECT().
		GetTemplate(gomock.Any(), testTenantID, testTemplateID).
		Return(approved, nil)

	// Empty body is allowed; the reason is optional
	w := serve(tm, http.MethodPost, "/api/v1/templates/"+testTemplateID+"/approve", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RejectTemplate_WithReason(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	rejected := draftTemplate()
	rejected.Status = domain.TemplateStatusRejected

	tm.manager.EXPECT().
		UpdateApprovalStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update lifecycle.StatusUpdate) (lifecycle.Outcome, error) {
			assert.Equal(t, domain.TemplateStatusRejected, update.NewStatus)
			require.NotNil(t, update.Reason)
			assert.Equal(t, "off-brand content", *update.Reason)
			return lifecycle.OutcomeApplied, nil
		})

	tm.manager.EXPECT().
		GetTemplate(gomock.Any(), testTenantID, testTemplateID).
		Return(rejected, nil)

	w := serve(tm, http.MethodPost, "/api/v1/templates/"+testTemplateID+"/reject",
		[]byte(`{"reason": "off-brand content"}`), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ApproveTemplate_StaleIsConflict(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.manager.EXPECT().
		UpdateApprovalStatus(gomock.Any(), gomock.Any()).
		Return(lifecycle.OutcomeStale, nil)

	w := serve(tm, http.MethodPost, "/api/v1/templates/"+testTemplateID+"/approve", nil, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ArchiveTemplate(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.manager.EXPECT().
		Archive(gomock.Any(), testTenantID, testTemplateID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, reason, _ *string) error {
			require.NotNil(t, reason)
			assert.Equal(t, "superseded", *reason)
			return nil
		})

	w := serve(tm, http.MethodPost, "/api/v1/templates/"+testTemplateID+"/archive",
		[]byte(`{"reason": "superseded"}`), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_DeleteTemplate_InUse(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.manager.EXPECT().
		Delete(gomock.Any(), testTenantID, testTemplateID, gomock.Any()).
		Return(&domain.TemplateInUseError{Campaigns: []string{"spring_sale"}})

	w := serve(tm, http.MethodDelete, "/api/v1/templates/"+testTemplateID, nil, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "template_in_use")
}

func TestHandler_SyncTemplates(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.manager.EXPECT().
		SyncStatuses(gomock.Any(), testTenantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, userID *string) (int, error) {
			require.NotNil(t, userID)
			assert.Equal(t, testUserID, *userID)
			return 3, nil
		})

	w := serve(tm, http.MethodPost, "/api/v1/templates/sync", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp rest.StatusSyncResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Applied)
}

func TestHandler_GetStatusSummary(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)

	tm.manager.EXPECT().
		StatusCounts(gomock.Any(), testTenantID, now.Add(-24*time.Hour), now).
		Return(map[domain.TemplateStatus]int64{
			domain.TemplateStatusApproved: 3,
			domain.TemplateStatusRejected: 1,
		}, nil)

	w := serve(tm, http.MethodGet, "/api/v1/status-changes/summary", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp rest.StatusSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Counts[domain.TemplateStatusApproved])
}

func TestHandler_VerifyWebhook(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		setup    func(tm *testHandlerMocks)
		wantCode int
		wantBody string
	}{
		{
			name:     "default token echoes the challenge",
			query:    "?hub.mode=subscribe&hub.verify_token=" + testVerifyToken + "&hub.challenge=1158201444",
			wantCode: http.StatusOK,
			wantBody: "1158201444",
		},
		{
			name:  "channel-scoped token echoes the challenge",
			query: "?hub.mode=subscribe&hub.verify_token=tenant-token&hub.challenge=42",
			setup: func(tm *testHandlerMocks) {
				tm.reconciler.EXPECT().VerifyToken(gomock.Any(), "tenant-token").Return(true)
			},
			wantCode: http.StatusOK,
			wantBody: "42",
		},
		{
			name:     "missing parameters",
			query:    "",
			wantCode: http.StatusBadRequest,
		},
		{
			name:  "unknown token",
			query: "?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=x",
			setup: func(tm *testHandlerMocks) {
				tm.reconciler.EXPECT().VerifyToken(gomock.Any(), "wrong").Return(false)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "wrong mode",
			query:    "?hub.mode=unsubscribe&hub.verify_token=" + testVerifyToken + "&hub.challenge=x",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestHandler(t)
			defer tearDownTestHandler(tm)
			if tt.setup != nil {
				tt.setup(tm)
			}

			w := serve(tm, http.MethodGet, "/webhooks/meta"+tt.query, nil, nil)
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestHandler_ReceiveWebhook(t *testing.T) {
	payload := []byte(`{"object":"whatsapp_business_account","entry":[]}`)

	t.Run("valid signature is processed and acknowledged", func(t *testing.T) {
		tm := setupTestHandler(t)
		defer tearDownTestHandler(tm)

		tm.reconciler.EXPECT().
			ResolveAppSecret(gomock.Any(), payload).
			Return(testAppSecret)
		tm.reconciler.EXPECT().
			Process(gomock.Any(), payload).
			Return(nil)

		w := serve(tm, http.MethodPost, "/webhooks/meta", payload, map[string]string{
			webhook.SignatureHeader: webhook.SignPayload(testAppSecret, payload),
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid signature is rejected before processing", func(t *testing.T) {
		tm := setupTestHandler(t)
		defer tearDownTestHandler(tm)

		tm.reconciler.EXPECT().
			ResolveAppSecret(gomock.Any(), payload).
			Return(testAppSecret)

		w := serve(tm, http.MethodPost, "/webhooks/meta", payload, map[string]string{
			webhook.SignatureHeader: webhook.SignPayload("wrong-secret", payload),
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing signature is rejected", func(t *testing.T) {
		tm := setupTestHandler(t)
		defer tearDownTestHandler(tm)

		tm.reconciler.EXPECT().
			ResolveAppSecret(gomock.Any(), payload).
			Return(testAppSecret)

		w := serve(tm, http.MethodPost, "/webhooks/meta", payload, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("processing failures still acknowledge the batch", func(t *testing.T) {
		tm := setupTestHandler(t)
		defer tearDownTestHandler(tm)

		tm.reconciler.EXPECT().
			ResolveAppSecret(gomock.Any(), payload).
			Return(testAppSecret)
		tm.reconciler.EXPECT().
			Process(gomock.Any(), payload).
			Return(assert.AnError)

		w := serve(tm, http.MethodPost, "/webhooks/meta", payload, map[string]string{
			webhook.SignatureHeader: webhook.SignPayload(testAppSecret, payload),
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_HealthCheck(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	w := serve(tm, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
