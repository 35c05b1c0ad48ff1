package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"amora/models"
	"amora/services/registration"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRegistrationService struct {
	mock.Mock
}

func (m *MockRegistrationService) Start(ctx context.Context) (*registration.StepView, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*registration.StepView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRegistrationService) Get(ctx context.Context, sessionID string) (*registration.StepView, error) {
	args := m.Called(ctx, sessionID)
	if v := args.Get(0); v != nil {
		return v.(*registration.StepView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRegistrationService) UpdateFields(ctx context.Context, sessionID string, fields map[string]any) (*registration.StepView, error) {
	args := m.Called(ctx, sessionID, fields)
	if v := args.Get(0); v != nil {
		return v.(*registration.StepView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRegistrationService) Next(ctx context.Context, sessionID string) (*registration.StepView, error) {
	args := m.Called(ctx, sessionID)
	if v := args.Get(0); v != nil {
		return v.(*registration.StepView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRegistrationService) Prev(ctx context.Context, sessionID string) (*registration.StepView, error) {
	args := m.Called(ctx, sessionID)
	if v := args.Get(0); v != nil {
		return v.(*registration.StepView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRegistrationService) JumpTo(ctx context.Context, sessionID string, step int) (*registration.StepView, error) {
	args := m.Called(ctx, sessionID, step)
	if v := args.Get(0); v != nil {
		return v.(*registration.StepView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRegistrationService) AttachPhoto(ctx context.Context, sessionID, contentType string, data []byte) (*registration.StepView, error) {
	args := m.Called(ctx, sessionID, contentType, data)
	if v := args.Get(0); v != nil {
		return v.(*registration.StepView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRegistrationService) RemovePhoto(ctx context.Context, sessionID string, index int) (*registration.StepView, error) {
	args := m.Called(ctx, sessionID, index)
	if v := args.Get(0); v != nil {
		return v.(*registration.StepView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRegistrationService) Submit(ctx context.Context, sessionID string) (*models.AuthResponse, error) {
	args := m.Called(ctx, sessionID)
	if v := args.Get(0); v != nil {
		return v.(*models.AuthResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestRouter(svc registration.RegistrationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	SetRegistrationService(svc)
	r := gin.New()
	api := r.Group("/api/registration")
	api.POST("/start", StartRegistrationHandler)
	api.GET("/:sessionID", GetRegistrationHandler)
	api.PUT("/:sessionID/fields", UpdateFieldsHandler)
	api.POST("/:sessionID/next", NextStepHandler)
	api.POST("/:sessionID/jump", JumpToStepHandler)
	api.POST("/:sessionID/submit", SubmitRegistrationHandler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStartRegistrationHandler(t *testing.T) {
	svc := new(MockRegistrationService)
	svc.On("Start", mock.Anything).Return(&registration.StepView{SessionID: "sess-1", Step: 1}, nil)
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/registration/start", nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "sess-1")
}

func TestStartRegistrationHandlerCatalogUnavailable(t *testing.T) {
	svc := new(MockRegistrationService)
	svc.On("Start", mock.Anything).Return(nil, &registration.CatalogError{Reason: "no enabled questions configured"})
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/registration/start", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetRegistrationHandlerExpiredSession(t *testing.T) {
	svc := new(MockRegistrationService)
	svc.On("Get", mock.Anything, "gone").Return(nil, registration.ErrSessionNotFound)
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/api/registration/gone", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateFieldsHandler(t *testing.T) {
	svc := new(MockRegistrationService)
	svc.On("UpdateFields", mock.Anything, "sess-1", map[string]any{"email": "amara@example.com"}).
		Return(&registration.StepView{SessionID: "sess-1"}, nil)
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodPut, "/api/registration/sess-1/fields",
		models.UpdateFieldsRequest{Fields: map[string]any{"email": "amara@example.com"}})
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestUpdateFieldsHandlerRejectsMissingBody(t *testing.T) {
	svc := new(MockRegistrationService)
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodPut, "/api/registration/sess-1/fields", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestNextStepHandlerBlockedStep(t *testing.T) {
	svc := new(MockRegistrationService)
	svc.On("Next", mock.Anything, "sess-1").Return(
		&registration.StepView{SessionID: "sess-1", Step: 1},
		&registration.StepIncompleteError{Step: 1, Fields: map[string]string{"email": "email is required"}},
	)
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/registration/sess-1/next", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "fieldErrors")
	assert.Contains(t, w.Body.String(), "email is required")
}

func TestJumpToStepHandler(t *testing.T) {
	svc := new(MockRegistrationService)
	svc.On("JumpTo", mock.Anything, "sess-1", 3).Return(&registration.StepView{SessionID: "sess-1", Step: 3}, nil)
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/registration/sess-1/jump", models.JumpRequest{Step: 3})
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestSubmitRegistrationHandler(t *testing.T) {
	svc := new(MockRegistrationService)
	svc.On("Submit", mock.Anything, "sess-1").Return(&models.AuthResponse{
		ID:    "acct-1",
		Token: "jwt-token",
		Email: "amara@example.com",
	}, nil)
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/registration/sess-1/submit", nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "acct-1")
}

func TestSubmitRegistrationHandlerIncomplete(t *testing.T) {
	svc := new(MockRegistrationService)
	svc.On("Submit", mock.Anything, "sess-1").Return(nil,
		&registration.StepIncompleteError{Step: 2, Fields: map[string]string{"firstName": "this field is required"}})
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/registration/sess-1/submit", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "firstName")
}

func TestSubmitRegistrationHandlerDuplicateAccount(t *testing.T) {
	svc := new(MockRegistrationService)
	svc.On("Submit", mock.Anything, "sess-1").Return(nil,
		&registration.AuthError{Reason: "an account with email amara@example.com already exists"})
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/registration/sess-1/submit", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}
