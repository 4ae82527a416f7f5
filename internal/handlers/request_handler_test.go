package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ajussi_backend/internal/middleware"
	"ajussi_backend/internal/services/dto"
	"ajussi_backend/internal/validator"
	"ajussi_backend/pkg/apperrors"
)

// stubRequestService returns a canned result or error for every method.
type stubRequestService struct {
	resp *dto.RequestResponse
	list *dto.RequestListResponse
	err  error
}

func (s *stubRequestService) CreateRequest(context.Context, string, *dto.CreateRequestRequest) (*dto.RequestResponse, error) {
	return s.resp, s.err
}

func (s *stubRequestService) ChangeStatus(context.Context, string, string, string) (*dto.RequestResponse, error) {
	return s.resp, s.err
}

func (s *stubRequestService) GetRequest(context.Context, string, string) (*dto.RequestResponse, error) {
	return s.resp, s.err
}

func (s *stubRequestService) ListSent(context.Context, string, int, int) (*dto.RequestListResponse, error) {
	return s.list, s.err
}

func (s *stubRequestService) ListReceived(context.Context, string, int, int) (*dto.RequestListResponse, error) {
	return s.list, s.err
}

func newRequestRouter(svc *stubRequestService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	identity := func(c *gin.Context) {
		if userID != "" {
			c.Set(middleware.ContextUserIDKey, userID)
		}
		c.Next()
	}

	handler := NewRequestHandler(NewBaseHandler(validator.New()), svc)
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api, identity)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Error.Code
}

func TestChangeStatusErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid transition", apperrors.ErrInvalidTransition("rejected", "cancelled"), http.StatusBadRequest, "INVALID_TRANSITION"},
		{"too early", apperrors.ErrTooEarly("window not elapsed"), http.StatusBadRequest, "TOO_EARLY"},
		{"forbidden", apperrors.ErrForbiddenTransition("not your request"), http.StatusForbidden, "FORBIDDEN"},
		{"not found", apperrors.ErrRequestNotFound("req-1"), http.StatusNotFound, "NOT_FOUND"},
		{"dependency down", apperrors.ErrDependencyUnavailable(nil, "request"), http.StatusServiceUnavailable, "EXTERNAL_SERVICE_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRequestRouter(&stubRequestService{err: tt.err}, "user-1")
			rec := doJSON(t, router, http.MethodPut, "/api/v1/requests/req-1", `{"status":"cancelled"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeErrorCode(t, rec))
		})
	}
}

func TestChangeStatusRequiresStatusField(t *testing.T) {
	router := newRequestRouter(&stubRequestService{}, "user-1")
	rec := doJSON(t, router, http.MethodPut, "/api/v1/requests/req-1", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestRoutesRequireIdentity(t *testing.T) {
	router := newRequestRouter(&stubRequestService{}, "")

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/requests"},
		{http.MethodGet, "/api/v1/requests/sent"},
		{http.MethodGet, "/api/v1/requests/received"},
		{http.MethodGet, "/api/v1/requests/req-1"},
		{http.MethodPut, "/api/v1/requests/req-1"},
	} {
		rec := doJSON(t, router, route.method, route.path, `{"status":"cancelled"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
	}
}

func TestCreateRequestValidatesBody(t *testing.T) {
	router := newRequestRouter(&stubRequestService{}, "user-1")

	// Missing required fields fails validation before the service runs.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/requests", `{"description":"no schedule"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRequestSuccess(t *testing.T) {
	stub := &stubRequestService{resp: &dto.RequestResponse{ID: "req-1", Status: "pending"}}
	router := newRequestRouter(stub, "user-1")

	body := `{
		"ajussi_profile_id": "profile-1",
		"scheduled_start": "2026-03-02T10:00:00Z",
		"duration_minutes": 60,
		"location": "Mapo-gu"
	}`
	rec := doJSON(t, router, http.MethodPost, "/api/v1/requests", body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.RequestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "req-1", resp.ID)
}

func TestListSentSuccess(t *testing.T) {
	stub := &stubRequestService{list: &dto.RequestListResponse{Requests: []*dto.RequestResponse{}, Page: 1, PageSize: 20}}
	router := newRequestRouter(stub, "user-1")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/requests/sent?page=1&page_size=20", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
