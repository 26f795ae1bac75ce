package affiliate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/sevaindia/fundlink/internal/domain"
	"github.com/sevaindia/fundlink/internal/service/affiliateservice"
	"github.com/sevaindia/fundlink/internal/service/fundservice"
	"github.com/sevaindia/fundlink/pkg/auth"
	"github.com/sevaindia/fundlink/pkg/utils"
)

func NewMock(t *testing.T) (*AffiliateHandler, *MockService, *MockProgressService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	progressService := NewMockProgressService(ctrl)
	handler := New(service, progressService)
	defer ctrl.Finish()
	return handler, service, progressService
}

func authorizedRequest(method, target string, body []byte, userID string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetMyLinkHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Active link returned with share URL",
			prepareMock: func() {
				service.EXPECT().GetForUser(gomock.Any(), "user-1").Return(&domain.AffiliateLink{
					ID:       "link-1",
					UserID:   "user-1",
					LinkCode: "school-kits-x7k2",
					Title:    "School Kits",
					IsActive: true,
				}, nil)
				service.EXPECT().ShareableURL("school-kits-x7k2").Return("http://localhost:8080/donate/school-kits-x7k2")
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No active link",
			prepareMock: func() {
				service.EXPECT().GetForUser(gomock.Any(), "user-1").Return(nil, affiliateservice.ErrLinkNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "affiliate link not found",
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().GetForUser(gomock.Any(), "user-1").Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorizedRequest("GET", "/api/user/affiliate", nil, "user-1")
			rr := httptest.NewRecorder()

			handler.GetMyLink(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp map[string]any
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "http://localhost:8080/donate/school-kits-x7k2", resp["share_url"])
			}
		})
	}
}

func TestCreateLinkHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Link created",
			body: `{"title":"School Kits","target_amount":5000}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), "user-1", "School Kits", (*string)(nil), 5000.0).
					Return(&domain.AffiliateLink{ID: "link-1", LinkCode: "school-kits-x7k2", Title: "School Kits", TargetAmount: 5000, IsActive: true}, nil)
				service.EXPECT().ShareableURL("school-kits-x7k2").Return("http://localhost:8080/donate/school-kits-x7k2")
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "One active link per user",
			body: `{"title":"School Kits","target_amount":5000}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), "user-1", "School Kits", (*string)(nil), 5000.0).
					Return(nil, affiliateservice.ErrLinkExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "user already has an active link",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Missing target amount",
			body:          `{"title":"School Kits"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorizedRequest("POST", "/api/user/affiliate", []byte(tt.body), "user-1")
			rr := httptest.NewRecorder()

			handler.CreateLink(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestUpdateLinkHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Link deactivated",
			body: `{"is_active":false}`,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), "user-1", "link-1", gomock.Any()).
					Return(&domain.AffiliateLink{ID: "link-1", LinkCode: "school-kits-x7k2", IsActive: false}, nil)
				service.EXPECT().ShareableURL("school-kits-x7k2").Return("http://localhost:8080/donate/school-kits-x7k2")
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not the owner",
			body: `{"is_active":false}`,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), "user-1", "link-1", gomock.Any()).
					Return(nil, affiliateservice.ErrUnauthorized)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "link belongs to another user",
		},
		{
			name: "Link not found",
			body: `{"is_active":false}`,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), "user-1", "link-1", gomock.Any()).
					Return(nil, affiliateservice.ErrLinkNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "affiliate link not found",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorizedRequest("PATCH", "/api/user/affiliate/link-1", []byte(tt.body), "user-1")
			req = withURLParam(req, "linkID", "link-1")
			rr := httptest.NewRecorder()

			handler.UpdateLink(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestPublicLinkHandler(t *testing.T) {
	handler, service, progressService := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		checkBody     func(t *testing.T, body map[string]any)
	}{
		{
			name: "Campaign numbers shown on the public page",
			prepareMock: func() {
				service.EXPECT().Resolve(gomock.Any(), "school-kits-x7k2").Return(&domain.AffiliateLink{
					ID:           "link-1",
					UserID:       "user-1",
					LinkCode:     "school-kits-x7k2",
					Title:        "School Kits",
					TargetAmount: 5000,
				}, nil)
				progressService.EXPECT().GetProgress(gomock.Any(), "user-1").Return(&domain.FundraisingProgress{
					UserID:          "user-1",
					TargetAmount:    10000,
					CollectedAmount: 2500,
				}, nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, 10000.0, body["target_amount"])
				assert.Equal(t, 2500.0, body["collected_amount"])
				assert.Equal(t, 25.0, body["progress"])
			},
		},
		{
			name: "No campaign falls back to the link target",
			prepareMock: func() {
				service.EXPECT().Resolve(gomock.Any(), "school-kits-x7k2").Return(&domain.AffiliateLink{
					ID:           "link-1",
					UserID:       "user-1",
					LinkCode:     "school-kits-x7k2",
					Title:        "School Kits",
					TargetAmount: 5000,
				}, nil)
				progressService.EXPECT().GetProgress(gomock.Any(), "user-1").Return(nil, fundservice.ErrProgressNotFound)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, 5000.0, body["target_amount"])
				assert.Equal(t, 0.0, body["collected_amount"])
			},
		},
		{
			name: "Unknown or disabled code",
			prepareMock: func() {
				service.EXPECT().Resolve(gomock.Any(), "school-kits-x7k2").Return(nil, affiliateservice.ErrLinkNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "This donation link is unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/donate/school-kits-x7k2", nil)
			req = withURLParam(req, "code", "school-kits-x7k2")
			rr := httptest.NewRecorder()

			handler.PublicLink(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else if tt.checkBody != nil {
				var body map[string]any
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				tt.checkBody(t, body)
			}
		})
	}
}
