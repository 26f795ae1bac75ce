package fundraising

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/sevaindia/fundlink/internal/domain"
	"github.com/sevaindia/fundlink/internal/service/fundservice"
	"github.com/sevaindia/fundlink/pkg/auth"
	"github.com/sevaindia/fundlink/pkg/utils"
)

func NewMock(t *testing.T) (*FundraisingHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authorizedRequest(method, target string, body []byte, userID string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestGetProgressHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Progress returned with percentage",
			prepareMock: func() {
				service.EXPECT().GetProgress(gomock.Any(), "user-1").Return(&domain.FundraisingProgress{
					UserID:          "user-1",
					TargetAmount:    10000,
					CollectedAmount: 2500,
					CreatedAt:       now,
					UpdatedAt:       now,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No campaign yet",
			prepareMock: func() {
				service.EXPECT().GetProgress(gomock.Any(), "user-1").Return(nil, fundservice.ErrProgressNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "fundraising progress not found",
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().GetProgress(gomock.Any(), "user-1").Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorizedRequest("GET", "/api/user/fundraising", nil, "user-1")
			rr := httptest.NewRecorder()

			handler.GetProgress(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp map[string]any
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, 25.0, resp["progress"])
			}
		})
	}
}

func TestUpdateProgressHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Delta applied",
			body: `{"amount":500}`,
			prepareMock: func() {
				service.EXPECT().ApplyDelta(gomock.Any(), "user-1", 500.0).Return(&domain.FundraisingProgress{
					UserID:          "user-1",
					TargetAmount:    10000,
					CollectedAmount: 3000,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Negative amount rejected before the service",
			body:          `{"amount":-50}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "amount must be positive",
		},
		{
			name: "No campaign yet",
			body: `{"amount":500}`,
			prepareMock: func() {
				service.EXPECT().ApplyDelta(gomock.Any(), "user-1", 500.0).Return(nil, fundservice.ErrProgressNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "fundraising progress not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorizedRequest("POST", "/api/user/fundraising/progress", []byte(tt.body), "user-1")
			rr := httptest.NewRecorder()

			handler.UpdateProgress(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLeaderboardHandler(t *testing.T) {
	handler, service := NewMock(t)
	name := "Asha Rao"

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Named and anonymous entries ranked",
			target: "/api/user/fundraising/leaderboard?limit=2",
			prepareMock: func() {
				service.EXPECT().Leaderboard(gomock.Any(), 2).Return([]domain.Fundraiser{
					{FundraisingProgress: domain.FundraisingProgress{UserID: "user-1", TargetAmount: 10000, CollectedAmount: 7500}, FullName: &name},
					{FundraisingProgress: domain.FundraisingProgress{UserID: "user-2", TargetAmount: 10000, CollectedAmount: 1000}},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Missing limit passed through as zero",
			target: "/api/user/fundraising/leaderboard",
			prepareMock: func() {
				service.EXPECT().Leaderboard(gomock.Any(), 0).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Service failure",
			target: "/api/user/fundraising/leaderboard",
			prepareMock: func() {
				service.EXPECT().Leaderboard(gomock.Any(), 0).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorizedRequest("GET", tt.target, nil, "user-1")
			rr := httptest.NewRecorder()

			handler.Leaderboard(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.name == "Named and anonymous entries ranked" {
				var entries []map[string]any
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&entries))
				assert.Len(t, entries, 2)
				assert.Equal(t, 1.0, entries[0]["rank"])
				assert.Equal(t, "Asha Rao", entries[0]["full_name"])
				assert.Equal(t, "Anonymous", entries[1]["full_name"])
			}
		})
	}
}

func TestAdminOverviewHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	name := "Asha Rao"
	email := "asha@example.com"

	service.EXPECT().ListAll(gomock.Any()).Return([]domain.Fundraiser{
		{FundraisingProgress: domain.FundraisingProgress{UserID: "user-1", TargetAmount: 10000, CollectedAmount: 5000, CreatedAt: now, UpdatedAt: now}, FullName: &name, Email: &email},
		{FundraisingProgress: domain.FundraisingProgress{UserID: "user-2", TargetAmount: 10000, CollectedAmount: 1000, CreatedAt: now, UpdatedAt: now}},
	}, nil)

	req := authorizedRequest("GET", "/api/admin/fundraising", nil, "admin-1")
	rr := httptest.NewRecorder()

	handler.AdminOverview(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Fundraisers []map[string]any `json:"fundraisers"`
		Stats       map[string]any   `json:"stats"`
	}
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp.Fundraisers, 2)
	assert.Equal(t, "N/A", resp.Fundraisers[1]["full_name"])
	assert.Equal(t, 6000.0, resp.Stats["total_raised"])
	assert.Equal(t, 2.0, resp.Stats["total_fundraisers"])
}

func TestExportCSVHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	name := "Asha Rao"
	email := "asha@example.com"

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "CSV attachment returned",
			prepareMock: func() {
				service.EXPECT().ListAll(gomock.Any()).Return([]domain.Fundraiser{
					{FundraisingProgress: domain.FundraisingProgress{UserID: "user-1", TargetAmount: 10000, CollectedAmount: 2500, CreatedAt: now, UpdatedAt: now}, FullName: &name, Email: &email},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Service failure",
			prepareMock: func() {
				service.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorizedRequest("GET", "/api/admin/fundraising/export", nil, "admin-1")
			rr := httptest.NewRecorder()

			handler.ExportCSV(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
				assert.Equal(t, `attachment; filename="fundraising.csv"`, rr.Header().Get("Content-Disposition"))
				assert.Contains(t, rr.Body.String(), "User ID,Full Name,Email,Target Amount,Collected Amount,Progress %,Created At,Updated At")
				assert.Contains(t, rr.Body.String(), `user-1,"Asha Rao","asha@example.com",10000,2500,25.00`)
			}
		})
	}
}
