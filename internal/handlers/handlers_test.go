package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/sevaindia/fundlink/docs"
	"github.com/sevaindia/fundlink/internal/handlers/affiliate"
	"github.com/sevaindia/fundlink/internal/handlers/auth"
	"github.com/sevaindia/fundlink/internal/handlers/donation"
	"github.com/sevaindia/fundlink/internal/handlers/fundraising"
	"github.com/sevaindia/fundlink/internal/handlers/onboarding"
	"github.com/sevaindia/fundlink/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:        auth.NewMockService(ctrl),
		FundraisingService: fundraising.NewMockService(ctrl),
		AffiliateService:   affiliate.NewMockService(ctrl),
		DonationService:    donation.NewMockService(ctrl),
		OnboardingService:  onboarding.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockFundraisingHandler := NewMockFundraisingHandler(ctrl)
	mockAffiliateHandler := NewMockAffiliateHandler(ctrl)
	mockDonationHandler := NewMockDonationHandler(ctrl)
	mockOnboardingHandler := NewMockOnboardingHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAffiliateHandler.EXPECT().PublicLink(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().Donate(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:        mockAuthHandler,
		FundraisingHandler: mockFundraisingHandler,
		AffiliateHandler:   mockAffiliateHandler,
		DonationHandler:    mockDonationHandler,
		OnboardingHandler:  mockOnboardingHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/register", http.StatusOK},
		{"POST", "/api/auth/login", http.StatusOK},
		{"GET", "/donate/school-kits-x7k2", http.StatusOK},
		{"POST", "/donate/school-kits-x7k2", http.StatusOK},
		{"GET", "/api/user/fundraising", http.StatusUnauthorized},
		{"POST", "/api/user/fundraising/progress", http.StatusUnauthorized},
		{"GET", "/api/user/fundraising/leaderboard", http.StatusUnauthorized},
		{"GET", "/api/user/affiliate", http.StatusUnauthorized},
		{"POST", "/api/user/affiliate", http.StatusUnauthorized},
		{"PATCH", "/api/user/affiliate/link-1", http.StatusUnauthorized},
		{"GET", "/api/user/affiliate/link-1/donations", http.StatusUnauthorized},
		{"GET", "/api/user/affiliate/link-1/stats", http.StatusUnauthorized},
		{"GET", "/api/user/applications", http.StatusUnauthorized},
		{"POST", "/api/user/applications", http.StatusUnauthorized},
		{"GET", "/api/user/tasks", http.StatusUnauthorized},
		{"PATCH", "/api/user/tasks/task-1", http.StatusUnauthorized},
		{"GET", "/api/admin/fundraising", http.StatusUnauthorized},
		{"GET", "/api/admin/fundraising/export", http.StatusUnauthorized},
		{"PATCH", "/api/admin/donations/d-1/status", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
