package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/sevaindia/fundlink/internal/config"
	"github.com/sevaindia/fundlink/internal/repo"
	"github.com/sevaindia/fundlink/internal/service/affiliateservice"
	"github.com/sevaindia/fundlink/internal/service/authservice"
	"github.com/sevaindia/fundlink/internal/service/donationservice"
	"github.com/sevaindia/fundlink/internal/service/fundservice"
	"github.com/sevaindia/fundlink/internal/service/onboardingservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := &repo.Repositories{
		UserRepo:       authservice.NewMockRepo(ctrl),
		ProgressRepo:   fundservice.NewMockRepo(ctrl),
		AffiliateRepo:  affiliateservice.NewMockRepo(ctrl),
		DonationRepo:   donationservice.NewMockRepo(ctrl),
		OnboardingRepo: onboardingservice.NewMockRepo(ctrl),
	}

	cfg := &config.Config{
		PublicBaseURL: "http://localhost:8080",
		DefaultTarget: 10000,
	}

	services := New(repos, cfg)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.FundraisingService)
	assert.NotNil(t, services.AffiliateService)
	assert.NotNil(t, services.DonationService)
	assert.NotNil(t, services.OnboardingService)
}
