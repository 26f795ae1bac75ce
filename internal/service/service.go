package service

import (
	"github.com/sevaindia/fundlink/internal/handlers/affiliate"
	"github.com/sevaindia/fundlink/internal/handlers/auth"
	"github.com/sevaindia/fundlink/internal/handlers/donation"
	"github.com/sevaindia/fundlink/internal/handlers/fundraising"
	"github.com/sevaindia/fundlink/internal/handlers/onboarding"

	pkgauth "github.com/sevaindia/fundlink/pkg/auth"

	"github.com/sevaindia/fundlink/internal/config"
	"github.com/sevaindia/fundlink/internal/repo"
	affiliateservice "github.com/sevaindia/fundlink/internal/service/affiliateservice"
	authservice "github.com/sevaindia/fundlink/internal/service/authservice"
	donationservice "github.com/sevaindia/fundlink/internal/service/donationservice"
	fundservice "github.com/sevaindia/fundlink/internal/service/fundservice"
	onboardingservice "github.com/sevaindia/fundlink/internal/service/onboardingservice"
)

type Services struct {
	AuthService        auth.Service
	FundraisingService fundraising.Service
	AffiliateService   affiliate.Service
	DonationService    donation.Service
	OnboardingService  onboarding.Service
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	fundService := fundservice.New(repo.ProgressRepo, cfg.DefaultTarget)
	affiliateService := affiliateservice.New(repo.AffiliateRepo, cfg.PublicBaseURL)
	donationService := donationservice.New(repo.DonationRepo, repo.AffiliateRepo)
	onboardingService := onboardingservice.New(repo.OnboardingRepo)
	authService := authservice.New(repo.UserRepo, fundService, onboardingService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:        authService,
		FundraisingService: fundService,
		AffiliateService:   affiliateService,
		DonationService:    donationService,
		OnboardingService:  onboardingService,
	}
}
