package repo

import (
	"github.com/sevaindia/fundlink/internal/pg"
	affiliaterepo "github.com/sevaindia/fundlink/internal/repo/affiliate-repo"
	donationrepo "github.com/sevaindia/fundlink/internal/repo/donation-repo"
	onboardingrepo "github.com/sevaindia/fundlink/internal/repo/onboarding-repo"
	progressrepo "github.com/sevaindia/fundlink/internal/repo/progress-repo"
	userrepo "github.com/sevaindia/fundlink/internal/repo/user-repo"
	"github.com/sevaindia/fundlink/internal/service/affiliateservice"
	"github.com/sevaindia/fundlink/internal/service/authservice"
	"github.com/sevaindia/fundlink/internal/service/donationservice"
	"github.com/sevaindia/fundlink/internal/service/fundservice"
	"github.com/sevaindia/fundlink/internal/service/onboardingservice"
)

type Repositories struct {
	UserRepo       authservice.Repo
	ProgressRepo   fundservice.Repo
	AffiliateRepo  affiliateservice.Repo
	DonationRepo   donationservice.Repo
	OnboardingRepo onboardingservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	progressRepo := progressrepo.New(conn, txManager)
	affiliateRepo := affiliaterepo.New(conn, txManager)
	donationRepo := donationrepo.New(conn, txManager)
	onboardingRepo := onboardingrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:       userRepo,
		ProgressRepo:   progressRepo,
		AffiliateRepo:  affiliateRepo,
		DonationRepo:   donationRepo,
		OnboardingRepo: onboardingRepo,
	}
}
