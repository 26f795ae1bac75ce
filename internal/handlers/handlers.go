package handlers

import (
	"net/http"

	_ "github.com/sevaindia/fundlink/docs"
	affiliatehandlers "github.com/sevaindia/fundlink/internal/handlers/affiliate"
	authhandlers "github.com/sevaindia/fundlink/internal/handlers/auth"
	donationhandlers "github.com/sevaindia/fundlink/internal/handlers/donation"
	fundraisinghandlers "github.com/sevaindia/fundlink/internal/handlers/fundraising"
	onboardinghandlers "github.com/sevaindia/fundlink/internal/handlers/onboarding"
	"github.com/sevaindia/fundlink/internal/service"
	"github.com/sevaindia/fundlink/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type FundraisingHandler interface {
	GetProgress(w http.ResponseWriter, r *http.Request)
	UpdateProgress(w http.ResponseWriter, r *http.Request)
	Leaderboard(w http.ResponseWriter, r *http.Request)
	AdminOverview(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type AffiliateHandler interface {
	GetMyLink(w http.ResponseWriter, r *http.Request)
	CreateLink(w http.ResponseWriter, r *http.Request)
	UpdateLink(w http.ResponseWriter, r *http.Request)
	PublicLink(w http.ResponseWriter, r *http.Request)
}

type DonationHandler interface {
	Donate(w http.ResponseWriter, r *http.Request)
	ListDonations(w http.ResponseWriter, r *http.Request)
	DonationStats(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type OnboardingHandler interface {
	SubmitApplication(w http.ResponseWriter, r *http.Request)
	GetApplication(w http.ResponseWriter, r *http.Request)
	ListTasks(w http.ResponseWriter, r *http.Request)
	UpdateTask(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	FundraisingHandler FundraisingHandler
	AffiliateHandler   AffiliateHandler
	DonationHandler    DonationHandler
	OnboardingHandler  OnboardingHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		FundraisingHandler: fundraisinghandlers.New(s.FundraisingService),
		AffiliateHandler:   affiliatehandlers.New(s.AffiliateService, s.FundraisingService),
		DonationHandler:    donationhandlers.New(s.DonationService),
		OnboardingHandler:  onboardinghandlers.New(s.OnboardingService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	// public donation page, reachable without a token
	r.Route("/donate/{code}", func(r chi.Router) {
		r.Get("/", h.AffiliateHandler.PublicLink)
		r.Post("/", h.DonationHandler.Donate)
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Route("/user", func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/fundraising", func(r chi.Router) {
				r.Get("/", h.FundraisingHandler.GetProgress)
				r.Post("/progress", h.FundraisingHandler.UpdateProgress)
				r.Get("/leaderboard", h.FundraisingHandler.Leaderboard)
			})
			r.Route("/affiliate", func(r chi.Router) {
				r.Get("/", h.AffiliateHandler.GetMyLink)
				r.Post("/", h.AffiliateHandler.CreateLink)
				r.Route("/{linkID}", func(r chi.Router) {
					r.Patch("/", h.AffiliateHandler.UpdateLink)
					r.Get("/donations", h.DonationHandler.ListDonations)
					r.Get("/stats", h.DonationHandler.DonationStats)
				})
			})
			r.Route("/applications", func(r chi.Router) {
				r.Post("/", h.OnboardingHandler.SubmitApplication)
				r.Get("/", h.OnboardingHandler.GetApplication)
			})
			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.OnboardingHandler.ListTasks)
				r.Patch("/{taskID}", h.OnboardingHandler.UpdateTask)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
			r.Route("/fundraising", func(r chi.Router) {
				r.Get("/", h.FundraisingHandler.AdminOverview)
				r.Get("/export", h.FundraisingHandler.ExportCSV)
			})
			r.Patch("/donations/{donationID}/status", h.DonationHandler.UpdateStatus)
		})
	})

	return r
}
