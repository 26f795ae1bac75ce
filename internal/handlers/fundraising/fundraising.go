package fundraising

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/sevaindia/fundlink/internal/domain"
	"github.com/sevaindia/fundlink/internal/dto"
	"github.com/sevaindia/fundlink/internal/service/fundservice"
	"github.com/sevaindia/fundlink/pkg/auth"
	"github.com/sevaindia/fundlink/pkg/utils"
	"github.com/sevaindia/fundlink/pkg/validate"
)

type Service interface {
	GetProgress(ctx context.Context, userID string) (*domain.FundraisingProgress, error)
	ApplyDelta(ctx context.Context, userID string, delta float64) (*domain.FundraisingProgress, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.Fundraiser, error)
	ListAll(ctx context.Context) ([]domain.Fundraiser, error)
}

type FundraisingHandler struct {
	fundService Service
}

func New(fundService Service) *FundraisingHandler {
	return &FundraisingHandler{
		fundService: fundService,
	}
}

// GetProgress godoc
//
//	@Summary		Get own fundraising progress
//	@Description	Retrieve the authenticated user's target and collected amount. 404 means no campaign yet and drives the onboarding empty state.
//	@Tags			Fundraising
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProgressResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"No fundraising campaign"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/fundraising [get]
func (h *FundraisingHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	progress, err := h.fundService.GetProgress(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, fundservice.ErrProgressNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProgressDTO(progress))
}

// UpdateProgress godoc
//
//	@Summary		Add to collected amount
//	@Description	Apply a positive self-reported delta to the user's collected total.
//	@Tags			Fundraising
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateProgressRequestDTO	true	"Progress delta"
//	@Success		200		{object}	dto.ProgressResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"No fundraising campaign"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/fundraising/progress [post]
func (h *FundraisingHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.UpdateProgressRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	progress, err := h.fundService.ApplyDelta(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, fundservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, fundservice.ErrProgressNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProgressDTO(progress))
}

// Leaderboard godoc
//
//	@Summary		Get fundraising leaderboard
//	@Description	Top fundraisers ordered by collected amount descending.
//	@Tags			Fundraising
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Max entries (default 10)"
//	@Success		200		{array}		dto.LeaderboardEntryDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/fundraising/leaderboard [get]
func (h *FundraisingHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	fundraisers, err := h.fundService.Leaderboard(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch leaderboard")
		return
	}

	response := make([]dto.LeaderboardEntryDTO, len(fundraisers))
	for i, f := range fundraisers {
		response[i] = dto.LeaderboardEntryDTO{
			Rank:            i + 1,
			FullName:        orAnonymous(f.FullName),
			TargetAmount:    f.TargetAmount,
			CollectedAmount: f.CollectedAmount,
			Progress:        fundservice.ProgressPercentage(f.CollectedAmount, f.TargetAmount),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AdminOverview godoc
//
//	@Summary		Admin fundraising overview
//	@Description	All fundraisers with the aggregated statistics.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AdminFundraisingResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/fundraising [get]
func (h *FundraisingHandler) AdminOverview(w http.ResponseWriter, r *http.Request) {
	fundraisers, err := h.fundService.ListAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch fundraising data")
		return
	}

	rows := make([]dto.FundraiserDTO, len(fundraisers))
	for i, f := range fundraisers {
		rows[i] = dto.FundraiserDTO{
			UserID:          f.UserID,
			FullName:        orNA(f.FullName),
			Email:           orNA(f.Email),
			TargetAmount:    f.TargetAmount,
			CollectedAmount: f.CollectedAmount,
			Progress:        fundservice.ProgressPercentage(f.CollectedAmount, f.TargetAmount),
			CreatedAt:       f.CreatedAt.Format(time.RFC3339),
			UpdatedAt:       f.UpdatedAt.Format(time.RFC3339),
		}
	}

	stats := fundservice.GlobalStats(fundraisers)
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminFundraisingResponseDTO{
		Fundraisers: rows,
		Stats: dto.FundraisingStatsDTO{
			TotalRaised:      stats.TotalRaised,
			TotalFundraisers: stats.TotalFundraisers,
			AverageRaised:    stats.AverageRaised,
			AverageTarget:    stats.AverageTarget,
			CompletionRate:   stats.CompletionRate,
		},
	})
}

// ExportCSV godoc
//
//	@Summary		Export fundraisers as CSV
//	@Description	Download the full fundraiser list as a CSV file.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		plain
//	@Success		200	{string}	string	"CSV payload"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/fundraising/export [get]
func (h *FundraisingHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	fundraisers, err := h.fundService.ListAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch fundraising data")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="fundraising.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fundservice.ExportCSV(fundraisers)))
}

func toProgressDTO(p *domain.FundraisingProgress) dto.ProgressResponseDTO {
	return dto.ProgressResponseDTO{
		TargetAmount:    p.TargetAmount,
		CollectedAmount: p.CollectedAmount,
		Progress:        fundservice.ProgressPercentage(p.CollectedAmount, p.TargetAmount),
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.Format(time.RFC3339),
	}
}

func orAnonymous(s *string) string {
	if s == nil || *s == "" {
		return "Anonymous"
	}
	return *s
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
