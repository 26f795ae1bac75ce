package donation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sevaindia/fundlink/internal/domain"
	"github.com/sevaindia/fundlink/internal/dto"
	"github.com/sevaindia/fundlink/internal/service/donationservice"
	"github.com/sevaindia/fundlink/pkg/auth"
	"github.com/sevaindia/fundlink/pkg/utils"
	"github.com/sevaindia/fundlink/pkg/validate"
)

type Service interface {
	Record(ctx context.Context, code string, form donationservice.Form) (*domain.Donation, error)
	ListForLink(ctx context.Context, userID, linkID string) ([]domain.Donation, error)
	Stats(ctx context.Context, userID, linkID string) (*domain.DonationStats, error)
	UpdateStatus(ctx context.Context, donationID, status string, transactionID, paymentMethod *string) error
}

type DonationHandler struct {
	donationService Service
}

func New(donationService Service) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

// Donate godoc
//
//	@Summary		Submit a donation
//	@Description	Record a pending donation against an active link. Payment confirmation happens out of band.
//	@Tags			Public
//	@Accept			json
//	@Produce		json
//	@Param			code	path		string				true	"Link code"
//	@Param			request	body		dto.DonateRequestDTO	true	"Donation payload"
//	@Success		201		{object}	dto.DonationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		404		{object}	utils.Response	"Link unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/donate/{code} [post]
func (h *DonationHandler) Donate(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req dto.DonateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "donation amount must be positive")
		return
	}

	donation, err := h.donationService.Record(r.Context(), code, donationservice.Form{
		DonorName:  req.DonorName,
		DonorEmail: req.DonorEmail,
		Amount:     req.Amount,
		Message:    req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, donationservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, donationservice.ErrLinkInactive):
			utils.RespondWithError(w, http.StatusNotFound, "This donation link is unavailable")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDonationDTO(donation))
}

// ListDonations godoc
//
//	@Summary		List donations for own link
//	@Description	Donations for the given link, newest first. Owner only.
//	@Tags			Affiliate
//	@Security		BearerAuth
//	@Produce		json
//	@Param			linkID	path		string	true	"Link ID"
//	@Success		200		{array}		dto.DonationResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the link owner"
//	@Failure		404		{object}	utils.Response	"Link not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/affiliate/{linkID}/donations [get]
func (h *DonationHandler) ListDonations(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	linkID := chi.URLParam(r, "linkID")

	donations, err := h.donationService.ListForLink(r.Context(), userID, linkID)
	if err != nil {
		h.respondOwnershipError(w, err)
		return
	}

	response := make([]dto.DonationResponseDTO, len(donations))
	for i, d := range donations {
		response[i] = toDonationDTO(&d)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// DonationStats godoc
//
//	@Summary		Donation statistics for own link
//	@Description	Counts and completed-amount aggregates for the given link. Owner only.
//	@Tags			Affiliate
//	@Security		BearerAuth
//	@Produce		json
//	@Param			linkID	path		string	true	"Link ID"
//	@Success		200		{object}	dto.DonationStatsResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the link owner"
//	@Failure		404		{object}	utils.Response	"Link not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/affiliate/{linkID}/stats [get]
func (h *DonationHandler) DonationStats(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	linkID := chi.URLParam(r, "linkID")

	stats, err := h.donationService.Stats(r.Context(), userID, linkID)
	if err != nil {
		h.respondOwnershipError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DonationStatsResponseDTO{
		TotalDonations:     stats.TotalDonations,
		TotalAmount:        stats.TotalAmount,
		CompletedDonations: stats.CompletedDonations,
		AverageAmount:      stats.AverageAmount,
	})
}

// UpdateStatus godoc
//
//	@Summary		Confirm or fail a donation
//	@Description	Payment-confirmation entry point; moves a pending donation to completed or failed.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			donationID	path		string								true	"Donation ID"
//	@Param			request		body		dto.UpdateDonationStatusRequestDTO	true	"New status"
//	@Success		200			{object}	utils.Response
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Admin only"
//	@Failure		404			{object}	utils.Response	"Donation not found"
//	@Failure		409			{object}	utils.Response	"Donation already settled"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/donations/{donationID}/status [patch]
func (h *DonationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	donationID := chi.URLParam(r, "donationID")

	var req dto.UpdateDonationStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.donationService.UpdateStatus(r.Context(), donationID, req.Status, req.TransactionID, req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, donationservice.ErrDonationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, donationservice.ErrInvalidStatusTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "donation status updated"})
}

func (h *DonationHandler) respondOwnershipError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, donationservice.ErrLinkInactive):
		utils.RespondWithError(w, http.StatusNotFound, "link not found")
	case errors.Is(err, donationservice.ErrUnauthorized):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toDonationDTO(d *domain.Donation) dto.DonationResponseDTO {
	return dto.DonationResponseDTO{
		ID:            d.ID,
		DonorName:     d.DonorName,
		DonorEmail:    d.DonorEmail,
		Amount:        d.Amount,
		Message:       d.Message,
		PaymentStatus: d.PaymentStatus,
		CreatedAt:     d.CreatedAt.Format(time.RFC3339),
	}
}
