package affiliate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sevaindia/fundlink/internal/domain"
	"github.com/sevaindia/fundlink/internal/dto"
	"github.com/sevaindia/fundlink/internal/service/affiliateservice"
	"github.com/sevaindia/fundlink/internal/service/fundservice"
	"github.com/sevaindia/fundlink/pkg/auth"
	"github.com/sevaindia/fundlink/pkg/utils"
	"github.com/sevaindia/fundlink/pkg/validate"
)

type Service interface {
	GetForUser(ctx context.Context, userID string) (*domain.AffiliateLink, error)
	Resolve(ctx context.Context, code string) (*domain.AffiliateLink, error)
	Create(ctx context.Context, userID, title string, description *string, targetAmount float64) (*domain.AffiliateLink, error)
	Update(ctx context.Context, userID, linkID string, upd domain.LinkUpdate) (*domain.AffiliateLink, error)
	ShareableURL(code string) string
}

// ProgressService supplies the owner's campaign numbers for the public page.
type ProgressService interface {
	GetProgress(ctx context.Context, userID string) (*domain.FundraisingProgress, error)
}

type AffiliateHandler struct {
	affiliateService Service
	progressService  ProgressService
}

func New(affiliateService Service, progressService ProgressService) *AffiliateHandler {
	return &AffiliateHandler{
		affiliateService: affiliateService,
		progressService:  progressService,
	}
}

// GetMyLink godoc
//
//	@Summary		Get own affiliate link
//	@Description	Retrieve the authenticated user's active donation link.
//	@Tags			Affiliate
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.LinkResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"No active link"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/affiliate [get]
func (h *AffiliateHandler) GetMyLink(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	link, err := h.affiliateService.GetForUser(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, affiliateservice.ErrLinkNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toLinkDTO(link))
}

// CreateLink godoc
//
//	@Summary		Create an affiliate link
//	@Description	Provision the user's shareable donation page. One active link per user.
//	@Tags			Affiliate
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateLinkRequestDTO	true	"Link payload"
//	@Success		201		{object}	dto.LinkResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Link already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/affiliate [post]
func (h *AffiliateHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.CreateLinkRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	link, err := h.affiliateService.Create(r.Context(), userID, req.Title, req.Description, req.TargetAmount)
	if err != nil {
		switch {
		case errors.Is(err, affiliateservice.ErrLinkExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, h.toLinkDTO(link))
}

// UpdateLink godoc
//
//	@Summary		Update an affiliate link
//	@Description	Edit title, description, target amount or active flag. Other fields are immutable.
//	@Tags			Affiliate
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			linkID	path		string					true	"Link ID"
//	@Param			request	body		dto.UpdateLinkRequestDTO	true	"Partial update"
//	@Success		200		{object}	dto.LinkResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the link owner"
//	@Failure		404		{object}	utils.Response	"Link not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/affiliate/{linkID} [patch]
func (h *AffiliateHandler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	linkID := chi.URLParam(r, "linkID")

	var req dto.UpdateLinkRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	link, err := h.affiliateService.Update(r.Context(), userID, linkID, domain.LinkUpdate{
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		IsActive:     req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, affiliateservice.ErrLinkNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, affiliateservice.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toLinkDTO(link))
}

// PublicLink godoc
//
//	@Summary		Resolve a public donation page
//	@Description	Look up an active link by its code; inactive and unknown codes both return 404.
//	@Tags			Public
//	@Produce		json
//	@Param			code	path		string	true	"Link code"
//	@Success		200		{object}	dto.PublicLinkResponseDTO
//	@Failure		404		{object}	utils.Response	"Link unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/donate/{code} [get]
func (h *AffiliateHandler) PublicLink(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	link, err := h.affiliateService.Resolve(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, affiliateservice.ErrLinkNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "This donation link is unavailable")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	// the owner may not have a campaign row yet; fall back to the link target
	collected, target := 0.0, link.TargetAmount
	progress, err := h.progressService.GetProgress(r.Context(), link.UserID)
	if err != nil && !errors.Is(err, fundservice.ErrProgressNotFound) {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if progress != nil {
		collected, target = progress.CollectedAmount, progress.TargetAmount
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PublicLinkResponseDTO{
		LinkCode:        link.LinkCode,
		Title:           link.Title,
		Description:     link.Description,
		TargetAmount:    target,
		CollectedAmount: collected,
		Progress:        fundservice.ProgressPercentage(collected, target),
	})
}

func (h *AffiliateHandler) toLinkDTO(link *domain.AffiliateLink) dto.LinkResponseDTO {
	return dto.LinkResponseDTO{
		ID:           link.ID,
		LinkCode:     link.LinkCode,
		Title:        link.Title,
		Description:  link.Description,
		TargetAmount: link.TargetAmount,
		IsActive:     link.IsActive,
		ShareURL:     h.affiliateService.ShareableURL(link.LinkCode),
		CreatedAt:    link.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    link.UpdatedAt.Format(time.RFC3339),
	}
}
