package onboarding

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sevaindia/fundlink/internal/domain"
	"github.com/sevaindia/fundlink/internal/dto"
	"github.com/sevaindia/fundlink/internal/service/onboardingservice"
	"github.com/sevaindia/fundlink/pkg/auth"
	"github.com/sevaindia/fundlink/pkg/utils"
	"github.com/sevaindia/fundlink/pkg/validate"
)

type Service interface {
	SubmitApplication(ctx context.Context, userID string, form onboardingservice.ApplicationForm) (*domain.Application, error)
	GetApplication(ctx context.Context, userID string) (*domain.Application, error)
	ListTasks(ctx context.Context, userID string) ([]domain.OnboardingTask, error)
	SetTaskDone(ctx context.Context, userID, taskID string, done bool) (*domain.OnboardingTask, error)
}

type OnboardingHandler struct {
	onboardingService Service
}

func New(onboardingService Service) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingService: onboardingService,
	}
}

// SubmitApplication godoc
//
//	@Summary		Submit internship application
//	@Description	Submit the application form; one application per user.
//	@Tags			Onboarding
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ApplicationRequestDTO	true	"Application form"
//	@Success		201		{object}	dto.ApplicationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Application already submitted"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/applications [post]
func (h *OnboardingHandler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.ApplicationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	app, err := h.onboardingService.SubmitApplication(r.Context(), userID, onboardingservice.ApplicationForm{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		ResumeURL:   req.ResumeURL,
		Motivation:  req.Motivation,
	})
	if err != nil {
		switch {
		case errors.Is(err, onboardingservice.ErrApplicationExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toApplicationDTO(app))
}

// GetApplication godoc
//
//	@Summary		Get own application
//	@Description	Retrieve the authenticated user's application and its review status.
//	@Tags			Onboarding
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ApplicationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"No application yet"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/applications [get]
func (h *OnboardingHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	app, err := h.onboardingService.GetApplication(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, onboardingservice.ErrApplicationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toApplicationDTO(app))
}

// ListTasks godoc
//
//	@Summary		List onboarding tasks
//	@Description	The authenticated user's onboarding checklist in display order.
//	@Tags			Onboarding
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TaskResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/tasks [get]
func (h *OnboardingHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	tasks, err := h.onboardingService.ListTasks(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch tasks")
		return
	}

	response := make([]dto.TaskResponseDTO, len(tasks))
	for i, task := range tasks {
		response[i] = dto.TaskResponseDTO{
			ID:          task.ID,
			TaskName:    task.TaskName,
			Description: task.Description,
			IsCompleted: task.IsCompleted,
			SortOrder:   task.SortOrder,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateTask godoc
//
//	@Summary		Toggle an onboarding task
//	@Description	Mark one of the user's own tasks completed or not.
//	@Tags			Onboarding
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			taskID	path		string					true	"Task ID"
//	@Param			request	body		dto.UpdateTaskRequestDTO	true	"Completion flag"
//	@Success		200		{object}	dto.TaskResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the task owner"
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/tasks/{taskID} [patch]
func (h *OnboardingHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	taskID := chi.URLParam(r, "taskID")

	var req dto.UpdateTaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.onboardingService.SetTaskDone(r.Context(), userID, taskID, *req.IsCompleted)
	if err != nil {
		switch {
		case errors.Is(err, onboardingservice.ErrTaskNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, onboardingservice.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TaskResponseDTO{
		ID:          task.ID,
		TaskName:    task.TaskName,
		Description: task.Description,
		IsCompleted: task.IsCompleted,
		SortOrder:   task.SortOrder,
	})
}

func toApplicationDTO(app *domain.Application) dto.ApplicationResponseDTO {
	return dto.ApplicationResponseDTO{
		ID:          app.ID,
		FullName:    app.FullName,
		Email:       app.Email,
		PhoneNumber: app.PhoneNumber,
		ResumeURL:   app.ResumeURL,
		Motivation:  app.Motivation,
		Status:      app.Status,
		CreatedAt:   app.CreatedAt.Format(time.RFC3339),
	}
}
