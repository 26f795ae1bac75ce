package onboardingservice

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sevaindia/fundlink/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	CreateApplication(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindApplicationByUserID(ctx context.Context, userID string) (*domain.Application, error)
	CreateTasks(ctx context.Context, tasks []domain.OnboardingTask) error
	FindTasksByUserID(ctx context.Context, userID string) ([]domain.OnboardingTask, error)
	FindTaskByID(ctx context.Context, taskID string) (*domain.OnboardingTask, error)
	SetTaskCompleted(ctx context.Context, taskID string, done bool) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

const (
	ApplicationStatusPending  string = "pending"
	ApplicationStatusApproved string = "approved"
	ApplicationStatusRejected string = "rejected"
)

var (
	ErrApplicationExists   = errors.New("application already submitted")
	ErrApplicationNotFound = errors.New("application not found")
	ErrTaskNotFound        = errors.New("onboarding task not found")
	ErrUnauthorized        = errors.New("task belongs to another user")
)

// defaultTasks is the checklist every new volunteer starts with.
var defaultTasks = []string{
	"Complete your profile",
	"Read the volunteer handbook",
	"Join the orientation call",
	"Set your fundraising target",
	"Share your donation link",
}

type ApplicationForm struct {
	FullName    string
	Email       string
	PhoneNumber string
	ResumeURL   *string
	Motivation  string
}

func (s *Service) SubmitApplication(ctx context.Context, userID string, form ApplicationForm) (*domain.Application, error) {
	existing, err := s.repo.FindApplicationByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find application: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("application already exists", zap.String("userID", userID))
		return nil, ErrApplicationExists
	}

	app := &domain.Application{
		ID:          uuid.NewString(),
		UserID:      userID,
		FullName:    form.FullName,
		Email:       form.Email,
		PhoneNumber: form.PhoneNumber,
		ResumeURL:   form.ResumeURL,
		Motivation:  form.Motivation,
		Status:      ApplicationStatusPending,
	}
	created, err := s.repo.CreateApplication(ctx, app)
	if err != nil {
		zap.L().Error("can't create application: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("application submitted", zap.String("userID", userID))
	return created, nil
}

func (s *Service) GetApplication(ctx context.Context, userID string) (*domain.Application, error) {
	app, err := s.repo.FindApplicationByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get application", zap.Error(err))
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	return app, nil
}

func (s *Service) SeedTasks(ctx context.Context, userID string) error {
	tasks := make([]domain.OnboardingTask, len(defaultTasks))
	for i, name := range defaultTasks {
		tasks[i] = domain.OnboardingTask{
			ID:        uuid.NewString(),
			UserID:    userID,
			TaskName:  name,
			SortOrder: i + 1,
		}
	}
	if err := s.repo.CreateTasks(ctx, tasks); err != nil {
		zap.L().Error("can't seed onboarding tasks: ", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) ListTasks(ctx context.Context, userID string) ([]domain.OnboardingTask, error) {
	tasks, err := s.repo.FindTasksByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch onboarding tasks", zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

func (s *Service) SetTaskDone(ctx context.Context, userID, taskID string, done bool) (*domain.OnboardingTask, error) {
	task, err := s.repo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if task.UserID != userID {
		zap.L().Info("task update rejected", zap.String("userID", userID), zap.String("taskID", taskID))
		return nil, ErrUnauthorized
	}

	if err := s.repo.SetTaskCompleted(ctx, taskID, done); err != nil {
		zap.L().Error("failed to update onboarding task", zap.Error(err))
		return nil, err
	}
	task.IsCompleted = done
	return task, nil
}
