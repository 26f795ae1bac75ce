package onboardingservice

import (
	"context"
	"errors"
	"testing"

	"github.com/sevaindia/fundlink/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestSubmitApplication(t *testing.T) {
	service, repo := NewMock(t)
	form := ApplicationForm{
		FullName:    "Asha Rao",
		Email:       "asha@example.com",
		PhoneNumber: "+911234567890",
		Motivation:  "I want to help",
	}
	tests := []struct {
		name          string
		userID        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Successful submission lands as pending",
			userID: "user-1",
			prepareMock: func() {
				repo.EXPECT().FindApplicationByUserID(gomock.Any(), "user-1").Return(nil, nil)
				repo.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, app *domain.Application) (*domain.Application, error) {
					assert.NotEmpty(t, app.ID)
					assert.Equal(t, "user-1", app.UserID)
					assert.Equal(t, ApplicationStatusPending, app.Status)
					return app, nil
				})
			},
		},
		{
			name:   "Application already submitted",
			userID: "user-1",
			prepareMock: func() {
				repo.EXPECT().FindApplicationByUserID(gomock.Any(), "user-1").Return(&domain.Application{ID: "app-1"}, nil)
			},
			expectedError: ErrApplicationExists,
		},
		{
			name:   "Creation failure",
			userID: "user-1",
			prepareMock: func() {
				repo.EXPECT().FindApplicationByUserID(gomock.Any(), "user-1").Return(nil, nil)
				repo.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			_, err := service.SubmitApplication(context.Background(), tt.userID, form)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetApplication(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name          string
		userID        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Application found",
			userID: "user-1",
			prepareMock: func() {
				repo.EXPECT().FindApplicationByUserID(gomock.Any(), "user-1").Return(&domain.Application{ID: "app-1"}, nil)
			},
		},
		{
			name:   "No application yet",
			userID: "user-2",
			prepareMock: func() {
				repo.EXPECT().FindApplicationByUserID(gomock.Any(), "user-2").Return(nil, nil)
			},
			expectedError: ErrApplicationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			_, err := service.GetApplication(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSeedTasks(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().CreateTasks(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, tasks []domain.OnboardingTask) error {
		assert.Len(t, tasks, 5)
		for i, task := range tasks {
			assert.NotEmpty(t, task.ID)
			assert.Equal(t, "user-1", task.UserID)
			assert.Equal(t, i+1, task.SortOrder)
			assert.False(t, task.IsCompleted)
		}
		return nil
	})

	assert.NoError(t, service.SeedTasks(context.Background(), "user-1"))
}

func TestSetTaskDone(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name          string
		userID        string
		taskID        string
		done          bool
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Owner completes a task",
			userID: "user-1",
			taskID: "task-1",
			done:   true,
			prepareMock: func() {
				repo.EXPECT().FindTaskByID(gomock.Any(), "task-1").Return(&domain.OnboardingTask{ID: "task-1", UserID: "user-1"}, nil)
				repo.EXPECT().SetTaskCompleted(gomock.Any(), "task-1", true).Return(nil)
			},
		},
		{
			name:   "Owner unchecks a task",
			userID: "user-1",
			taskID: "task-1",
			done:   false,
			prepareMock: func() {
				repo.EXPECT().FindTaskByID(gomock.Any(), "task-1").Return(&domain.OnboardingTask{ID: "task-1", UserID: "user-1", IsCompleted: true}, nil)
				repo.EXPECT().SetTaskCompleted(gomock.Any(), "task-1", false).Return(nil)
			},
		},
		{
			name:   "Task not found",
			userID: "user-1",
			taskID: "missing",
			done:   true,
			prepareMock: func() {
				repo.EXPECT().FindTaskByID(gomock.Any(), "missing").Return(nil, nil)
			},
			expectedError: ErrTaskNotFound,
		},
		{
			name:   "Not the owner",
			userID: "user-2",
			taskID: "task-1",
			done:   true,
			prepareMock: func() {
				repo.EXPECT().FindTaskByID(gomock.Any(), "task-1").Return(&domain.OnboardingTask{ID: "task-1", UserID: "user-1"}, nil)
			},
			expectedError: ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			task, err := service.SetTaskDone(context.Background(), tt.userID, tt.taskID, tt.done)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.done, task.IsCompleted)
			}
		})
	}
}
