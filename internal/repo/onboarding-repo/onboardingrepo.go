package onboardingrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/sevaindia/fundlink/internal/domain"
	"github.com/sevaindia/fundlink/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) CreateApplication(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	query := `
        INSERT INTO applications (id, user_id, full_name, email, phone_number, resume_url, motivation, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, user_id, full_name, email, phone_number, resume_url, motivation, status, created_at
    `
	row := r.db.QueryRow(ctx, query, app.ID, app.UserID, app.FullName, app.Email,
		app.PhoneNumber, app.ResumeURL, app.Motivation, app.Status)
	var created domain.Application
	err := row.Scan(&created.ID, &created.UserID, &created.FullName, &created.Email,
		&created.PhoneNumber, &created.ResumeURL, &created.Motivation, &created.Status, &created.CreatedAt)
	if err != nil {
		zap.L().Error("can't create application", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) FindApplicationByUserID(ctx context.Context, userID string) (*domain.Application, error) {
	query := `
        SELECT id, user_id, full_name, email, phone_number, resume_url, motivation, status, created_at
        FROM applications
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var app domain.Application
	err := row.Scan(&app.ID, &app.UserID, &app.FullName, &app.Email,
		&app.PhoneNumber, &app.ResumeURL, &app.Motivation, &app.Status, &app.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find application", zap.Error(err))
		return nil, err
	}
	return &app, nil
}

// CreateTasks seeds a user's checklist in one transaction.
func (r *Repository) CreateTasks(ctx context.Context, tasks []domain.OnboardingTask) error {
	query := `
        INSERT INTO onboarding_tasks (id, user_id, task_name, description, sort_order)
        VALUES ($1, $2, $3, $4, $5)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, task := range tasks {
			_, err := r.db.Exec(ctx, query, task.ID, task.UserID, task.TaskName, task.Description, task.SortOrder)
			if err != nil {
				zap.L().Error("can't create onboarding task", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) FindTasksByUserID(ctx context.Context, userID string) ([]domain.OnboardingTask, error) {
	query := `
        SELECT id, user_id, task_name, description, is_completed, sort_order, created_at, updated_at
        FROM onboarding_tasks
        WHERE user_id = $1
        ORDER BY sort_order ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get onboarding tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.OnboardingTask
	for rows.Next() {
		var task domain.OnboardingTask
		err := rows.Scan(&task.ID, &task.UserID, &task.TaskName, &task.Description,
			&task.IsCompleted, &task.SortOrder, &task.CreatedAt, &task.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan onboarding task row", zap.Error(err))
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *Repository) FindTaskByID(ctx context.Context, taskID string) (*domain.OnboardingTask, error) {
	query := `
        SELECT id, user_id, task_name, description, is_completed, sort_order, created_at, updated_at
        FROM onboarding_tasks
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, taskID)
	var task domain.OnboardingTask
	err := row.Scan(&task.ID, &task.UserID, &task.TaskName, &task.Description,
		&task.IsCompleted, &task.SortOrder, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find onboarding task", zap.Error(err))
		return nil, err
	}
	return &task, nil
}

func (r *Repository) SetTaskCompleted(ctx context.Context, taskID string, done bool) error {
	query := `
        UPDATE onboarding_tasks
        SET is_completed = $1, updated_at = now()
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, done, taskID)
	if err != nil {
		zap.L().Error("failed to update onboarding task", zap.Error(err))
		return err
	}
	return nil
}
