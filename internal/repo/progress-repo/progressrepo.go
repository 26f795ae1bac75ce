package progressrepo

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

func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.FundraisingProgress, error) {
	query := `
        SELECT user_id, target_amount, collected_amount, created_at, updated_at
        FROM fundraising_progress
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var progress domain.FundraisingProgress
	err := row.Scan(&progress.UserID, &progress.TargetAmount, &progress.CollectedAmount, &progress.CreatedAt, &progress.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get fundraising progress", zap.Error(err))
		return nil, err
	}
	return &progress, nil
}

func (r *Repository) Create(ctx context.Context, userID string, targetAmount float64) (*domain.FundraisingProgress, error) {
	query := `
        INSERT INTO fundraising_progress (user_id, target_amount, collected_amount)
        VALUES ($1, $2, 0)
        RETURNING user_id, target_amount, collected_amount, created_at, updated_at
    `
	row := r.db.QueryRow(ctx, query, userID, targetAmount)
	var progress domain.FundraisingProgress
	err := row.Scan(&progress.UserID, &progress.TargetAmount, &progress.CollectedAmount, &progress.CreatedAt, &progress.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to create fundraising progress", zap.Error(err))
		return nil, err
	}
	return &progress, nil
}

// AddCollected applies the increment server-side so concurrent deltas
// never lose updates.
func (r *Repository) AddCollected(ctx context.Context, userID string, delta float64) (*domain.FundraisingProgress, error) {
	query := `
        UPDATE fundraising_progress
        SET collected_amount = collected_amount + $1, updated_at = now()
        WHERE user_id = $2
        RETURNING user_id, target_amount, collected_amount, created_at, updated_at
    `
	row := r.db.QueryRow(ctx, query, delta, userID)
	var progress domain.FundraisingProgress
	err := row.Scan(&progress.UserID, &progress.TargetAmount, &progress.CollectedAmount, &progress.CreatedAt, &progress.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to add collected amount", zap.Error(err))
		return nil, err
	}
	return &progress, nil
}

// FindAll returns every progress row joined with the owner's profile,
// richest campaigns first; ties resolve to the older row.
func (r *Repository) FindAll(ctx context.Context) ([]domain.Fundraiser, error) {
	query := `
        SELECT fp.user_id, fp.target_amount, fp.collected_amount, fp.created_at, fp.updated_at,
               u.full_name, u.email
        FROM fundraising_progress fp
        JOIN users u ON u.id = fp.user_id
        ORDER BY fp.collected_amount DESC, fp.created_at ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get fundraisers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanFundraisers(rows)
}

func (r *Repository) FindTop(ctx context.Context, limit int) ([]domain.Fundraiser, error) {
	query := `
        SELECT fp.user_id, fp.target_amount, fp.collected_amount, fp.created_at, fp.updated_at,
               u.full_name, u.email
        FROM fundraising_progress fp
        JOIN users u ON u.id = fp.user_id
        ORDER BY fp.collected_amount DESC, fp.created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get top fundraisers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanFundraisers(rows)
}

func scanFundraisers(rows pgx.Rows) ([]domain.Fundraiser, error) {
	var fundraisers []domain.Fundraiser
	for rows.Next() {
		var f domain.Fundraiser
		err := rows.Scan(&f.UserID, &f.TargetAmount, &f.CollectedAmount, &f.CreatedAt, &f.UpdatedAt, &f.FullName, &f.Email)
		if err != nil {
			zap.L().Error("can't scan fundraiser row", zap.Error(err))
			return nil, err
		}
		fundraisers = append(fundraisers, f)
	}
	return fundraisers, nil
}
