package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/sevaindia/fundlink/internal/domain"
	"github.com/sevaindia/fundlink/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT id, email, password_hash, full_name, is_admin, created_at
        FROM users
        WHERE email = $1
    `
	row := r.db.QueryRow(ctx, query, email)
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
        SELECT id, email, password_hash, full_name, is_admin, created_at
        FROM users
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (id, email, password_hash, full_name)
        VALUES ($1, $2, $3, $4)
        RETURNING id, email, password_hash, full_name, is_admin, created_at
    `
	row := r.db.QueryRow(ctx, query, user.ID, user.Email, user.PasswordHash, user.FullName)
	var created domain.User
	err := row.Scan(&created.ID, &created.Email, &created.PasswordHash, &created.FullName, &created.IsAdmin, &created.CreatedAt)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return &created, nil
}
