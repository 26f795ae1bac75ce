package affiliaterepo

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

const linkColumns = `id, user_id, link_code, title, description, target_amount, is_active, created_at, updated_at`

func scanLink(row pgx.Row) (*domain.AffiliateLink, error) {
	var link domain.AffiliateLink
	err := row.Scan(&link.ID, &link.UserID, &link.LinkCode, &link.Title, &link.Description,
		&link.TargetAmount, &link.IsActive, &link.CreatedAt, &link.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// FindActiveByUserID returns the user's active link, nil when none exists.
func (r *Repository) FindActiveByUserID(ctx context.Context, userID string) (*domain.AffiliateLink, error) {
	query := `
        SELECT ` + linkColumns + `
        FROM affiliate_links
        WHERE user_id = $1 AND is_active = TRUE
    `
	link, err := scanLink(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find affiliate link by user", zap.Error(err))
		return nil, err
	}
	return link, nil
}

// FindActiveByCode backs the public donate page. Inactive links are
// invisible here on purpose.
func (r *Repository) FindActiveByCode(ctx context.Context, code string) (*domain.AffiliateLink, error) {
	query := `
        SELECT ` + linkColumns + `
        FROM affiliate_links
        WHERE link_code = $1 AND is_active = TRUE
    `
	link, err := scanLink(r.db.QueryRow(ctx, query, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find affiliate link by code", zap.Error(err))
		return nil, err
	}
	return link, nil
}

func (r *Repository) FindByID(ctx context.Context, linkID string) (*domain.AffiliateLink, error) {
	query := `
        SELECT ` + linkColumns + `
        FROM affiliate_links
        WHERE id = $1
    `
	link, err := scanLink(r.db.QueryRow(ctx, query, linkID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find affiliate link", zap.Error(err))
		return nil, err
	}
	return link, nil
}

func (r *Repository) CodeTaken(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM affiliate_links WHERE link_code = $1)`
	var taken bool
	if err := r.db.QueryRow(ctx, query, code).Scan(&taken); err != nil {
		zap.L().Error("can't check link code", zap.Error(err))
		return false, err
	}
	return taken, nil
}

func (r *Repository) Save(ctx context.Context, link *domain.AffiliateLink) error {
	query := `
        INSERT INTO affiliate_links (id, user_id, link_code, title, description, target_amount, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, link.ID, link.UserID, link.LinkCode, link.Title,
			link.Description, link.TargetAmount, link.IsActive)
		if err != nil {
			zap.L().Error("can't save affiliate link", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

// Update touches only the allow-listed fields; link_code is immutable.
func (r *Repository) Update(ctx context.Context, linkID string, upd domain.LinkUpdate) (*domain.AffiliateLink, error) {
	query := `
        UPDATE affiliate_links
        SET title = COALESCE($1, title),
            description = COALESCE($2, description),
            target_amount = COALESCE($3, target_amount),
            is_active = COALESCE($4, is_active),
            updated_at = now()
        WHERE id = $5
        RETURNING ` + linkColumns + `
	`
	var updated *domain.AffiliateLink
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		link, err := scanLink(r.db.QueryRow(ctx, query, upd.Title, upd.Description, upd.TargetAmount, upd.IsActive, linkID))
		if err != nil {
			zap.L().Error("failed to update affiliate link", zap.Error(err))
			return err
		}
		updated = link
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
