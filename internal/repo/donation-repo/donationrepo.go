package donationrepo

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

const donationColumns = `id, affiliate_link_id, donor_name, donor_email, amount, message,
               payment_status, payment_method, transaction_id, reconciled_at, created_at, updated_at`

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var d domain.Donation
	err := row.Scan(&d.ID, &d.AffiliateLinkID, &d.DonorName, &d.DonorEmail, &d.Amount, &d.Message,
		&d.PaymentStatus, &d.PaymentMethod, &d.TransactionID, &d.ReconciledAt, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Save(ctx context.Context, donation *domain.Donation) error {
	query := `
        INSERT INTO donations (id, affiliate_link_id, donor_name, donor_email, amount, message, payment_status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, donation.ID, donation.AffiliateLinkID, donation.DonorName,
			donation.DonorEmail, donation.Amount, donation.Message, donation.PaymentStatus)
		if err != nil {
			zap.L().Error("can't save donation", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

func (r *Repository) FindByID(ctx context.Context, donationID string) (*domain.Donation, error) {
	query := `
        SELECT ` + donationColumns + `
        FROM donations
        WHERE id = $1
    `
	donation, err := scanDonation(r.db.QueryRow(ctx, query, donationID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find donation", zap.Error(err))
		return nil, err
	}
	return donation, nil
}

func (r *Repository) FindByLinkID(ctx context.Context, linkID string) ([]domain.Donation, error) {
	query := `
        SELECT ` + donationColumns + `
        FROM donations
        WHERE affiliate_link_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, linkID)
	if err != nil {
		zap.L().Error("can't get donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		var d domain.Donation
		err := rows.Scan(&d.ID, &d.AffiliateLinkID, &d.DonorName, &d.DonorEmail, &d.Amount, &d.Message,
			&d.PaymentStatus, &d.PaymentMethod, &d.TransactionID, &d.ReconciledAt, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan donation row", zap.Error(err))
			return nil, err
		}
		donations = append(donations, d)
	}
	return donations, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, donationID, status string, transactionID, paymentMethod *string) error {
	query := `
        UPDATE donations
        SET payment_status = $1, transaction_id = $2, payment_method = $3, updated_at = now()
        WHERE id = $4
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, status, transactionID, paymentMethod, donationID)
		if err != nil {
			zap.L().Error("failed to update donation status", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

// FindForReconciliation returns completed donations not yet folded into the
// owner's collected total, oldest first.
func (r *Repository) FindForReconciliation(ctx context.Context, limit uint32) ([]domain.UnreconciledDonation, error) {
	query := `
        SELECT d.id, d.affiliate_link_id, d.amount, al.user_id AS owner_user_id
        FROM donations d
        JOIN affiliate_links al ON al.id = d.affiliate_link_id
        WHERE d.payment_status = 'completed' AND d.reconciled_at IS NULL
        ORDER BY d.created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get donations for reconciliation", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var donations []domain.UnreconciledDonation
	for rows.Next() {
		var d domain.UnreconciledDonation
		err := rows.Scan(&d.ID, &d.AffiliateLinkID, &d.Amount, &d.OwnerUserID)
		if err != nil {
			zap.L().Error("can't scan donation row for reconciliation", zap.Error(err))
			return nil, err
		}
		donations = append(donations, d)
	}
	return donations, nil
}

// MarkReconciled is guarded by reconciled_at IS NULL so a re-delivered
// donation can't be counted twice.
func (r *Repository) MarkReconciled(ctx context.Context, donationID string) (bool, error) {
	query := `
        UPDATE donations
        SET reconciled_at = now(), updated_at = now()
        WHERE id = $1 AND reconciled_at IS NULL
    `
	tag, err := r.db.Exec(ctx, query, donationID)
	if err != nil {
		zap.L().Error("failed to mark donation reconciled", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
