package donationservice

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sevaindia/fundlink/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, donation *domain.Donation) error
	FindByID(ctx context.Context, donationID string) (*domain.Donation, error)
	FindByLinkID(ctx context.Context, linkID string) ([]domain.Donation, error)
	UpdateStatus(ctx context.Context, donationID, status string, transactionID, paymentMethod *string) error
	FindForReconciliation(ctx context.Context, limit uint32) ([]domain.UnreconciledDonation, error)
	MarkReconciled(ctx context.Context, donationID string) (bool, error)
}

type LinkRepo interface {
	FindActiveByCode(ctx context.Context, code string) (*domain.AffiliateLink, error)
	FindByID(ctx context.Context, linkID string) (*domain.AffiliateLink, error)
}

type Service struct {
	repo     Repo
	linkRepo LinkRepo
}

func New(repo Repo, linkRepo LinkRepo) *Service {
	return &Service{
		repo:     repo,
		linkRepo: linkRepo,
	}
}

const (
	// StatusPending donation recorded, payment not yet confirmed;
	StatusPending string = "pending"
	// StatusCompleted payment confirmed by the payment collaborator;
	StatusCompleted string = "completed"
	// StatusFailed payment was declined or abandoned;
	StatusFailed string = "failed"
)

var (
	ErrInvalidAmount           = errors.New("donation amount must be positive")
	ErrLinkInactive            = errors.New("donation link is not available")
	ErrDonationNotFound        = errors.New("donation not found")
	ErrUnauthorized            = errors.New("link belongs to another user")
	ErrInvalidStatusTransition = errors.New("donation status can only leave pending")
)

// Form is the donor-submitted payload from the public donate page.
type Form struct {
	DonorName  *string
	DonorEmail *string
	Amount     float64
	Message    *string
}

// Record creates a pending donation against an active link. It never
// touches the owner's collected total; the reconciler does that once the
// payment completes.
func (s *Service) Record(ctx context.Context, code string, form Form) (*domain.Donation, error) {
	if form.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	link, err := s.linkRepo.FindActiveByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if link == nil {
		zap.L().Info("donation attempted on unavailable link", zap.String("code", code))
		return nil, ErrLinkInactive
	}

	donation := &domain.Donation{
		ID:              uuid.NewString(),
		AffiliateLinkID: link.ID,
		DonorName:       form.DonorName,
		DonorEmail:      form.DonorEmail,
		Amount:          form.Amount,
		Message:         form.Message,
		PaymentStatus:   StatusPending,
	}
	if err := s.repo.Save(ctx, donation); err != nil {
		zap.L().Error("can't save donation", zap.Error(err))
		return nil, err
	}

	zap.L().Info("donation recorded",
		zap.String("donationID", donation.ID),
		zap.String("linkID", link.ID),
		zap.Float64("amount", form.Amount))
	return donation, nil
}

func (s *Service) ListForLink(ctx context.Context, userID, linkID string) ([]domain.Donation, error) {
	if err := s.checkOwnership(ctx, userID, linkID); err != nil {
		return nil, err
	}

	donations, err := s.repo.FindByLinkID(ctx, linkID)
	if err != nil {
		zap.L().Error("failed to fetch donations", zap.Error(err))
		return nil, err
	}
	return donations, nil
}

func (s *Service) Stats(ctx context.Context, userID, linkID string) (*domain.DonationStats, error) {
	donations, err := s.ListForLink(ctx, userID, linkID)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(donations)
	return &stats, nil
}

// UpdateStatus is the payment collaborator's entry point. Transitions are
// monotonic: only pending donations may move, and only to completed or failed.
func (s *Service) UpdateStatus(ctx context.Context, donationID, status string, transactionID, paymentMethod *string) error {
	if status != StatusCompleted && status != StatusFailed {
		return ErrInvalidStatusTransition
	}

	donation, err := s.repo.FindByID(ctx, donationID)
	if err != nil {
		return err
	}
	if donation == nil {
		return ErrDonationNotFound
	}
	if donation.PaymentStatus != StatusPending {
		zap.L().Info("status transition rejected",
			zap.String("donationID", donationID),
			zap.String("from", donation.PaymentStatus),
			zap.String("to", status))
		return ErrInvalidStatusTransition
	}

	if err := s.repo.UpdateStatus(ctx, donationID, status, transactionID, paymentMethod); err != nil {
		zap.L().Error("failed to update donation status", zap.Error(err))
		return err
	}

	zap.L().Info("donation status updated", zap.String("donationID", donationID), zap.String("status", status))
	return nil
}

func (s *Service) checkOwnership(ctx context.Context, userID, linkID string) error {
	link, err := s.linkRepo.FindByID(ctx, linkID)
	if err != nil {
		return err
	}
	if link == nil {
		return ErrLinkInactive
	}
	if link.UserID != userID {
		return ErrUnauthorized
	}
	return nil
}

// ComputeStats sums only completed donations into the total; the average is
// over completed donations and zero when there are none.
func ComputeStats(donations []domain.Donation) domain.DonationStats {
	stats := domain.DonationStats{TotalDonations: len(donations)}
	for _, d := range donations {
		if d.PaymentStatus == StatusCompleted {
			stats.CompletedDonations++
			stats.TotalAmount += d.Amount
		}
	}
	if stats.CompletedDonations > 0 {
		stats.AverageAmount = stats.TotalAmount / float64(stats.CompletedDonations)
	}
	return stats
}
