package fundservice

import (
	"context"
	"errors"

	"github.com/sevaindia/fundlink/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.FundraisingProgress, error)
	Create(ctx context.Context, userID string, targetAmount float64) (*domain.FundraisingProgress, error)
	AddCollected(ctx context.Context, userID string, delta float64) (*domain.FundraisingProgress, error)
	FindAll(ctx context.Context) ([]domain.Fundraiser, error)
	FindTop(ctx context.Context, limit int) ([]domain.Fundraiser, error)
}

type Service struct {
	repo          Repo
	defaultTarget float64
}

func New(repo Repo, defaultTarget float64) *Service {
	return &Service{
		repo:          repo,
		defaultTarget: defaultTarget,
	}
}

const defaultLeaderboardSize = 10

var (
	ErrProgressNotFound = errors.New("fundraising progress not found")
	ErrInvalidAmount    = errors.New("amount must be positive")
)

func (s *Service) GetProgress(ctx context.Context, userID string) (*domain.FundraisingProgress, error) {
	progress, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get progress", zap.Error(err))
		return nil, err
	}
	if progress == nil {
		return nil, ErrProgressNotFound
	}
	return progress, nil
}

func (s *Service) CreateProgress(ctx context.Context, userID string) (*domain.FundraisingProgress, error) {
	progress, err := s.repo.Create(ctx, userID, s.defaultTarget)
	if err != nil {
		zap.L().Error("failed to create progress", zap.Error(err))
		return nil, err
	}
	return progress, nil
}

// ApplyDelta adds a self-reported amount to the user's collected total.
// The increment happens in a single statement, so two tabs submitting at
// once both land.
func (s *Service) ApplyDelta(ctx context.Context, userID string, delta float64) (*domain.FundraisingProgress, error) {
	if delta <= 0 {
		return nil, ErrInvalidAmount
	}

	progress, err := s.repo.AddCollected(ctx, userID, delta)
	if err != nil {
		zap.L().Error("failed to apply progress delta", zap.Error(err))
		return nil, err
	}
	if progress == nil {
		return nil, ErrProgressNotFound
	}

	zap.L().Info("progress updated",
		zap.String("userID", userID),
		zap.Float64("delta", delta),
		zap.Float64("collected", progress.CollectedAmount))
	return progress, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Fundraiser, error) {
	fundraisers, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to list fundraisers", zap.Error(err))
		return nil, err
	}
	return fundraisers, nil
}

func (s *Service) Leaderboard(ctx context.Context, limit int) ([]domain.Fundraiser, error) {
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}
	fundraisers, err := s.repo.FindTop(ctx, limit)
	if err != nil {
		zap.L().Error("failed to get leaderboard", zap.Error(err))
		return nil, err
	}
	return fundraisers, nil
}

// ProgressPercentage clamps to 100 for display; over-funding is allowed in
// the ledger itself. A non-positive target yields 0, never NaN.
func ProgressPercentage(collected, target float64) float64 {
	if target <= 0 {
		return 0
	}
	pct := collected / target * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// GlobalStats aggregates the admin dashboard numbers. Empty input produces
// all-zero stats.
func GlobalStats(fundraisers []domain.Fundraiser) domain.FundraisingStats {
	stats := domain.FundraisingStats{TotalFundraisers: len(fundraisers)}
	if len(fundraisers) == 0 {
		return stats
	}

	var totalTarget float64
	for _, f := range fundraisers {
		stats.TotalRaised += f.CollectedAmount
		totalTarget += f.TargetAmount
	}
	stats.AverageRaised = stats.TotalRaised / float64(stats.TotalFundraisers)
	stats.AverageTarget = totalTarget / float64(stats.TotalFundraisers)
	if stats.AverageTarget > 0 {
		stats.CompletionRate = stats.AverageRaised / stats.AverageTarget * 100
	}
	return stats
}
