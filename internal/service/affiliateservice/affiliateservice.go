package affiliateservice

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sevaindia/fundlink/internal/domain"
	"github.com/sevaindia/fundlink/pkg/linkcode"
	"go.uber.org/zap"
)

type Repo interface {
	FindActiveByUserID(ctx context.Context, userID string) (*domain.AffiliateLink, error)
	FindActiveByCode(ctx context.Context, code string) (*domain.AffiliateLink, error)
	FindByID(ctx context.Context, linkID string) (*domain.AffiliateLink, error)
	CodeTaken(ctx context.Context, code string) (bool, error)
	Save(ctx context.Context, link *domain.AffiliateLink) error
	Update(ctx context.Context, linkID string, upd domain.LinkUpdate) (*domain.AffiliateLink, error)
}

type Service struct {
	repo    Repo
	baseURL string
}

func New(repo Repo, baseURL string) *Service {
	return &Service{
		repo:    repo,
		baseURL: baseURL,
	}
}

const maxCodeAttempts = 5

var (
	ErrLinkNotFound = errors.New("affiliate link not found")
	ErrLinkExists   = errors.New("user already has an active link")
	ErrUnauthorized = errors.New("link belongs to another user")
)

func (s *Service) GetForUser(ctx context.Context, userID string) (*domain.AffiliateLink, error) {
	link, err := s.repo.FindActiveByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get affiliate link", zap.Error(err))
		return nil, err
	}
	if link == nil {
		return nil, ErrLinkNotFound
	}
	return link, nil
}

// Resolve backs the public donate URL. Absent and disabled codes are
// indistinguishable to the caller.
func (s *Service) Resolve(ctx context.Context, code string) (*domain.AffiliateLink, error) {
	link, err := s.repo.FindActiveByCode(ctx, code)
	if err != nil {
		zap.L().Error("failed to resolve affiliate link", zap.Error(err))
		return nil, err
	}
	if link == nil {
		return nil, ErrLinkNotFound
	}
	return link, nil
}

func (s *Service) Create(ctx context.Context, userID, title string, description *string, targetAmount float64) (*domain.AffiliateLink, error) {
	existing, err := s.repo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("active link already exists", zap.String("userID", userID))
		return nil, ErrLinkExists
	}

	code, err := s.allocateCode(ctx, title)
	if err != nil {
		return nil, err
	}

	link := &domain.AffiliateLink{
		ID:           uuid.NewString(),
		UserID:       userID,
		LinkCode:     code,
		Title:        title,
		Description:  description,
		TargetAmount: targetAmount,
		IsActive:     true,
	}
	if err := s.repo.Save(ctx, link); err != nil {
		zap.L().Error("can't save affiliate link", zap.Error(err))
		return nil, err
	}

	zap.L().Info("affiliate link created", zap.String("userID", userID), zap.String("code", code))
	return link, nil
}

func (s *Service) allocateCode(ctx context.Context, title string) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := linkcode.Generate(title)
		taken, err := s.repo.CodeTaken(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", errors.New("can't allocate unique link code")
}

// Update applies an allow-listed partial edit after an ownership pre-check.
// Row-level policy in the store is still the final authority.
func (s *Service) Update(ctx context.Context, userID, linkID string, upd domain.LinkUpdate) (*domain.AffiliateLink, error) {
	link, err := s.repo.FindByID(ctx, linkID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, ErrLinkNotFound
	}
	if link.UserID != userID {
		zap.L().Info("link update rejected", zap.String("userID", userID), zap.String("linkID", linkID))
		return nil, ErrUnauthorized
	}

	updated, err := s.repo.Update(ctx, linkID, upd)
	if err != nil {
		zap.L().Error("failed to update affiliate link", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// ShareableURL builds the public donation page address for a link code.
func (s *Service) ShareableURL(code string) string {
	return s.baseURL + "/donate/" + code
}
