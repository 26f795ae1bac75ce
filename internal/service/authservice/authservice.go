package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sevaindia/fundlink/internal/domain"
	"github.com/sevaindia/fundlink/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type ProgressService interface {
	CreateProgress(ctx context.Context, userID string) (*domain.FundraisingProgress, error)
}

type OnboardingService interface {
	SeedTasks(ctx context.Context, userID string) error
}

type Service struct {
	userRepo          Repo
	progressService   ProgressService
	onboardingService OnboardingService
	hashService       auth.HashServiceInterface
	jwtService        auth.JWTServiceInterface
}

func New(repo Repo, progressService ProgressService, onboardingService OnboardingService,
	hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:          repo,
		progressService:   progressService,
		onboardingService: onboardingService,
		hashService:       hashService,
		jwtService:        jwtService,
	}
}

var (
	ErrUserExists         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Register creates the user together with their empty campaign row and
// default onboarding checklist.
func (s *Service) Register(ctx context.Context, email, password, fullName string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrUserExists
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hashedPassword,
		FullName:     &fullName,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	if _, err := s.progressService.CreateProgress(ctx, newUser.ID); err != nil {
		zap.L().Error("can't create fundraising progress: ", zap.Error(err))
		return nil, err
	}
	if err := s.onboardingService.SeedTasks(ctx, newUser.ID); err != nil {
		zap.L().Error("can't seed onboarding tasks: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(userID string, isAdmin bool) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(userID, isAdmin, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
