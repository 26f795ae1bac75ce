package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/sevaindia/fundlink/internal/pg"
	affiliaterepo "github.com/sevaindia/fundlink/internal/repo/affiliate-repo"
	donationrepo "github.com/sevaindia/fundlink/internal/repo/donation-repo"
	onboardingrepo "github.com/sevaindia/fundlink/internal/repo/onboarding-repo"
	progressrepo "github.com/sevaindia/fundlink/internal/repo/progress-repo"
	userrepo "github.com/sevaindia/fundlink/internal/repo/user-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.ProgressRepo)
	assert.NotNil(t, repo.AffiliateRepo)
	assert.NotNil(t, repo.DonationRepo)
	assert.NotNil(t, repo.OnboardingRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &progressrepo.Repository{}, repo.ProgressRepo)
	assert.IsType(t, &affiliaterepo.Repository{}, repo.AffiliateRepo)
	assert.IsType(t, &donationrepo.Repository{}, repo.DonationRepo)
	assert.IsType(t, &onboardingrepo.Repository{}, repo.OnboardingRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
