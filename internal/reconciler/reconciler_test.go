package reconciler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/sevaindia/fundlink/internal/domain"
	"github.com/sevaindia/fundlink/internal/pg"
	"github.com/sevaindia/fundlink/internal/service/donationservice"
	"github.com/sevaindia/fundlink/internal/service/fundservice"
)

func NewMock(t *testing.T) (*Service, *donationservice.MockRepo, *fundservice.MockRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	donationRepo := donationservice.NewMockRepo(ctrl)
	progressRepo := fundservice.NewMockRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(donationRepo, progressRepo, txManager)
	defer ctrl.Finish()
	return service, donationRepo, progressRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestReconcile(t *testing.T) {
	donation := domain.UnreconciledDonation{
		Donation:    domain.Donation{ID: "d-1", AffiliateLinkID: "link-1", Amount: 250.0},
		OwnerUserID: "user-1",
	}

	tests := []struct {
		name          string
		prepareMock   func(donationRepo *donationservice.MockRepo, progressRepo *fundservice.MockRepo, txManager *pg.MockTXManager)
		expectedError string
	}{
		{
			name: "Folds donation into campaign total",
			prepareMock: func(donationRepo *donationservice.MockRepo, progressRepo *fundservice.MockRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				donationRepo.EXPECT().MarkReconciled(gomock.Any(), "d-1").Return(true, nil)
				progressRepo.EXPECT().AddCollected(gomock.Any(), "user-1", 250.0).
					Return(&domain.FundraisingProgress{UserID: "user-1", CollectedAmount: 250.0}, nil)
			},
		},
		{
			name: "Already stamped donation is skipped",
			prepareMock: func(donationRepo *donationservice.MockRepo, progressRepo *fundservice.MockRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				donationRepo.EXPECT().MarkReconciled(gomock.Any(), "d-1").Return(false, nil)
			},
		},
		{
			name: "Stamping failure",
			prepareMock: func(donationRepo *donationservice.MockRepo, progressRepo *fundservice.MockRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				donationRepo.EXPECT().MarkReconciled(gomock.Any(), "d-1").Return(false, errors.New("db error"))
			},
			expectedError: "failed to mark donation d-1 reconciled: db error",
		},
		{
			name: "Collected update failure",
			prepareMock: func(donationRepo *donationservice.MockRepo, progressRepo *fundservice.MockRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				donationRepo.EXPECT().MarkReconciled(gomock.Any(), "d-1").Return(true, nil)
				progressRepo.EXPECT().AddCollected(gomock.Any(), "user-1", 250.0).Return(nil, errors.New("db error"))
			},
			expectedError: "failed to update collected amount for user user-1: db error",
		},
		{
			name: "Owner has no campaign",
			prepareMock: func(donationRepo *donationservice.MockRepo, progressRepo *fundservice.MockRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				donationRepo.EXPECT().MarkReconciled(gomock.Any(), "d-1").Return(true, nil)
				progressRepo.EXPECT().AddCollected(gomock.Any(), "user-1", 250.0).Return(nil, nil)
			},
			expectedError: "no campaign found for user user-1, donation d-1 left unfolded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, donationRepo, progressRepo, txManager := NewMock(t)
			tt.prepareMock(donationRepo, progressRepo, txManager)

			err := service.reconcile(context.Background(), donation)
			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessDonations(t *testing.T) {
	donations := []domain.UnreconciledDonation{
		{Donation: domain.Donation{ID: "d-1", Amount: 250.0}, OwnerUserID: "user-1"},
		{Donation: domain.Donation{ID: "d-2", Amount: 100.0}, OwnerUserID: "user-2"},
	}

	tests := []struct {
		name        string
		prepareMock func(donationRepo *donationservice.MockRepo, workerPool *MockWorkerPoolI)
	}{
		{
			name: "Every fetched donation is dispatched",
			prepareMock: func(donationRepo *donationservice.MockRepo, workerPool *MockWorkerPoolI) {
				donationRepo.EXPECT().FindForReconciliation(gomock.Any(), uint32(1000)).Return(donations, nil)
				workerPool.EXPECT().AddTask(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, task Task) error {
					return task()
				}).Times(2)
			},
		},
		{
			name: "Fetch failure dispatches nothing",
			prepareMock: func(donationRepo *donationservice.MockRepo, workerPool *MockWorkerPoolI) {
				donationRepo.EXPECT().FindForReconciliation(gomock.Any(), uint32(1000)).Return(nil, errors.New("db error"))
			},
		},
		{
			name: "Dispatch failure releases the dedupe slot",
			prepareMock: func(donationRepo *donationservice.MockRepo, workerPool *MockWorkerPoolI) {
				donationRepo.EXPECT().FindForReconciliation(gomock.Any(), uint32(1000)).Return(donations[:1], nil)
				workerPool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(errors.New("pool closed"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, donationRepo, progressRepo, txManager := NewMock(t)
			workerPool := NewMockWorkerPoolI(ctrl)
			service.workerPool = workerPool

			if tt.name == "Every fetched donation is dispatched" {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				}).Times(2)
				donationRepo.EXPECT().MarkReconciled(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
				progressRepo.EXPECT().AddCollected(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.FundraisingProgress{}, nil).Times(2)
			}

			tt.prepareMock(donationRepo, workerPool)
			service.processDonations(context.Background())

			for _, d := range donations {
				_, held := inFlight.Load(d.ID)
				assert.False(t, held)
			}
		})
	}
}

func TestProcessDonationsDeduplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, donationRepo, _, _ := NewMock(t)
	workerPool := NewMockWorkerPoolI(ctrl)
	service.workerPool = workerPool

	inFlight.Store("d-1", struct{}{})
	defer inFlight.Delete("d-1")

	donationRepo.EXPECT().FindForReconciliation(gomock.Any(), uint32(1000)).Return([]domain.UnreconciledDonation{
		{Donation: domain.Donation{ID: "d-1", Amount: 250.0}, OwnerUserID: "user-1"},
	}, nil)

	service.processDonations(context.Background())
}
