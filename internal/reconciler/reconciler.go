package reconciler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sevaindia/fundlink/internal/domain"
	"github.com/sevaindia/fundlink/internal/pg"
	"github.com/sevaindia/fundlink/internal/service/donationservice"
	"github.com/sevaindia/fundlink/internal/service/fundservice"
)

var inFlight sync.Map

// Service folds confirmed donations into the owner's campaign totals.
// Each donation is folded exactly once: the update of collected_amount
// and the reconciliation stamp happen in one transaction.
type Service struct {
	donationRepo donationservice.Repo
	progressRepo fundservice.Repo
	txManager    pg.TXManager
	limit        uint32
	workerPool   WorkerPoolI
	pollInterval time.Duration
}

func New(donationRepo donationservice.Repo, progressRepo fundservice.Repo, txManager pg.TXManager) *Service {
	return &Service{
		donationRepo: donationRepo,
		progressRepo: progressRepo,
		txManager:    txManager,
		limit:        1000,
		workerPool:   NewWorkerPool(10),
		pollInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Reconciler started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.processDonations(ctx)
		}
	}
}

func (s *Service) processDonations(ctx context.Context) {
	donations, err := s.donationRepo.FindForReconciliation(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch donations for reconciliation", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, donation := range donations {
		donation := donation

		if _, loaded := inFlight.LoadOrStore(donation.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlight.Delete(donation.ID)
				return s.reconcile(ctx, donation)
			})
			if err != nil {
				inFlight.Delete(donation.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reconciling donations", zap.Error(err))
	}
}

func (s *Service) reconcile(ctx context.Context, donation domain.UnreconciledDonation) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		// stamp first: zero rows affected means another run got here already
		marked, err := s.donationRepo.MarkReconciled(ctx, donation.ID)
		if err != nil {
			return fmt.Errorf("failed to mark donation %s reconciled: %w", donation.ID, err)
		}
		if !marked {
			return nil
		}

		progress, err := s.progressRepo.AddCollected(ctx, donation.OwnerUserID, donation.Amount)
		if err != nil {
			return fmt.Errorf("failed to update collected amount for user %s: %w", donation.OwnerUserID, err)
		}
		if progress == nil {
			return fmt.Errorf("no campaign found for user %s, donation %s left unfolded", donation.OwnerUserID, donation.ID)
		}

		zap.L().Info("Donation reconciled",
			zap.String("donationID", donation.ID),
			zap.String("userID", donation.OwnerUserID),
			zap.Float64("amount", donation.Amount),
		)
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
