package usecases

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/sitedesk/sitedesk/internal/application/residence/dto"
	"github.com/sitedesk/sitedesk/internal/domain/apartment"
	"github.com/sitedesk/sitedesk/internal/domain/block"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

const reconcileConcurrency = 4

// ReconcileSiteUseCase recomputes every apartment and block counter of a
// site. It repairs counters left stale by failed best-effort recomputation.
type ReconcileSiteUseCase struct {
	blockRepo     block.Repository
	apartmentRepo apartment.Repository
	accountant    *CapacityAccountant
	logger        logger.Interface
}

func NewReconcileSiteUseCase(
	blockRepo block.Repository,
	apartmentRepo apartment.Repository,
	accountant *CapacityAccountant,
	logger logger.Interface,
) *ReconcileSiteUseCase {
	return &ReconcileSiteUseCase{
		blockRepo:     blockRepo,
		apartmentRepo: apartmentRepo,
		accountant:    accountant,
		logger:        logger,
	}
}

func (uc *ReconcileSiteUseCase) Execute(ctx context.Context, siteID uint) (*dto.ReconcileResultDTO, error) {
	uc.logger.Infow("executing reconcile site use case", "site_id", siteID)

	blocks, err := uc.blockRepo.ListBySite(ctx, siteID)
	if err != nil {
		return nil, err
	}

	var apartments atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reconcileConcurrency)
	for _, b := range blocks {
		b := b
		g.Go(func() error {
			rows, err := uc.apartmentRepo.ListByBlock(gctx, b.ID())
			if err != nil {
				return err
			}
			for _, a := range rows {
				if err := uc.accountant.RecomputeApartment(gctx, a.ID()); err != nil {
					return err
				}
			}
			apartments.Add(int64(len(rows)))
			return uc.accountant.RecomputeBlock(gctx, b.ID())
		})
	}
	if err := g.Wait(); err != nil {
		uc.logger.Errorw("site reconciliation failed", "site_id", siteID, "error", err)
		return nil, err
	}

	result := &dto.ReconcileResultDTO{
		SiteID:     siteID,
		Apartments: int(apartments.Load()),
		Blocks:     len(blocks),
	}
	uc.logger.Infow("site reconciled", "site_id", siteID, "apartments", result.Apartments, "blocks", result.Blocks)
	return result, nil
}
