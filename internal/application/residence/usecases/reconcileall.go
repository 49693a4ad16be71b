package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/domain/site"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// ReconcileAllSitesUseCase runs ReconcileSite for every site, one after
// another. A failing site is logged and skipped.
type ReconcileAllSitesUseCase struct {
	siteRepo  site.Repository
	reconcile ReconcileSiteExecutor
	logger    logger.Interface
}

func NewReconcileAllSitesUseCase(
	siteRepo site.Repository,
	reconcile ReconcileSiteExecutor,
	logger logger.Interface,
) *ReconcileAllSitesUseCase {
	return &ReconcileAllSitesUseCase{
		siteRepo:  siteRepo,
		reconcile: reconcile,
		logger:    logger,
	}
}

// Execute returns the number of sites reconciled without error.
func (uc *ReconcileAllSitesUseCase) Execute(ctx context.Context) (int, error) {
	ids, err := uc.siteRepo.ListIDs(ctx)
	if err != nil {
		return 0, err
	}

	done := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return done, err
		}
		if _, err := uc.reconcile.Execute(ctx, id); err != nil {
			uc.logger.Warnw("skipping site after reconciliation failure", "site_id", id, "error", err)
			continue
		}
		done++
	}
	return done, nil
}
