package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/domain/apartment"
	"github.com/sitedesk/sitedesk/internal/domain/block"
	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	"github.com/sitedesk/sitedesk/internal/domain/due"
	"github.com/sitedesk/sitedesk/internal/domain/resident"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// DeleteBlockCommand: a zero SiteID skips the ownership check.
type DeleteBlockCommand struct {
	BlockID uint
	SiteID  uint
}

type DeleteBlockUseCase struct {
	blockRepo     block.Repository
	apartmentRepo apartment.Repository
	residentRepo  resident.Repository
	dependents    *dependentsCleaner
	txRunner      TransactionRunner
	logger        logger.Interface
}

func NewDeleteBlockUseCase(
	blockRepo block.Repository,
	apartmentRepo apartment.Repository,
	residentRepo resident.Repository,
	dueRepo due.Repository,
	paymentRepo due.PaymentRepository,
	complaintRepo complaint.Repository,
	txRunner TransactionRunner,
	logger logger.Interface,
) *DeleteBlockUseCase {
	return &DeleteBlockUseCase{
		blockRepo:     blockRepo,
		apartmentRepo: apartmentRepo,
		residentRepo:  residentRepo,
		dependents: &dependentsCleaner{
			dueRepo:       dueRepo,
			paymentRepo:   paymentRepo,
			complaintRepo: complaintRepo,
		},
		txRunner: txRunner,
		logger:   logger,
	}
}

// Execute hard-deletes the block with every resident, apartment and resident
// dependent in it, all in one transaction.
func (uc *DeleteBlockUseCase) Execute(ctx context.Context, cmd DeleteBlockCommand) error {
	uc.logger.Infow("executing delete block use case", "block_id", cmd.BlockID)

	b, err := uc.blockRepo.GetByID(ctx, cmd.BlockID)
	if err != nil {
		return err
	}
	if b == nil {
		return block.ErrBlockNotFound
	}
	if cmd.SiteID != 0 && !b.BelongsTo(cmd.SiteID) {
		return block.ErrBlockNotInSite
	}

	var removed int
	err = uc.txRunner.RunInTransaction(ctx, func(ctx context.Context) error {
		ids, err := uc.residentRepo.ListIDsByBlock(ctx, b.ID())
		if err != nil {
			return err
		}
		if err := uc.dependents.deleteInOrder(ctx, ids); err != nil {
			return err
		}
		if err := uc.residentRepo.DeleteByIDs(ctx, ids); err != nil {
			return err
		}
		if err := uc.apartmentRepo.DeleteByBlock(ctx, b.ID()); err != nil {
			return err
		}
		removed = len(ids)
		return uc.blockRepo.Delete(ctx, b.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete block", "block_id", b.ID(), "error", err)
		return err
	}

	uc.logger.Infow("block deleted", "block_id", b.ID(), "site_id", b.SiteID(), "residents_removed", removed)
	return nil
}
