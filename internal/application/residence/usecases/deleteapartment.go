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

type DeleteApartmentCommand struct {
	SiteID      uint
	BlockID     uint
	ApartmentNo string
}

type DeleteApartmentUseCase struct {
	blockRepo     block.Repository
	apartmentRepo apartment.Repository
	residentRepo  resident.Repository
	dependents    *dependentsCleaner
	accountant    *CapacityAccountant
	txRunner      TransactionRunner
	logger        logger.Interface
}

func NewDeleteApartmentUseCase(
	blockRepo block.Repository,
	apartmentRepo apartment.Repository,
	residentRepo resident.Repository,
	dueRepo due.Repository,
	paymentRepo due.PaymentRepository,
	complaintRepo complaint.Repository,
	accountant *CapacityAccountant,
	txRunner TransactionRunner,
	logger logger.Interface,
) *DeleteApartmentUseCase {
	return &DeleteApartmentUseCase{
		blockRepo:     blockRepo,
		apartmentRepo: apartmentRepo,
		residentRepo:  residentRepo,
		dependents: &dependentsCleaner{
			dueRepo:       dueRepo,
			paymentRepo:   paymentRepo,
			complaintRepo: complaintRepo,
		},
		accountant: accountant,
		txRunner:   txRunner,
		logger:     logger,
	}
}

// Execute removes one apartment from the block's capacity. A materialized
// apartment is deleted together with its residents; a phantom number only
// lowers the block's apartment_count.
func (uc *DeleteApartmentUseCase) Execute(ctx context.Context, cmd DeleteApartmentCommand) error {
	uc.logger.Infow("executing delete apartment use case",
		"site_id", cmd.SiteID, "block_id", cmd.BlockID, "apartment_no", cmd.ApartmentNo)

	no := apartment.NormalizeNo(cmd.ApartmentNo)
	if no == "" {
		return apartment.ErrApartmentNoRequired
	}

	b, err := uc.blockRepo.GetByID(ctx, cmd.BlockID)
	if err != nil {
		return err
	}
	if b == nil {
		return block.ErrBlockNotFound
	}
	if !b.BelongsTo(cmd.SiteID) {
		return block.ErrBlockNotInSite
	}

	a, err := uc.apartmentRepo.GetByBlockAndNo(ctx, b.ID(), no)
	if err != nil {
		return err
	}

	err = uc.txRunner.RunInTransaction(ctx, func(ctx context.Context) error {
		if a != nil {
			ids, err := uc.residentRepo.ListIDsByApartment(ctx, a.ID())
			if err != nil {
				return err
			}
			if err := uc.dependents.deleteInOrder(ctx, ids); err != nil {
				return err
			}
			if err := uc.residentRepo.DeleteByIDs(ctx, ids); err != nil {
				return err
			}
			if err := uc.apartmentRepo.Delete(ctx, a.ID()); err != nil {
				return err
			}
		}
		return uc.blockRepo.DecrementCapacity(ctx, b.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete apartment", "block_id", b.ID(), "apartment_no", no, "error", err)
		return err
	}

	uc.accountant.Refresh(ctx, Placement{BlockID: b.ID()})

	uc.logger.Infow("apartment deleted", "block_id", b.ID(), "apartment_no", no, "materialized", a != nil)
	return nil
}
