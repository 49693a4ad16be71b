package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/domain/complaint"
	"github.com/sitedesk/sitedesk/internal/domain/due"
	"github.com/sitedesk/sitedesk/internal/domain/resident"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type DeleteResidentUseCase struct {
	residentRepo resident.Repository
	dependents   *dependentsCleaner
	accountant   *CapacityAccountant
	logger       logger.Interface
}

func NewDeleteResidentUseCase(
	residentRepo resident.Repository,
	dueRepo due.Repository,
	paymentRepo due.PaymentRepository,
	complaintRepo complaint.Repository,
	accountant *CapacityAccountant,
	logger logger.Interface,
) *DeleteResidentUseCase {
	return &DeleteResidentUseCase{
		residentRepo: residentRepo,
		dependents: &dependentsCleaner{
			dueRepo:       dueRepo,
			paymentRepo:   paymentRepo,
			complaintRepo: complaintRepo,
		},
		accountant: accountant,
		logger:     logger,
	}
}

// Execute hard-deletes the resident after its dues, payments and complaints.
// The apartment row stays, unoccupied if it was the last resident.
func (uc *DeleteResidentUseCase) Execute(ctx context.Context, id uint) error {
	uc.logger.Infow("executing delete resident use case", "resident_id", id)

	r, err := uc.residentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r == nil {
		return resident.ErrResidentNotFound
	}

	if err := uc.dependents.deleteConcurrently(ctx, []uint{r.ID()}); err != nil {
		uc.logger.Errorw("failed to delete resident dependents", "resident_id", r.ID(), "error", err)
		return err
	}
	if err := uc.residentRepo.Delete(ctx, r.ID()); err != nil {
		uc.logger.Errorw("failed to delete resident", "resident_id", r.ID(), "error", err)
		return err
	}

	blockID, apartmentID := r.Placement()
	uc.accountant.Refresh(ctx, Placement{BlockID: blockID, ApartmentID: apartmentID})

	uc.logger.Infow("resident deleted", "resident_id", r.ID(), "site_id", r.SiteID())
	return nil
}
