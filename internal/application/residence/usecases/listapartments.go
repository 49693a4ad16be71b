package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/residence/dto"
	"github.com/sitedesk/sitedesk/internal/domain/apartment"
	"github.com/sitedesk/sitedesk/internal/domain/block"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type ListApartmentsQuery struct {
	SiteID  uint
	BlockID uint
}

type ListApartmentsUseCase struct {
	blockRepo     block.Repository
	apartmentRepo apartment.Repository
	logger        logger.Interface
}

func NewListApartmentsUseCase(
	blockRepo block.Repository,
	apartmentRepo apartment.Repository,
	logger logger.Interface,
) *ListApartmentsUseCase {
	return &ListApartmentsUseCase{
		blockRepo:     blockRepo,
		apartmentRepo: apartmentRepo,
		logger:        logger,
	}
}

// Execute lists every apartment slot of the block, materialized or not.
func (uc *ListApartmentsUseCase) Execute(ctx context.Context, query ListApartmentsQuery) ([]dto.ApartmentSlotDTO, error) {
	b, err := uc.blockRepo.GetByID(ctx, query.BlockID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, block.ErrBlockNotFound
	}
	if !b.BelongsTo(query.SiteID) {
		return nil, block.ErrBlockNotInSite
	}

	rows, err := uc.apartmentRepo.ListByBlock(ctx, b.ID())
	if err != nil {
		uc.logger.Errorw("failed to list apartments", "block_id", b.ID(), "error", err)
		return nil, err
	}
	return dto.ToApartmentSlotDTOList(apartment.Slots(b.ApartmentCount(), rows)), nil
}
