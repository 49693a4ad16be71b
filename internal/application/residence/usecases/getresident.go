package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/residence/dto"
	"github.com/sitedesk/sitedesk/internal/domain/block"
	"github.com/sitedesk/sitedesk/internal/domain/resident"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type GetResidentUseCase struct {
	residentRepo resident.Repository
	blockRepo    block.Repository
	logger       logger.Interface
}

func NewGetResidentUseCase(residentRepo resident.Repository, blockRepo block.Repository, logger logger.Interface) *GetResidentUseCase {
	return &GetResidentUseCase{
		residentRepo: residentRepo,
		blockRepo:    blockRepo,
		logger:       logger,
	}
}

func (uc *GetResidentUseCase) Execute(ctx context.Context, id uint) (*dto.ResidentDTO, error) {
	r, err := uc.residentRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get resident", "resident_id", id, "error", err)
		return nil, err
	}
	if r == nil {
		return nil, resident.ErrResidentNotFound
	}

	result := dto.ToResidentDTO(r)
	if blockID, _ := r.Placement(); blockID != 0 {
		b, err := uc.blockRepo.GetByID(ctx, blockID)
		if err != nil {
			return nil, err
		}
		if b != nil {
			result.BlockName = b.Name()
		}
	}
	return result, nil
}
