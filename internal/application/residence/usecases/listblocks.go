package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/residence/dto"
	"github.com/sitedesk/sitedesk/internal/domain/block"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type ListBlocksUseCase struct {
	blockRepo block.Repository
	logger    logger.Interface
}

func NewListBlocksUseCase(blockRepo block.Repository, logger logger.Interface) *ListBlocksUseCase {
	return &ListBlocksUseCase{
		blockRepo: blockRepo,
		logger:    logger,
	}
}

// Execute returns the site's blocks ordered by name.
func (uc *ListBlocksUseCase) Execute(ctx context.Context, siteID uint) ([]*dto.BlockDTO, error) {
	blocks, err := uc.blockRepo.ListBySite(ctx, siteID)
	if err != nil {
		uc.logger.Errorw("failed to list blocks", "site_id", siteID, "error", err)
		return nil, err
	}
	return dto.ToBlockDTOList(blocks), nil
}
