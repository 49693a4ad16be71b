package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/residence/dto"
	"github.com/sitedesk/sitedesk/internal/domain/block"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type CreateBlockCommand struct {
	SiteID         uint
	Name           string
	ApartmentCount int
	Description    string
}

type CreateBlockUseCase struct {
	blockRepo block.Repository
	logger    logger.Interface
}

func NewCreateBlockUseCase(blockRepo block.Repository, logger logger.Interface) *CreateBlockUseCase {
	return &CreateBlockUseCase{
		blockRepo: blockRepo,
		logger:    logger,
	}
}

func (uc *CreateBlockUseCase) Execute(ctx context.Context, cmd CreateBlockCommand) (*dto.BlockDTO, error) {
	uc.logger.Infow("executing create block use case", "site_id", cmd.SiteID, "name", cmd.Name)

	b, err := block.NewBlock(cmd.SiteID, cmd.Name, cmd.ApartmentCount, cmd.Description)
	if err != nil {
		return nil, err
	}

	taken, err := uc.blockRepo.ExistsByName(ctx, cmd.SiteID, b.Name(), 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, block.ErrBlockNameTaken
	}

	if err := uc.blockRepo.Create(ctx, b); err != nil {
		uc.logger.Errorw("failed to create block", "site_id", cmd.SiteID, "error", err)
		return nil, err
	}

	uc.logger.Infow("block created", "block_id", b.ID(), "site_id", cmd.SiteID)
	return dto.ToBlockDTO(b), nil
}
