package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/residence/dto"
	"github.com/sitedesk/sitedesk/internal/domain/apartment"
	"github.com/sitedesk/sitedesk/internal/domain/block"
	"github.com/sitedesk/sitedesk/internal/domain/resident"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// UpdateBlockCommand is a partial update; nil fields keep their value.
// A zero SiteID skips the ownership check.
type UpdateBlockCommand struct {
	BlockID        uint
	SiteID         uint
	Name           *string
	ApartmentCount *int
	Description    *string
}

type UpdateBlockUseCase struct {
	blockRepo      block.Repository
	residentRepo   resident.Repository
	strictCapacity bool
	logger         logger.Interface
}

// NewUpdateBlockUseCase: with strictCapacity the apartment count cannot drop
// below the highest numeric apartment number held by a resident.
func NewUpdateBlockUseCase(
	blockRepo block.Repository,
	residentRepo resident.Repository,
	strictCapacity bool,
	logger logger.Interface,
) *UpdateBlockUseCase {
	return &UpdateBlockUseCase{
		blockRepo:      blockRepo,
		residentRepo:   residentRepo,
		strictCapacity: strictCapacity,
		logger:         logger,
	}
}

func (uc *UpdateBlockUseCase) Execute(ctx context.Context, cmd UpdateBlockCommand) (*dto.BlockDTO, error) {
	uc.logger.Infow("executing update block use case", "block_id", cmd.BlockID)

	b, err := uc.blockRepo.GetByID(ctx, cmd.BlockID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, block.ErrBlockNotFound
	}
	if cmd.SiteID != 0 && !b.BelongsTo(cmd.SiteID) {
		return nil, block.ErrBlockNotInSite
	}

	if cmd.Name != nil {
		previous := b.Name()
		if err := b.Rename(*cmd.Name); err != nil {
			return nil, err
		}
		if b.Name() != previous {
			taken, err := uc.blockRepo.ExistsByName(ctx, b.SiteID(), b.Name(), b.ID())
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, block.ErrBlockNameTaken
			}
		}
	}

	if cmd.ApartmentCount != nil {
		highest := 0
		if uc.strictCapacity && *cmd.ApartmentCount < b.ApartmentCount() {
			if highest, err = uc.highestApartmentInUse(ctx, b.ID()); err != nil {
				return nil, err
			}
		}
		if err := b.SetApartmentCount(*cmd.ApartmentCount, highest); err != nil {
			return nil, err
		}
	}

	if cmd.Description != nil {
		b.SetDescription(*cmd.Description)
	}

	if err := uc.blockRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to update block", "block_id", b.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("block updated", "block_id", b.ID())
	return dto.ToBlockDTO(b), nil
}

func (uc *UpdateBlockUseCase) highestApartmentInUse(ctx context.Context, blockID uint) (int, error) {
	nos, err := uc.residentRepo.ListApartmentNosByBlock(ctx, blockID)
	if err != nil {
		return 0, err
	}
	highest := 0
	for _, no := range nos {
		if n, ok := apartment.ParseNo(no); ok && n > highest {
			highest = n
		}
	}
	return highest, nil
}
