package usecases

import (
	"context"

	"github.com/sitedesk/sitedesk/internal/application/residence/dto"
	"github.com/sitedesk/sitedesk/internal/domain/block"
	"github.com/sitedesk/sitedesk/internal/domain/resident"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// UpdateResidentCommand is a partial update; nil fields keep their value.
// A non-empty Placement moves the resident. Fields it leaves out default to
// the resident's current block and apartment number.
type UpdateResidentCommand struct {
	SiteID       uint
	ResidentID   uint
	FullName     *string
	PhoneNumber  *string
	Plates       *string
	ResidentType *string
	Placement    PlacementInput
}

type UpdateResidentUseCase struct {
	residentRepo resident.Repository
	blockRepo    block.Repository
	resolver     *placementResolver
	accountant   *CapacityAccountant
	phoneRegion  string
	logger       logger.Interface
}

func NewUpdateResidentUseCase(
	residentRepo resident.Repository,
	blockRepo block.Repository,
	getOrCreateApartment *GetOrCreateApartmentUseCase,
	accountant *CapacityAccountant,
	phoneRegion string,
	logger logger.Interface,
) *UpdateResidentUseCase {
	return &UpdateResidentUseCase{
		residentRepo: residentRepo,
		blockRepo:    blockRepo,
		resolver:     newPlacementResolver(blockRepo, getOrCreateApartment, logger),
		accountant:   accountant,
		phoneRegion:  phoneRegion,
		logger:       logger,
	}
}

func (uc *UpdateResidentUseCase) Execute(ctx context.Context, cmd UpdateResidentCommand) (*dto.ResidentDTO, error) {
	uc.logger.Infow("executing update resident use case", "resident_id", cmd.ResidentID, "site_id", cmd.SiteID)

	r, err := uc.residentRepo.GetByID(ctx, cmd.ResidentID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, resident.ErrResidentNotFound
	}
	if !r.BelongsToSite(cmd.SiteID) {
		return nil, resident.ErrResidentNotInSite
	}

	if cmd.FullName != nil {
		if err := r.Rename(*cmd.FullName); err != nil {
			return nil, err
		}
	}
	if cmd.PhoneNumber != nil {
		if err := uc.changePhone(ctx, r, *cmd.PhoneNumber); err != nil {
			return nil, err
		}
	}
	if cmd.Plates != nil {
		r.SetPlates(*cmd.Plates)
	}
	if cmd.ResidentType != nil {
		r.SetResidentType(resident.NormalizeResidentType(*cmd.ResidentType))
	}

	oldBlockID, oldApartmentID := r.Placement()
	before := Placement{BlockID: oldBlockID, ApartmentID: oldApartmentID}
	after := before
	blockName := ""

	if !cmd.Placement.IsEmpty() {
		target := cmd.Placement
		if target.blockID() == 0 && target.blockName() == "" && oldBlockID != 0 {
			target.BlockID = &oldBlockID
		}
		apartmentNo := target.apartmentNo()
		if apartmentNo == "" {
			apartmentNo = r.ApartmentNo()
		}

		blk, err := uc.resolver.lookupBlock(ctx, cmd.SiteID, target)
		if err != nil {
			return nil, err
		}
		placement, err := uc.resolver.materialize(ctx, cmd.SiteID, blk, target.blockName(), apartmentNo)
		if err != nil {
			return nil, err
		}
		r.AssignTo(placement.BlockID, placement.ApartmentID, placement.ApartmentNo)
		after = placement.Placement
		blockName = placement.BlockName
	}

	if err := uc.residentRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to update resident", "resident_id", r.ID(), "error", err)
		return nil, err
	}

	if after != before {
		uc.accountant.Refresh(ctx, before, after)
		uc.logger.Infow("resident moved",
			"resident_id", r.ID(),
			"from_apartment_id", before.ApartmentID, "to_apartment_id", after.ApartmentID,
			"from_block_id", before.BlockID, "to_block_id", after.BlockID)
	}

	result := dto.ToResidentDTO(r)
	result.BlockName = blockName
	if result.BlockName == "" && after.BlockID != 0 {
		if b, err := uc.blockRepo.GetByID(ctx, after.BlockID); err == nil && b != nil {
			result.BlockName = b.Name()
		}
	}
	return result, nil
}

func (uc *UpdateResidentUseCase) changePhone(ctx context.Context, r *resident.Resident, raw string) error {
	phone, err := resident.NormalizePhone(raw, uc.phoneRegion)
	if err != nil {
		return err
	}
	if phone == r.PhoneNumber() {
		return nil
	}
	taken, err := uc.residentRepo.ExistsByPhone(ctx, phone, r.ID())
	if err != nil {
		return err
	}
	if taken {
		return resident.ErrPhoneTaken
	}
	return r.ChangePhone(phone)
}
