package usecases

import (
	"context"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/sitedesk/sitedesk/internal/application/residence/dto"
	"github.com/sitedesk/sitedesk/internal/domain/block"
	"github.com/sitedesk/sitedesk/internal/domain/resident"
	"github.com/sitedesk/sitedesk/internal/shared/goroutine"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type CreateResidentCommand struct {
	SiteID       uint
	FullName     string
	PhoneNumber  string
	Placement    PlacementInput
	Plates       string
	ResidentType string
	Password     string
}

type CreateResidentUseCase struct {
	residentRepo resident.Repository
	resolver     *placementResolver
	accountant   *CapacityAccountant
	seeder       *DueSeeder
	hasher       PasswordHasher
	phoneRegion  string
	logger       logger.Interface
}

func NewCreateResidentUseCase(
	residentRepo resident.Repository,
	blockRepo block.Repository,
	getOrCreateApartment *GetOrCreateApartmentUseCase,
	accountant *CapacityAccountant,
	seeder *DueSeeder,
	hasher PasswordHasher,
	phoneRegion string,
	logger logger.Interface,
) *CreateResidentUseCase {
	return &CreateResidentUseCase{
		residentRepo: residentRepo,
		resolver:     newPlacementResolver(blockRepo, getOrCreateApartment, logger),
		accountant:   accountant,
		seeder:       seeder,
		hasher:       hasher,
		phoneRegion:  phoneRegion,
		logger:       logger,
	}
}

// Execute registers a resident. Validation, the phone uniqueness check and
// the block lookup happen before anything is written. Counter recomputation
// and due seeding run afterwards, concurrently, and never fail the call.
func (uc *CreateResidentUseCase) Execute(ctx context.Context, cmd CreateResidentCommand) (*dto.ResidentDTO, error) {
	uc.logger.Infow("executing create resident use case", "site_id", cmd.SiteID)

	phone, err := resident.NormalizePhone(cmd.PhoneNumber, uc.phoneRegion)
	if err != nil {
		return nil, err
	}
	r, err := resident.NewResident(cmd.SiteID, cmd.FullName, phone, resident.NormalizeResidentType(cmd.ResidentType))
	if err != nil {
		return nil, err
	}
	if cmd.Password != "" {
		if utf8.RuneCountInString(cmd.Password) < resident.MinPasswordLength {
			return nil, resident.ErrPasswordTooShort
		}
		hash, err := uc.hasher.Hash(cmd.Password)
		if err != nil {
			return nil, err
		}
		r.SetPasswordHash(hash)
	}
	r.SetPlates(cmd.Plates)

	var (
		phoneTaken bool
		blk        *block.Block
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		taken, err := uc.residentRepo.ExistsByPhone(gctx, phone, 0)
		phoneTaken = taken
		return err
	})
	g.Go(func() error {
		b, err := uc.resolver.lookupBlock(gctx, cmd.SiteID, cmd.Placement)
		blk = b
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if phoneTaken {
		return nil, resident.ErrPhoneTaken
	}

	placement, err := uc.resolver.materialize(ctx, cmd.SiteID, blk, cmd.Placement.blockName(), cmd.Placement.apartmentNo())
	if err != nil {
		return nil, err
	}
	r.AssignTo(placement.BlockID, placement.ApartmentID, placement.ApartmentNo)

	if err := uc.residentRepo.Create(ctx, r); err != nil {
		uc.logger.Errorw("failed to create resident", "site_id", cmd.SiteID, "error", err)
		return nil, err
	}

	goroutine.BestEffort(ctx, uc.logger, "resident_created_bookkeeping",
		func(ctx context.Context) error {
			uc.accountant.Refresh(ctx, placement.Placement)
			return nil
		},
		func(ctx context.Context) error {
			return uc.seeder.Seed(ctx, r)
		},
	)

	uc.logger.Infow("resident created",
		"resident_id", r.ID(), "site_id", cmd.SiteID,
		"block_id", placement.BlockID, "apartment_id", placement.ApartmentID)

	result := dto.ToResidentDTO(r)
	result.BlockName = placement.BlockName
	return result, nil
}
