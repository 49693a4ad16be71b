package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/sitedesk/sitedesk/internal/domain/apartment"
	"github.com/sitedesk/sitedesk/internal/domain/block"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// PlacementInput is the block/apartment part of a resident command. Nil or
// empty fields are absent.
type PlacementInput struct {
	BlockID     *uint
	BlockName   *string
	ApartmentNo *string
}

func (in PlacementInput) blockID() uint {
	if in.BlockID == nil {
		return 0
	}
	return *in.BlockID
}

func (in PlacementInput) blockName() string {
	if in.BlockName == nil {
		return ""
	}
	return strings.TrimSpace(*in.BlockName)
}

func (in PlacementInput) apartmentNo() string {
	if in.ApartmentNo == nil {
		return ""
	}
	return apartment.NormalizeNo(*in.ApartmentNo)
}

// IsEmpty reports whether the input names neither a block nor an apartment.
func (in PlacementInput) IsEmpty() bool {
	return in.blockID() == 0 && in.blockName() == "" && in.apartmentNo() == ""
}

// resolvedPlacement is where a resident ends up after materialization.
type resolvedPlacement struct {
	Placement
	BlockName   string
	ApartmentNo string
}

// placementResolver turns a PlacementInput into block and apartment rows.
// lookupBlock never writes; materialize creates what is missing.
type placementResolver struct {
	blockRepo            block.Repository
	getOrCreateApartment *GetOrCreateApartmentUseCase
	logger               logger.Interface
}

func newPlacementResolver(
	blockRepo block.Repository,
	getOrCreateApartment *GetOrCreateApartmentUseCase,
	logger logger.Interface,
) *placementResolver {
	return &placementResolver{
		blockRepo:            blockRepo,
		getOrCreateApartment: getOrCreateApartment,
		logger:               logger,
	}
}

// lookupBlock finds the block named by in. A block id must exist and belong
// to the site; a block name that does not exist yet yields (nil, nil).
func (r *placementResolver) lookupBlock(ctx context.Context, siteID uint, in PlacementInput) (*block.Block, error) {
	if id := in.blockID(); id != 0 {
		b, err := r.blockRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, block.ErrBlockNotFound
		}
		if !b.BelongsTo(siteID) {
			return nil, block.ErrBlockNotInSite
		}
		return b, nil
	}
	if name := in.blockName(); name != "" {
		return r.blockRepo.GetByName(ctx, siteID, name)
	}
	return nil, nil
}

// materialize creates the block when it was named but missing, raises its
// capacity to fit a numeric apartment number and gets or creates the
// apartment row.
func (r *placementResolver) materialize(ctx context.Context, siteID uint, b *block.Block, blockName, apartmentNo string) (resolvedPlacement, error) {
	apartmentNo = apartment.NormalizeNo(apartmentNo)

	if b == nil && blockName != "" {
		created, err := r.createBlock(ctx, siteID, blockName)
		if err != nil {
			return resolvedPlacement{}, err
		}
		b = created
	}
	if b == nil {
		if apartmentNo != "" {
			return resolvedPlacement{}, apartment.ErrBlockRequired
		}
		return resolvedPlacement{}, nil
	}

	out := resolvedPlacement{
		Placement:   Placement{BlockID: b.ID()},
		BlockName:   b.Name(),
		ApartmentNo: apartmentNo,
	}
	if apartmentNo == "" {
		return out, nil
	}

	if n, ok := apartment.ParseNo(apartmentNo); ok && b.NeedsCapacityFor(n) {
		raised, err := r.blockRepo.RaiseCapacity(ctx, b.ID(), n)
		if err != nil {
			return resolvedPlacement{}, err
		}
		if raised {
			r.logger.Infow("block capacity expanded", "block_id", b.ID(), "apartment_count", n)
		}
	}

	a, err := r.getOrCreateApartment.Execute(ctx, b.ID(), apartmentNo)
	if err != nil {
		return resolvedPlacement{}, err
	}
	out.ApartmentID = a.ID()
	out.ApartmentNo = a.ApartmentNo()
	return out, nil
}

func (r *placementResolver) createBlock(ctx context.Context, siteID uint, name string) (*block.Block, error) {
	b, err := block.NewBlock(siteID, name, 1, "")
	if err != nil {
		return nil, err
	}
	if err := r.blockRepo.Create(ctx, b); err != nil {
		if !errors.Is(err, block.ErrBlockNameTaken) {
			return nil, err
		}
		existing, getErr := r.blockRepo.GetByName(ctx, siteID, name)
		if getErr != nil {
			return nil, getErr
		}
		if existing == nil {
			return nil, err
		}
		return existing, nil
	}
	r.logger.Infow("block created for resident placement", "block_id", b.ID(), "site_id", siteID, "name", b.Name())
	return b, nil
}
