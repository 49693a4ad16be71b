package usecases

import (
	"context"
	"fmt"

	"github.com/sitedesk/sitedesk/internal/domain/apartment"
	"github.com/sitedesk/sitedesk/internal/domain/block"
	"github.com/sitedesk/sitedesk/internal/domain/resident"
	"github.com/sitedesk/sitedesk/internal/shared/goroutine"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
	"github.com/sitedesk/sitedesk/internal/shared/utils/setutil"
)

// Placement names an apartment and the block it belongs to. Zero ids mean
// "none".
type Placement struct {
	BlockID     uint
	ApartmentID uint
}

// CapacityAccountant keeps the cached resident counters of apartments and
// blocks equal to the underlying resident rows. Every write is a full
// re-aggregation from source rows, so concurrent recomputations of the same
// entity converge once the last one finishes.
type CapacityAccountant struct {
	apartmentRepo apartment.Repository
	blockRepo     block.Repository
	residentRepo  resident.Repository
	logger        logger.Interface
}

func NewCapacityAccountant(
	apartmentRepo apartment.Repository,
	blockRepo block.Repository,
	residentRepo resident.Repository,
	logger logger.Interface,
) *CapacityAccountant {
	return &CapacityAccountant{
		apartmentRepo: apartmentRepo,
		blockRepo:     blockRepo,
		residentRepo:  residentRepo,
		logger:        logger,
	}
}

// RecomputeApartment sets resident_count to the number of non-deleted
// residents of the apartment and derives is_occupied from it.
func (a *CapacityAccountant) RecomputeApartment(ctx context.Context, apartmentID uint) error {
	count, err := a.residentRepo.CountActiveByApartment(ctx, apartmentID)
	if err != nil {
		return fmt.Errorf("recompute apartment %d: %w", apartmentID, err)
	}
	if err := a.apartmentRepo.SetResidentCount(ctx, apartmentID, count); err != nil {
		return fmt.Errorf("recompute apartment %d: %w", apartmentID, err)
	}
	return nil
}

// RecomputeBlock sets resident_count to the sum over the block's apartments.
func (a *CapacityAccountant) RecomputeBlock(ctx context.Context, blockID uint) error {
	sum, err := a.apartmentRepo.SumResidentCountByBlock(ctx, blockID)
	if err != nil {
		return fmt.Errorf("recompute block %d: %w", blockID, err)
	}
	if err := a.blockRepo.SetResidentCount(ctx, blockID, sum); err != nil {
		return fmt.Errorf("recompute block %d: %w", blockID, err)
	}
	return nil
}

// Refresh recomputes every distinct apartment of targets concurrently, then
// every distinct block. Failures are logged and never returned.
func (a *CapacityAccountant) Refresh(ctx context.Context, targets ...Placement) {
	apartments := setutil.NewUintSet()
	blocks := setutil.NewUintSet()
	for _, t := range targets {
		apartments.Add(t.ApartmentID)
		blocks.Add(t.BlockID)
	}

	goroutine.BestEffort(ctx, a.logger, "recompute_apartment_counters",
		a.tasks(apartments.ToSlice(), a.RecomputeApartment)...)
	goroutine.BestEffort(ctx, a.logger, "recompute_block_counters",
		a.tasks(blocks.ToSlice(), a.RecomputeBlock)...)
}

func (a *CapacityAccountant) tasks(ids []uint, fn func(ctx context.Context, id uint) error) []func(ctx context.Context) error {
	tasks := make([]func(ctx context.Context) error, 0, len(ids))
	for _, id := range ids {
		id := id
		tasks = append(tasks, func(ctx context.Context) error {
			return fn(ctx, id)
		})
	}
	return tasks
}
