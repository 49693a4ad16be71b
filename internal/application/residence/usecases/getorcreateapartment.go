package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/sitedesk/sitedesk/internal/domain/apartment"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

// GetOrCreateApartmentUseCase materializes the apartment row for a
// (block, apartment number) pair. Concurrent callers for the same pair all
// receive the single row that won the insert.
type GetOrCreateApartmentUseCase struct {
	apartmentRepo apartment.Repository
	logger        logger.Interface
}

func NewGetOrCreateApartmentUseCase(apartmentRepo apartment.Repository, logger logger.Interface) *GetOrCreateApartmentUseCase {
	return &GetOrCreateApartmentUseCase{
		apartmentRepo: apartmentRepo,
		logger:        logger,
	}
}

func (uc *GetOrCreateApartmentUseCase) Execute(ctx context.Context, blockID uint, apartmentNo string) (*apartment.Apartment, error) {
	apartmentNo = apartment.NormalizeNo(apartmentNo)
	if apartmentNo == "" {
		return nil, apartment.ErrApartmentNoRequired
	}

	existing, err := uc.apartmentRepo.GetByBlockAndNo(ctx, blockID, apartmentNo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	a, err := apartment.NewApartment(blockID, apartmentNo)
	if err != nil {
		return nil, err
	}
	err = uc.apartmentRepo.Create(ctx, a)
	if err == nil {
		uc.logger.Infow("apartment materialized", "apartment_id", a.ID(), "block_id", blockID, "apartment_no", apartmentNo)
		return a, nil
	}
	if !errors.Is(err, apartment.ErrApartmentExists) {
		return nil, err
	}

	// Lost the insert race; the winner's row is authoritative.
	winner, err := uc.apartmentRepo.GetByBlockAndNo(ctx, blockID, apartmentNo)
	if err != nil {
		return nil, err
	}
	if winner == nil {
		return nil, fmt.Errorf("apartment %q of block %d vanished after unique violation", apartmentNo, blockID)
	}
	return winner, nil
}
