package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/domain/apartment"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/mappers"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/db"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
)

type ApartmentRepository struct {
	db     *gorm.DB
	mapper mappers.ApartmentMapper
}

func NewApartmentRepository(gdb *gorm.DB) *ApartmentRepository {
	return &ApartmentRepository{
		db:     gdb,
		mapper: mappers.NewApartmentMapper(),
	}
}

func (r *ApartmentRepository) Create(ctx context.Context, a *apartment.Apartment) error {
	model := r.mapper.ToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return apartment.ErrApartmentExists
		}
		return fmt.Errorf("failed to create apartment: %w", err)
	}
	return a.SetID(model.ID)
}

func (r *ApartmentRepository) GetByID(ctx context.Context, id uint) (*apartment.Apartment, error) {
	var model models.ApartmentModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get apartment by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ApartmentRepository) GetByBlockAndNo(ctx context.Context, blockID uint, apartmentNo string) (*apartment.Apartment, error) {
	var model models.ApartmentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("block_id = ? AND apartment_no = ?", blockID, apartmentNo).
		First(&model).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get apartment: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ApartmentRepository) ListByBlock(ctx context.Context, blockID uint) ([]*apartment.Apartment, error) {
	var rows []*models.ApartmentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("block_id = ?", blockID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list apartments: %w", err)
	}
	return r.mapper.ToEntities(rows)
}

func (r *ApartmentRepository) SetResidentCount(ctx context.Context, id uint, count int) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ApartmentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"resident_count": count,
			"is_occupied":    count > 0,
		}).Error; err != nil {
		return fmt.Errorf("failed to set apartment resident count: %w", err)
	}
	return nil
}

func (r *ApartmentRepository) SumResidentCountByBlock(ctx context.Context, blockID uint) (int, error) {
	var sum int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ApartmentModel{}).
		Where("block_id = ?", blockID).
		Select("COALESCE(SUM(resident_count), 0)").
		Scan(&sum).Error; err != nil {
		return 0, fmt.Errorf("failed to sum apartment resident counts: %w", err)
	}
	return int(sum), nil
}

func (r *ApartmentRepository) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.ApartmentModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete apartment: %w", err)
	}
	return nil
}

func (r *ApartmentRepository) DeleteByBlock(ctx context.Context, blockID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Where("block_id = ?", blockID).
		Delete(&models.ApartmentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete block apartments: %w", err)
	}
	return nil
}
