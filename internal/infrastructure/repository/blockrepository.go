package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/domain/block"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/mappers"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/db"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
)

type BlockRepository struct {
	db     *gorm.DB
	mapper mappers.BlockMapper
}

func NewBlockRepository(gdb *gorm.DB) *BlockRepository {
	return &BlockRepository{
		db:     gdb,
		mapper: mappers.NewBlockMapper(),
	}
}

// Create returns block.ErrBlockNameTaken when the site already has a block
// with the same name.
func (r *BlockRepository) Create(ctx context.Context, b *block.Block) error {
	model := r.mapper.ToModel(b)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return block.ErrBlockNameTaken
		}
		return fmt.Errorf("failed to create block: %w", err)
	}
	return b.SetID(model.ID)
}

// Update writes the administrator-editable columns only; counters are owned
// by the recompute routines.
func (r *BlockRepository) Update(ctx context.Context, b *block.Block) error {
	model := r.mapper.ToModel(b)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.BlockModel{}).
		Where("id = ?", model.ID).
		Select("name", "description", "apartment_count", "updated_at").
		Updates(model)
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return block.ErrBlockNameTaken
		}
		return fmt.Errorf("failed to update block: %w", result.Error)
	}
	return nil
}

func (r *BlockRepository) GetByID(ctx context.Context, id uint) (*block.Block, error) {
	var model models.BlockModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get block by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *BlockRepository) GetByName(ctx context.Context, siteID uint, name string) (*block.Block, error) {
	var model models.BlockModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("site_id = ? AND name = ?", siteID, name).
		Order("id ASC").
		First(&model).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get block by name: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *BlockRepository) ListBySite(ctx context.Context, siteID uint) ([]*block.Block, error) {
	var rows []*models.BlockModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.BySite(siteID)).
		Order("name ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list blocks: %w", err)
	}
	return r.mapper.ToEntities(rows)
}

func (r *BlockRepository) ExistsByName(ctx context.Context, siteID uint, name string, excludeID uint) (bool, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.BlockModel{}).
		Where("site_id = ? AND name = ?", siteID, name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check block name: %w", err)
	}
	return count > 0, nil
}

func (r *BlockRepository) RaiseCapacity(ctx context.Context, id uint, atLeast int) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.BlockModel{}).
		Where("id = ? AND apartment_count < ?", id, atLeast).
		Update("apartment_count", atLeast)
	if result.Error != nil {
		return false, fmt.Errorf("failed to raise block capacity: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *BlockRepository) DecrementCapacity(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.BlockModel{}).
		Where("id = ?", id).
		Update("apartment_count", gorm.Expr("CASE WHEN apartment_count > 0 THEN apartment_count - 1 ELSE 0 END")).
		Error; err != nil {
		return fmt.Errorf("failed to decrement block capacity: %w", err)
	}
	return nil
}

func (r *BlockRepository) SetResidentCount(ctx context.Context, id uint, count int) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.BlockModel{}).
		Where("id = ?", id).
		Update("resident_count", count).
		Error; err != nil {
		return fmt.Errorf("failed to set block resident count: %w", err)
	}
	return nil
}

func (r *BlockRepository) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Unscoped().
		Delete(&models.BlockModel{}, id).
		Error; err != nil {
		return fmt.Errorf("failed to delete block: %w", err)
	}
	return nil
}
