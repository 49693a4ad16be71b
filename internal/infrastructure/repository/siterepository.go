package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sitedesk/sitedesk/internal/domain/site"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/mappers"
	"github.com/sitedesk/sitedesk/internal/infrastructure/persistence/models"
	"github.com/sitedesk/sitedesk/internal/shared/db"
	"github.com/sitedesk/sitedesk/internal/shared/errors"
)

type SiteRepository struct {
	db     *gorm.DB
	mapper mappers.SiteMapper
}

func NewSiteRepository(gdb *gorm.DB) *SiteRepository {
	return &SiteRepository{
		db:     gdb,
		mapper: mappers.NewSiteMapper(),
	}
}

func (r *SiteRepository) Create(ctx context.Context, s *site.Site) error {
	model := r.mapper.ToModel(s)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return site.ErrSiteCodeTaken
		}
		return fmt.Errorf("failed to create site: %w", err)
	}
	return s.SetID(model.ID)
}

func (r *SiteRepository) GetByID(ctx context.Context, id uint) (*site.Site, error) {
	var model models.SiteModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get site by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *SiteRepository) GetByCode(ctx context.Context, code string) (*site.Site, error) {
	var model models.SiteModel
	if err := db.GetTxFromContext(ctx, r.db).Where("code = ?", code).First(&model).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get site by code: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *SiteRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SiteModel{}).
		Unscoped().
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check site code: %w", err)
	}
	return count > 0, nil
}

func (r *SiteRepository) ListIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SiteModel{}).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list site IDs: %w", err)
	}
	return ids, nil
}
